package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"f2computers/site/internal/store"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Presence checks only; the legacy service never validated formats.
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	user, err := h.store.CreateUser(req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists with this email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info().Str("full_name", user.FullName).Str("email", user.Email).Msg("new user registered")

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully!",
		"userId":  user.ID,
		"user": userResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUserResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	LastLogin *time.Time `json:"lastLogin"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, sessionID, err := h.store.Login(req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are indistinguishable on purpose.
		h.log.Warn().Str("email", req.Email).Msg("login failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	h.log.Info().Str("full_name", user.FullName).Msg("login successful")

	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"sessionId": sessionID,
		"user": loginUserResponse{
			ID:        user.ID,
			FullName:  user.FullName,
			Email:     user.Email,
			LastLogin: user.LastLogin,
		},
	})
}

type logoutRequest struct {
	SessionID string `json:"sessionId"`
}

func (h HandlerSet) Logout(c *gin.Context) {
	// Logout never fails: a malformed body or unknown session id is treated
	// the same as a valid one.
	var req logoutRequest
	_ = c.ShouldBindJSON(&req)

	if sess, ok := h.store.Logout(req.SessionID); ok {
		h.log.Info().Str("full_name", sess.FullName).Msg("user logged out")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
