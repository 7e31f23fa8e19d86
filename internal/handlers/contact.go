package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"f2computers/site/internal/store"
)

type contactRequest struct {
	FullName string `json:"fullName"`
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	PhoneNo  string `json:"phoneNo"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

func (h HandlerSet) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var missing []string
	if req.FullName == "" {
		missing = append(missing, "fullName")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	msg := h.store.CreateMessage(store.MessageInput{
		FullName: req.FullName,
		Street:   req.Street,
		City:     req.City,
		Postcode: req.Postcode,
		PhoneNo:  req.PhoneNo,
		Email:    req.Email,
		Body:     req.Message,
	})

	h.log.Info().Str("full_name", msg.FullName).Str("message_id", msg.ID).Msg("contact message received")

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Message sent successfully! We will contact you soon.",
		"messageId": msg.ID,
	})
}
