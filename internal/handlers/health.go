package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type serverTestResponse struct {
	Message   string     `json:"message"`
	Port      int        `json:"port"`
	Timestamp time.Time  `json:"timestamp"`
	Stats     testCounts `json:"stats"`
}

type testCounts struct {
	Users    int `json:"users"`
	Messages int `json:"messages"`
	Sessions int `json:"sessions"`
}

// ServerTest is the liveness probe the pages ping on load.
func (h HandlerSet) ServerTest(c *gin.Context) {
	users, messages, sessions := h.store.Counts()

	c.JSON(http.StatusOK, serverTestResponse{
		Message:   "Server ishlayapti!",
		Port:      h.cfg.HTTP.Port,
		Timestamp: time.Now(),
		Stats: testCounts{
			Users:    users,
			Messages: messages,
			Sessions: sessions,
		},
	})
}
