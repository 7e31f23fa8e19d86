package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"f2computers/site/internal/store"
)

func (h HandlerSet) AdminListMessages(c *gin.Context) {
	messages := h.store.Messages()
	h.log.Debug().Int("total", len(messages)).Msg("admin requested messages")
	c.JSON(http.StatusOK, messages)
}

func (h HandlerSet) AdminListUsers(c *gin.Context) {
	users := h.store.UserSummaries()
	h.log.Debug().Int("total", len(users)).Msg("admin requested users")
	c.JSON(http.StatusOK, users)
}

func (h HandlerSet) AdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h HandlerSet) AdminUpdateMessageStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateMessageStatus(id, req.Status); err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.log.Info().Str("message_id", id).Str("status", req.Status).Msg("message status updated")

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}
