package handlers

import (
	"net/http"

	"minifeed/internal/storage"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store storage.Storage
}

func NewUserHandler(store storage.Storage) *UserHandler {
	return &UserHandler{store: store}
}

// Profile - GET /profile/:userId
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	profile, err := h.store.Profile(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
