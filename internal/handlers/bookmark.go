package handlers

import (
	"net/http"

	"minifeed/internal/storage"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct {
	store storage.Storage
}

func NewBookmarkHandler(store storage.Storage) *BookmarkHandler {
	return &BookmarkHandler{store: store}
}

type bookmarkRequest struct {
	UserID uint `json:"userId" binding:"required"`
	PostID uint `json:"postId" binding:"required"`
}

// Add - POST /bookmarks
func (h *BookmarkHandler) Add(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.AddBookmark(c.Request.Context(), req.UserID, req.PostID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark added"})
}

// Remove - DELETE /bookmarks. Removing a bookmark that was never set is
// fine; the end state is the same.
func (h *BookmarkHandler) Remove(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.RemoveBookmark(c.Request.Context(), req.UserID, req.PostID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}

// ListByUser - GET /bookmarks/:userId
func (h *BookmarkHandler) ListByUser(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	bookmarks, err := h.store.UserBookmarks(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}
