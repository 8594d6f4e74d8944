package handlers

import (
	"net/http"

	"minifeed/internal/storage"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	store storage.Storage
}

func NewPostHandler(store storage.Storage) *PostHandler {
	return &PostHandler{store: store}
}

// Feed - GET /posts?page=N
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.store.FeedPage(c.Request.Context(), viewerID(c), pageParam(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Detail - GET /posts/:postId
func (h *PostHandler) Detail(c *gin.Context) {
	postID, ok := uintParam(c, "postId")
	if !ok {
		return
	}
	post, err := h.store.Post(c.Request.Context(), postID, viewerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// ListByUser - GET /posts/user/:userId
func (h *PostHandler) ListByUser(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	posts, err := h.store.UserPosts(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Delete - DELETE /posts/:postId. Idempotent: deleting a post that is
// already gone still reports success.
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := uintParam(c, "postId")
	if !ok {
		return
	}
	if err := h.store.DeletePost(c.Request.Context(), postID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
