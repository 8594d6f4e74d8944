package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"minifeed/internal/storage"

	"github.com/gin-gonic/gin"
)

// viewerID extracts the requesting identity from the user-id header. The
// value is opaque and never validated; anything absent or unparseable just
// means no bookmark context.
func viewerID(c *gin.Context) *uint {
	id, err := strconv.ParseUint(c.GetHeader("user-id"), 10, 32)
	if err != nil {
		return nil
	}
	v := uint(id)
	return &v
}

// pageParam parses ?page. Absent, junk and non-positive values all fall
// back to page one instead of failing the request.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// fail maps storage error kinds onto status codes: constraint violations
// are the client's fault, everything else is ours.
func fail(c *gin.Context, err error) {
	var cerr *storage.ConstraintError
	if errors.As(err, &cerr) {
		c.JSON(http.StatusConflict, gin.H{"error": cerr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
