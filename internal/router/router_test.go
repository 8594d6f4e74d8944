package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"minifeed/internal/models"
	"minifeed/internal/router"
	"minifeed/internal/storage"
	"minifeed/internal/storage/inmemory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) (*gin.Engine, storage.Storage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := inmemory.New()
	require.NoError(t, storage.Seed(context.Background(), store))
	return router.New(store), store
}

func do(t *testing.T, r *gin.Engine, method, path, body, viewer string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if viewer != "" {
		req.Header.Set("user-id", viewer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeItems(t *testing.T, w *httptest.ResponseRecorder, key string) []models.FeedItem {
	t.Helper()
	var resp map[string][]models.FeedItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp[key]
}

func TestGetPosts_FirstPage(t *testing.T) {
	r, _ := newTestAPI(t)

	w := do(t, r, http.MethodGet, "/posts", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	posts := decodeItems(t, w, "posts")
	require.Len(t, posts, 20)
	assert.Equal(t, models.FeedItem{ID: 1, Name: "Alice", Comment: "Post 1", IsBookmarked: false}, posts[0])
	assert.Equal(t, uint(20), posts[19].ID)
}

func TestGetPosts_PageParamFallsBackToOne(t *testing.T) {
	r, _ := newTestAPI(t)

	first := decodeItems(t, do(t, r, http.MethodGet, "/posts?page=1", "", ""), "posts")
	for _, query := range []string{"", "?page=abc", "?page=0", "?page=-2"} {
		w := do(t, r, http.MethodGet, "/posts"+query, "", "")
		require.Equal(t, http.StatusOK, w.Code, "query %q", query)
		assert.Equal(t, first, decodeItems(t, w, "posts"), "query %q", query)
	}

	second := decodeItems(t, do(t, r, http.MethodGet, "/posts?page=2", "", ""), "posts")
	require.Len(t, second, 20)
	assert.Equal(t, uint(21), second[0].ID)
}

func TestGetPosts_ViewerHeaderDrivesBookmarkFlag(t *testing.T) {
	r, store := newTestAPI(t)
	require.NoError(t, store.AddBookmark(context.Background(), 2, 5))

	// viewer 2 sees their bookmark
	posts := decodeItems(t, do(t, r, http.MethodGet, "/posts", "", "2"), "posts")
	require.Len(t, posts, 20)
	for _, item := range posts {
		assert.Equal(t, item.ID == 5, item.IsBookmarked, "post %d", item.ID)
	}

	// no header, garbage header: no bookmark context
	for _, viewer := range []string{"", "not-a-number"} {
		posts := decodeItems(t, do(t, r, http.MethodGet, "/posts", "", viewer), "posts")
		for _, item := range posts {
			assert.False(t, item.IsBookmarked, "viewer %q post %d", viewer, item.ID)
		}
	}
}

func TestGetPost_DetailAndNotFound(t *testing.T) {
	r, store := newTestAPI(t)
	require.NoError(t, store.AddBookmark(context.Background(), 2, 5))

	w := do(t, r, http.MethodGet, "/posts/5", "", "2")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]models.FeedItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.FeedItem{ID: 5, Name: "Alice", Comment: "Post 5", IsBookmarked: true}, resp["post"])

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/posts/4242", "", "2").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/posts/abc", "", "").Code)
}

func TestBookmarks_AddListRemove(t *testing.T) {
	r, _ := newTestAPI(t)

	w := do(t, r, http.MethodPost, "/bookmarks", `{"userId":2,"postId":5}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	// duplicate pair is a client error, not an upsert
	w = do(t, r, http.MethodPost, "/bookmarks", `{"userId":2,"postId":5}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// unresolvable post reference
	w = do(t, r, http.MethodPost, "/bookmarks", `{"userId":2,"postId":9999}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	bookmarks := decodeItems(t, do(t, r, http.MethodGet, "/bookmarks/2", "", ""), "bookmarks")
	require.Len(t, bookmarks, 1)
	assert.True(t, bookmarks[0].IsBookmarked)
	assert.Equal(t, uint(5), bookmarks[0].ID)

	w = do(t, r, http.MethodDelete, "/bookmarks", `{"userId":2,"postId":5}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	// idempotent
	w = do(t, r, http.MethodDelete, "/bookmarks", `{"userId":2,"postId":5}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, decodeItems(t, do(t, r, http.MethodGet, "/bookmarks/2", "", ""), "bookmarks"))
}

func TestBookmarks_MalformedBody(t *testing.T) {
	r, _ := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/bookmarks", `{"userId":2}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, "/bookmarks", `not json`, "").Code)
}

func TestProfileEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)

	w := do(t, r, http.MethodGet, "/profile/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.User{ID: 1, Name: "Alice"}, resp["profile"])

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/profile/42", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/profile/abc", "", "").Code)
}

func TestUserPostsEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)

	w := do(t, r, http.MethodGet, "/posts/user/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string][]models.UserPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp["posts"], 100)
	assert.Equal(t, models.UserPost{ID: 1, Comment: "Post 1"}, resp["posts"][0])

	w = do(t, r, http.MethodGet, "/posts/user/2", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp["posts"])
}

func TestDeletePost_Endpoint(t *testing.T) {
	r, store := newTestAPI(t)
	require.NoError(t, store.AddBookmark(context.Background(), 2, 5))

	require.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/posts/5", "", "").Code)

	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/posts/5", "", "2").Code)
	assert.Empty(t, decodeItems(t, do(t, r, http.MethodGet, "/bookmarks/2", "", ""), "bookmarks"))

	// deleting again still succeeds
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/posts/5", "", "").Code)
}
