package router

import (
	"minifeed/internal/handlers"
	"minifeed/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New wires the route table onto a fresh engine. The store is injected
// here and nowhere else; handlers hold no other state.
func New(store storage.Storage) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	postHandler := handlers.NewPostHandler(store)
	bookmarkHandler := handlers.NewBookmarkHandler(store)
	userHandler := handlers.NewUserHandler(store)

	r.GET("/posts", postHandler.Feed)                    // paginated feed
	r.GET("/posts/user/:userId", postHandler.ListByUser) // posts authored by a user
	r.GET("/posts/:postId", postHandler.Detail)
	r.DELETE("/posts/:postId", postHandler.Delete)
	r.GET("/profile/:userId", userHandler.Profile)
	r.GET("/bookmarks/:userId", bookmarkHandler.ListByUser) // a user's bookmarked posts
	r.POST("/bookmarks", bookmarkHandler.Add)
	r.DELETE("/bookmarks", bookmarkHandler.Remove)

	return r
}
