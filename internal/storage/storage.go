package storage

import (
	"context"

	"minifeed/internal/models"
)

// FeedPageSize is the fixed window of the paginated feed.
const FeedPageSize = 20

// Storage defines the contract the handlers program against. Implementations
// are safe for concurrent use; write serialization is the engine's job.
//
// Reads never fail on absence: a missing record comes back as a nil pointer
// or an empty slice, and the caller decides what that means. Errors are
// reserved for the store itself misbehaving.
type Storage interface {
	// FeedPage returns one page of the feed, ordered by post id. viewerID
	// keys the bookmark annotation; nil means no bookmark context and every
	// item renders as not bookmarked. A page below 1 is treated as page 1.
	FeedPage(ctx context.Context, viewerID *uint, page int) ([]models.FeedItem, error)
	Post(ctx context.Context, postID uint, viewerID *uint) (*models.FeedItem, error)
	Profile(ctx context.Context, userID uint) (*models.User, error)
	UserPosts(ctx context.Context, userID uint) ([]models.UserPost, error)
	// UserBookmarks lists every post the user has bookmarked, feed-item
	// shaped. IsBookmarked is true on every row by construction.
	UserBookmarks(ctx context.Context, userID uint) ([]models.FeedItem, error)

	// AddBookmark inserts the pair. A duplicate pair or an unresolvable
	// user/post reference fails with *ConstraintError.
	AddBookmark(ctx context.Context, userID, postID uint) error
	// RemoveBookmark deletes the pair if present. Removing a bookmark that
	// never existed is not an error.
	RemoveBookmark(ctx context.Context, userID, postID uint) error
	// DeletePost deletes the post and, via the declared cascade, any
	// bookmarks referencing it. Deleting a missing post is not an error.
	DeletePost(ctx context.Context, postID uint) error

	CreateUser(ctx context.Context, name string) (*models.User, error)
	CreatePost(ctx context.Context, userID uint, comment string) (*models.Post, error)
}
