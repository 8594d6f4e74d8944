package postgres

import (
	"context"
	"errors"
	"fmt"

	"minifeed/internal/models"
	"minifeed/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store implements storage.Storage on PostgreSQL through GORM.
type Store struct {
	db *gorm.DB
}

// New connects and provisions the schema. AutoMigrate is idempotent, so
// starting against an already-provisioned database is a no-op.
func New(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true, // duplicate key / FK violations become typed gorm errors
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Bookmark{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

const feedSelect = "posts.id, users.name, posts.comment, bookmarks.user_id IS NOT NULL AS is_bookmarked"

// feedQuery joins posts with their author and the viewer's bookmarks. The
// bookmark join is keyed to the viewer, so a nil viewer compares against
// NULL, matches nothing, and every row comes back not bookmarked.
func (s *Store) feedQuery(ctx context.Context, viewerID *uint) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("posts").
		Select(feedSelect).
		Joins("JOIN users ON posts.user_id = users.id").
		Joins("LEFT JOIN bookmarks ON posts.id = bookmarks.post_id AND bookmarks.user_id = ?", viewerID)
}

func (s *Store) FeedPage(ctx context.Context, viewerID *uint, page int) ([]models.FeedItem, error) {
	if page < 1 {
		page = 1
	}
	items := []models.FeedItem{}
	err := s.feedQuery(ctx, viewerID).
		Order("posts.id").
		Limit(storage.FeedPageSize).
		Offset((page - 1) * storage.FeedPageSize).
		Scan(&items).Error
	if err != nil {
		return nil, &storage.StorageError{Err: err}
	}
	return items, nil
}

func (s *Store) Post(ctx context.Context, postID uint, viewerID *uint) (*models.FeedItem, error) {
	var items []models.FeedItem
	err := s.feedQuery(ctx, viewerID).
		Where("posts.id = ?", postID).
		Limit(1).
		Scan(&items).Error
	if err != nil {
		return nil, &storage.StorageError{Err: err}
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (s *Store) Profile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &storage.StorageError{Err: err}
	}
	return &user, nil
}

func (s *Store) UserPosts(ctx context.Context, userID uint) ([]models.UserPost, error) {
	posts := []models.UserPost{}
	err := s.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("id, comment").
		Where("user_id = ?", userID).
		Order("id").
		Scan(&posts).Error
	if err != nil {
		return nil, &storage.StorageError{Err: err}
	}
	return posts, nil
}

func (s *Store) UserBookmarks(ctx context.Context, userID uint) ([]models.FeedItem, error) {
	items := []models.FeedItem{}
	err := s.db.WithContext(ctx).
		Table("bookmarks").
		Select(feedSelect).
		Joins("JOIN posts ON bookmarks.post_id = posts.id").
		Joins("JOIN users ON posts.user_id = users.id").
		Where("bookmarks.user_id = ?", userID).
		Order("posts.id").
		Scan(&items).Error
	if err != nil {
		return nil, &storage.StorageError{Err: err}
	}
	return items, nil
}

func (s *Store) AddBookmark(ctx context.Context, userID, postID uint) error {
	bookmark := models.Bookmark{UserID: userID, PostID: postID}
	err := s.db.WithContext(ctx).Omit("User", "Post").Create(&bookmark).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &storage.ConstraintError{Err: err}
	}
	return &storage.StorageError{Err: err}
}

func (s *Store) RemoveBookmark(ctx context.Context, userID, postID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Bookmark{}).Error
	if err != nil {
		return &storage.StorageError{Err: err}
	}
	return nil
}

func (s *Store) DeletePost(ctx context.Context, postID uint) error {
	// Dependent bookmark rows go with the post through the FK cascade, so
	// this stays a single statement.
	err := s.db.WithContext(ctx).Delete(&models.Post{}, postID).Error
	if err != nil {
		return &storage.StorageError{Err: err}
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, name string) (*models.User, error) {
	user := models.User{Name: name}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, &storage.StorageError{Err: err}
	}
	return &user, nil
}

func (s *Store) CreatePost(ctx context.Context, userID uint, comment string) (*models.Post, error) {
	post := models.Post{UserID: userID, Comment: comment}
	err := s.db.WithContext(ctx).Omit("User").Create(&post).Error
	if err == nil {
		return &post, nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, &storage.ConstraintError{Err: err}
	}
	return nil, &storage.StorageError{Err: err}
}
