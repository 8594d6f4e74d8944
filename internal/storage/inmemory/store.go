package inmemory

import (
	"context"
	"errors"
	"sync"

	"minifeed/internal/models"
	"minifeed/internal/storage"
)

type pair struct {
	userID uint
	postID uint
}

// Store implements storage.Storage in process memory. It mirrors the SQL
// store's semantics, cascade included, so tests and local runs need no
// database engine.
type Store struct {
	mu         sync.RWMutex
	users      map[uint]models.User
	posts      map[uint]models.Post
	postOrder  []uint // post ids in insertion order, the feed's natural order
	bookmarks  map[pair]struct{}
	nextUserID uint
	nextPostID uint
}

func New() *Store {
	return &Store{
		users:     make(map[uint]models.User),
		posts:     make(map[uint]models.Post),
		bookmarks: make(map[pair]struct{}),
	}
}

func (s *Store) isBookmarked(viewerID *uint, postID uint) bool {
	if viewerID == nil {
		return false
	}
	_, ok := s.bookmarks[pair{userID: *viewerID, postID: postID}]
	return ok
}

func (s *Store) feedItem(post models.Post, viewerID *uint) models.FeedItem {
	return models.FeedItem{
		ID:           post.ID,
		Name:         s.users[post.UserID].Name,
		Comment:      post.Comment,
		IsBookmarked: s.isBookmarked(viewerID, post.ID),
	}
}

func (s *Store) FeedPage(ctx context.Context, viewerID *uint, page int) ([]models.FeedItem, error) {
	if page < 1 {
		page = 1
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	offset := (page - 1) * storage.FeedPageSize
	if offset > len(s.postOrder) {
		offset = len(s.postOrder)
	}
	end := offset + storage.FeedPageSize
	if end > len(s.postOrder) {
		end = len(s.postOrder)
	}

	items := []models.FeedItem{}
	for _, id := range s.postOrder[offset:end] {
		items = append(items, s.feedItem(s.posts[id], viewerID))
	}
	return items, nil
}

func (s *Store) Post(ctx context.Context, postID uint, viewerID *uint) (*models.FeedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postID]
	if !ok {
		return nil, nil
	}
	item := s.feedItem(post, viewerID)
	return &item, nil
}

func (s *Store) Profile(ctx context.Context, userID uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *Store) UserPosts(ctx context.Context, userID uint) ([]models.UserPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := []models.UserPost{}
	for _, id := range s.postOrder {
		if post := s.posts[id]; post.UserID == userID {
			posts = append(posts, models.UserPost{ID: post.ID, Comment: post.Comment})
		}
	}
	return posts, nil
}

func (s *Store) UserBookmarks(ctx context.Context, userID uint) ([]models.FeedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.FeedItem{}
	for _, id := range s.postOrder {
		if _, ok := s.bookmarks[pair{userID: userID, postID: id}]; ok {
			items = append(items, s.feedItem(s.posts[id], &userID))
		}
	}
	return items, nil
}

func (s *Store) AddBookmark(ctx context.Context, userID, postID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return &storage.ConstraintError{Err: errors.New("bookmark references unknown user")}
	}
	if _, ok := s.posts[postID]; !ok {
		return &storage.ConstraintError{Err: errors.New("bookmark references unknown post")}
	}
	key := pair{userID: userID, postID: postID}
	if _, ok := s.bookmarks[key]; ok {
		return &storage.ConstraintError{Err: errors.New("bookmark already exists")}
	}
	s.bookmarks[key] = struct{}{}
	return nil
}

func (s *Store) RemoveBookmark(ctx context.Context, userID, postID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bookmarks, pair{userID: userID, postID: postID})
	return nil
}

func (s *Store) DeletePost(ctx context.Context, postID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return nil
	}
	delete(s.posts, postID)
	for i, id := range s.postOrder {
		if id == postID {
			s.postOrder = append(s.postOrder[:i], s.postOrder[i+1:]...)
			break
		}
	}
	// cascade, same as the SQL schema's FK
	for key := range s.bookmarks {
		if key.postID == postID {
			delete(s.bookmarks, key)
		}
	}
	return nil
}

func (s *Store) CreateUser(ctx context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUserID++
	user := models.User{ID: s.nextUserID, Name: name}
	s.users[user.ID] = user
	return &user, nil
}

func (s *Store) CreatePost(ctx context.Context, userID uint, comment string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, &storage.ConstraintError{Err: errors.New("post references unknown user")}
	}
	s.nextPostID++
	post := models.Post{ID: s.nextPostID, UserID: userID, Comment: comment}
	s.posts[post.ID] = post
	s.postOrder = append(s.postOrder, post.ID)
	return &post, nil
}
