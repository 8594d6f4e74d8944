package storage

import (
	"context"
	"fmt"
)

const seedPostCount = 100

// Seed provisions the demo dataset on an empty store: two users and a batch
// of posts authored by the first. If users already exist the store is left
// untouched, so calling it on every startup is safe.
func Seed(ctx context.Context, s Storage) error {
	existing, err := s.Profile(ctx, 1)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	alice, err := s.CreateUser(ctx, "Alice")
	if err != nil {
		return err
	}
	if _, err := s.CreateUser(ctx, "Bob"); err != nil {
		return err
	}
	for i := 1; i <= seedPostCount; i++ {
		if _, err := s.CreatePost(ctx, alice.ID, fmt.Sprintf("Post %d", i)); err != nil {
			return err
		}
	}
	return nil
}
