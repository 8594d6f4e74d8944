package models

// FeedItem is the read model most queries return: a post joined with its
// author's name and the viewer's bookmark state. IsBookmarked is always
// relative to whoever is asking, never a property of the post itself.
type FeedItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Comment      string `json:"comment"`
	IsBookmarked bool   `json:"isBookmarked"`
}

// UserPost is the narrower projection used when listing a user's own posts.
type UserPost struct {
	ID      uint   `json:"id"`
	Comment string `json:"comment"`
}
