package models

// Bookmark marks that a user saved a post. One row per (user, post) pair,
// enforced by the composite primary key; a duplicate insert fails rather
// than upserting. Deleting a post removes its bookmarks via the cascade.
type Bookmark struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Post   Post `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
