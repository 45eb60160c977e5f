package models

import "time"

// Post is a user-authored entry, optionally with an image and group.
// Deleting the author removes the post; deleting the group only clears
// the group reference.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	ImageURL  string    `json:"image_url,omitempty"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Author    *User     `json:"author,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	GroupID   *uint     `json:"group_id,omitempty" gorm:"index"`
	Group     *Group    `json:"group,omitempty" gorm:"constraint:OnDelete:SET NULL"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	ImageURL string `json:"image_url,omitempty" validate:"omitempty,url"`
	GroupID  *uint  `json:"group_id,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post.
// ClearGroup removes the post from its group without assigning a new one.
type UpdatePostRequest struct {
	Text       string `json:"text,omitempty" validate:"omitempty,min=1"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
	GroupID    *uint  `json:"group_id,omitempty"`
	ClearGroup bool   `json:"clear_group,omitempty"`
}
