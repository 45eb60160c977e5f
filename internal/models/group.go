package models

// Group is a named category posts may belong to. The slug is the public
// identifier used in URLs.
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:20"`
	Description string `json:"description"`
}

// CreateGroupRequest defines the request body for creating a group.
// Slug is optional; when omitted it is derived from the title.
type CreateGroupRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,min=1,max=20"`
	Description string `json:"description" validate:"required"`
}
