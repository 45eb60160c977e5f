package models

import "time"

// Follow is a directed subscription: UserID follows AuthorID. The
// composite unique index rules out duplicate rows even if handler checks
// race.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_author_follow"`
	AuthorID  uint      `json:"author_id" gorm:"index;uniqueIndex:idx_user_author_follow"`
	CreatedAt time.Time `json:"created_at"`
}
