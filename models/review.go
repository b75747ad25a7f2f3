package models

import "time"

// Review is one user's rating of one watch. The composite unique index is
// what rejects duplicate submissions.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	WatchID   uint      `gorm:"uniqueIndex:idx_reviews_watch_user;not null" json:"watch_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_reviews_watch_user;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Rating    int       `gorm:"not null" json:"rating"`
	Title     string    `json:"title"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
