package models

import (
	"time"
)

// ShareLink grants read + import access to the owning user's whole
// collection. At most one per user; the unique index on UserID decides
// the winner when two share requests race.
type ShareLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hash      string    `gorm:"uniqueIndex;not null;size:64" json:"hash"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
