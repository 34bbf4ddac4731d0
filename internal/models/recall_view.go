package models

import (
	"time"
)

// RecallView records an anonymous visit to a public share page.
type RecallView struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ShareLinkID uint      `gorm:"not null;index" json:"share_link_id"`
	Timestamp   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
	Referrer    string    `gorm:"size:255;default:'Direct'" json:"referrer"`
	Browser     string    `gorm:"size:50" json:"browser"`
	OS          string    `gorm:"size:100" json:"os"`
	DeviceType  string    `gorm:"size:50" json:"device_type"`
	UserAgent   string    `gorm:"size:255" json:"user_agent"` // Raw User-Agent
}
