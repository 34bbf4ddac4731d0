package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`           // Nullable for anonymous actions
	Action    string    `gorm:"size:50;not null" json:"action"` // e.g. "REGISTER", "SHARE", "IMPORT"
	EntityID  string    `gorm:"size:80" json:"entity_id"`       // Affected object (share hash, content id, username)
	Details   string    `gorm:"type:text" json:"details"`       // JSON description
	IPAddress string    `gorm:"size:45" json:"ip_address"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}
