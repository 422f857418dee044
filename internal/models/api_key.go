package models

import (
	"time"

	"gorm.io/gorm"
)

// APIKey lets the admin script exports without a browser session.
type APIKey struct {
	gorm.Model
	Key        string     `json:"key" gorm:"uniqueIndex"`
	Name       string     `json:"name"`
	ExpiresAt  *time.Time `json:"expires_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}
