package models

import "time"

// User represents a registered account. The password hash is never serialized,
// and Avatar (raw image bytes) marshals to a base64 string on the wire.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name" gorm:"type:varchar(255);not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"` // stored lowercase
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Avatar    []byte    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
