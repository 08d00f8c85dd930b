package models

import "time"

// Task is a single to-do item. UserID is denormalized alongside CategoryID so
// ownership checks never need a join.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CategoryID  uint      `json:"-" gorm:"index;not null"`
	UserID      uint      `json:"-" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
