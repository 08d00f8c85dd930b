package models

import "time"

// Category groups tasks for a single owning user.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	UserID    uint      `json:"-" gorm:"index;not null"`
	Tasks     []Task    `json:"tasks" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
