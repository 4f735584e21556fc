package models

import "time"

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
