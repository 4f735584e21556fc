package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:11;not null" json:"phone"`
	CPF   string `gorm:"column:cpf;size:11;not null;uniqueIndex" json:"cpf"`

	Birthday Date `json:"birthday"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
