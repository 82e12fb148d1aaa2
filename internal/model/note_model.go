package model

import (
	"time"
)

type Note struct {
	Id        string    `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	UserId    string    `gorm:"type:varchar(255);not null;index:idx_notes_user"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Note) TableName() string {
	return "notes"
}
