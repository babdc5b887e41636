package models

import "time"

type Post struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null" json:"user_id"`
	CategoryID      uint      `gorm:"not null" json:"category_id"`
	Title           string    `gorm:"not null" json:"title"`
	PublicationDate time.Time `json:"publication_date"`
	ImageURL        string    `json:"image_url"`
	Content         string    `gorm:"not null" json:"content"`
	Approved        bool      `json:"approved"`
}
