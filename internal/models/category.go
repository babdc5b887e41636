package models

// Category is a post category. Labels are intended to be unique but the
// store does not enforce it; duplicates are accepted.
type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"not null" json:"label"`
}
