// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered author or reader.
//
// Deleting a user is a soft delete: Active flips to false and the row stays.
// Active is intentionally NOT a gorm.DeletedAt column — generic lookups keep
// returning inactive users; only credential and profile-picture paths filter
// on it.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	FirstName       string    `gorm:"not null" json:"first_name"`
	LastName        string    `gorm:"not null" json:"last_name"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Bio             string    `json:"bio"`
	Username        string    `gorm:"not null" json:"username"`
	Password        string    `gorm:"not null" json:"-"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedOn       time.Time `json:"created_on"`
	Active          bool      `gorm:"not null;default:true" json:"active"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse preserves the original credential contract: valid plus the
// user id as the token, or a null token on failure.
type LoginResponse struct {
	Valid bool  `json:"valid"`
	Token *uint `json:"token"`
}
