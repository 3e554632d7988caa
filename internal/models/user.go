package models

// User represents a registered account holder.
type User struct {
	Base
	Email          string `json:"email"`
	Username       string `json:"username"`
	FullName       string `json:"full_name,omitempty"`
	HashedPassword string `json:"hashed_password"`
	IsActive       bool   `json:"is_active"`
}
