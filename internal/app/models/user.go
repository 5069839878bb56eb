package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	Username  string    `json:"username" db:"username" example:"admin"`
	Password  string    `json:"-" db:"password"` // stored as entered
	Role      Role      `json:"role" db:"role" example:"admin"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
