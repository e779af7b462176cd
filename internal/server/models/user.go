package models

import "time"

// User is an account identity. The password hash is write-only from the
// API surface: the json:"-" tag keeps it out of every response payload.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
