package domain

import "time"

// DefaultStatus is assigned to every freshly registered user.
const DefaultStatus = "I am new!"

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2 encoded
	Status       string
	PostIDs      []string // owned posts, in creation order
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
