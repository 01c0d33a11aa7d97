package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// User is a registered account. Users are never updated except by appending
// to Pets, and never deleted.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID
	// Email is unique across all users.
	Email string
	// PasswordHash is the bcrypt hash of the user's password. The plaintext
	// password is never stored.
	PasswordHash string
	FirstName    string
	LastName     string
	// Pets lists the user's pets in the order they were assigned.
	Pets []PetID
	// Version is incremented on every append to Pets.
	Version int64
	// CreatedAt is the time the user registered.
	CreatedAt time.Time
}

// HasPet reports whether the given pet is referenced from the user's pet list.
func (u *User) HasPet(id PetID) bool {
	for _, p := range u.Pets {
		if p == id {
			return true
		}
	}

	return false
}
