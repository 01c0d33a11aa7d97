package domain

import (
	"time"

	"github.com/google/uuid"
)

// InitialPetHealth is the health every pet starts with.
const InitialPetHealth = 100

// PetID uniquely identifies a pet.
type PetID uuid.UUID

func (id PetID) String() string { return uuid.UUID(id).String() }

// Pet is created exactly once, by assigning it to its owner, and is never
// deleted or re-parented.
type Pet struct {
	ID     PetID
	Name   string
	Health int
	// PetTypeID references the catalog type of this pet.
	PetTypeID PetTypeID
	// PetType is the resolved catalog type. Storage backends only populate
	// PetTypeID; the registry fills this in for responses.
	PetType *PetType
	// Owners references the owning users. There is exactly one in practice.
	Owners    []UserID
	CreatedAt time.Time
}

// NewPet builds a pet of the given type owned by owner, with full health.
func NewPet(name string, petType PetType, owner UserID) Pet {
	return Pet{
		Name:      name,
		Health:    InitialPetHealth,
		PetTypeID: petType.ID,
		PetType:   &petType,
		Owners:    []UserID{owner},
	}
}
