package domain

import (
	"time"

	"github.com/google/uuid"
)

// PetTypeID uniquely identifies a pet type.
type PetTypeID uuid.UUID

func (id PetTypeID) String() string { return uuid.UUID(id).String() }

// PetPropertyID uniquely identifies a pet property.
type PetPropertyID uuid.UUID

func (id PetPropertyID) String() string { return uuid.UUID(id).String() }

// PetType is a catalog entry describing a kind of pet and its properties.
// Names are unique. Pet types are immutable once created.
type PetType struct {
	ID   PetTypeID
	Name string
	// Properties are kept in the order given at definition time.
	Properties []PetProperty
	CreatedAt  time.Time
}

// PropertyIDs returns the ids of the type's properties, in order.
func (t *PetType) PropertyIDs() []PetPropertyID {
	ids := make([]PetPropertyID, 0, len(t.Properties))
	for _, p := range t.Properties {
		ids = append(ids, p.ID)
	}

	return ids
}

// PetProperty is a named attribute that pet types can be composed of.
// Value and Weight are single digits; ValuePerTime is a numeric string kept
// exactly as provided. Names are unique. Pet properties are immutable.
type PetProperty struct {
	ID           PetPropertyID
	Name         string
	Value        string
	Weight       string
	ValuePerTime string
	CreatedAt    time.Time
}
