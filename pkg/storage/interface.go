// Package storage defines the persistence interfaces the registry relies on.
// It abstracts entity access and transaction management so that different
// backends (PostgreSQL, MongoDB, in-memory) can provide concrete
// implementations.
//
// Lookups return (nil, nil) when the entity does not exist. Any non-nil error
// is a storage fault and must not be read as "not found".
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"petregistry/pkg/domain"
)

// UserStorage persists users and their pet lists.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row (with generated
	// ID, Version and CreatedAt). ErrDuplicate is returned if the email is taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// AppendUserPet atomically appends petID to the user's pet list and
	// increments the user's version, returning the updated user. The append is
	// a merge performed by the backend, so concurrent appends for the same user
	// are never lost. Returns nil when the user does not exist.
	AppendUserPet(ctx context.Context, userID domain.UserID, petID domain.PetID) (*domain.User, error)
}

// PetTypeStorage persists pet types.
type PetTypeStorage interface {
	// StorePetType inserts a new pet type referencing the given properties, in
	// order. ErrDuplicate is returned if the name is taken.
	StorePetType(ctx context.Context, petType domain.PetType) (*domain.PetType, error)
	// PetTypeByID fetches a pet type with its properties resolved. Returns nil
	// when not found.
	PetTypeByID(ctx context.Context, ID domain.PetTypeID) (*domain.PetType, error)
	// PetTypeByName fetches a pet type by its unique name. Returns nil when not found.
	PetTypeByName(ctx context.Context, name string) (*domain.PetType, error)
}

// PetPropertyStorage persists pet properties.
type PetPropertyStorage interface {
	// StorePetProperty inserts a new pet property. ErrDuplicate is returned if
	// the name is taken.
	StorePetProperty(ctx context.Context, property domain.PetProperty) (*domain.PetProperty, error)
	// PetPropertyByID fetches a pet property by ID. Returns nil when not found.
	PetPropertyByID(ctx context.Context, ID domain.PetPropertyID) (*domain.PetProperty, error)
	// PetPropertyByName fetches a pet property by its unique name. Returns nil
	// when not found.
	PetPropertyByName(ctx context.Context, name string) (*domain.PetProperty, error)
}

// PetStorage persists pets.
type PetStorage interface {
	// StorePet inserts a new pet with its owners and returns the stored row.
	StorePet(ctx context.Context, pet domain.Pet) (*domain.Pet, error)
	// PetByID fetches a pet by ID. Returns nil when not found.
	PetByID(ctx context.Context, ID domain.PetID) (*domain.Pet, error)
	// PetsByOwner returns every pet listing userID among its owners, oldest first.
	PetsByOwner(ctx context.Context, userID domain.UserID) ([]domain.Pet, error)
}

// AllStorage is a composite interface that includes all entity-specific
// storage capabilities required by the application.
type AllStorage interface {
	UserStorage
	PetTypeStorage
	PetPropertyStorage
	PetStorage
}

// TxStorage describes a storage handle that operates within a transaction. It
// exposes the same capabilities as AllStorage, and additionally allows
// committing or rolling back the ongoing transaction. Implementations become
// unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with a transactional handle, and
	// then commits on success or rolls back if cb returns an error. Either all
	// writes made through the handle become visible or none do.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
