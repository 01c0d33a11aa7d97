// Package registry implements the pet registry operations: user
// registration and login, the pet type and pet property catalog, and the
// assignment of new pets to their owners.
//
// Every operation validates its input before touching storage and returns
// either a result or a *serrors.Error of one of the closed kinds.
//
//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
package registry

import (
	"context"
	"petregistry/internal/auth"
	"petregistry/internal/validation"
	"petregistry/pkg/domain"
	"time"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	UserID    domain.UserID
	ExpiresAt time.Time
}

// Registry is the set of operations exposed by the service.
type Registry interface {
	// RegisterUser creates a user with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, in validation.UserInput) (*domain.User, error)
	// Login checks credentials and issues a bearer token.
	Login(ctx context.Context, in validation.LoginInput) (*LoginResult, error)
	// DefinePetType creates a pet type from existing pet properties.
	DefinePetType(ctx context.Context, in validation.PetTypeInput) (*domain.PetType, error)
	// DefinePetProperty creates a pet property.
	DefinePetProperty(ctx context.Context, in validation.PetPropertyInput) (*domain.PetProperty, error)
	// AssignPetToUser creates a pet owned by the authenticated caller.
	AssignPetToUser(ctx context.Context, ac auth.Context, in validation.PetInput) (*domain.Pet, error)
}
