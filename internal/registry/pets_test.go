package registry_test

import (
	"context"
	"petregistry/internal/auth"
	"petregistry/internal/validation"
	"petregistry/pkg/domain"
	"petregistry/pkg/serrors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAssignPetToUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "owner@b.com")
	dog := f.petType(t, "Dog", f.property(t, "speed"))
	ac := f.authContext(t, owner)

	pet, err := f.svc.AssignPetToUser(ctx, ac, validation.PetInput{Name: "Rex", PetTypeID: dog.ID.String()})
	require.NoError(t, err)
	require.Equal(t, "Rex", pet.Name)
	require.Equal(t, domain.InitialPetHealth, pet.Health)
	require.Equal(t, dog.ID, pet.PetTypeID)
	require.NotNil(t, pet.PetType)
	require.Equal(t, "Dog", pet.PetType.Name)
	require.Equal(t, []domain.UserID{owner.ID}, pet.Owners)

	u, err := f.store.UserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.PetID{pet.ID}, u.Pets)
	require.EqualValues(t, 2, u.Version)

	pets, err := f.store.PetsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, pets, 1)
}

func TestAssignPetToUser_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "owner@b.com")
	dog := f.petType(t, "Dog", f.property(t, "speed"))
	ac := f.authContext(t, owner)

	ghost, err := f.gw.IssueToken(domain.UserID(uuid.New()), "ghost@b.com")
	require.NoError(t, err)
	ghostCtx := f.gw.Authenticate(ctx, ghost.Value)

	tests := []struct {
		name    string
		ac      auth.Context
		in      validation.PetInput
		kind    serrors.Kind
		message string
	}{
		{
			name:    "validation runs before authentication",
			ac:      auth.Context{},
			in:      validation.PetInput{Name: "Re"},
			kind:    serrors.ErrValidation,
			message: validation.FailedMessage,
		},
		{
			name:    "unauthenticated",
			ac:      auth.Context{},
			in:      validation.PetInput{Name: "Rex", PetTypeID: dog.ID.String()},
			kind:    serrors.ErrUnauthorized,
			message: auth.NotAuthenticatedMessage,
		},
		{
			name:    "unknown pet type",
			ac:      ac,
			in:      validation.PetInput{Name: "Rex", PetTypeID: uuid.NewString()},
			kind:    serrors.ErrNotFound,
			message: "This pet type does not exist.",
		},
		{
			name:    "malformed pet type id",
			ac:      ac,
			in:      validation.PetInput{Name: "Rex", PetTypeID: "dog"},
			kind:    serrors.ErrNotFound,
			message: "This pet type does not exist.",
		},
		{
			name:    "token for a user that does not exist",
			ac:      ghostCtx,
			in:      validation.PetInput{Name: "Rex", PetTypeID: dog.ID.String()},
			kind:    serrors.ErrNotFound,
			message: "User does not exist.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.AssignPetToUser(ctx, tt.ac, tt.in)
			requireKind(t, err, tt.kind, tt.message)
		})
	}

	pets, err := f.store.PetsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, pets)

	u, err := f.store.UserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, u.Pets)
	require.EqualValues(t, 1, u.Version)
}

func TestAssignPetToUser_Concurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "busy@b.com")
	dog := f.petType(t, "Dog", f.property(t, "speed"))
	ac := f.authContext(t, owner)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AssignPetToUser(ctx, ac, validation.PetInput{Name: "Rex", PetTypeID: dog.ID.String()})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	u, err := f.store.UserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, u.Pets, workers)
	require.EqualValues(t, workers+1, u.Version)
}
