package postgres_test

import (
	"context"
	"petregistry/pkg/domain"
	"petregistry/pkg/storage"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreUser(ctx, domain.User{
		Email:        "ann@b.com",
		PasswordHash: "$2a$12$hash",
		FirstName:    "Ann",
		LastName:     "Lee",
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.UserID{}, stored.ID)
	require.EqualValues(t, 1, stored.Version)
	require.Empty(t, stored.Pets)
	require.False(t, stored.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		_, err := pgSQL.StoreUser(ctx, domain.User{Email: "ann@b.com", FirstName: "Dup"})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("lookups", func(t *testing.T) {
		t.Parallel()

		byID, err := pgSQL.UserByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, "ann@b.com", byID.Email)
		require.Equal(t, "$2a$12$hash", byID.PasswordHash)

		byEmail, err := pgSQL.UserByEmail(ctx, "ann@b.com")
		require.NoError(t, err)
		require.Equal(t, stored.ID, byEmail.ID)

		missing, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)

		missing, err = pgSQL.UserByEmail(ctx, "nobody@b.com")
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("append to missing user", func(t *testing.T) {
		t.Parallel()

		u, err := pgSQL.AppendUserPet(ctx, domain.UserID(uuid.New()), domain.PetID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, u)
	})
}

func TestPgSQL_StoreUser_ConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pgSQL.StoreUser(ctx, domain.User{Email: "race@b.com", FirstName: "Ann"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		require.ErrorIs(t, err, storage.ErrDuplicate)
	}
	require.Equal(t, 1, succeeded)
}

func TestPgSQL_Catalog(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	speed, err := pgSQL.StorePetProperty(ctx, domain.PetProperty{Name: "speed", Value: "5", Weight: "2", ValuePerTime: "1.5"})
	require.NoError(t, err)
	require.Equal(t, "1.5", speed.ValuePerTime)

	hunger, err := pgSQL.StorePetProperty(ctx, domain.PetProperty{Name: "hunger", Value: "3", Weight: "1", ValuePerTime: "10"})
	require.NoError(t, err)

	_, err = pgSQL.StorePetProperty(ctx, domain.PetProperty{Name: "speed", Value: "1", Weight: "1", ValuePerTime: "1"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = pgSQL.StorePetProperty(ctx, domain.PetProperty{Name: "broken", Value: "10", Weight: "1", ValuePerTime: "1"})
	require.Error(t, err, "value must be a single digit")

	byName, err := pgSQL.PetPropertyByName(ctx, "hunger")
	require.NoError(t, err)
	require.Equal(t, hunger.ID, byName.ID)

	missingProp, err := pgSQL.PetPropertyByID(ctx, domain.PetPropertyID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missingProp)

	dog, err := pgSQL.StorePetType(ctx, domain.PetType{Name: "Dog", Properties: []domain.PetProperty{*hunger, *speed}})
	require.NoError(t, err)
	require.Equal(t, []domain.PetPropertyID{hunger.ID, speed.ID}, dog.PropertyIDs())

	got, err := pgSQL.PetTypeByID(ctx, dog.ID)
	require.NoError(t, err)
	require.Equal(t, "Dog", got.Name)
	require.Equal(t, []domain.PetPropertyID{hunger.ID, speed.ID}, got.PropertyIDs())
	require.Equal(t, "10", got.Properties[0].ValuePerTime)

	byTypeName, err := pgSQL.PetTypeByName(ctx, "Dog")
	require.NoError(t, err)
	require.Equal(t, dog.ID, byTypeName.ID)

	_, err = pgSQL.StorePetType(ctx, domain.PetType{Name: "Dog", Properties: []domain.PetProperty{*speed}})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	missingType, err := pgSQL.PetTypeByName(ctx, "Cat")
	require.NoError(t, err)
	require.Nil(t, missingType)
}

func TestPgSQL_Pets(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner, err := pgSQL.StoreUser(ctx, domain.User{Email: "owner@b.com", FirstName: "Ann"})
	require.NoError(t, err)
	prop, err := pgSQL.StorePetProperty(ctx, domain.PetProperty{Name: "speed", Value: "5", Weight: "2", ValuePerTime: "1"})
	require.NoError(t, err)
	dog, err := pgSQL.StorePetType(ctx, domain.PetType{Name: "Dog", Properties: []domain.PetProperty{*prop}})
	require.NoError(t, err)

	var rex *domain.Pet
	err = pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
		p, err := tx.StorePet(ctx, domain.NewPet("Rex", *dog, owner.ID))
		if err != nil {
			return err
		}
		rex = p
		_, err = tx.AppendUserPet(ctx, owner.ID, p.ID)

		return err
	})
	require.NoError(t, err)
	require.Equal(t, domain.InitialPetHealth, rex.Health)
	require.Equal(t, dog.ID, rex.PetTypeID)
	require.Equal(t, []domain.UserID{owner.ID}, rex.Owners)

	got, err := pgSQL.PetByID(ctx, rex.ID)
	require.NoError(t, err)
	require.Equal(t, "Rex", got.Name)
	require.Equal(t, []domain.UserID{owner.ID}, got.Owners)

	missing, err := pgSQL.PetByID(ctx, domain.PetID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)

	pets, err := pgSQL.PetsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	require.Equal(t, rex.ID, pets[0].ID)

	u, err := pgSQL.UserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.PetID{rex.ID}, u.Pets)
	require.EqualValues(t, 2, u.Version)
}

func TestPgSQL_AppendUserPet_Concurrent(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner, err := pgSQL.StoreUser(ctx, domain.User{Email: "many@b.com", FirstName: "Ann"})
	require.NoError(t, err)
	prop, err := pgSQL.StorePetProperty(ctx, domain.PetProperty{Name: "speed", Value: "5", Weight: "2", ValuePerTime: "1"})
	require.NoError(t, err)
	dog, err := pgSQL.StorePetType(ctx, domain.PetType{Name: "Dog", Properties: []domain.PetProperty{*prop}})
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- pgSQL.WithTx(ctx, func(tx storage.AllStorage) error {
				p, err := tx.StorePet(ctx, domain.NewPet("Rex", *dog, owner.ID))
				if err != nil {
					return err
				}
				_, err = tx.AppendUserPet(ctx, owner.ID, p.ID)

				return err
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	u, err := pgSQL.UserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, u.Pets, workers)
	require.EqualValues(t, workers+1, u.Version)

	pets, err := pgSQL.PetsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, pets, workers)
}
