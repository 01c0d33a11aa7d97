package mongo_test

import (
	"context"
	"errors"
	"petregistry/pkg/domain"
	"petregistry/pkg/storage"
	"petregistry/pkg/storage/mongo"
	"testing"

	"github.com/stretchr/testify/require"
)

func userExists(t *testing.T, m *mongo.Mongo, email string) bool {
	t.Helper()
	u, err := m.UserByEmail(context.Background(), email)
	require.NoError(t, err)

	return u != nil
}

func TestMongo_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	m, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := m.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*mongo.Mongo)
	require.True(t, ok)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.ErrorIs(t, inner.WithTx(ctx, func(storage.AllStorage) error { return nil }), storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestMongo_CommitAndRollback_NotInTx(t *testing.T) {
	m, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, m.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, m.Rollback(), storage.ErrNotInTx)
}

func TestMongo_Commit_PersistsWrites(t *testing.T) {
	m, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := m.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreUser(ctx, domain.User{Email: "commit@b.com", FirstName: "Ann"})
	require.NoError(t, err)
	require.False(t, userExists(t, m, "commit@b.com"), "uncommitted writes are not visible")

	require.NoError(t, txStorage.Commit())
	require.True(t, userExists(t, m, "commit@b.com"))
}

func TestMongo_Rollback_DiscardsWrites(t *testing.T) {
	m, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := m.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreUser(ctx, domain.User{Email: "rollback@b.com", FirstName: "Ann"})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.False(t, userExists(t, m, "rollback@b.com"))
}

func TestMongo_WithTx_CommitAndRollback(t *testing.T) {
	m, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	boom := errors.New("boom")

	err := m.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreUser(ctx, domain.User{Email: "ok@b.com", FirstName: "Ann"})

		return e
	})
	require.NoError(t, err)
	require.True(t, userExists(t, m, "ok@b.com"))

	err = m.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreUser(ctx, domain.User{Email: "boom@b.com", FirstName: "Ann"})

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.False(t, userExists(t, m, "boom@b.com"))
}

func TestMongo_WithTx_RollbackLeavesNoPet(t *testing.T) {
	m, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	owner, err := m.StoreUser(ctx, domain.User{Email: "owner@b.com", FirstName: "Ann"})
	require.NoError(t, err)
	dog, err := m.StorePetType(ctx, domain.PetType{Name: "Dog"})
	require.NoError(t, err)

	var stored *domain.Pet
	err = m.WithTx(ctx, func(tx storage.AllStorage) error {
		p, err := tx.StorePet(ctx, domain.NewPet("Rex", *dog, owner.ID))
		if err != nil {
			return err
		}
		stored = p

		return errors.New("owner update failed")
	})
	require.Error(t, err)
	require.NotNil(t, stored)

	got, err := m.PetByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	pets, err := m.PetsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, pets)

	u, err := m.UserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, u.Pets)
	require.EqualValues(t, 1, u.Version)
}
