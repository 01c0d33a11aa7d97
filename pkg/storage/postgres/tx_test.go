package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"petregistry/pkg/domain"
	"petregistry/pkg/storage"
	"petregistry/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func countUsers(t *testing.T, db *sql.DB, email string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM users WHERE email = $1`, email)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.ErrorIs(t, inner.Migrate(ctx, nil, "migrations"), storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreUser(ctx, domain.User{Email: "commit@b.com", FirstName: "Ann"})
	require.NoError(t, err)
	require.Equal(t, 0, countUsers(t, db, "commit@b.com"), "uncommitted writes are not visible")

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countUsers(t, db, "commit@b.com"))
}

func TestPgSQL_Rollback_DiscardsWrites(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreUser(ctx, domain.User{Email: "rollback@b.com", FirstName: "Ann"})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Equal(t, 0, countUsers(t, db, "rollback@b.com"))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreUser(ctx, domain.User{Email: "ok@b.com", FirstName: "Ann"})

		return e
	})
	require.NoError(t, err)
	require.Equal(t, 1, countUsers(t, db, "ok@b.com"))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreUser(ctx, domain.User{Email: "boom@b.com", FirstName: "Ann"})

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countUsers(t, db, "boom@b.com"))
}
