package serrors_test

import (
	"errors"
	"petregistry/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrValidation,
		serrors.ErrConflict,
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrStorage,
		serrors.ErrBadRequest,
		serrors.ErrTimeout,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "pet type %s not found", "dog")
	require.Equal(t, "pet type dog not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrStorage, base, "I could not save a new pet.")
	require.Equal(t, "I could not save a new pet.: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrConflict)
	require.Equal(t, "CONFLICT", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrStorage, base, "reading")

	require.ErrorIs(t, e, serrors.ErrStorage)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNotFound, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
	require.Nil(t, e.Data())

	v := serrors.WithData(serrors.ErrValidation, []string{"a", "b"}, "Validation failed.")
	require.Equal(t, []string{"a", "b"}, v.Data())
}
