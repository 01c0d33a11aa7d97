package registry

import (
	"errors"
	"petregistry/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFault(t *testing.T) {
	cause := errors.New("connection reset by peer")

	t.Run("message is kept verbatim", func(t *testing.T) {
		err := fault(cause, "disk is 100% full")

		var se *serrors.Error
		require.ErrorAs(t, err, &se)
		require.ErrorIs(t, err, serrors.ErrStorage)
		require.ErrorIs(t, err, cause)
		require.Equal(t, "disk is 100% full", se.Message())
	})

	t.Run("classified errors pass through", func(t *testing.T) {
		notFound := serrors.With(serrors.ErrNotFound, "User does not exist.")

		err := fault(notFound, "I could not save a new pet.")
		require.Same(t, notFound, err)
	})
}
