package guard_test

import (
	"errors"
	"testing"

	"localcrust/internal/pkg/guard"

	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns custom error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")
		require.ErrorIs(t, g.Validate(expected), expected)
	})

	t.Run("zero value falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard
		require.ErrorIs(t, g.Validate(nil), guard.ErrDefaultConstructorGuard)
	})
}
