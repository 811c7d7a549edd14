package kernel_test

import (
	"testing"

	"localcrust/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_Constructors(t *testing.T) {
	t.Run("NewUUID produces valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()
		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("round trip through string", func(t *testing.T) {
		id := kernel.NewUUID()
		parsed, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("round trip through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()
		restored, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(restored))
	})

	t.Run("invalid string rejected", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}
