package baker_test

import (
	"testing"
	"time"

	"localcrust/internal/core/domain/model/baker"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBaker(t *testing.T) *baker.Baker {
	t.Helper()
	b, err := baker.NewBaker(
		kernel.NewUUID(),
		"maria@localcrust.in",
		"$2a$10$abcdefghijklmnopqrstuv",
		"Maria D'Souza",
		"Maria's Oven",
		"Sourdough and croissants, baked daily.",
		"+919812345678",
		"Bengaluru",
		time.Now(),
	)
	require.NoError(t, err)
	return b
}

func TestNewBaker(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		b := testBaker(t)
		assert.Equal(t, baker.VerificationPending, b.Verification())
		assert.False(t, b.IsVerified())
	})

	t.Run("rejects missing shop name", func(t *testing.T) {
		_, err := baker.NewBaker(
			kernel.NewUUID(), "maria@localcrust.in", "hash", "Maria", "",
			"", "+919812345678", "Bengaluru", time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var b baker.Baker
		require.ErrorIs(t, b.Validate(), baker.ErrBakerIsNotConstructed)
	})
}

func TestBaker_Verification(t *testing.T) {
	t.Run("verify approves a pending baker", func(t *testing.T) {
		b := testBaker(t)
		require.NoError(t, b.Verify())
		assert.True(t, b.IsVerified())
	})

	t.Run("reject declines a pending baker", func(t *testing.T) {
		b := testBaker(t)
		require.NoError(t, b.Reject())
		assert.Equal(t, baker.VerificationRejected, b.Verification())
	})

	t.Run("verification is decided once", func(t *testing.T) {
		b := testBaker(t)
		require.NoError(t, b.Verify())

		require.ErrorIs(t, b.Verify(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, b.Reject(), errs.ErrValueIsInvalid)
		assert.True(t, b.IsVerified())
	})
}

func TestBaker_UpdateStorefront(t *testing.T) {
	b := testBaker(t)

	require.NoError(t, b.UpdateStorefront("Maria's Artisan Oven", "", "+919812340000", "Mysuru"))

	assert.Equal(t, "Maria's Artisan Oven", b.ShopName())
	assert.Empty(t, b.Description())
	assert.Equal(t, "Mysuru", b.City())

	require.ErrorIs(t, b.UpdateStorefront("", "d", "p", "c"), errs.ErrValueIsRequired)
}

func TestRestoreBaker(t *testing.T) {
	restored, err := baker.RestoreBaker(
		kernel.NewUUID(),
		"maria@localcrust.in",
		"hash",
		"Maria D'Souza",
		"Maria's Oven",
		"",
		"+919812345678",
		"Bengaluru",
		baker.VerificationVerified,
		time.Now().Add(-48*time.Hour),
	)
	require.NoError(t, err)
	assert.True(t, restored.IsVerified())

	_, err = baker.RestoreBaker(
		kernel.NewUUID(), "e", "h", "o", "s", "", "p", "c",
		baker.VerificationStatus(9), time.Now(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVerificationStatusFromString(t *testing.T) {
	for _, s := range []baker.VerificationStatus{
		baker.VerificationPending,
		baker.VerificationVerified,
		baker.VerificationRejected,
	} {
		parsed, err := baker.VerificationStatusFromString(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := baker.VerificationStatusFromString("approved")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
