package review_test

import (
	"testing"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/review"
	"localcrust/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReview(t *testing.T) *review.Review {
	t.Helper()
	rating, err := review.NewRating(4)
	require.NoError(t, err)
	r, err := review.NewReview(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		rating,
		"Crust was perfect.",
		time.Now(),
	)
	require.NoError(t, err)
	return r
}

func TestNewRating(t *testing.T) {
	for value := review.MinRating; value <= review.MaxRating; value++ {
		rating, err := review.NewRating(value)
		require.NoError(t, err)
		assert.Equal(t, value, rating.Value())
	}

	for _, value := range []int{0, -1, 6} {
		_, err := review.NewRating(value)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}

	var zero review.Rating
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}

func TestNewReview(t *testing.T) {
	t.Run("valid review", func(t *testing.T) {
		r := testReview(t)
		assert.Equal(t, 4, r.Rating().Value())
		assert.Equal(t, "Crust was perfect.", r.Comment())
		assert.False(t, r.HasReply())
	})

	t.Run("empty comment allowed", func(t *testing.T) {
		rating, err := review.NewRating(5)
		require.NoError(t, err)
		_, err = review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			rating, "", time.Now(),
		)
		require.NoError(t, err)
	})

	t.Run("unconstructed rating rejected", func(t *testing.T) {
		_, err := review.NewReview(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			review.Rating{}, "text", time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestReview_AddReply(t *testing.T) {
	t.Run("first reply is attached", func(t *testing.T) {
		r := testReview(t)
		bakerID := kernel.NewUUID()

		require.NoError(t, r.AddReply(bakerID, "Thank you!", time.Now()))

		require.True(t, r.HasReply())
		assert.True(t, r.Reply().BakerID().IsEqual(bakerID))
		assert.Equal(t, "Thank you!", r.Reply().Text())
	})

	t.Run("second reply rejected", func(t *testing.T) {
		r := testReview(t)
		require.NoError(t, r.AddReply(kernel.NewUUID(), "Thank you!", time.Now()))

		err := r.AddReply(kernel.NewUUID(), "Again!", time.Now())
		require.ErrorIs(t, err, review.ErrReviewAlreadyReplied)
		assert.Equal(t, "Thank you!", r.Reply().Text())
	})

	t.Run("empty reply text rejected", func(t *testing.T) {
		r := testReview(t)
		require.ErrorIs(t, r.AddReply(kernel.NewUUID(), "", time.Now()), errs.ErrValueIsRequired)
		assert.False(t, r.HasReply())
	})
}

func TestRestoreReview(t *testing.T) {
	rating, err := review.NewRating(3)
	require.NoError(t, err)

	bakerID := kernel.NewUUID()
	reply, err := review.RestoreReply(bakerID, "We will do better.", time.Now())
	require.NoError(t, err)

	restored, err := review.RestoreReview(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		rating, "A bit dry.", reply, time.Now().Add(-24*time.Hour),
	)
	require.NoError(t, err)

	require.True(t, restored.HasReply())
	assert.True(t, restored.Reply().BakerID().IsEqual(bakerID))
	require.ErrorIs(t, restored.AddReply(bakerID, "another", time.Now()), review.ErrReviewAlreadyReplied)
}
