package redis_test

import (
	"testing"
	"time"

	redisadapter "localcrust/internal/adapters/out/redis"
	"localcrust/internal/core/domain/model/kernel"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T) (*redisadapter.ReviewSubmissionGuard, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisadapter.NewReviewSubmissionGuard(client, time.Minute), server
}

func TestReviewSubmissionGuard_Acquire_FirstWins(t *testing.T) {
	ctx := t.Context()
	guard, _ := newGuard(t)
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	acquired, err := guard.Acquire(ctx, customerID, productID)
	require.NoError(t, err)
	require.True(t, acquired)

	acquired, err = guard.Acquire(ctx, customerID, productID)
	require.NoError(t, err)
	require.False(t, acquired)
}

func TestReviewSubmissionGuard_Acquire_DistinctPairsDoNotCollide(t *testing.T) {
	ctx := t.Context()
	guard, _ := newGuard(t)
	customerID := kernel.NewUUID()

	acquired, err := guard.Acquire(ctx, customerID, kernel.NewUUID())
	require.NoError(t, err)
	require.True(t, acquired)

	acquired, err = guard.Acquire(ctx, customerID, kernel.NewUUID())
	require.NoError(t, err)
	require.True(t, acquired)
}

func TestReviewSubmissionGuard_Release_FreesLock(t *testing.T) {
	ctx := t.Context()
	guard, _ := newGuard(t)
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	acquired, err := guard.Acquire(ctx, customerID, productID)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, guard.Release(ctx, customerID, productID))

	acquired, err = guard.Acquire(ctx, customerID, productID)
	require.NoError(t, err)
	require.True(t, acquired)
}

func TestReviewSubmissionGuard_Acquire_LockExpires(t *testing.T) {
	ctx := t.Context()
	guard, server := newGuard(t)
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	acquired, err := guard.Acquire(ctx, customerID, productID)
	require.NoError(t, err)
	require.True(t, acquired)

	server.FastForward(2 * time.Minute)

	acquired, err = guard.Acquire(ctx, customerID, productID)
	require.NoError(t, err)
	require.True(t, acquired)
}
