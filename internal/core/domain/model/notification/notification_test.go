package notification_test

import (
	"testing"
	"time"

	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/notification"
	"localcrust/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	t.Run("starts unread", func(t *testing.T) {
		n, err := notification.NewNotification(
			kernel.NewUUID(),
			kernel.NewUUID(),
			notification.KindOrderStatus,
			"Your order LC17251234AB is out for delivery.",
			kernel.NewUUID(),
			time.Now(),
		)
		require.NoError(t, err)
		assert.False(t, n.IsRead())

		n.MarkRead()
		assert.True(t, n.IsRead())
		n.MarkRead()
		assert.True(t, n.IsRead())
	})

	t.Run("rejects empty message", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(), notification.KindReviewReply,
			"", kernel.NewUUID(), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := notification.NewNotification(
			kernel.NewUUID(), kernel.NewUUID(), notification.KindUnknown,
			"msg", kernel.NewUUID(), time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestKindFromString(t *testing.T) {
	for _, k := range []notification.Kind{
		notification.KindOrderStatus,
		notification.KindReviewReply,
		notification.KindNewOrder,
		notification.KindVerification,
	} {
		parsed, err := notification.KindFromString(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := notification.KindFromString("marketing")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreNotification(t *testing.T) {
	restored, err := notification.RestoreNotification(
		kernel.NewUUID(), kernel.NewUUID(), notification.KindVerification,
		"Your shop has been verified.", kernel.NewUUID(), true, time.Now().Add(-time.Minute),
	)
	require.NoError(t, err)
	assert.True(t, restored.IsRead())
}
