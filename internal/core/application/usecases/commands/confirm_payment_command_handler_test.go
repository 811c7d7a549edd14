package commands_test

import (
	"errors"
	"testing"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	bakerID := kernel.NewUUID()
	pending := makePendingOrder(t, customerID, []order.Item{
		makeItem(t, kernel.NewUUID(), bakerID, 100, 2),
	})

	cmd, err := commands.NewConfirmPaymentCommand(
		pending.ID(), customerID, "order_MhYt5Wp3K", "pay_N8qZ2f4kX1", "deadbeef")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyPaymentSignature", "order_MhYt5Wp3K", "pay_N8qZ2f4kX1", "deadbeef").
		Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByGatewayOrderID", mock.Anything, "order_MhYt5Wp3K").Return(pending, nil).Once(),
		orderRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, gateway, publisher, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.StatusConfirmed, pending.Status())
	require.Equal(t, order.PaymentCompleted, pending.PaymentStatus())
	require.Equal(t, "pay_N8qZ2f4kX1", pending.PaymentID())

	uow.AssertExpectations(t)
	gateway.AssertExpectations(t)
	publisher.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_BadSignature(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewConfirmPaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "order_MhYt5Wp3K", "pay_N8qZ2f4kX1", "forged")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyPaymentSignature", "order_MhYt5Wp3K", "pay_N8qZ2f4kX1", "forged").
		Return(errors.New("signature mismatch")).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewConfirmPaymentCommandHandler(factory, gateway, new(MockEventPublisher), discardLogger())
	require.Error(t, h.Handle(ctx, cmd))

	// The transaction is never opened for an unverified callback.
	factory.AssertNotCalled(t, "Create")
}

func TestConfirmPaymentCommandHandler_Handle_OtherCustomersOrder(t *testing.T) {
	ctx := t.Context()
	owner := kernel.NewUUID()
	pending := makePendingOrder(t, owner, []order.Item{
		makeItem(t, kernel.NewUUID(), kernel.NewUUID(), 100, 1),
	})

	// A verified callback from a different authenticated customer.
	cmd, err := commands.NewConfirmPaymentCommand(
		pending.ID(), kernel.NewUUID(), "order_MhYt5Wp3K", "pay_N8qZ2f4kX1", "deadbeef")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyPaymentSignature", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByGatewayOrderID", mock.Anything, "order_MhYt5Wp3K").Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, gateway, new(MockEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNotAllowed)

	// The order is left untouched.
	require.Equal(t, order.StatusPending, pending.Status())
	require.Equal(t, order.PaymentPending, pending.PaymentStatus())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_MismatchedOrderReference(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	pending := makePendingOrder(t, customerID, []order.Item{
		makeItem(t, kernel.NewUUID(), kernel.NewUUID(), 100, 1),
	})

	// The callback's gateway reference resolves to a different order than
	// the one the customer claims to be paying for.
	cmd, err := commands.NewConfirmPaymentCommand(
		kernel.NewUUID(), customerID, "order_MhYt5Wp3K", "pay_N8qZ2f4kX1", "deadbeef")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyPaymentSignature", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByGatewayOrderID", mock.Anything, "order_MhYt5Wp3K").Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, gateway, new(MockEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNotAllowed)

	require.Equal(t, order.PaymentPending, pending.PaymentStatus())
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_AlreadySettled(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	settled := makeOrderInStatus(t, customerID, []order.Item{
		makeItem(t, kernel.NewUUID(), kernel.NewUUID(), 100, 1),
	}, order.StatusConfirmed)

	cmd, err := commands.NewConfirmPaymentCommand(
		settled.ID(), customerID, "order_MhYt5Wp3K", "pay_other", "deadbeef")
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("VerifyPaymentSignature", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByGatewayOrderID", mock.Anything, "order_MhYt5Wp3K").Return(settled, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, gateway, new(MockEventPublisher), discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrPaymentAlreadySettled)

	// The original payment reference is untouched.
	require.Equal(t, "pay_N8qZ2f4kX1", settled.PaymentID())
	uow.AssertExpectations(t)
}
