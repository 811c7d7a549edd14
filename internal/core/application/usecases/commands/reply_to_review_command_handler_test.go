package commands_test

import (
	"testing"
	"time"

	"localcrust/internal/core/application/usecases/commands"
	"localcrust/internal/core/domain/model/kernel"
	"localcrust/internal/core/domain/model/review"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeReview(t *testing.T, productID kernel.UUID) *review.Review {
	t.Helper()
	rating, err := review.NewRating(4)
	require.NoError(t, err)
	r, err := review.NewReview(
		kernel.NewUUID(), productID, kernel.NewUUID(), kernel.NewUUID(),
		rating, "Great crust.", time.Now(),
	)
	require.NoError(t, err)
	return r
}

func TestReplyToReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	bakerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	target := makeReview(t, productID)
	reviewed := makeProduct(t, productID, bakerID, 100)

	cmd, err := commands.NewReplyToReviewCommand(target.ID(), bakerID, "Thank you!")
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(reviewed, nil).Once(),
		reviewRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplyToReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, target.HasReply())
	require.Equal(t, "Thank you!", target.Reply().Text())
	uow.AssertExpectations(t)
}

func TestReplyToReviewCommandHandler_Handle_ForeignProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	target := makeReview(t, productID)
	reviewed := makeProduct(t, productID, kernel.NewUUID(), 100)

	cmd, err := commands.NewReplyToReviewCommand(target.ID(), kernel.NewUUID(), "Thanks!")
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(reviewed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplyToReviewCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNotAllowed)
	require.False(t, target.HasReply())
}

func TestReplyToReviewCommandHandler_Handle_SecondReply(t *testing.T) {
	ctx := t.Context()
	bakerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	target := makeReview(t, productID)
	require.NoError(t, target.AddReply(bakerID, "First!", time.Now()))
	reviewed := makeProduct(t, productID, bakerID, 100)

	cmd, err := commands.NewReplyToReviewCommand(target.ID(), bakerID, "Second!")
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(reviewed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplyToReviewCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, review.ErrReviewAlreadyReplied)
	require.Equal(t, "First!", target.Reply().Text())
}
