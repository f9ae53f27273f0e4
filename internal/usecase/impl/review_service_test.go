package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	commentRepo *mockRepo.MockCommentRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		CommentRepo: commentRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:     svc,
		txManager:   txManager,
		commentRepo: commentRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func TestReviewService_AddComment_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := userActor()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(&entity.User{ID: actor.ID, Name: "Alice"}, nil)
	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = uuid.New()
		}).
		Return(nil)

	comment, err := fx.service.AddComment(ctx, actor, &usecase.AddCommentInput{
		ProductID: productID,
		Text:      "Sturdy and well finished.",
		Rating:    5,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", comment.UserName)
	assert.False(t, comment.Starred, "a fresh comment is never starred")
}

func TestReviewService_AddComment_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := userActor()

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.AddComment(ctx, actor, &usecase.AddCommentInput{
			ProductID: uuid.New(),
			Text:      "text",
			Rating:    rating,
		})
		assert.ErrorIs(t, err, domainerrors.ErrRatingOutOfRange)
	}
}

func TestReviewService_AddComment_ProductMustExist(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddComment(ctx, userActor(), &usecase.AddCommentInput{
		ProductID: productID,
		Text:      "text",
		Rating:    3,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_UpdateComment_OwnerOnly(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	admin := adminActor()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{
		ID:     commentID,
		UserID: uuid.New(), // someone else's comment
	}, nil)

	// Even an admin may not rewrite another user's words.
	_, err := fx.service.UpdateComment(ctx, admin, commentID, &usecase.UpdateCommentInput{
		Text:   "rewritten",
		Rating: 1,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotResourceOwner)
}

func TestReviewService_UpdateComment_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := userActor()
	commentID := uuid.New()
	existing := &entity.Comment{ID: commentID, UserID: actor.ID, Text: "old", Rating: 2}

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(existing, nil)
	fx.commentRepo.EXPECT().Update(ctx, existing).Return(nil)

	comment, err := fx.service.UpdateComment(ctx, actor, commentID, &usecase.UpdateCommentInput{
		Text:   "Improved after a week of use.",
		Rating: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, comment.Rating)
}

func TestReviewService_ToggleStarred_AdminOnly(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.ToggleStarred(context.Background(), userActor(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestReviewService_ToggleStarred_Flips(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	commentID := uuid.New()
	existing := &entity.Comment{ID: commentID, UserID: uuid.New(), Starred: true}

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(existing, nil)
	fx.commentRepo.EXPECT().Update(ctx, existing).Return(nil)

	comment, err := fx.service.ToggleStarred(ctx, adminActor(), commentID)

	require.NoError(t, err)
	assert.False(t, comment.Starred)
}

// Deleting a comment removes its replies in the same transaction, replies
// first, so no orphaned reply can survive a partial failure.
func TestReviewService_DeleteComment_CascadesReplies(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := userActor()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{
		ID:     commentID,
		UserID: actor.ID,
	}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().NewCommentRepository().Return(txCommentRepo)

			deleteRepliesCall := txCommentRepo.EXPECT().DeleteRepliesByComment(ctx, commentID).Return(nil)
			txCommentRepo.EXPECT().Delete(ctx, commentID).Return(nil).NotBefore(deleteRepliesCall.Call)

			return fn(mockFactory)
		})

	err := fx.service.DeleteComment(ctx, actor, commentID)

	require.NoError(t, err)
}

func TestReviewService_DeleteComment_AdminMayDeleteAny(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{
		ID:     commentID,
		UserID: uuid.New(),
	}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	err := fx.service.DeleteComment(ctx, adminActor(), commentID)

	require.NoError(t, err)
}

func TestReviewService_DeleteComment_StrangerDenied(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{
		ID:     commentID,
		UserID: uuid.New(),
	}, nil)

	err := fx.service.DeleteComment(ctx, userActor(), commentID)

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestReviewService_AddReply_ParentMustExist(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

	_, err := fx.service.AddReply(ctx, userActor(), &usecase.AddReplyInput{
		CommentID: commentID,
		Text:      "Agreed.",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestReviewService_AddReply_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	actor := userActor()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{ID: commentID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(&entity.User{ID: actor.ID, Name: "Bob"}, nil)
	fx.commentRepo.EXPECT().
		CreateReply(ctx, mock.AnythingOfType("*entity.Reply")).
		Run(func(ctx context.Context, reply *entity.Reply) {
			reply.ID = uuid.New()
		}).
		Return(nil)

	reply, err := fx.service.AddReply(ctx, actor, &usecase.AddReplyInput{
		CommentID: commentID,
		Text:      "Agreed.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bob", reply.UserName)
	assert.Equal(t, commentID, reply.CommentID)
}

func TestReviewService_DeleteReply_OwnerOrAdmin(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	replyID := uuid.New()

	fx.commentRepo.EXPECT().FindReplyByID(ctx, replyID).Return(&entity.Reply{
		ID:     replyID,
		UserID: uuid.New(),
	}, nil)

	err := fx.service.DeleteReply(ctx, userActor(), replyID)

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestReviewService_ListComments_AttachesReplies(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	commentID := uuid.New()
	replies := []*entity.Reply{{ID: uuid.New(), CommentID: commentID}}

	fx.commentRepo.EXPECT().
		FindByProduct(ctx, productID).
		Return([]*entity.Comment{{ID: commentID, ProductID: productID}}, nil)
	fx.commentRepo.EXPECT().FindRepliesByComment(ctx, commentID).Return(replies, nil)

	comments, err := fx.service.ListComments(ctx, productID, false)

	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, replies, comments[0].Replies)
}

func TestReviewService_ListComments_StarredOnly(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.commentRepo.EXPECT().FindStarredByProduct(ctx, productID).Return(nil, nil)

	comments, err := fx.service.ListComments(ctx, productID, true)

	require.NoError(t, err)
	assert.Empty(t, comments)
}
