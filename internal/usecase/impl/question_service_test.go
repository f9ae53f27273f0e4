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

// questionServiceFixtures holds all test dependencies for question service tests.
type questionServiceFixtures struct {
	service      usecase.QuestionUsecase
	questionRepo *mockRepo.MockQuestionRepository
	productRepo  *mockRepo.MockProductRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestQuestionService(t *testing.T) questionServiceFixtures {
	questionRepo := mockRepo.NewMockQuestionRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	svc := NewQuestionService(QuestionServiceParams{
		QuestionRepo: questionRepo,
		ProductRepo:  productRepo,
		UserRepo:     userRepo,
		Logger:       newDiscardLogger(),
	})

	return questionServiceFixtures{
		service:      svc,
		questionRepo: questionRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

func TestQuestionService_AskQuestion_Success(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	actor := userActor()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, actor.ID).Return(&entity.User{ID: actor.ID, Name: "Carol"}, nil)
	fx.questionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Question")).
		Run(func(ctx context.Context, question *entity.Question) {
			question.ID = uuid.New()
		}).
		Return(nil)

	question, err := fx.service.AskQuestion(ctx, actor, &usecase.AskQuestionInput{
		ProductID: productID,
		Question:  "Does it ship assembled?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Carol", question.UserName)
	assert.False(t, question.Answered)
	assert.Nil(t, question.AnsweredAt)
}

func TestQuestionService_AskQuestion_TextRequired(t *testing.T) {
	fx := createTestQuestionService(t)

	_, err := fx.service.AskQuestion(context.Background(), userActor(), &usecase.AskQuestionInput{
		ProductID: uuid.New(),
		Question:  "   ",
	})

	assert.ErrorIs(t, err, domainerrors.ErrQuestionTextRequired)
}

func TestQuestionService_AnswerQuestion_RecordsAnswerer(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	admin := adminActor()
	questionID := uuid.New()
	existing := &entity.Question{ID: questionID, QuestionText: "Does it ship assembled?"}

	fx.questionRepo.EXPECT().FindByID(ctx, questionID).Return(existing, nil)
	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(&entity.User{ID: admin.ID, Name: "Support"}, nil)
	fx.questionRepo.EXPECT().Update(ctx, existing).Return(nil)

	question, err := fx.service.AnswerQuestion(ctx, admin, questionID, "Yes, fully assembled.")

	require.NoError(t, err)
	assert.True(t, question.Answered)
	assert.Equal(t, "Yes, fully assembled.", question.AnswerText)
	assert.Equal(t, "Support", question.AnswererName)
	require.NotNil(t, question.AnswererID)
	assert.Equal(t, admin.ID, *question.AnswererID)
	assert.NotNil(t, question.AnsweredAt)
}

func TestQuestionService_AnswerQuestion_AdminOnly(t *testing.T) {
	fx := createTestQuestionService(t)

	_, err := fx.service.AnswerQuestion(context.Background(), userActor(), uuid.New(), "answer")

	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
}

func TestQuestionService_AnswerQuestion_TextRequired(t *testing.T) {
	fx := createTestQuestionService(t)

	_, err := fx.service.AnswerQuestion(context.Background(), adminActor(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrAnswerTextRequired)
}

// Voting needs no account; repeat votes all count.
func TestQuestionService_VoteHelpful(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	questionID := uuid.New()

	fx.questionRepo.EXPECT().
		IncrementHelpfulVotes(ctx, questionID).
		Return(&entity.Question{ID: questionID, HelpfulVotes: 3}, nil)

	question, err := fx.service.VoteHelpful(ctx, questionID)

	require.NoError(t, err)
	assert.Equal(t, 3, question.HelpfulVotes)
}

func TestQuestionService_Report_NotFound(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	questionID := uuid.New()

	fx.questionRepo.EXPECT().
		IncrementReportCount(ctx, questionID).
		Return(nil, repository.ErrQuestionNotFound)

	_, err := fx.service.Report(ctx, questionID)

	assert.ErrorIs(t, err, domainerrors.ErrQuestionNotFound)
}

func TestQuestionService_DeleteQuestion_OwnerOrAdmin(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	owner := userActor()
	questionID := uuid.New()

	fx.questionRepo.EXPECT().FindByID(ctx, questionID).Return(&entity.Question{
		ID:     questionID,
		UserID: owner.ID,
	}, nil)
	fx.questionRepo.EXPECT().Delete(ctx, questionID).Return(nil)

	require.NoError(t, fx.service.DeleteQuestion(ctx, owner, questionID))
}

func TestQuestionService_DeleteQuestion_StrangerDenied(t *testing.T) {
	fx := createTestQuestionService(t)

	ctx := context.Background()
	questionID := uuid.New()

	fx.questionRepo.EXPECT().FindByID(ctx, questionID).Return(&entity.Question{
		ID:     questionID,
		UserID: uuid.New(),
	}, nil)

	err := fx.service.DeleteQuestion(ctx, userActor(), questionID)

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}
