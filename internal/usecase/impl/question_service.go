package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// questionService implements the QuestionUsecase interface.
type questionService struct {
	questionRepo repository.QuestionRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// QuestionServiceParams holds dependencies for QuestionService, injected by Fx.
type QuestionServiceParams struct {
	fx.In

	QuestionRepo repository.QuestionRepository
	ProductRepo  repository.ProductRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewQuestionService is the constructor for questionService.
func NewQuestionService(params QuestionServiceParams) usecase.QuestionUsecase {
	return &questionService{
		questionRepo: params.QuestionRepo,
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *questionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *questionService) ListQuestions(ctx context.Context, productID uuid.UUID) ([]*entity.Question, error) {
	questions, err := srv.questionRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return questions, nil
}

func (srv *questionService) AskQuestion(ctx context.Context, actor usecase.Actor, input *usecase.AskQuestionInput) (*entity.Question, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, domainerrors.ErrQuestionTextRequired.WithDetails("question")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	asker, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "asker not found")
		}

		return nil, errors.Wrap(err, "failed to find asker")
	}

	question := &entity.Question{
		ProductID:    input.ProductID,
		UserID:       actor.ID,
		UserName:     asker.Name,
		QuestionText: input.Question,
	}
	if err := srv.questionRepo.Create(ctx, question); err != nil {
		return nil, errors.Wrap(err, "failed to create question")
	}

	srv.log(ctx).Debug("Question asked", slog.Any("questionID", question.ID), slog.Any("productID", input.ProductID))

	return question, nil
}

// AnswerQuestion records the answer together with who gave it and when.
// Answering again overwrites the previous answer; the question stays answered.
func (srv *questionService) AnswerQuestion(ctx context.Context, actor usecase.Actor, id uuid.UUID, answer string) (*entity.Question, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "answering requires admin")
	}
	if strings.TrimSpace(answer) == "" {
		return nil, domainerrors.ErrAnswerTextRequired.WithDetails("answer")
	}

	question, err := srv.findQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	answerer, err := srv.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "answerer not found")
		}

		return nil, errors.Wrap(err, "failed to find answerer")
	}

	now := time.Now()
	answererID := actor.ID
	question.AnswerText = answer
	question.Answered = true
	question.AnswererID = &answererID
	question.AnswererName = answerer.Name
	question.AnsweredAt = &now

	if err := srv.questionRepo.Update(ctx, question); err != nil {
		return nil, errors.Wrap(err, "failed to record answer")
	}

	srv.log(ctx).Info("Question answered", slog.Any("questionID", id), slog.Any("answererID", actor.ID))

	return question, nil
}

func (srv *questionService) VoteHelpful(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	question, err := srv.questionRepo.IncrementHelpfulVotes(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuestionNotFound, "question not found")
		}

		return nil, errors.Wrap(err, "failed to record helpful vote")
	}

	return question, nil
}

func (srv *questionService) Report(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	question, err := srv.questionRepo.IncrementReportCount(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuestionNotFound, "question not found")
		}

		return nil, errors.Wrap(err, "failed to record report")
	}

	return question, nil
}

func (srv *questionService) DeleteQuestion(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	question, err := srv.findQuestion(ctx, id)
	if err != nil {
		return err
	}

	if !entity.Authorize(actor.Roles, entity.RequireOwnerOrAdmin, actor.ID, question.UserID) {
		return errors.Wrap(domainerrors.ErrPermissionDenied, "only the asker or an admin may delete a question")
	}

	if err := srv.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return errors.Wrap(domainerrors.ErrQuestionNotFound, "question not found")
		}

		return errors.Wrap(err, "failed to delete question")
	}

	srv.log(ctx).Info("Question deleted", slog.Any("questionID", id), slog.Any("actorID", actor.ID))

	return nil
}

func (srv *questionService) findQuestion(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrQuestionNotFound, "question not found")
		}

		return nil, errors.Wrap(err, "failed to find question")
	}

	return question, nil
}
