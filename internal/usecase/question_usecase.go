package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AskQuestionInput defines the data required to ask a product question.
type AskQuestionInput struct {
	ProductID uuid.UUID
	Question  string
}

// QuestionUsecase defines product Q&A operations.
type QuestionUsecase interface {
	// ListQuestions retrieves a product's questions, newest first.
	ListQuestions(ctx context.Context, productID uuid.UUID) ([]*entity.Question, error)

	// AskQuestion posts a question on a product. Authenticated.
	AskQuestion(ctx context.Context, actor Actor, input *AskQuestionInput) (*entity.Question, error)

	// AnswerQuestion records the answer, answerer and answer time, and marks
	// the question answered. ADMIN only.
	AnswerQuestion(ctx context.Context, actor Actor, id uuid.UUID, answer string) (*entity.Question, error)

	// VoteHelpful adds one helpful vote. Repeat votes by the same user all
	// count; there is no per-user dedup.
	VoteHelpful(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// Report adds one report, with the same non-idempotent semantics.
	Report(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// DeleteQuestion removes a question. Owner or ADMIN.
	DeleteQuestion(ctx context.Context, actor Actor, id uuid.UUID) error
}
