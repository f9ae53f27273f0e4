package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Review system sentinel errors.
var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// CommentRepository defines operations for comments and their replies.
// Replies belong to the comment aggregate and never outlive their parent.
type CommentRepository interface {
	// FindByProduct retrieves comments for a product, newest first, without replies.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error)

	// FindStarredByProduct retrieves only starred comments for a product, newest first.
	FindStarredByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error)

	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update overwrites an existing comment document.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment by ID. Callers are responsible for deleting
	// replies first; see TransactionManager.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindRepliesByComment retrieves replies for a comment, oldest first.
	FindRepliesByComment(ctx context.Context, commentID uuid.UUID) ([]*entity.Reply, error)

	// FindReplyByID retrieves a single reply by its unique ID.
	FindReplyByID(ctx context.Context, id uuid.UUID) (*entity.Reply, error)

	// CreateReply persists a new reply.
	CreateReply(ctx context.Context, reply *entity.Reply) error

	// UpdateReply overwrites an existing reply document.
	UpdateReply(ctx context.Context, reply *entity.Reply) error

	// DeleteReply removes a reply by ID.
	DeleteReply(ctx context.Context, id uuid.UUID) error

	// DeleteRepliesByComment removes every reply referencing the comment.
	DeleteRepliesByComment(ctx context.Context, commentID uuid.UUID) error
}

// QuestionRepository defines operations for product Q&A persistence.
type QuestionRepository interface {
	// FindByProduct retrieves questions for a product, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Question, error)

	// FindByID retrieves a single question by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// Create persists a new question.
	Create(ctx context.Context, question *entity.Question) error

	// Update overwrites an existing question document.
	Update(ctx context.Context, question *entity.Question) error

	// IncrementHelpfulVotes adds one helpful vote. The increment happens in a
	// single statement so concurrent votes do not lose counts; it is not
	// idempotent per user.
	IncrementHelpfulVotes(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// IncrementReportCount adds one report, with the same semantics as
	// IncrementHelpfulVotes.
	IncrementReportCount(ctx context.Context, id uuid.UUID) (*entity.Question, error)

	// Delete removes a question by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
