package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCommentInput defines the data required to leave a product review.
type AddCommentInput struct {
	ProductID uuid.UUID
	Text      string
	Rating    int
}

// UpdateCommentInput carries the fields a comment owner may change.
type UpdateCommentInput struct {
	Text   string
	Rating int
}

// AddReplyInput defines the data required to reply to a comment.
type AddReplyInput struct {
	CommentID uuid.UUID
	Text      string
}

// ReviewUsecase defines product review operations, replies included.
type ReviewUsecase interface {
	// ListComments retrieves a product's comments, newest first, replies
	// attached oldest first. starredOnly keeps only starred comments.
	ListComments(ctx context.Context, productID uuid.UUID, starredOnly bool) ([]*entity.Comment, error)

	// AddComment leaves a review on a product. Authenticated.
	AddComment(ctx context.Context, actor Actor, input *AddCommentInput) (*entity.Comment, error)

	// UpdateComment changes a comment's text and rating. Owner only.
	UpdateComment(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateCommentInput) (*entity.Comment, error)

	// ToggleStarred flips a comment's starred flag. ADMIN only.
	ToggleStarred(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Comment, error)

	// DeleteComment removes a comment and all its replies in one transaction.
	// Owner or ADMIN.
	DeleteComment(ctx context.Context, actor Actor, id uuid.UUID) error

	// AddReply replies to an existing comment. Authenticated.
	AddReply(ctx context.Context, actor Actor, input *AddReplyInput) (*entity.Reply, error)

	// UpdateReply changes a reply's text. Owner only.
	UpdateReply(ctx context.Context, actor Actor, id uuid.UUID, text string) (*entity.Reply, error)

	// DeleteReply removes a reply. Owner or ADMIN.
	DeleteReply(ctx context.Context, actor Actor, id uuid.UUID) error
}
