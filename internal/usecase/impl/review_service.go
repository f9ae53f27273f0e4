package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// actorName resolves the display name snapshot attached to new comments and
// replies. Later profile renames do not rewrite existing entries.
func (srv *reviewService) actorName(ctx context.Context, actorID uuid.UUID) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrUserNotFound, "author not found")
		}

		return "", errors.Wrap(err, "failed to find author")
	}

	return user.Name, nil
}

func (srv *reviewService) ListComments(ctx context.Context, productID uuid.UUID, starredOnly bool) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	var err error
	if starredOnly {
		comments, err = srv.commentRepo.FindStarredByProduct(ctx, productID)
	} else {
		comments, err = srv.commentRepo.FindByProduct(ctx, productID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	for _, comment := range comments {
		replies, err := srv.commentRepo.FindRepliesByComment(ctx, comment.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list replies")
		}
		comment.Replies = replies
	}

	return comments, nil
}

func validateCommentInput(text string, rating int) error {
	if strings.TrimSpace(text) == "" {
		return domainerrors.ErrCommentTextRequired.WithDetails("text")
	}
	if rating < 1 || rating > 5 {
		return domainerrors.ErrRatingOutOfRange.WithDetails("rating")
	}

	return nil
}

func (srv *reviewService) AddComment(ctx context.Context, actor usecase.Actor, input *usecase.AddCommentInput) (*entity.Comment, error) {
	if err := validateCommentInput(input.Text, input.Rating); err != nil {
		return nil, err
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	userName, err := srv.actorName(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ProductID: input.ProductID,
		UserID:    actor.ID,
		UserName:  userName,
		Text:      input.Text,
		Rating:    input.Rating,
		Starred:   false, // Only an admin may star, never the author.
	}
	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Debug("Comment added", slog.Any("commentID", comment.ID), slog.Any("productID", input.ProductID))

	return comment, nil
}

func (srv *reviewService) UpdateComment(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	if err := validateCommentInput(input.Text, input.Rating); err != nil {
		return nil, err
	}

	comment, err := srv.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	// Editing is owner-only; an admin may star or delete, not rewrite.
	if comment.UserID != actor.ID {
		return nil, errors.Wrap(domainerrors.ErrNotResourceOwner, "only the author may edit a comment")
	}

	comment.Text = input.Text
	comment.Rating = input.Rating

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}

	return comment, nil
}

func (srv *reviewService) ToggleStarred(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Comment, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrAdminRequired, "starring requires admin")
	}

	comment, err := srv.findComment(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Starred = !comment.Starred

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to toggle starred flag")
	}

	return comment, nil
}

func (srv *reviewService) DeleteComment(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	comment, err := srv.findComment(ctx, id)
	if err != nil {
		return err
	}

	if !entity.Authorize(actor.Roles, entity.RequireOwnerOrAdmin, actor.ID, comment.UserID) {
		return errors.Wrap(domainerrors.ErrPermissionDenied, "only the author or an admin may delete a comment")
	}

	// Replies never outlive their parent, so both deletes commit together.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.NewCommentRepository()

		if err := commentRepo.DeleteRepliesByComment(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete replies")
		}
		if err := commentRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute comment deletion transaction")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", id), slog.Any("actorID", actor.ID))

	return nil
}

func (srv *reviewService) AddReply(ctx context.Context, actor usecase.Actor, input *usecase.AddReplyInput) (*entity.Reply, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domainerrors.ErrCommentTextRequired.WithDetails("text")
	}

	// The parent must exist before the reply is accepted.
	if _, err := srv.findComment(ctx, input.CommentID); err != nil {
		return nil, err
	}

	userName, err := srv.actorName(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	reply := &entity.Reply{
		CommentID: input.CommentID,
		UserID:    actor.ID,
		UserName:  userName,
		Text:      input.Text,
	}
	if err := srv.commentRepo.CreateReply(ctx, reply); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to create reply")
	}

	return reply, nil
}

func (srv *reviewService) UpdateReply(ctx context.Context, actor usecase.Actor, id uuid.UUID, text string) (*entity.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domainerrors.ErrCommentTextRequired.WithDetails("text")
	}

	reply, err := srv.findReply(ctx, id)
	if err != nil {
		return nil, err
	}

	if reply.UserID != actor.ID {
		return nil, errors.Wrap(domainerrors.ErrNotResourceOwner, "only the author may edit a reply")
	}

	reply.Text = text

	if err := srv.commentRepo.UpdateReply(ctx, reply); err != nil {
		return nil, errors.Wrap(err, "failed to update reply")
	}

	return reply, nil
}

func (srv *reviewService) DeleteReply(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	reply, err := srv.findReply(ctx, id)
	if err != nil {
		return err
	}

	if !entity.Authorize(actor.Roles, entity.RequireOwnerOrAdmin, actor.ID, reply.UserID) {
		return errors.Wrap(domainerrors.ErrPermissionDenied, "only the author or an admin may delete a reply")
	}

	if err := srv.commentRepo.DeleteReply(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete reply")
	}

	return nil
}

func (srv *reviewService) findComment(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to find comment")
	}

	return comment, nil
}

func (srv *reviewService) findReply(ctx context.Context, id uuid.UUID) (*entity.Reply, error) {
	reply, err := srv.commentRepo.FindReplyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReplyNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReplyNotFound, "reply not found")
		}

		return nil, errors.Wrap(err, "failed to find reply")
	}

	return reply, nil
}
