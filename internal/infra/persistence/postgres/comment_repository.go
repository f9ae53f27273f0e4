package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
// Replies are part of the comment aggregate and share this repository.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByProduct retrieves comments for a product, newest first, without replies.
func (repo *commentRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error) {
	return repo.findComments(ctx, repo.db.WithContext(ctx).Where("product_id = ?", productID))
}

// FindStarredByProduct retrieves only starred comments for a product, newest first.
func (repo *commentRepository) FindStarredByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Comment, error) {
	return repo.findComments(ctx, repo.db.WithContext(ctx).Where("product_id = ? AND starred = ?", productID, true))
}

func (repo *commentRepository) findComments(_ context.Context, tx *gorm.DB) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := tx.Order("created_at DESC").Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, toCommentDomain(&commentModels[i]))
	}

	return comments, nil
}

// FindByID retrieves a single comment by its unique ID.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&commentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// Update overwrites an existing comment document.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		// Select by name so clearing the star flag still writes.
		Select("text", "rating", "starred").
		Updates(fromCommentDomain(comment))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment by ID. Reply cleanup is the caller's responsibility,
// inside the same transaction.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// FindRepliesByComment retrieves replies for a comment, oldest first.
func (repo *commentRepository) FindRepliesByComment(ctx context.Context, commentID uuid.UUID) ([]*entity.Reply, error) {
	var replyModels []model.ReplyModel
	err := repo.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Order("created_at ASC").
		Find(&replyModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list replies")
	}

	replies := make([]*entity.Reply, 0, len(replyModels))
	for i := range replyModels {
		replies = append(replies, toReplyDomain(&replyModels[i]))
	}

	return replies, nil
}

// FindReplyByID retrieves a single reply by its unique ID.
func (repo *commentRepository) FindReplyByID(ctx context.Context, id uuid.UUID) (*entity.Reply, error) {
	var replyM model.ReplyModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&replyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReplyNotFound
		}

		return nil, errors.Wrap(err, "failed to find reply by id")
	}

	return toReplyDomain(&replyM), nil
}

// CreateReply persists a new reply.
func (repo *commentRepository) CreateReply(ctx context.Context, reply *entity.Reply) error {
	replyM := fromReplyDomain(reply)

	if err := repo.db.WithContext(ctx).Create(replyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCommentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reply")
	}

	reply.ID = replyM.ID
	reply.CreatedAt = replyM.CreatedAt
	reply.UpdatedAt = replyM.UpdatedAt

	return nil
}

// UpdateReply overwrites an existing reply document.
func (repo *commentRepository) UpdateReply(ctx context.Context, reply *entity.Reply) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReplyModel{}).
		Where("id = ?", reply.ID).
		Select("text").
		Updates(fromReplyDomain(reply))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reply")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReplyNotFound
	}

	return nil
}

// DeleteReply removes a reply by ID.
func (repo *commentRepository) DeleteReply(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReplyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete reply")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReplyNotFound
	}

	return nil
}

// DeleteRepliesByComment removes every reply referencing the comment.
// Zero affected rows is fine; a comment may have no replies.
func (repo *commentRepository) DeleteRepliesByComment(ctx context.Context, commentID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Delete(&model.ReplyModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete replies for comment")
	}

	return nil
}

// --- Mapper Functions ---

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Text:      data.Text,
		Rating:    data.Rating,
		Starred:   data.Starred,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Text:      data.Text,
		Rating:    data.Rating,
		Starred:   data.Starred,
	}
}

// toReplyDomain converts a GORM ReplyModel to a domain Reply entity.
func toReplyDomain(data *model.ReplyModel) *entity.Reply {
	if data == nil {
		return nil
	}

	return &entity.Reply{
		ID:        data.ID,
		CommentID: data.CommentID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReplyDomain converts a domain Reply entity to a GORM ReplyModel.
func fromReplyDomain(data *entity.Reply) *model.ReplyModel {
	if data == nil {
		return nil
	}

	return &model.ReplyModel{
		ID:        data.ID,
		CommentID: data.CommentID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Text:      data.Text,
	}
}
