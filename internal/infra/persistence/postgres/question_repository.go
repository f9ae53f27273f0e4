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

// questionRepository implements the domain.QuestionRepository interface using GORM.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{db: db}
}

// FindByProduct retrieves questions for a product, newest first.
func (repo *questionRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Question, error) {
	var questionModels []model.QuestionModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("asked_at DESC").
		Find(&questionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	questions := make([]*entity.Question, 0, len(questionModels))
	for i := range questionModels {
		questions = append(questions, toQuestionDomain(&questionModels[i]))
	}

	return questions, nil
}

// FindByID retrieves a single question by its unique ID.
func (repo *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	var questionM model.QuestionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&questionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find question by id")
	}

	return toQuestionDomain(&questionM), nil
}

// Create persists a new question.
func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.ID = questionM.ID
	question.AskedAt = questionM.AskedAt

	return nil
}

// Update overwrites an existing question document.
func (repo *questionRepository) Update(ctx context.Context, question *entity.Question) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", question.ID).
		Select("question_text", "answer_text", "answered", "answerer_id", "answerer_name", "answered_at").
		Updates(fromQuestionDomain(question))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update question")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// IncrementHelpfulVotes adds one helpful vote in a single UPDATE so concurrent
// votes never lose counts, then returns the fresh row.
func (repo *questionRepository) IncrementHelpfulVotes(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	return repo.incrementCounter(ctx, id, "helpful_votes")
}

// IncrementReportCount adds one report with the same semantics as IncrementHelpfulVotes.
func (repo *questionRepository) IncrementReportCount(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	return repo.incrementCounter(ctx, id, "report_count")
}

func (repo *questionRepository) incrementCounter(ctx context.Context, id uuid.UUID, column string) (*entity.Question, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment "+column)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrQuestionNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a question by ID.
func (repo *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuestionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete question")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toQuestionDomain converts a GORM QuestionModel to a domain Question entity.
func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	return &entity.Question{
		ID:           data.ID,
		ProductID:    data.ProductID,
		UserID:       data.UserID,
		UserName:     data.UserName,
		QuestionText: data.QuestionText,
		AnswerText:   data.AnswerText,
		Answered:     data.Answered,
		AnswererID:   data.AnswererID,
		AnswererName: data.AnswererName,
		HelpfulVotes: data.HelpfulVotes,
		ReportCount:  data.ReportCount,
		AskedAt:      data.AskedAt,
		AnsweredAt:   data.AnsweredAt,
	}
}

// fromQuestionDomain converts a domain Question entity to a GORM QuestionModel.
func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	return &model.QuestionModel{
		ID:           data.ID,
		ProductID:    data.ProductID,
		UserID:       data.UserID,
		UserName:     data.UserName,
		QuestionText: data.QuestionText,
		AnswerText:   data.AnswerText,
		Answered:     data.Answered,
		AnswererID:   data.AnswererID,
		AnswererName: data.AnswererName,
		HelpfulVotes: data.HelpfulVotes,
		ReportCount:  data.ReportCount,
		AskedAt:      data.AskedAt,
		AnsweredAt:   data.AnsweredAt,
	}
}
