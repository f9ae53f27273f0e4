package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// QuestionHandlerParams holds dependencies for QuestionHandler, injected by Fx.
type QuestionHandlerParams struct {
	fx.In

	QuestionUC usecase.QuestionUsecase
	Logger     *slog.Logger
}

// QuestionHandler holds dependencies for product Q&A handlers.
type QuestionHandler struct {
	questionUC usecase.QuestionUsecase
	logger     *slog.Logger
}

// NewQuestionHandler is the constructor for QuestionHandler.
func NewQuestionHandler(params QuestionHandlerParams) *QuestionHandler {
	return &QuestionHandler{
		questionUC: params.QuestionUC,
		logger:     params.Logger,
	}
}

// AskQuestionRequest represents the request body for asking a question.
type AskQuestionRequest struct {
	Question string `json:"question"`
}

// AnswerQuestionRequest represents the request body for answering a question.
type AnswerQuestionRequest struct {
	Answer string `json:"answer"`
}

// ListQuestions returns a product's questions, newest first.
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	questions, err := h.questionUC.ListQuestions(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, questions, "Questions retrieved successfully")
}

// AskQuestion posts a question on a product.
func (h *QuestionHandler) AskQuestion(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req AskQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid question input")
	}

	question, err := h.questionUC.AskQuestion(c.Request().Context(), actor, &usecase.AskQuestionInput{
		ProductID: productID,
		Question:  req.Question,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, question, "Question asked successfully")
}

// AnswerQuestion records an admin answer. Answering again overwrites.
func (h *QuestionHandler) AnswerQuestion(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req AnswerQuestionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid answer input")
	}

	question, err := h.questionUC.AnswerQuestion(c.Request().Context(), actor, id, req.Answer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "Question answered successfully")
}

// VoteHelpful increments a question's helpful counter. No account needed.
func (h *QuestionHandler) VoteHelpful(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	question, err := h.questionUC.VoteHelpful(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "Vote recorded successfully")
}

// Report increments a question's report counter. No account needed.
func (h *QuestionHandler) Report(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	question, err := h.questionUC.Report(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, question, "Report recorded successfully")
}

// DeleteQuestion removes a question. Owner or admin.
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.questionUC.DeleteQuestion(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Question deleted"}, "Question deleted successfully")
}
