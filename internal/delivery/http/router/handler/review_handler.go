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

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for comment and reply handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// AddCommentRequest represents the request body for posting a review.
type AddCommentRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// UpdateCommentRequest represents the request body for editing a review.
type UpdateCommentRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// ReplyRequest represents the request body for posting or editing a reply.
type ReplyRequest struct {
	Text string `json:"text"`
}

// ListComments returns a product's reviews with their reply threads.
// Pass starred=true to return only admin-starred reviews.
func (h *ReviewHandler) ListComments(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	starredOnly := c.QueryParam("starred") == "true"

	comments, err := h.reviewUC.ListComments(c.Request().Context(), productID, starredOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments retrieved successfully")
}

// AddComment posts a review on a product.
func (h *ReviewHandler) AddComment(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.reviewUC.AddComment(c.Request().Context(), actor, &usecase.AddCommentInput{
		ProductID: productID,
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

// UpdateComment edits a review. Only the author may edit.
func (h *ReviewHandler) UpdateComment(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.reviewUC.UpdateComment(c.Request().Context(), actor, id, &usecase.UpdateCommentInput{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// ToggleStarred flips a review's starred flag. Admin only.
func (h *ReviewHandler) ToggleStarred(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	comment, err := h.reviewUC.ToggleStarred(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment star toggled successfully")
}

// DeleteComment removes a review and its replies. Owner or admin.
func (h *ReviewHandler) DeleteComment(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteComment(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Comment deleted"}, "Comment deleted successfully")
}

// AddReply posts a reply under a review.
func (h *ReviewHandler) AddReply(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid comment ID")
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}

	reply, err := h.reviewUC.AddReply(c.Request().Context(), actor, &usecase.AddReplyInput{
		CommentID: commentID,
		Text:      req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, reply, "Reply added successfully")
}

// UpdateReply edits a reply. Only the author may edit.
func (h *ReviewHandler) UpdateReply(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reply input")
	}

	reply, err := h.reviewUC.UpdateReply(c.Request().Context(), actor, id, req.Text)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reply, "Reply updated successfully")
}

// DeleteReply removes a reply. Owner or admin.
func (h *ReviewHandler) DeleteReply(c echo.Context) error {
	actor, err := getActor(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.reviewUC.DeleteReply(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Reply deleted"}, "Reply deleted successfully")
}
