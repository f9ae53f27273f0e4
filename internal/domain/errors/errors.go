package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Business error codes, one per failure category. Every predefined error
// carries exactly one of these so callers can switch on the category without
// parsing messages.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodePermissionDenied   = "PERMISSION_DENIED"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeNotFound           = "NOT_FOUND"
	CodeFailedPrecondition = "FAILED_PRECONDITION"
	CodeInternal           = "INTERNAL"
)

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches two BaseErrors by error code and message, ignoring details, so a
// WithDetails copy still satisfies errors.Is against its predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.message == t.message
}

// Predefined error types
var (
	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"使用者尚未登入",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"無效或已過期的權杖",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthenticated,
		"電子郵件或密碼錯誤",
		"",
	)

	// Authorization-related errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		CodePermissionDenied,
		"權限不足",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		CodePermissionDenied,
		"此操作僅限管理員執行",
		"",
	)

	ErrNotResourceOwner = NewBaseError(
		http.StatusForbidden,
		CodePermissionDenied,
		"您沒有權限存取此資源",
		"",
	)

	// Validation errors: details always names the first violated field,
	// checked in a fixed order by the usecase layer.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"輸入資料驗證失敗",
		"",
	)

	ErrProductNameRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"商品名稱為必填",
		"name",
	)

	ErrProductDescriptionRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"商品描述為必填",
		"description",
	)

	ErrProductPriceInvalid = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"商品價格無效",
		"price",
	)

	ErrProductImageRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"商品圖片網址為必填",
		"mainImageUrl",
	)

	ErrProductCategoryRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"商品分類為必填",
		"categoryId",
	)

	ErrProductStockInvalid = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"商品庫存數量無效",
		"stockQuantity",
	)

	ErrCategoryNameRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"分類名稱為必填",
		"name",
	)

	ErrCategoryDescriptionRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"分類描述為必填",
		"description",
	)

	ErrImageURLRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"圖片網址為必填",
		"imageUrl",
	)

	ErrCommentTextRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"評論內容為必填",
		"text",
	)

	ErrRatingOutOfRange = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"評分必須介於 1 到 5 之間",
		"rating",
	)

	ErrQuestionTextRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"問題內容為必填",
		"question",
	)

	ErrAnswerTextRequired = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"回答內容為必填",
		"answer",
	)

	ErrOrderEmpty = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidArgument,
		"訂單內容不可為空",
		"items",
	)

	// Not-found errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該使用者",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該商品",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該分類",
		"",
	)

	ErrCarouselImageNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該輪播圖片",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該評論",
		"",
	)

	ErrReplyNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該回覆",
		"",
	)

	ErrQuestionNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該問題",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"找不到該訂單",
		"",
	)

	// Precondition errors
	ErrAdminAlreadyExists = NewBaseError(
		http.StatusPreconditionFailed,
		CodeFailedPrecondition,
		"管理員已經存在",
		"",
	)

	ErrNotDesignatedAdmin = NewBaseError(
		http.StatusForbidden,
		CodePermissionDenied,
		"只有指定的電子郵件可以初始化為管理員",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusPreconditionFailed,
		CodeFailedPrecondition,
		"商品庫存不足",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeFailedPrecondition,
		"此電子郵件已被註冊",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternal,
		"系統內部錯誤",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeInternal
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
