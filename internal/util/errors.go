package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorCode 对外稳定的错误码，客户端据此区分错误类型
type ErrorCode string

const (
	CodeValidation   ErrorCode = "VALIDATION_ERROR"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeConflict     ErrorCode = "CONFLICT"
	CodeTooMany      ErrorCode = "RATE_LIMITED"
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// AppError 携带 HTTP 状态和错误码的业务错误
type AppError struct {
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeValidation, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeConflict, Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func NewForbiddenError(format string, args ...interface{}) *AppError {
	return &AppError{Code: CodeForbidden, Status: http.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrSubmissionNotFound  = NewNotFoundError("submission not found")
	ErrMaterialNotFound    = NewNotFoundError("material not found")
	ErrMCQNotFound         = NewNotFoundError("quiz question not found")
	ErrStudentNotFound     = NewNotFoundError("student not found")
	ErrStaffNotFound       = NewNotFoundError("staff not found")
	ErrMarksOutOfRange     = NewValidationError("marks must be between 0 and 100")
	ErrEmailRegistered     = NewValidationError("email already registered")
	ErrInvalidCredentials  = &AppError{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: "invalid email or password"}
	ErrLoginUnavailable    = &AppError{Code: CodeUnauthorized, Status: http.StatusUnauthorized, Message: "login not available for this account"}
	ErrCourseNotAssigned   = NewForbiddenError("course not assigned to this staff")
	ErrPermissionDenied    = NewForbiddenError("permission denied")
	ErrDuplicateRecord     = NewConflictError("record already exists")
	ErrUnsupportedFileType = NewValidationError("unsupported file type")
)

func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusTooManyRequests:
		return CodeTooMany
	default:
		return CodeInternal
	}
}

// HandleError 将 service 层错误映射为统一响应
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		c.JSON(appErr.Status, Response{
			Code:      appErr.Status,
			Message:   appErr.Message,
			ErrorCode: appErr.Code,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		Error(c, http.StatusConflict, ErrDuplicateRecord.Message)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		BadRequest(c, "referenced record does not exist")
	default:
		LogInternalError(c, err)
	}
}
