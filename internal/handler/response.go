package handler

import (
	"errors"
	"net/http"

	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// StatusFromError maps the app error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrForbidden:
		return http.StatusForbidden
	case apperrors.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the caller-safe message for err. Internal failures
// collapse to a generic message so store details never leak.
func ErrorMessage(err error) string {
	if apperrors.CodeOf(err) == apperrors.ErrInternal {
		return "internal server error"
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
