// pkg/apperrors/apperrors.go
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries a taxonomy code alongside the message so handlers can map
// failures to HTTP status codes without string matching.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidArg(msg string) error {
	return New(CodeInvalidArgument, msg)
}

func NotFound(msg string) error {
	return New(CodeNotFound, msg)
}

func AlreadyExists(msg string) error {
	return New(CodeAlreadyExists, msg)
}

func Unauthenticated(msg string) error {
	return New(CodeUnauthenticated, msg)
}

func Forbidden(msg string) error {
	return New(CodePermissionDenied, msg)
}

func Internal(msg string, cause error) error {
	return Wrap(CodeInternal, msg, cause)
}

// CodeOf extracts the taxonomy code from err, CodeUnknown for plain errors.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// StatusOf maps the taxonomy to HTTP status codes. Duplicate handles,
// memberships and friendship pairs map to 400 rather than 409, matching the
// REST surface this service has always exposed.
func StatusOf(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument, CodeAlreadyExists:
		return fiber.StatusBadRequest
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodePermissionDenied:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
