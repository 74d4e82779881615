package helper

import (
	"errors"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"autismcare_backend/internals/softdelete"
)

// NotFoundError marks a target or referenced entity that is absent or
// soft-deleted.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

// EntityError names a repository miss after the entity it was looking for.
func EntityError(err error, entity string) error {
	if errors.Is(err, softdelete.ErrNotFound) {
		return NotFound(entity)
	}
	return err
}

// Error lets FieldErrors travel as an error value.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(fe[k], " "))
	}
	return strings.Join(parts, "; ")
}

// FieldError builds a single-field validation error.
func FieldError(field, msg string) error {
	return FieldErrors{field: {msg}}
}

// HandleError translates a domain error into the response envelope.
// Unknown errors are logged and answered with an opaque 500.
func HandleError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return JsonNotFound(c, nf.Entity)
	}
	var fe FieldErrors
	if errors.As(err, &fe) {
		return JsonValidationError(c, fe)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonError(c, fiberErr.Code, fiberErr.Message)
	}
	if log != nil {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
