// file: internals/helpers/json_response.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error envelope
=================================*/

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrors maps a wire field name to its messages.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

// JsonError writes {"error": message}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// JsonNotFound writes the 404 envelope for an entity.
func JsonNotFound(c *fiber.Ctx, entity string) error {
	return JsonError(c, fiber.StatusNotFound, entity+" not found")
}

// JsonValidationError writes the field error mapping with 400.
func JsonValidationError(c *fiber.Ctx, fieldErrors FieldErrors) error {
	if fieldErrors == nil {
		fieldErrors = FieldErrors{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fieldErrors)
}

/* ===============================
   Success responses
=================================*/

// JsonOK: detail / update (200).
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated: create (201).
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonList writes the list body; the total goes to X-Total-Count when paged.
func JsonList(c *fiber.Ctx, data any, total int64, paged bool) error {
	if paged {
		c.Set("X-Total-Count", strconv.FormatInt(total, 10))
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonDeleted: soft delete (200 with a short message).
func JsonDeleted(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": entity + " soft-deleted successfully",
	})
}

// JsonMessage: generic 200 message body.
func JsonMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}
