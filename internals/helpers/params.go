package helper

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ParamID parses a positive integer route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// QueryID parses an optional positive integer query filter.
// ok is false when the value is present but malformed.
func QueryID(c *fiber.Ctx, name string) (id uint, present bool, ok bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false, true
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, true, false
	}
	return uint(n), true, true
}

// QueryFilter turns an optional ?name=<id> into a list filter on column.
// A nil filter means the parameter was absent.
func QueryFilter(c *fiber.Ctx, name, column string) (func(*gorm.DB) *gorm.DB, error) {
	id, present, ok := QueryID(c, name)
	if !ok {
		return nil, FieldError(name, "A valid integer is required.")
	}
	if !present {
		return nil, nil
	}
	return func(db *gorm.DB) *gorm.DB { return db.Where(column+" = ?", id) }, nil
}

// ReqCtx returns the request-scoped context set by the request-id middleware.
func ReqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}
