package helper

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const LocPrincipal = "principal"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID    uint
	Username  string
	UserType  string
	TokenID   string
	ExpiresAt time.Time
}

// Verifier turns a raw bearer token into a Principal. Implementations must
// reject expired, malformed and blacklisted tokens.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Principal, error)
}

// VerifierFunc adapts a plain function to Verifier.
type VerifierFunc func(ctx context.Context, rawToken string) (*Principal, error)

func (f VerifierFunc) Verify(ctx context.Context, rawToken string) (*Principal, error) {
	return f(ctx, rawToken)
}

func SetPrincipal(c *fiber.Ctx, p *Principal) {
	if p != nil {
		c.Locals(LocPrincipal, p)
	}
}

// CurrentPrincipal returns the caller, or false for an anonymous request.
func CurrentPrincipal(c *fiber.Ctx) (*Principal, bool) {
	p, ok := c.Locals(LocPrincipal).(*Principal)
	return p, ok && p != nil
}

// GetUserID returns the authenticated user id or a 401 fiber error.
func GetUserID(c *fiber.Ctx) (uint, error) {
	p, ok := CurrentPrincipal(c)
	if !ok || p.UserID == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Authentication credentials were not provided.")
	}
	return p.UserID, nil
}
