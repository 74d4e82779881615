package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "autismcare_backend/internals/helpers"
)

// GlobalRateLimiter: per-IP cap for every endpoint. max <= 0 disables it.
func GlobalRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "Request was throttled. Please try again later.")
}

// LoginRateLimiter is the stricter cap mounted on /token/login.
func LoginRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "Too many login attempts. Please try again later.")
}

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}
