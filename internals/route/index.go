package routes

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authService "autismcare_backend/internals/features/users/auth/service"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/middlewares"
	authMiddleware "autismcare_backend/internals/middlewares/auth"
	"autismcare_backend/internals/middlewares/logger"
	routeDetails "autismcare_backend/internals/route/details"
)

const APIPrefix = "/api/v1"

// Deps is everything the HTTP layer needs.
type Deps struct {
	DB      *gorm.DB
	Log     *zap.Logger
	Tokens  *authService.TokenService
	Metrics *middlewares.Metrics // nil: no /metrics

	CorsAllowOrigins        string
	RateLimitPerMinute      int
	LoginRateLimitPerMinute int
	RequestTimeout          time.Duration
}

// NewApp builds the fiber app with sonic JSON and the envelope ErrorHandler.
func NewApp(log *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "autismcare",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler(log),
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime := time.Now()

	// ===================== PIPELINE =====================
	app.Use(logger.RequestLogger(d.Log, d.RequestTimeout))
	app.Use(middlewares.RecoveryMiddleware(d.Log))
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
		app.Get("/metrics", d.Metrics.Handler())
	}
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.CorsMiddleware(d.CorsAllowOrigins))
	app.Use(middlewares.GlobalRateLimiter(d.RateLimitPerMinute))
	app.Use(authMiddleware.Authenticate(d.Tokens, d.Log))

	BaseRoutes(app, d.DB, startTime)

	// ===================== PUBLIC =====================
	// mounted before the private group so its RequireAuth never sees them
	d.Log.Info("mounting public routes")
	public := app.Group(APIPrefix)
	routeDetails.AuthRoutes(public, d.Tokens, d.Log, d.LoginRateLimitPerMinute)
	routeDetails.UserPublicRoutes(public, d.DB, d.Log)

	// ===================== PRIVATE =====================
	d.Log.Info("mounting private routes")
	private := app.Group(APIPrefix, authMiddleware.RequireAuth())
	routeDetails.UserRoutes(private, d.DB, d.Log)
	routeDetails.CareRoutes(private, d.DB, d.Log)
	routeDetails.SchoolRoutes(private, d.DB, d.Log)
}
