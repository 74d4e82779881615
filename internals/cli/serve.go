package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/configs"
	database "autismcare_backend/internals/databases"
	authRepo "autismcare_backend/internals/features/users/auth/repository"
	"autismcare_backend/internals/features/users/auth/scheduler"
	authService "autismcare_backend/internals/features/users/auth/service"
	userRepo "autismcare_backend/internals/features/users/user/repository"
	helperAuth "autismcare_backend/internals/helpers/auth"
	"autismcare_backend/internals/middlewares"
	routes "autismcare_backend/internals/route"
)

func newServeCmd() *cobra.Command {
	var autoMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return serve(cmd.Context(), cfg, log, autoMigrate)
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run migrations before serving")
	return cmd
}

func serve(parent context.Context, cfg *configs.Config, log *zap.Logger, autoMigrate bool) error {
	if err := cfg.ValidateServe(); err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("db close failed", zap.Error(err))
		}
	}()
	if err := database.TunePool(db, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns); err != nil {
		return err
	}
	database.WarmUp(db, log)
	if autoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	blacklist, closeBlacklist, err := buildBlacklist(parent, cfg, db, log)
	if err != nil {
		return err
	}
	defer closeBlacklist()

	tokens := authService.NewTokenService(
		userRepo.NewUserRepository(db),
		authRepo.NewRefreshTokenRepository(db),
		blacklist,
		authService.TokenConfig{
			AccessSecret:  cfg.JWTSecret,
			RefreshSecret: cfg.JWTRefreshSecret,
			AccessTTL:     cfg.AccessTokenTTL,
			RefreshTTL:    cfg.RefreshTokenTTL,
		},
		log.Named("auth"),
	)

	// ⏱ scheduler after the DB is ready
	cleanup, err := scheduler.StartBlacklistCleanup(cfg.BlacklistCleanupCron, tokens, log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("schedule token cleanup: %w", err)
	}
	defer func() { <-cleanup.Stop().Done() }()

	app := routes.NewApp(log)
	routes.SetupRoutes(app, routes.Deps{
		DB:                      db,
		Log:                     log,
		Tokens:                  tokens,
		Metrics:                 middlewares.NewMetrics(),
		CorsAllowOrigins:        cfg.CorsAllowOrigins,
		RateLimitPerMinute:      cfg.RateLimitPerMinute,
		LoginRateLimitPerMinute: cfg.LoginRateLimitPerMinute,
		RequestTimeout:          cfg.RequestTimeout,
	})

	// 🔒 keep-alive & connection timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := "0.0.0.0:" + cfg.Port
		log.Info("listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

// buildBlacklist picks the token blacklist store from BLACKLIST_DRIVER.
// The returned func releases whatever the store holds open.
func buildBlacklist(ctx context.Context, cfg *configs.Config, db *gorm.DB, log *zap.Logger) (helperAuth.Blacklist, func(), error) {
	if cfg.BlacklistDriver != "redis" {
		log.Info("token blacklist in postgres")
		return authRepo.NewDBBlacklist(db), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	log.Info("token blacklist in redis", zap.String("addr", cfg.RedisAddr))
	return authRepo.NewRedisBlacklist(client), func() {
		if err := client.Close(); err != nil {
			log.Warn("redis close failed", zap.Error(err))
		}
	}, nil
}
