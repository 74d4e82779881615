package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Purger is satisfied by service.TokenService.
type Purger interface {
	PurgeExpired(ctx context.Context) (blacklisted, refreshes int64, err error)
}

// StartBlacklistCleanup runs the purge on schedule (cron spec or @every).
// The caller stops the returned cron on shutdown.
func StartBlacklistCleanup(schedule string, p Purger, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(
		cron.Recover(cron.DefaultLogger),
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := c.AddFunc(schedule, func() { RunCleanup(p, log) })
	if err != nil {
		return nil, err
	}
	log.Info("token cleanup scheduled", zap.String("schedule", schedule))
	c.Start()
	return c, nil
}

// RunCleanup performs one purge pass.
func RunCleanup(p Purger, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	bl, rt, err := p.PurgeExpired(ctx)
	if err != nil {
		log.Error("token cleanup failed", zap.Error(err))
		return
	}
	log.Info("token cleanup done",
		zap.Int64("blacklist_removed", bl),
		zap.Int64("refresh_tokens_removed", rt),
	)
}
