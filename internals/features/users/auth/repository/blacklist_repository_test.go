package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModel "autismcare_backend/internals/features/users/auth/model"
	"autismcare_backend/internals/features/users/auth/repository"
	"autismcare_backend/internals/softdelete"
	"autismcare_backend/internals/testutil"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *repository.RedisBlacklist) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, repository.NewRedisBlacklist(client)
}

func TestRedisBlacklist_AddAndContains(t *testing.T) {
	mr, bl := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "jti-1", "refresh", time.Now().Add(time.Hour)))

	listed, err := bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, listed)

	listed, err = bl.Contains(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, listed)

	assert.True(t, mr.Exists("token_blacklist:jti-1"))
	assert.Greater(t, mr.TTL("token_blacklist:jti-1"), 59*time.Minute)
}

func TestRedisBlacklist_KeysExpire(t *testing.T) {
	mr, bl := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "short", "access", time.Now().Add(2*time.Second)))
	mr.FastForward(3 * time.Second)

	listed, err := bl.Contains(ctx, "short")
	require.NoError(t, err)
	assert.False(t, listed)

	n, err := bl.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisBlacklist_SkipsExpiredTokens(t *testing.T) {
	mr, bl := setupRedis(t)

	require.NoError(t, bl.Add(context.Background(), "stale", "access", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("token_blacklist:stale"))
}

func TestRedisBlacklist_ServerDown(t *testing.T) {
	mr, bl := setupRedis(t)
	mr.Close()

	_, err := bl.Contains(context.Background(), "any")
	assert.Error(t, err)
}

func TestDBBlacklist(t *testing.T) {
	db := testutil.NewDB(t)
	bl := repository.NewDBBlacklist(db)
	ctx := context.Background()

	require.NoError(t, bl.Add(ctx, "jti-1", "access", time.Now().Add(-time.Minute)))
	// a second add of the same jti only moves the expiry
	require.NoError(t, bl.Add(ctx, "jti-1", "access", time.Now().Add(time.Hour)))
	require.NoError(t, bl.Add(ctx, "jti-2", "refresh", time.Now().Add(-time.Minute)))

	listed, err := bl.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, listed)

	n, err := bl.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	listed, err = bl.Contains(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, listed)
}

func TestRefreshTokenRepository(t *testing.T) {
	env := testutil.NewEnv(t)
	u := env.CreateUser(t, "robin", "pw")
	ctx := context.Background()
	repo := repository.NewRefreshTokenRepository(env.DB)
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &authModel.RefreshTokenModel{
		JTI: "live", UserID: u.ID, ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &authModel.RefreshTokenModel{
		JTI: "stale", UserID: u.ID, ExpiresAt: now.Add(-time.Hour),
	}))

	rt, err := repo.FindByJTI(ctx, "live")
	require.NoError(t, err)
	assert.True(t, rt.Active(now))

	first := now.Add(-time.Minute)
	require.NoError(t, repo.Revoke(ctx, "live", first))
	require.NoError(t, repo.Revoke(ctx, "live", now))
	rt, err = repo.FindByJTI(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, rt.RevokedAt)
	assert.WithinDuration(t, first, *rt.RevokedAt, time.Second)
	assert.False(t, rt.Active(now))

	_, err = repo.FindByJTI(ctx, "missing")
	assert.ErrorIs(t, err, softdelete.ErrNotFound)

	n, err := repo.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
