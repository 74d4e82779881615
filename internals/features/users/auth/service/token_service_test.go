package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autismcare_backend/internals/features/users/auth/service"
	userRepo "autismcare_backend/internals/features/users/user/repository"
	"autismcare_backend/internals/testutil"
)

func setup(t *testing.T) (*testutil.Env, *service.TokenService) {
	t.Helper()
	env := testutil.NewEnv(t)
	return env, env.Tokens
}

func TestLogin_ByUsernameOrEmail(t *testing.T) {
	env, svc := setup(t)
	u := env.CreateUser(t, "robin", "pw")
	ctx := context.Background()

	got, pair, err := svc.Login(ctx, "robin", "pw", service.ClientMeta{UserAgent: "go-test", IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	_, _, err = svc.Login(ctx, "ROBIN@example.com", "pw", service.ClientMeta{})
	require.NoError(t, err)

	p, err := svc.Verify(ctx, pair.Access)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, "robin", p.Username)
	assert.Equal(t, "parent", p.UserType)
}

func TestLogin_Rejections(t *testing.T) {
	env, svc := setup(t)
	u := env.CreateUser(t, "robin", "pw")
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "robin", "wrong", service.ClientMeta{})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "pw", service.ClientMeta{})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	u.IsActive = false
	require.NoError(t, userRepo.NewUserRepository(env.DB).Save(ctx, u))
	_, _, err = svc.Login(ctx, "robin", "pw", service.ClientMeta{})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	other := env.CreateUser(t, "gone", "pw")
	require.NoError(t, userRepo.NewUserRepository(env.DB).SoftDelete(ctx, other.ID))
	_, _, err = svc.Login(ctx, "gone", "pw", service.ClientMeta{})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	env, svc := setup(t)
	u := env.CreateUser(t, "robin", "pw")
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, u, service.ClientMeta{})
	require.NoError(t, err)

	access, err := svc.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, access)
	require.NoError(t, err)

	// an access token is not a refresh token
	_, err = svc.Refresh(ctx, pair.Access)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.Refresh(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestRefresh_UnknownJTI(t *testing.T) {
	_, svc := setup(t)
	claims := service.Claims{
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "never-issued",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testutil.RefreshSecret))
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), raw)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestVerify_ExpiredAndForeignTokens(t *testing.T) {
	env, svc := setup(t)
	u := env.CreateUser(t, "robin", "pw")
	ctx := context.Background()

	svc.Now = func() time.Time { return time.Now().UTC().Add(-time.Hour) }
	pair, err := svc.IssuePair(ctx, u, service.ClientMeta{})
	require.NoError(t, err)
	_, err = svc.Verify(ctx, pair.Access)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ID:        "x",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(ctx, forged)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestVerify_RejectsDeletedOrInactiveUser(t *testing.T) {
	env, svc := setup(t)
	users := userRepo.NewUserRepository(env.DB)
	ctx := context.Background()

	u := env.CreateUser(t, "robin", "pw")
	pair, err := svc.IssuePair(ctx, u, service.ClientMeta{})
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, users.Save(ctx, u))
	_, err = svc.Verify(ctx, pair.Access)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	gone := env.CreateUser(t, "gone", "pw")
	pair, err = svc.IssuePair(ctx, gone, service.ClientMeta{})
	require.NoError(t, err)
	_, err = svc.Verify(ctx, pair.Access)
	require.NoError(t, err)
	require.NoError(t, users.SoftDelete(ctx, gone.ID))
	_, err = svc.Verify(ctx, pair.Access)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestLogout_BlacklistsBothTokens(t *testing.T) {
	env, svc := setup(t)
	u := env.CreateUser(t, "robin", "pw")
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, u, service.ClientMeta{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, pair.Refresh, pair.Access))

	_, err = svc.Refresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, service.ErrTokenBlacklisted)
	_, err = svc.Verify(ctx, pair.Access)
	assert.ErrorIs(t, err, service.ErrTokenBlacklisted)
	assert.ErrorIs(t, svc.Logout(ctx, pair.Refresh, ""), service.ErrTokenBlacklisted)
}

func TestPurgeExpired(t *testing.T) {
	env, svc := setup(t)
	u := env.CreateUser(t, "robin", "pw")
	ctx := context.Background()

	require.NoError(t, svc.Blacklist.Add(ctx, "old-jti", "access", time.Now().Add(-time.Minute)))
	require.NoError(t, svc.Blacklist.Add(ctx, "live-jti", "access", time.Now().Add(time.Hour)))

	// a refresh token that expired an hour ago
	svc.Now = func() time.Time { return time.Now().UTC().Add(-48 * time.Hour) }
	_, err := svc.IssuePair(ctx, u, service.ClientMeta{})
	require.NoError(t, err)
	svc.Now = func() time.Time { return time.Now().UTC() }

	bl, rt, err := svc.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, bl)
	assert.EqualValues(t, 1, rt)

	listed, err := svc.Blacklist.Contains(ctx, "live-jti")
	require.NoError(t, err)
	assert.True(t, listed)
}
