// Package testutil builds an in-memory database and a fully wired app for
// package tests.
package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "autismcare_backend/internals/databases"
	authRepo "autismcare_backend/internals/features/users/auth/repository"
	authService "autismcare_backend/internals/features/users/auth/service"
	userDTO "autismcare_backend/internals/features/users/user/dto"
	userModel "autismcare_backend/internals/features/users/user/model"
	userRepo "autismcare_backend/internals/features/users/user/repository"
	routes "autismcare_backend/internals/route"
)

const (
	AccessSecret  = "test-access-secret"
	RefreshSecret = "test-refresh-secret"
)

// NewDB opens a migrated in-memory SQLite database with foreign keys on.
// One connection keeps every query on the same in-memory database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// NewTokenService uses the database blacklist and short test secrets.
func NewTokenService(db *gorm.DB) *authService.TokenService {
	return authService.NewTokenService(
		userRepo.NewUserRepository(db),
		authRepo.NewRefreshTokenRepository(db),
		authRepo.NewDBBlacklist(db),
		authService.TokenConfig{
			AccessSecret:  AccessSecret,
			RefreshSecret: RefreshSecret,
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    24 * time.Hour,
		},
		zap.NewNop(),
	)
}

// Env is a running app over a fresh database.
type Env struct {
	DB     *gorm.DB
	App    *fiber.App
	Tokens *authService.TokenService
}

func NewEnv(t *testing.T) *Env {
	t.Helper()
	db := NewDB(t)
	tokens := NewTokenService(db)
	log := zap.NewNop()

	app := routes.NewApp(log)
	routes.SetupRoutes(app, routes.Deps{
		DB:               db,
		Log:              log,
		Tokens:           tokens,
		CorsAllowOrigins: "*",
		RequestTimeout:   5 * time.Second,
	})
	return &Env{DB: db, App: app, Tokens: tokens}
}

// CreateUser inserts an active user straight through the repository.
func (e *Env) CreateUser(t *testing.T, username, password string) *userModel.UserModel {
	t.Helper()
	req := userDTO.UserRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
		UserType: userModel.UserTypeParent,
	}
	req.Normalize()
	m, err := req.ToModel()
	require.NoError(t, err)
	require.NoError(t, userRepo.NewUserRepository(e.DB).Create(t.Context(), m))
	return m
}

// Login creates a user and returns an access token for it.
func (e *Env) Login(t *testing.T) (string, *userModel.UserModel) {
	t.Helper()
	u := e.CreateUser(t, "caregiver", "secret-pass")
	pair, err := e.Tokens.IssuePair(t.Context(), u, authService.ClientMeta{})
	require.NoError(t, err)
	return pair.Access, u
}

// Do sends a JSON request and returns the status and the raw body.
// body may be nil, a string (sent as is) or any value encoded with sonic.
func (e *Env) Do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := sonic.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

// DoResp is Do for callers that need the response headers.
func (e *Env) DoResp(t *testing.T, method, path string, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Decode unmarshals a response body into a generic map.
func Decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, sonic.Unmarshal(body, &m), string(body))
	return m
}

// DecodeList unmarshals a list response.
func DecodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var m []map[string]any
	require.NoError(t, sonic.Unmarshal(body, &m), string(body))
	return m
}
