package controller_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"autismcare_backend/internals/features/users/user/repository"
	"autismcare_backend/internals/testutil"
)

func TestCreateUser_Public(t *testing.T) {
	env := testutil.NewEnv(t)

	status, body := env.Do(t, http.MethodPost, "/api/v1/user/create", map[string]any{
		"username":  "a",
		"email":     "a@x.com",
		"password":  "p",
		"user_type": "parent",
	}, "")
	require.Equal(t, http.StatusCreated, status, string(body))

	out := testutil.Decode(t, body)
	assert.Equal(t, "a", out["username"])
	assert.Equal(t, "a@x.com", out["email"])
	assert.Equal(t, "parent", out["user_type"])
	assert.Equal(t, true, out["is_active"])
	assert.NotContains(t, out, "password")
	assert.NotContains(t, out, "is_deleted")

	u, err := repository.NewUserRepository(env.DB).FindByLogin(context.Background(), "a")
	require.NoError(t, err)
	assert.NotEqual(t, "p", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("p")))
}

func TestCreateUser_Validation(t *testing.T) {
	env := testutil.NewEnv(t)
	env.CreateUser(t, "taken", "pw")

	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing email", map[string]any{"username": "b", "password": "p"}, "email"},
		{"bad email", map[string]any{"username": "b", "email": "nope", "password": "p"}, "email"},
		{"bad user type", map[string]any{"username": "b", "email": "b@x.com", "password": "p", "user_type": "admin"}, "user_type"},
		{"bad username", map[string]any{"username": "b c", "email": "b@x.com", "password": "p"}, "username"},
		{"duplicate username", map[string]any{"username": "taken", "email": "new@x.com", "password": "p"}, "username"},
		{"duplicate email", map[string]any{"username": "fresh", "email": "TAKEN@example.com", "password": "p"}, "email"},
		{"read-only id", map[string]any{"id": 9, "username": "b", "email": "b@x.com", "password": "p"}, "id"},
		{"password too long", map[string]any{"username": "b", "email": "b@x.com", "password": strings.Repeat("a", 100)}, "password"},
		// 30 characters but 90 bytes, past the bcrypt limit
		{"password too many bytes", map[string]any{"username": "b", "email": "b@x.com", "password": strings.Repeat("日", 30)}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.Do(t, http.MethodPost, "/api/v1/user/create", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, status, string(body))
			assert.Contains(t, testutil.Decode(t, body), tt.field)
		})
	}
}

func TestUserEndpoints_RequireAuth(t *testing.T) {
	env := testutil.NewEnv(t)

	status, body := env.Do(t, http.MethodGet, "/api/v1/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Authentication credentials were not provided."}`, string(body))
}

func TestUpdateUser_WholeRecord(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	other := env.CreateUser(t, "other", "pw")

	path := fmt.Sprintf("/api/v1/user/update/%d", other.ID)
	status, body := env.Do(t, http.MethodPut, path, map[string]any{
		"username": "renamed",
		"email":    "renamed@x.com",
		"password": "new-pass",
	}, token)
	require.Equal(t, http.StatusOK, status, string(body))
	out := testutil.Decode(t, body)
	assert.Equal(t, "renamed", out["username"])
	// user_type was omitted, so it falls back to the default
	assert.Equal(t, "autistic", out["user_type"])

	// another user's username is rejected
	status, body = env.Do(t, http.MethodPut, path, map[string]any{
		"username": me.Username,
		"email":    "renamed@x.com",
		"password": "new-pass",
	}, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, testutil.Decode(t, body), "username")

	// a partial body is not a patch
	status, body = env.Do(t, http.MethodPut, path, map[string]any{"username": "only"}, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, testutil.Decode(t, body), "password")
}

func TestDeleteUser_Soft(t *testing.T) {
	env := testutil.NewEnv(t)
	token, _ := env.Login(t)
	victim := env.CreateUser(t, "victim", "pw")

	status, body := env.Do(t, http.MethodDelete, fmt.Sprintf("/api/v1/user/delete/%d", victim.ID), nil, token)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.JSONEq(t, `{"message":"User soft-deleted successfully"}`, string(body))

	status, body = env.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/user/%d", victim.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"User not found"}`, string(body))

	status, _ = env.Do(t, http.MethodDelete, fmt.Sprintf("/api/v1/user/delete/%d", victim.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, status)

	got, err := repository.NewUserRepository(env.DB).FindIncludingDeleted(context.Background(), victim.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	status, body = env.Do(t, http.MethodGet, "/api/v1/user", nil, token)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DecodeList(t, body), 1)
}

func TestDeletedUserTokenStopsWorking(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)

	status, _ := env.Do(t, http.MethodGet, "/api/v1/user", nil, token)
	require.Equal(t, http.StatusOK, status)

	require.NoError(t, repository.NewUserRepository(env.DB).SoftDelete(context.Background(), me.ID))

	status, body := env.Do(t, http.MethodGet, "/api/v1/user", nil, token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Given token not valid for any token type"}`, string(body))
}

func TestGetUser_InvalidID(t *testing.T) {
	env := testutil.NewEnv(t)
	token, _ := env.Login(t)

	status, body := env.Do(t, http.MethodGet, "/api/v1/user/abc", nil, token)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"User not found"}`, string(body))
}
