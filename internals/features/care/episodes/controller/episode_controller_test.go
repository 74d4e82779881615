package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autismcare_backend/internals/testutil"
)

func newProfile(t *testing.T, env *testutil.Env, token string, userID uint) uint {
	t.Helper()
	status, body := env.Do(t, http.MethodPost, "/api/v1/profile/create", map[string]any{
		"user_id":             userID,
		"first_name":          "Ari",
		"last_name":           "Lane",
		"date_of_birth":       "2016-04-02",
		"diagnosis_date":      "2019-09-10",
		"severity":            "Moderate",
		"communication_level": "Verbal",
	}, token)
	require.Equal(t, http.StatusCreated, status, string(body))
	return uint(testutil.Decode(t, body)["id"].(float64))
}

func episodeBody(profileID uint, start, end string) map[string]any {
	return map[string]any{
		"profile_id":   profileID,
		"title":        "Meltdown at the store",
		"description":  "Loud checkout area",
		"start_time":   start,
		"end_time":     end,
		"episode_date": "2024-05-01",
		"severity":     "High",
		"notes":        "Calmed with headphones",
	}
}

func TestCreateEpisode_Duration(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	pid := newProfile(t, env, token, me.ID)

	status, body := env.Do(t, http.MethodPost, "/api/v1/episode/create",
		episodeBody(pid, "2024-05-01T10:00:00Z", "2024-05-01T10:30:00Z"), token)
	require.Equal(t, http.StatusCreated, status, string(body))
	out := testutil.Decode(t, body)
	assert.Equal(t, "30m0s", out["duration"])
	assert.EqualValues(t, 1800, out["duration_seconds"])
	assert.Equal(t, "2024-05-01", out["episode_date"])

	// duration follows the stored times after a full update
	id := uint(out["id"].(float64))
	status, body = env.Do(t, http.MethodPut, fmt.Sprintf("/api/v1/episode/update/%d", id),
		episodeBody(pid, "2024-05-01T10:00:00+02:00", "2024-05-01T11:15:00+02:00"), token)
	require.Equal(t, http.StatusOK, status, string(body))
	out = testutil.Decode(t, body)
	assert.Equal(t, "1h15m0s", out["duration"])

	status, body = env.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/episode/%d", id), nil, token)
	require.Equal(t, http.StatusOK, status)
	out = testutil.Decode(t, body)
	assert.Equal(t, "1h15m0s", out["duration"])
	assert.Equal(t, "2024-05-01T08:00:00Z", out["start_time"])
}

func TestCreateEpisode_Validation(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	pid := newProfile(t, env, token, me.ID)

	status, body := env.Do(t, http.MethodPost, "/api/v1/episode/create",
		episodeBody(pid, "2024-05-01T10:30:00Z", "2024-05-01T10:00:00Z"), token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"end_time":["End time must not be before start time."]}`, string(body))

	b := episodeBody(pid, "2024-05-01T10:00:00Z", "2024-05-01T10:00:00Z")
	b["severity"] = "Extreme"
	status, body = env.Do(t, http.MethodPost, "/api/v1/episode/create", b, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, testutil.Decode(t, body), "severity")

	b = episodeBody(pid, "yesterday", "2024-05-01T10:00:00Z")
	status, body = env.Do(t, http.MethodPost, "/api/v1/episode/create", b, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, testutil.Decode(t, body), "start_time")

	status, body = env.Do(t, http.MethodPost, "/api/v1/episode/create",
		episodeBody(777, "2024-05-01T10:00:00Z", "2024-05-01T10:05:00Z"), token)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Profile not found"}`, string(body))
}

func TestListEpisodes_ProfileFilter(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	p1 := newProfile(t, env, token, me.ID)
	p2 := newProfile(t, env, token, env.CreateUser(t, "other", "pw").ID)

	for _, pid := range []uint{p1, p1, p2} {
		status, body := env.Do(t, http.MethodPost, "/api/v1/episode/create",
			episodeBody(pid, "2024-05-01T10:00:00Z", "2024-05-01T10:10:00Z"), token)
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := env.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/episode?profile_id=%d", p1), nil, token)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DecodeList(t, body), 2)

	status, body = env.Do(t, http.MethodGet, "/api/v1/episode?profile_id=abc", nil, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, testutil.Decode(t, body), "profile_id")

	status, body = env.Do(t, http.MethodGet, "/api/v1/episode", nil, token)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, testutil.DecodeList(t, body), 3)
}
