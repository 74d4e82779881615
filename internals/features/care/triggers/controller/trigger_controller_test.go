package controller_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	episodeModel "autismcare_backend/internals/features/care/episodes/model"
	profileModel "autismcare_backend/internals/features/care/profiles/model"
	triggerModel "autismcare_backend/internals/features/care/triggers/model"
	"autismcare_backend/internals/softdelete"
	"autismcare_backend/internals/testutil"
)

func create(t *testing.T, env *testutil.Env, token, path string, body map[string]any) uint {
	t.Helper()
	status, raw := env.Do(t, http.MethodPost, path, body, token)
	require.Equal(t, http.StatusCreated, status, string(raw))
	return uint(testutil.Decode(t, raw)["id"].(float64))
}

func profileFor(t *testing.T, env *testutil.Env, token string, userID uint) uint {
	return create(t, env, token, "/api/v1/profile/create", map[string]any{
		"user_id": userID, "first_name": "Ari", "last_name": "Lane",
		"date_of_birth": "2016-04-02", "diagnosis_date": "2019-09-10",
		"severity": "Moderate", "communication_level": "Verbal",
	})
}

func episodeFor(t *testing.T, env *testutil.Env, token string, profileID uint) uint {
	return create(t, env, token, "/api/v1/episode/create", map[string]any{
		"profile_id": profileID, "title": "Episode",
		"start_time": "2024-05-01T10:00:00Z", "end_time": "2024-05-01T10:20:00Z",
		"episode_date": "2024-05-01", "severity": "Low",
	})
}

func triggerBody(profileID uint, episodeID any) map[string]any {
	return map[string]any{
		"profile_id":          profileID,
		"episode_id":          episodeID,
		"trigger_type":        "Noise",
		"description":         "Hand dryer",
		"severity":            "High",
		"management_strategy": "Ear defenders",
	}
}

func TestTrigger_CRUD(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	pid := profileFor(t, env, token, me.ID)
	eid := episodeFor(t, env, token, pid)

	id := create(t, env, token, "/api/v1/trigger/create", triggerBody(pid, eid))

	status, body := env.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/trigger/%d", id), nil, token)
	require.Equal(t, http.StatusOK, status)
	out := testutil.Decode(t, body)
	assert.EqualValues(t, eid, out["episode_id"])
	assert.Equal(t, "Noise", out["trigger_type"])

	// full replace: leaving episode_id out clears it
	b := triggerBody(pid, nil)
	delete(b, "episode_id")
	status, body = env.Do(t, http.MethodPut, fmt.Sprintf("/api/v1/trigger/update/%d", id), b, token)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Nil(t, testutil.Decode(t, body)["episode_id"])

	status, _ = env.Do(t, http.MethodDelete, fmt.Sprintf("/api/v1/trigger/delete/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, status)
	status, body = env.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/trigger/%d", id), nil, token)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Trigger not found"}`, string(body))
}

func TestTrigger_EpisodeMustBelongToProfile(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	p1 := profileFor(t, env, token, me.ID)
	p2 := profileFor(t, env, token, env.CreateUser(t, "other", "pw").ID)
	foreign := episodeFor(t, env, token, p2)

	status, body := env.Do(t, http.MethodPost, "/api/v1/trigger/create", triggerBody(p1, foreign), token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"episode_id":["Episode does not belong to this profile."]}`, string(body))

	status, body = env.Do(t, http.MethodPost, "/api/v1/trigger/create", triggerBody(p1, 9999), token)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Episode not found"}`, string(body))
}

func TestTrigger_SoftDeletedParentLeavesChildVisible(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	pid := profileFor(t, env, token, me.ID)
	id := create(t, env, token, "/api/v1/trigger/create", triggerBody(pid, nil))

	status, _ := env.Do(t, http.MethodDelete, fmt.Sprintf("/api/v1/profile/delete/%d", pid), nil, token)
	require.Equal(t, http.StatusOK, status)

	status, _ = env.Do(t, http.MethodGet, fmt.Sprintf("/api/v1/trigger/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, status)

	// but new writes against the deleted profile are refused
	status, body := env.Do(t, http.MethodPost, "/api/v1/trigger/create", triggerBody(pid, nil), token)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Profile not found"}`, string(body))
}

// Physical deletes follow the foreign keys: the optional episode link is
// cleared, removing the profile removes its triggers.
func TestTrigger_HardDeleteOfParents(t *testing.T) {
	env := testutil.NewEnv(t)
	token, me := env.Login(t)
	pid := profileFor(t, env, token, me.ID)
	eid := episodeFor(t, env, token, pid)
	id := create(t, env, token, "/api/v1/trigger/create", triggerBody(pid, eid))

	ctx := context.Background()
	triggers := softdelete.NewGormRepository[triggerModel.TriggerModel](env.DB)

	require.NoError(t, softdelete.NewGormRepository[episodeModel.EpisodeModel](env.DB).HardDelete(ctx, eid))
	got, err := triggers.Find(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.EpisodeID)

	require.NoError(t, softdelete.NewGormRepository[profileModel.ProfileModel](env.DB).HardDelete(ctx, pid))
	_, err = triggers.FindIncludingDeleted(ctx, id)
	assert.ErrorIs(t, err, softdelete.ErrNotFound)
}
