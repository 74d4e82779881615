package seeds_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	schoolRepo "autismcare_backend/internals/features/schools/schools/repository"
	therapistRepo "autismcare_backend/internals/features/schools/therapists/repository"
	"autismcare_backend/internals/seeds"
	"autismcare_backend/internals/softdelete"
	"autismcare_backend/internals/testutil"
)

func TestRunFromFile_Idempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	log := zap.NewNop()

	res, err := seeds.RunFromFile(ctx, db, "data_seed.json", log)
	require.NoError(t, err)
	assert.Equal(t, seeds.Result{Schools: 1, Therapists: 2, Users: 1}, res)

	res, err = seeds.RunFromFile(ctx, db, "data_seed.json", log)
	require.NoError(t, err)
	assert.Equal(t, seeds.Result{}, res)

	school, err := schoolRepo.NewSchoolRepository(db).FindByName(ctx, "bright steps learning center")
	require.NoError(t, err)
	linked, err := therapistRepo.NewTherapistRepository(db).FindByNameAndSchool(ctx, "Dana Lee", &school.ID)
	require.NoError(t, err)
	assert.Equal(t, "Speech and language therapy", linked.Specialization)

	_, err = therapistRepo.NewTherapistRepository(db).FindByNameAndSchool(ctx, "Sam Ortiz", nil)
	require.NoError(t, err)
}

func TestRunFromFile_SkipsInvalidRows(t *testing.T) {
	db := testutil.NewDB(t)
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"schools": [{"name": ""}, {"name": "Oak", "ratio": "bad"}],
		"therapists": [{"name": "Lost", "specialization": "OT", "school": "Nowhere"}],
		"users": [{"username": "x y", "email": "x@y.com", "password": "p"}]
	}`), 0o600))

	res, err := seeds.RunFromFile(context.Background(), db, path, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, seeds.Result{}, res)

	_, err = schoolRepo.NewSchoolRepository(db).FindByName(context.Background(), "Oak")
	assert.ErrorIs(t, err, softdelete.ErrNotFound)
}

func TestRunFromFile_Errors(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := seeds.RunFromFile(context.Background(), db, "does-not-exist.json", zap.NewNop())
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"schools": [`), 0o600))
	_, err = seeds.RunFromFile(context.Background(), db, path, zap.NewNop())
	assert.Error(t, err)
}
