package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailtriage/internal/domain/email"
	"mailtriage/internal/infrastructure/persistence/sqlite"
)

func newTestRepository(t *testing.T) *sqlite.ResultRepository {
	t.Helper()

	repo, err := sqlite.NewResultRepository(filepath.Join(t.TempDir(), "triage.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	return repo
}

func TestResultRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	processed, err := repo.AlreadyProcessed(ctx, "001")
	require.NoError(t, err)
	assert.False(t, processed)

	res := email.NewSuccessResult("001", email.CategoryComplaint, "We're sorry...")
	require.NoError(t, repo.Save(ctx, res))

	got, err := repo.GetByEmailID(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, res, got)

	processed, err = repo.AlreadyProcessed(ctx, "001")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestResultRepositorySaveReplacesExisting(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, email.NewSuccessResult("002", email.CategoryInquiry, "Hi!")))
	require.NoError(t, repo.Save(ctx, email.NewFailureResult("002")))

	got, err := repo.GetByEmailID(ctx, "002")
	require.NoError(t, err)
	assert.Equal(t, email.NewFailureResult("002"), got)
}

func TestResultRepositoryGetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByEmailID(context.Background(), "999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result not found")
}
