package vehicles

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileRepo(t *testing.T) (*FileRepository, string) {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "vehicles.json")
	seedPath := filepath.Join(dir, "vehicles.seed.json")
	return NewFileRepository(dataPath, seedPath), dir
}

func TestFileRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	ctx := context.Background()

	fleet := []Vehicle{
		{ID: "A1B2C3D4", LicensePlate: "ABC-123", Status: StatusAvailable, CreatedAt: "2025-01-15T09:30:00Z"},
		{ID: "E5F6G7H8", LicensePlate: "DEF-456", Status: StatusInUse, CreatedAt: "2025-01-16T10:00:00Z"},
	}
	require.NoError(t, repo.WriteAll(ctx, fleet))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, fleet, got)
}

func TestFileRepository_MissingFileIsEmptyFleet(t *testing.T) {
	repo, _ := newTestFileRepo(t)

	fleet, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, fleet)
	assert.Empty(t, fleet)
}

func TestFileRepository_CorruptFileIsEmptyFleet(t *testing.T) {
	repo, dir := newTestFileRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vehicles.json"), []byte("{not json"), 0o644))

	fleet, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fleet)
}

func TestFileRepository_WriteLeavesNoTempFiles(t *testing.T) {
	repo, dir := newTestFileRepo(t)
	require.NoError(t, repo.WriteAll(context.Background(), []Vehicle{{ID: "A1B2C3D4", LicensePlate: "ABC-123", Status: StatusAvailable}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "vehicles.json", entries[0].Name())
}

func TestFileRepository_ResetFromSeed(t *testing.T) {
	repo, dir := newTestFileRepo(t)
	ctx := context.Background()

	seed := `[{"id":"A1B2C3D4","licensePlate":"ABC-123","status":"Available","createdAt":"2025-01-15T09:30:00Z"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vehicles.seed.json"), []byte(seed), 0o644))

	require.NoError(t, repo.WriteAll(ctx, []Vehicle{{ID: "ZZZZZZZZ", LicensePlate: "ZZZ-999", Status: StatusAvailable}}))
	require.NoError(t, repo.ResetFromSeed(ctx))

	fleet, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, fleet, 1)
	assert.Equal(t, "A1B2C3D4", fleet[0].ID)
}

func TestFileRepository_ResetFromSeed_MissingSeedFails(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	assert.Error(t, repo.ResetFromSeed(context.Background()))
}

func TestFileRepository_Ping(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	assert.NoError(t, repo.Ping())

	bad := NewFileRepository("/nonexistent/dir/vehicles.json", "/nonexistent/dir/seed.json")
	assert.Error(t, bad.Ping())
}

func TestFileRepository_CanceledContext(t *testing.T) {
	repo, _ := newTestFileRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ReadAll(ctx)
	assert.Error(t, err)
	assert.Error(t, repo.WriteAll(ctx, nil))
}
