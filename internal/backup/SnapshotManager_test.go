package backup

import (
	"os"
	"path/filepath"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"portfolio/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnapshot(t *testing.T) (*SnapshotManager, services.ContentServiceInterface) {
	t.Helper()
	logger := &testutil.MockLogger{}
	store := storage.NewMemoryStore()
	content := services.NewContentService(store, logger, testutil.NewMockMetrics())

	compressor, err := storage.NewZstdCompressor()
	require.NoError(t, err)
	transfer := services.NewTransferService(content, compressor, logger)

	fm := NewSnapshotManager(compressor, transfer, logger)
	t.Cleanup(compressor.Close)
	return fm, content
}

func addSkill(t *testing.T, content services.ContentServiceInterface, name string) {
	t.Helper()
	_, err := content.AddSkill(models.SkillInput{Name: name, Level: 60, Category: "Backend"})
	require.NoError(t, err)
}

func TestSnapshotManager_SaveToFile_AtomicWrite(t *testing.T) {
	fm, content := newTestSnapshot(t)
	addSkill(t, content, "Go")
	path := filepath.Join(t.TempDir(), "portfolio-1.json.zst")

	require.NoError(t, fm.SaveToFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotManager_SaveThenLoadRestoresContent(t *testing.T) {
	fm, content := newTestSnapshot(t)
	addSkill(t, content, "Go")
	addSkill(t, content, "SQL")
	path := filepath.Join(t.TempDir(), "portfolio-1.json.zst")
	require.NoError(t, fm.SaveToFile(path))

	target, targetContent := newTestSnapshot(t)
	require.NoError(t, target.LoadFromFile(path))

	assert.Equal(t, content.Skills(), targetContent.Skills())
}

func TestSnapshotManager_LoadFromFile_Missing(t *testing.T) {
	fm, _ := newTestSnapshot(t)
	err := fm.LoadFromFile(filepath.Join(t.TempDir(), "nope.json.zst"))
	assert.True(t, os.IsNotExist(err))
}

func TestSnapshotManager_LoadFromFile_Corrupt(t *testing.T) {
	fm, content := newTestSnapshot(t)
	addSkill(t, content, "Go")
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects":[]}`), 0o644))

	err := fm.LoadFromFile(path)
	assert.ErrorIs(t, err, services.ErrImportRejected)
	assert.Len(t, content.Skills(), 1)
}

func TestSnapshotManager_ListAndPrune(t *testing.T) {
	fm, _ := newTestSnapshot(t)
	dir := t.TempDir()
	for _, name := range []string{
		"portfolio-20240101-000000.000.json.zst",
		"portfolio-20240102-000000.000.json.zst",
		"portfolio-20240103-000000.000.json.zst",
		"unrelated.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	files, err := fm.List(dir)
	require.NoError(t, err)
	assert.Len(t, files, 3)

	require.NoError(t, fm.Prune(dir, 2))
	files, err = fm.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "portfolio-20240102-000000.000.json.zst"),
		filepath.Join(dir, "portfolio-20240103-000000.000.json.zst"),
	}, files)

	_, err = os.Stat(filepath.Join(dir, "unrelated.txt"))
	assert.NoError(t, err)
}

func TestSnapshotManager_ListMissingDir(t *testing.T) {
	fm, _ := newTestSnapshot(t)
	files, err := fm.List(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, err)
	assert.Empty(t, files)
}
