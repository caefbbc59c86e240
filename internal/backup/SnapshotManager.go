package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"portfolio/internal/providers"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"slices"
	"strings"
)

const (
	filePrefix = "portfolio-"
	fileSuffix = ".json.zst"
)

// SnapshotManager writes the export document to compressed backup files and
// restores content from them.
type SnapshotManager struct {
	transfer   services.TransferServiceInterface
	compressor storage.CompressorInterface
	logger     providers.Logger
}

func NewSnapshotManager(compressor storage.CompressorInterface, transfer services.TransferServiceInterface, logger providers.Logger) *SnapshotManager {
	return &SnapshotManager{
		compressor: compressor,
		transfer:   transfer,
		logger:     logger,
	}
}

func (f *SnapshotManager) SaveToFile(fileName string) error {
	jsonData, err := f.transfer.ExportJSON()
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	return storage.WriteFileAtomic(fileName, data)
}

// LoadFromFile replaces all content with the snapshot in fileName.
func (f *SnapshotManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	preview, err := f.transfer.Apply(data)
	if err != nil {
		return fmt.Errorf("unable to restore %s: %w", fileName, err)
	}
	f.logger.Warnf(providers.TypeApp, "Restored %s: %d projects, %d skills, %d experiences, %d education",
		fileName, preview.Counts.Projects, preview.Counts.Skills, preview.Counts.Experiences, preview.Counts.Education)
	return nil
}

// List returns the backup files in dir, oldest first.
func (f *SnapshotManager) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	slices.Sort(files)
	return files, nil
}

// Prune removes the oldest backups in dir so that at most keep remain.
func (f *SnapshotManager) Prune(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	files, err := f.List(dir)
	if err != nil {
		return err
	}
	for len(files) > keep {
		if err := os.Remove(files[0]); err != nil && !os.IsNotExist(err) {
			return err
		}
		f.logger.Debugf(providers.TypeApp, "Removed old backup %s", files[0])
		files = files[1:]
	}
	return nil
}
