package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps one file per key under dir. Writes go through a temp file
// and rename so a crash never leaves a half-written value behind.
type FileStore struct {
	dir        string
	compressor CompressorInterface
	mu         sync.Mutex
}

func NewFileStore(dir string, compressor CompressorInterface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create storage dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, compressor: compressor}, nil
}

func (f *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	name := key + ".json"
	if f.compressor != nil {
		name += ".zst"
	}
	return filepath.Join(f.dir, name), nil
}

func (f *FileStore) Get(key string) ([]byte, error) {
	path, err := f.path(key)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if f.compressor == nil {
		return data, nil
	}
	return f.compressor.Decompress(data)
}

func (f *FileStore) Set(key string, value []byte) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	data := value
	if f.compressor != nil {
		data, err = f.compressor.Compress(value)
		if err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return WriteFileAtomic(path, data)
}

func (f *FileStore) Delete(key string) error {
	path, err := f.path(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileStore) Close() error {
	if f.compressor != nil {
		f.compressor.Close()
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file, syncs it and renames it
// over fileName, so readers never see a partial file.
func WriteFileAtomic(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
