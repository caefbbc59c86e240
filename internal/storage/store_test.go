package storage

import (
	"path/filepath"
	"portfolio/internal/providers"
	"portfolio/internal/structures"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeTestLogger struct{}

func (m *storeTestLogger) Errorf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *storeTestLogger) Warnf(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *storeTestLogger) Debugf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *storeTestLogger) Infof(_ providers.TypeEnum, _ string, _ ...interface{})  {}
func (m *storeTestLogger) Fatalf(_ providers.TypeEnum, _ string, _ ...interface{}) {}
func (m *storeTestLogger) Close()                                                  {}

func TestNewKeyValueStore_File(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	conf := &structures.Config{Storage: structures.StorageConfig{Driver: "file", Dir: filepath.Join(t.TempDir(), "kv")}}

	kv, err := NewKeyValueStore(conf, &storeTestLogger{}, comp)
	require.NoError(t, err)
	fs, ok := kv.(*FileStore)
	require.True(t, ok)
	assert.Nil(t, fs.compressor, "compression is off unless configured")
}

func TestNewKeyValueStore_FileCompressed(t *testing.T) {
	comp, err := NewZstdCompressor()
	require.NoError(t, err)
	conf := &structures.Config{Storage: structures.StorageConfig{Driver: "file", Dir: t.TempDir(), Compress: true}}

	kv, err := NewKeyValueStore(conf, &storeTestLogger{}, comp)
	require.NoError(t, err)
	assert.NotNil(t, kv.(*FileStore).compressor)
}

func TestNewKeyValueStore_Redis(t *testing.T) {
	srv := miniredis.RunT(t)
	conf := &structures.Config{
		Storage: structures.StorageConfig{Driver: "redis"},
		Redis:   structures.RedisConfig{Addr: srv.Addr()},
	}

	kv, err := NewKeyValueStore(conf, &storeTestLogger{}, nil)
	require.NoError(t, err)
	defer kv.Close()
	assert.IsType(t, &RedisStore{}, kv)
}

func TestNewKeyValueStore_Memory(t *testing.T) {
	conf := &structures.Config{Storage: structures.StorageConfig{Driver: "memory"}}
	kv, err := NewKeyValueStore(conf, &storeTestLogger{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)
}

func TestNewKeyValueStore_UnknownDriver(t *testing.T) {
	conf := &structures.Config{Storage: structures.StorageConfig{Driver: "etcd"}}
	_, err := NewKeyValueStore(conf, &storeTestLogger{}, nil)
	assert.Error(t, err)
}
