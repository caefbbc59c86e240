package providers

import (
	"os"
	"path/filepath"
	"portfolio/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeRead, GetLogTypeByRequestType("GET"))
	assert.Equal(t, TypeRead, GetLogTypeByRequestType("HEAD"))
}

func TestGetLogTypeByRequestType_Mutations(t *testing.T) {
	assert.Equal(t, TypeWrite, GetLogTypeByRequestType("POST"))
	assert.Equal(t, TypeWrite, GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeWrite, GetLogTypeByRequestType("DELETE"))
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeRead, "filtered by level")
	logger.Warnf(TypeWrite, "write message")
	logger.Close()

	for _, name := range []string{"app.log", "read.log", "write.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message")

	data, err = os.ReadFile(filepath.Join(dir, "read.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered by level")
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/nonexistent/directory/path",
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "verbose",
			Mode:  0644,
			Dir:   t.TempDir(),
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
