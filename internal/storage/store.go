// Package storage holds the persistent key-value store that mirrors the
// content categories, one serialized JSON value per key.
package storage

import (
	"errors"
	"fmt"
	"portfolio/internal/providers"
	"portfolio/internal/structures"
)

const (
	KeyProjects    = "portfolioProjects"
	KeySkills      = "portfolioSkills"
	KeyExperiences = "portfolioExperiences"
	KeyEducation   = "portfolioEducation"
	KeyAbout       = "portfolioAbout"
	KeyAdminUser   = "portfolio_admin_user"
)

// ContentKeys lists the keys that hold portfolio content, in hydration order.
var ContentKeys = []string{KeyProjects, KeySkills, KeyExperiences, KeyEducation, KeyAbout}

var (
	ErrNotFound         = errors.New("key not found")
	ErrInvalidKey       = errors.New("invalid key")
	ErrStoreUnavailable = errors.New("store unavailable")
)

type KeyValueStore interface {
	// Get returns ErrNotFound when the key has never been written or was deleted.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete is idempotent.
	Delete(key string) error
	Close() error
}

// NewKeyValueStore picks the driver named in the storage config.
func NewKeyValueStore(conf *structures.Config, logger providers.Logger, compressor CompressorInterface) (KeyValueStore, error) {
	switch conf.Storage.Driver {
	case "file":
		if !conf.Storage.Compress {
			compressor = nil
		}
		logger.Infof(providers.TypeApp, "Using file storage in %s (compress=%t)", conf.Storage.Dir, conf.Storage.Compress)
		return NewFileStore(conf.Storage.Dir, compressor)
	case "redis":
		logger.Infof(providers.TypeApp, "Using redis storage at %s", conf.Redis.Addr)
		return NewRedisStore(conf.Redis)
	case "memory":
		logger.Warnf(providers.TypeApp, "Using in-memory storage, content will not survive a restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
