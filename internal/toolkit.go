package internal

import (
	"portfolio/internal/backup"
	"portfolio/internal/providers"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"portfolio/internal/structures"
)

// Toolkit bundles what the offline CLI commands need: no HTTP server, no hub.
type Toolkit struct {
	Conf     *structures.Config
	Logger   providers.Logger
	Store    storage.KeyValueStore
	Content  services.ContentServiceInterface
	Transfer services.TransferServiceInterface
	Backups  backup.SchedulerInterface
}

func NewToolkit(
	conf *structures.Config,
	logger providers.Logger,
	store storage.KeyValueStore,
	content services.ContentServiceInterface,
	transfer services.TransferServiceInterface,
	backups backup.SchedulerInterface,
) *Toolkit {
	return &Toolkit{
		Conf:     conf,
		Logger:   logger,
		Store:    store,
		Content:  content,
		Transfer: transfer,
		Backups:  backups,
	}
}

func (t *Toolkit) Close() {
	if err := t.Store.Close(); err != nil {
		t.Logger.Warnf(providers.TypeApp, "Unable to close store: %s", err)
	}
	t.Logger.Close()
}
