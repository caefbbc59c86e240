//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"portfolio/internal"
	"portfolio/internal/backup"
	"portfolio/internal/controllers"
	"portfolio/internal/providers"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"portfolio/internal/structures"
	"portfolio/internal/ws"
)

var storeSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,

	storage.NewZstdCompressor,
	storage.NewKeyValueStore,
	services.NewContentService,
	services.NewTransferService,
	backup.NewSnapshotManager,
	backup.NewScheduler,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		storeSet,
		providers.NewInstrumentedCacheProvider,

		services.NewAuthService,
		services.NewContactService,
		ws.NewHub,
		ws.NewHandler,
		controllers.NewApiController,
		controllers.NewAdminController,
		controllers.NewAuthController,
		controllers.NewContactController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitToolkit(cfg *structures.CliFlags) (*internal.Toolkit, error) {

	wire.Build(
		storeSet,
		internal.NewToolkit,
	)

	return nil, nil
}
