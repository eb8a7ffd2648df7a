//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"breathed/internal"
	"breathed/internal/bridge"
	"breathed/internal/controllers"
	"breathed/internal/providers"
	"breathed/internal/repository"
	"breathed/internal/services"
	"breathed/internal/store"
	"breathed/internal/structures"
	"breathed/internal/watcher"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		store.NewZstdCompressor,
		store.NewFileManager,
		wire.Bind(new(services.StatePersister), new(*store.FileManager)),
		store.NewScheduler,

		services.NewSettingsService,
		services.NewInterceptionService,
		services.NewSessionService,
		services.NewFriendService,

		bridge.NewBridge,
		watcher.NewWatcher,

		repository.NewDB,
		repository.NewUserRepository,
		repository.NewFriendRequestRepository,
		repository.NewFriendshipRepository,
		repository.NewNudgeRepository,

		controllers.NewSettingsController,
		controllers.NewAppsController,
		controllers.NewEventsController,
		controllers.NewSessionsController,
		controllers.NewFriendsController,
		controllers.NewHealthController,

		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
