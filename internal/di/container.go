// Package di provides dependency injection configuration for the catalog server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/cinelog/cinelog-server/internal/config"
	"github.com/cinelog/cinelog-server/internal/di/providers"
	"github.com/cinelog/cinelog-server/internal/logger"
	"github.com/cinelog/cinelog-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideHasher)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideTitleService)
	do.Provide(injector, providers.ProvideGenreService)
	do.Provide(injector, providers.ProvideActorService)
	do.Provide(injector, providers.ProvideDirectorService)
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideReviewService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)

	_ = do.MustInvoke[*service.TitleService](injector)
	_ = do.MustInvoke[*service.GenreService](injector)
	_ = do.MustInvoke[*service.ActorService](injector)
	_ = do.MustInvoke[*service.DirectorService](injector)
	_ = do.MustInvoke[*service.UserService](injector)
	_ = do.MustInvoke[*service.ReviewService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
