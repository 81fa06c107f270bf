package providers

import (
	"github.com/samber/do/v2"

	"github.com/cinelog/cinelog-server/internal/auth"
	"github.com/cinelog/cinelog-server/internal/logger"
	"github.com/cinelog/cinelog-server/internal/service"
)

// ProvideHasher provides the password hasher.
func ProvideHasher(i do.Injector) (auth.Hasher, error) {
	return auth.NewArgon2Hasher(), nil
}

// ProvideTitleService provides the title service.
func ProvideTitleService(i do.Injector) (*service.TitleService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewTitleService(storeHandle.Store, log.Logger), nil
}

// ProvideGenreService provides the genre service.
func ProvideGenreService(i do.Injector) (*service.GenreService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewGenreService(storeHandle.Store, log.Logger), nil
}

// ProvideActorService provides the actor service.
func ProvideActorService(i do.Injector) (*service.ActorService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewActorService(storeHandle.Store, log.Logger), nil
}

// ProvideDirectorService provides the director service.
func ProvideDirectorService(i do.Injector) (*service.DirectorService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewDirectorService(storeHandle.Store, log.Logger), nil
}

// ProvideUserService provides the user service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	hasher := do.MustInvoke[auth.Hasher](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewUserService(storeHandle.Store, hasher, log.Logger), nil
}

// ProvideReviewService provides the review service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewReviewService(storeHandle.Store, log.Logger), nil
}
