package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/cinelog/cinelog-server/internal/api"
	"github.com/cinelog/cinelog-server/internal/config"
	"github.com/cinelog/cinelog-server/internal/logger"
	"github.com/cinelog/cinelog-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := api.Services{
		Title:    do.MustInvoke[*service.TitleService](i),
		Genre:    do.MustInvoke[*service.GenreService](i),
		Actor:    do.MustInvoke[*service.ActorService](i),
		Director: do.MustInvoke[*service.DirectorService](i),
		User:     do.MustInvoke[*service.UserService](i),
		Review:   do.MustInvoke[*service.ReviewService](i),
	}

	handler := api.NewServer(services, cfg.CORS, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background.
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
