package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/librarian/internal/config"
	http_controllers "github.com/mrlokans/librarian/internal/http"
	"github.com/mrlokans/librarian/internal/services"
)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) error {
	timeout := cfg.Global.ShutdownTimeout()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info().Dur("timeout", timeout).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("Server exiting")
	return nil
}

// Run opens the catalog, makes sure both tables exist and serves the API.
func Run(cfg *config.Config, version string) error {
	log.Info().Str("version", version).Msg("Starting Librarian")

	catalog, err := services.OpenCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := catalog.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Already logged per table; requests against a missing table fail on their own.
	_ = catalog.Initialize()

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:            catalog.Database,
		Authors:             catalog.Authors,
		Books:               catalog.Books,
		DefaultDeletePolicy: catalog.DeletePolicy,
		Version:             version,
	})

	return Serve(router, cfg)
}
