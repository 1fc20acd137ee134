package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookscollector/internal/collector"
	"github.com/mrlokans/bookscollector/internal/config"
	http_controllers "github.com/mrlokans/bookscollector/internal/http"
	"github.com/mrlokans/bookscollector/internal/readonly"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// SIGKILL cannot be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// NewRouter builds the collector described by cfg and the router serving it.
func NewRouter(cfg *config.Config, version string) (*gin.Engine, error) {
	books, err := collector.NewWithConfig(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to create collector: %w", err)
	}
	log.Printf("Catalog initialized with %d genres (%d age-restricted), titles %d-%d characters",
		len(books.Genres()), len(books.AgeRestrictedGenres()),
		cfg.Catalog.MinTitleLength, cfg.Catalog.MaxTitleLength)

	var readOnly *readonly.Middleware
	if cfg.ReadOnly.Enabled {
		log.Printf("Read-only mode enabled - write operations will be blocked")
		readOnly = readonly.NewMiddleware(true)
	}

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Catalog:            books,
		Favourites:         books,
		Genres:             books,
		Version:            version,
		ReadOnlyMiddleware: readOnly,
	}), nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Books Collector v%s", version)

	router, err := NewRouter(cfg, version)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	Serve(router, cfg)
}
