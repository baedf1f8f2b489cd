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

	"github.com/ldumont/sqlvsorm/internal/config"
	"github.com/ldumont/sqlvsorm/internal/database"
	"github.com/ldumont/sqlvsorm/internal/database/authors"
	"github.com/ldumont/sqlvsorm/internal/database/books"
	http_controllers "github.com/ldumont/sqlvsorm/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
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

func Run(cfg *config.Config, version string) {
	log.Printf("Starting sqlvsorm v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path, cfg.Database.LogSQL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Seeding runs to completion before the server accepts traffic, so
	// it cannot race with request handling.
	if err := db.SeedIfEmpty(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:    db,
		AuthorStore: authors.NewRepository(db.DB),
		BookStore:   books.NewRepository(db.DB),
		Version:     version,
	})

	Serve(router, cfg)
}
