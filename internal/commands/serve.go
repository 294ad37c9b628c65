package commands

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"userposts-api/internal/config"
	"userposts-api/internal/model"
	"userposts-api/internal/server"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log.Printf("config: listen=%s database=%s", cfg.ListenAddr, databaseLabel(cfg))

			db, err := getDB(cfg)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}

			srv := &http.Server{
				Addr:         cfg.ListenAddr,
				Handler:      server.New(cfg, db),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			// Graceful shutdown on SIGINT / SIGTERM.
			done := make(chan os.Signal, 1)
			signal.Notify(done, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				log.Printf("listening on %s", cfg.ListenAddr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server error: %w", err)
			case <-done:
			}

			log.Println("shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("graceful shutdown error: %w", err)
			}

			log.Println("server stopped")
			return nil
		},
	}
}

func databaseLabel(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return "postgres"
	}
	return "sqlite:" + cfg.SqlitePath
}
