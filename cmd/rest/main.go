package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/bootstrap"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/config"
	"github.com/kavia-common/personal-notes-manager-24022-24060/internal/server"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (selects the storage provider once)
	container, err := bootstrap.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap application: %v", err)
	}

	// 3. Initialize Server
	srv := server.New(cfg, container)

	// 4. Graceful shutdown on SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		container.Logger.Warn("main", "Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		if err := srv.Shutdown(); err != nil {
			container.Logger.Error("main", "Server shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		if err := container.Provider.Close(context.Background()); err != nil {
			container.Logger.Error("main", "Provider close failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// 5. Run Server
	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
