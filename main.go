package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hours-server/config"
	"hours-server/di"
)

func main() {
	// HOURS_CONFIG optionally names a YAML config file.
	cfg, err := config.Load(os.Getenv("HOURS_CONFIG"))
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}

	log.Println("[MAIN] Refreshing venues catalog")
	if _, err := container.VenuesRefresherService.RefreshVenuesData(); err != nil {
		log.Printf("[MAIN] Initial refresh failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container.VenuesRefresherService.StartPeriodicJob(ctx, cfg.Catalog.RefreshInterval)

	if err := container.HoursHttpServer.Run(ctx); err != nil {
		log.Fatalf("[MAIN] %v", err)
	}
}
