package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	auction "card-auction/internal/auctionEngine"
	catalog "card-auction/internal/catalogService"
	"card-auction/internal/config"
	"card-auction/internal/identity"
	"card-auction/internal/notifier"
	"card-auction/internal/repository"
	"card-auction/internal/server"
	"card-auction/utils"
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.LogLevel)

	db, err := repository.OpenDB(cfg.DBDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := repository.NewSQLRepo(db)
	registry := notifier.NewLiveRegistry()
	dispatcher := notifier.NewDispatcher(repo, registry)
	resolver := identity.NewProfileResolver(repo)

	engine := auction.NewAuctionEngine(repo, dispatcher, resolver, cfg.PageSize)
	catalogSvc := catalog.NewCatalogService(repo, resolver)

	sweeper := auction.NewSweeper(engine, cfg.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	router := server.SetupRouter(engine, catalogSvc, registry)

	// Stop the sweeper cleanly on SIGINT/SIGTERM.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		sweeper.Stop()
		os.Exit(0)
	}()

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// configPath returns the config file location from env or the default.
func configPath() string {
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		return p
	}
	return "config.toml"
}
