package main

import (
	auction "auction-engine/internal/auctionService"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/config"
	"auction-engine/internal/notification"
	"auction-engine/internal/repository"
	pgrepo "auction-engine/internal/repository/postgres"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/internal/settlement"
	"auction-engine/utils"
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// stores bundles the three repository facets; both backends implement all of
// them on one value.
type stores struct {
	auctions      repository.AuctionDB
	jobs          repository.JobDB
	notifications repository.NotificationDB
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	gin.SetMode(cfg.GinMode)

	st, err := openStores(cfg)
	if err != nil {
		utils.Fatal("failed to open storage", map[string]any{"error": err.Error()})
	}

	hub := notification.NewHub()
	defer hub.CloseAll()

	processor := settlement.NewProcessor(st.notifications, hub)
	sweeper := scheduler.NewSweeper(st.auctions, st.jobs, processor, cfg.SweepBatchSize)

	biddingSvc := bidding.NewBiddingService(st.auctions, cfg.MinIncrement())
	auctionSvc := auction.NewAuctionService(st.auctions, st.jobs)
	notificationSvc := notification.NewService(st.notifications, cfg.NotificationPageSize)

	// the settlement sweep runs on a cron tick; cadence is a tunable, the
	// scheduler's conditional transitions carry the correctness
	runner := cron.New()
	if _, err := runner.AddFunc(fmt.Sprintf("@every %s", cfg.SweepInterval), func() {
		sweeper.RunSweep(context.Background())
	}); err != nil {
		utils.Fatal("failed to schedule settlement sweep", map[string]any{"error": err.Error()})
	}
	runner.Start()
	defer runner.Stop()

	router := server.SetupRouter(biddingSvc, auctionSvc, notificationSvc, sweeper, hub)

	fmt.Printf("Starting auction server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStores selects the storage backend: Postgres when a DSN is configured,
// otherwise the in-memory repository.
func openStores(cfg config.Config) (stores, error) {
	if cfg.DatabaseDSN == "" {
		utils.Warn("no DATABASE_DSN configured, using in-memory storage", nil)
		mem := repository.NewMemoryRepo(utils.GenerateID)
		return stores{auctions: mem, jobs: mem, notifications: mem}, nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return stores{}, fmt.Errorf("open postgres: %w", err)
	}
	repo := pgrepo.NewRepo(db, utils.GenerateID)
	if err := repo.Migrate(); err != nil {
		return stores{}, fmt.Errorf("migrate schema: %w", err)
	}
	return stores{auctions: repo, jobs: repo, notifications: repo}, nil
}
