package main

import (
	"context"
	"errors"
	"log"
	"time"

	staticcatalog "farmstead/internal/adapter/catalog/static"
	"farmstead/internal/adapter/events/bus"
	httpadapter "farmstead/internal/adapter/http"
	metricsinmem "farmstead/internal/adapter/metrics/inmemory"
	gormrepo "farmstead/internal/adapter/repo/gorm"
	memrepo "farmstead/internal/adapter/repo/memory"
	"farmstead/internal/app/farming"
	"farmstead/internal/app/inventory"
	"farmstead/internal/app/journal"
	"farmstead/internal/app/player"
	"farmstead/internal/app/ports"
	"farmstead/internal/config"
	"farmstead/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	catalog, err := staticcatalog.Load(cfg.CatalogDir)
	if err != nil {
		log.Fatalf("load catalog from %s: %v", cfg.CatalogDir, err)
	}

	repos := mustBuildRepos(cfg, catalog)

	eventBus := bus.New()
	eventBus.SubscribeAll(func(event farm.Event) {
		log.Printf("event %s kind=%s player=%s", event.ID, event.Kind, event.PlayerID)
	})
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		FarmingUC: farming.UseCase{
			TxManager:   repos.txManager,
			Tiles:       repos.tiles,
			Inventories: repos.inventories,
			States:      catalog.TileStates(),
			Crops:       catalog.Crops(),
			Items:       catalog.Items(),
			Events:      repos.events,
			Sink:        eventBus,
			Metrics:     kpiRecorder,
			Now:         time.Now,
		},
		InventoryUC: inventory.UseCase{
			TxManager:   repos.txManager,
			Inventories: repos.inventories,
			Items:       catalog.Items(),
			Events:      repos.events,
			Sink:        eventBus,
			Now:         time.Now,
		},
		PlayerUC: player.UseCase{
			TxManager: repos.txManager,
			Players:   repos.players,
			Events:    repos.events,
			Sink:      eventBus,
			Now:       time.Now,
		},
		JournalUC: journal.UseCase{Events: repos.events},
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	log.Printf("farmstead server listening on %s (seed player: %s)", cfg.HTTPAddr, cfg.SeedPlayerID)
	s.Spin()
}

type repoSet struct {
	tiles       ports.TileRepository
	inventories ports.InventoryRepository
	players     ports.PlayerRepository
	events      ports.EventRepository
	txManager   ports.TxManager
}

func mustBuildRepos(cfg config.Config, catalog *staticcatalog.Catalog) repoSet {
	if cfg.DBDSN == "" {
		log.Println("DB_DSN not set, using in-memory store")
		store := memrepo.NewStore(cfg.InventorySlots)
		store.SeedPlayer(seedPlayer(cfg.SeedPlayerID))
		return repoSet{
			tiles:       memrepo.NewTileRepo(store),
			inventories: memrepo.NewInventoryRepo(store),
			players:     memrepo.NewPlayerRepo(store),
			events:      memrepo.NewEventRepo(store),
			txManager:   memrepo.NewTxManager(store),
		}
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	playerRepo := gormrepo.NewPlayerRepo(db)
	seedID := farm.PlayerID(cfg.SeedPlayerID)
	if _, err := playerRepo.GetPlayer(context.Background(), seedID); errors.Is(err, ports.ErrNotFound) {
		if saveErr := playerRepo.SavePlayer(context.Background(), seedPlayer(cfg.SeedPlayerID)); saveErr != nil {
			log.Fatalf("seed player: %v", saveErr)
		}
	} else if err != nil {
		log.Fatalf("load seed player: %v", err)
	}

	return repoSet{
		tiles:       gormrepo.NewTileRepo(db),
		inventories: gormrepo.NewInventoryRepo(db, catalog.Items(), cfg.InventorySlots),
		players:     playerRepo,
		events:      gormrepo.NewEventRepo(db),
		txManager:   gormrepo.NewTxManager(db),
	}
}

func seedPlayer(id string) farm.Player {
	energy, _ := farm.NewEnergy(100, 100)
	money, _ := farm.NewMoney(500)
	return farm.NewPlayer(farm.PlayerID(id), farm.Position{}, energy, money)
}
