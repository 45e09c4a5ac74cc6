package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/circulo-sport/courtdesk/api"
	bk "github.com/circulo-sport/courtdesk/booking"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/catalog"
	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/config"
	"github.com/circulo-sport/courtdesk/customer"
	"github.com/circulo-sport/courtdesk/discord"
	"github.com/circulo-sport/courtdesk/events"
	"github.com/circulo-sport/courtdesk/export"
	"github.com/circulo-sport/courtdesk/shiftclose"
	"github.com/circulo-sport/courtdesk/store"

	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	logger := slog.Default().With("component", "main")

	cfg, err := config.Load()

	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := openStore(ctx, cfg, logger)

	if err != nil {
		logger.Error("unable to open store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}

	defer closeStore()

	loc := cfg.Location()
	keys := store.NewKeys(cfg.KeyPrefix)
	clk := clock.SystemClock{Location: loc}
	bus := events.NewBus(64)

	catalogService := catalog.NewService(store.NewCollection(kv, keys.Extras, catalog.ExtraID))
	cashService := cash.NewService(store.NewCollection(kv, keys.Ledger, cash.EntryID), clk, bus, loc)
	bookingRepo := bk.NewRepository(store.NewCollection(kv, keys.Bookings, bk.ID))
	bookingService := bk.NewService(bookingRepo, cashService, catalogService, clk, bus)
	customerService := customer.NewService(store.NewCollection(kv, keys.Customers, customer.ID), clk)
	closeService := shiftclose.NewService(store.NewCollection(kv, keys.Closes, shiftclose.ID), cashService, bookingService, catalogService, clk, bus, loc)
	backupService := export.NewService(kv, keys, clk, bus, loc)

	// BACKUP REMINDER

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))

	if err != nil {
		logger.Error("failed to create scheduler", "err", err)
		os.Exit(1)
	}

	if _, err := export.ScheduleReminder(scheduler, backupService, cfg.BackupCheckInterval); err != nil {
		logger.Error("failed to schedule backup reminder", "err", err)
		os.Exit(1)
	}

	scheduler.Start()

	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			logger.Error("failed to stop scheduler", "err", err)
		}
	}()

	// DISCORD NOTIFICATIONS

	if cfg.DiscordBotToken != "" && cfg.DiscordChannelID != "" {
		notifier := discord.NewNotifier(discord.NewClient(cfg.DiscordBotToken), cfg.DiscordChannelID, loc)
		sub, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		go notifier.Run(ctx, sub)
		logger.Info("discord notifications enabled", "channelId", cfg.DiscordChannelID)
	}

	// API

	api.RegisterValidators()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	pin := api.DeskPIN(cfg.DeskPIN)
	v1 := r.Group("/api/v1")

	api.NewBookingHandler(bookingService, pin).Register(v1.Group("/bookings"))
	api.NewCustomerHandler(customerService).Register(v1.Group("/customers"))
	api.NewCatalogHandler(catalogService).Register(v1)
	api.NewCashHandler(cashService, pin).Register(v1.Group("/cash"))
	api.NewCloseHandler(closeService, clk).Register(v1.Group("/closes"))
	api.NewExportHandler(backupService, bookingService, customerService, cashService, catalogService, clk, pin).Register(v1)
	api.NewEventsHandler(bus).Register(v1)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down http server", "err", err)
		}
	}()

	logger.Info("listening", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver, "tz", loc.String())

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server stopped", "err", err)
	}
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.KV, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn("using the in-memory store, data is lost on exit")
		return store.NewMemory(), func() {}, nil
	case "sqlite":
		logger.Info("opening SQLite database", "path", cfg.SQLitePath)
		db, err := store.OpenSQLite(cfg.SQLitePath)

		if err != nil {
			return nil, nil, err
		}

		return store.NewCached(db, cfg.CacheTTL), func() { db.Close() }, nil
	case "postgres":
		logger.Info("connecting to PostgreSQL database")
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to database: %w", err)
		}

		if _, err := pool.Exec(ctx, setupSQL); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to initialize tables: %w", err)
		}

		logger.Info("initialized database tables")

		return store.NewCached(store.NewPostgres(pool), cfg.CacheTTL), pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver '%v'", cfg.StoreDriver)
}
