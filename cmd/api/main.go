package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	adjustmentStore "github.com/MrJamesThe3rd/mikropanel/internal/adjustment/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	clientStore "github.com/MrJamesThe3rd/mikropanel/internal/client/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	closingStore "github.com/MrJamesThe3rd/mikropanel/internal/closing/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	collectionStore "github.com/MrJamesThe3rd/mikropanel/internal/collection/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/config"
	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/events"
	"github.com/MrJamesThe3rd/mikropanel/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/mikropanel/internal/expense/store"
	mikroHttp "github.com/MrJamesThe3rd/mikropanel/internal/http"
	adjustmentHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/adjustment"
	clientHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/client"
	closingHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/closing"
	collectionHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/collection"
	expenseHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/expense"
	inventoryHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/inventory"
	remittanceHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/remittance"
	reportHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/report"
	sessionHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/session"
	shipmentHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/shipment"
	userHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/user"
	zoneHandler "github.com/MrJamesThe3rd/mikropanel/internal/http/zone"
	"github.com/MrJamesThe3rd/mikropanel/internal/importer"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	inventoryStore "github.com/MrJamesThe3rd/mikropanel/internal/inventory/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/lock"
	"github.com/MrJamesThe3rd/mikropanel/internal/metrics"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/remittance"
	remittanceStore "github.com/MrJamesThe3rd/mikropanel/internal/remittance/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/report"
	"github.com/MrJamesThe3rd/mikropanel/internal/scheduler"
	"github.com/MrJamesThe3rd/mikropanel/internal/shipment"
	shipmentStore "github.com/MrJamesThe3rd/mikropanel/internal/shipment/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/user"
	userStore "github.com/MrJamesThe3rd/mikropanel/internal/user/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
	zoneStore "github.com/MrJamesThe3rd/mikropanel/internal/zone/store"
)

const lockWait = 5 * time.Second

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	locker, err := newLocker(ctx, cfg)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var (
		m       = metrics.New(reg)
		broker  = events.NewBroker()
		billing = cfg.Billing
	)

	var (
		userService       = user.NewService(userStore.New(db))
		zoneService       = zone.NewService(zoneStore.New(db))
		clientService     = client.NewService(clientStore.New(db), billing.CycleDay)
		importService     = importer.NewService(clientService)
		inventoryService  = inventory.NewService(inventoryStore.New(db), money.FromDecimal(billing.RouterFee))
		adjustmentService = adjustment.NewService(adjustmentStore.New(db))
		collectionService = collection.NewService(collectionStore.New(db))
		remittanceService = remittance.NewService(remittanceStore.New(db))
		shipmentService   = shipment.NewService(shipmentStore.New(db), locker)
		expenseService    = expense.NewService(expenseStore.New(db))
		closingService    = closing.NewService(closingStore.New(db), billing.Closing())
		reportService     = report.NewService(collectionService, adjustmentService, closingService)
	)

	created, err := userService.EnsureBootstrap(ctx, cfg.Auth.BootstrapUser, cfg.Auth.BootstrapPassword)
	if err != nil {
		return fmt.Errorf("bootstrapping owner: %w", err)
	}

	if created {
		slog.Info("created bootstrap owner", "username", cfg.Auth.BootstrapUser)
	}

	authenticator := auth.NewAuthenticator(auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL), cfg.IsProduction())

	handlers := mikroHttp.Handlers{
		Session:     sessionHandler.NewHandler(userService, authenticator),
		Users:       userHandler.NewHandler(userService),
		Zones:       zoneHandler.NewHandler(zoneService),
		Clients:     clientHandler.NewHandler(clientService, zoneService, importService),
		Inventory:   inventoryHandler.NewHandler(inventoryService),
		Adjustments: adjustmentHandler.NewHandler(adjustmentService),
		Collection:  collectionHandler.NewHandler(collectionService),
		Closing:     closingHandler.NewHandler(closingService, m),
		Remittance:  remittanceHandler.NewHandler(remittanceService),
		Shipments:   shipmentHandler.NewHandler(shipmentService, m),
		Expenses:    expenseHandler.NewHandler(expenseService),
		Reports:     reportHandler.NewHandler(reportService),
	}

	router := mikroHttp.New(handlers, authenticator, broker, m, mikroHttp.Options{
		CORSOrigins: cfg.Server.CORSOrigins,
		Timeout:     cfg.Server.Timeout,
	})

	if cfg.Scheduler.Enabled {
		loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
		if err != nil {
			return fmt.Errorf("loading scheduler timezone: %w", err)
		}

		sched := scheduler.New(closingService, locker, m, loc, cfg.Scheduler.At)
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "env", cfg.App.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newLocker uses Redis when it is configured and an in-process lock otherwise.
func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.Redis.Addr == "" {
		slog.Warn("REDIS_ADDR not set, using in-process locks")
		return lock.NewLocal(lockWait), nil
	}

	rdb, err := lock.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	return lock.NewRedis(rdb, lockWait), nil
}
