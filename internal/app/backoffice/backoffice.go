package backoffice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/ayoubmdl/membership-backoffice/internal/cache"
	"github.com/ayoubmdl/membership-backoffice/internal/config"
	"github.com/ayoubmdl/membership-backoffice/internal/migrations"
	dashboardservice "github.com/ayoubmdl/membership-backoffice/internal/services/dashboard"
	memberservice "github.com/ayoubmdl/membership-backoffice/internal/services/member"
	membershipservice "github.com/ayoubmdl/membership-backoffice/internal/services/membership"
	typeservice "github.com/ayoubmdl/membership-backoffice/internal/services/membershiptype"
	reportservice "github.com/ayoubmdl/membership-backoffice/internal/services/report"
	"github.com/ayoubmdl/membership-backoffice/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New собирает приложение: хранилище, миграции, кеш, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	reportService := reportservice.NewReportService(db, logger)
	dashboardService := dashboardservice.NewDashboardService(db, cacheRedis, logger)
	memberService := memberservice.NewMemberService(db, cacheRedis, logger)
	membershipService := membershipservice.NewMembershipService(db, cacheRedis, logger)
	typeService := typeservice.NewMembershipTypeService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, reportService, dashboardService,
		memberService, membershipService, typeService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
