package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-co-op/gocron/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bountyhub/internal/broadcast"
	"github.com/GlebRadaev/bountyhub/internal/config"
	"github.com/GlebRadaev/bountyhub/internal/gateway"
	"github.com/GlebRadaev/bountyhub/internal/handlers"
	sessionhandlers "github.com/GlebRadaev/bountyhub/internal/handlers/sessions"
	"github.com/GlebRadaev/bountyhub/internal/payout"
	"github.com/GlebRadaev/bountyhub/internal/pg"
	"github.com/GlebRadaev/bountyhub/internal/repo"
	memstore "github.com/GlebRadaev/bountyhub/internal/repo/mem-store"
	"github.com/GlebRadaev/bountyhub/internal/service"
	"github.com/GlebRadaev/bountyhub/internal/session"
	"github.com/GlebRadaev/bountyhub/pkg/auth"
	"github.com/GlebRadaev/bountyhub/pkg/clients"
	"github.com/GlebRadaev/bountyhub/pkg/logger"
	"github.com/GlebRadaev/bountyhub/pkg/ratelimit"
)

const (
	reaperInterval       = time.Minute
	limiterCleanupPeriod = 5 * time.Minute
	shutdownTimeout      = 5 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	pool     *pgxpool.Pool
	hub      *broadcast.Hub
	registry *session.Registry
	limiter  *ratelimit.Limiter
	sched    gocron.Scheduler

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		zap.L().Error("invalid configuration", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	if err = a.initRepositories(ctx); err != nil {
		return err
	}
	if err = a.initServices(); err != nil {
		return err
	}

	if err = a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start scheduler: %w", err)
	}
	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("store", cfg.StoreDriver))
	return nil
}

func (a *Application) initRepositories(ctx context.Context) error {
	if a.cfg.StoreDriver == config.StoreMemory {
		a.repo = repo.NewMemory(memstore.New())
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

func (a *Application) initServices() error {
	overflow, err := session.ParseOverflowPolicy(a.cfg.SessionOverflow)
	if err != nil {
		return err
	}

	a.hub = broadcast.NewHub()
	a.registry = session.NewRegistry(session.Config{
		QueueSize: a.cfg.SessionQueueSize,
		Overflow:  overflow,
		MaxIdle:   a.cfg.SessionIdleTimeout,
	})
	a.registry.OnRemove(a.hub.Detach)

	gw := gateway.New(a.cfg.GatewayAddress, clients.NewHTTPClient(a.cfg.GatewayTimeout))
	a.srv = service.New(a.repo, a.hub, gw, payout.Config{
		Workers:        a.cfg.PaymentWorkers,
		InstantTimeout: a.cfg.GatewayTimeout,
		BatchTimeout:   a.cfg.BatchGatewayTimeout,
	})

	a.limiter = ratelimit.New(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst)
	jwtService := auth.NewJWTService(a.cfg.JWTSecret, a.cfg.JWTIssuer)
	a.api = handlers.New(a.srv, handlers.Realtime{
		Registry: a.registry,
		Broker:   a.hub,
		Config:   sessionhandlers.DefaultConfig(),
	}, auth.Middleware(jwtService), a.limiter.Handler)
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

// startScheduler runs the batch payout, the idle session reaper and the limiter cleanup.
func (a *Application) startScheduler(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	if err = a.scheduleJobs(ctx, sched); err != nil {
		_ = sched.Shutdown()
		return err
	}

	a.sched = sched
	sched.Start()
	return nil
}

func (a *Application) scheduleJobs(ctx context.Context, sched gocron.Scheduler) error {
	if err := a.srv.PayoutService.Schedule(ctx, sched, a.cfg.BatchSchedule); err != nil {
		return err
	}
	if err := a.registry.ScheduleReaper(ctx, sched, reaperInterval); err != nil {
		return err
	}
	_, err := sched.NewJob(
		gocron.DurationJob(limiterCleanupPeriod),
		gocron.NewTask(func() {
			if n := a.limiter.Cleanup(limiterCleanupPeriod); n > 0 {
				zap.L().Debug("forgot idle rate limiters", zap.Int("count", n))
			}
		}),
	)
	return err
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		// Hijacked WebSocket connections are not tracked by Shutdown.
		a.registry.CloseAll("server shutdown")

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		a.stopBackground()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) stopBackground() {
	if a.sched != nil {
		if err := a.sched.Shutdown(); err != nil {
			zap.L().Error("scheduler shutdown failed", zap.Error(err))
		}
	}
	if a.srv != nil && a.srv.PayoutService != nil {
		a.srv.PayoutService.Close()
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
