package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HotelBooker/internal/auth"
	"github.com/stpnv0/HotelBooker/internal/config"
	"github.com/stpnv0/HotelBooker/internal/handler"
	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/stpnv0/HotelBooker/internal/repository"
	"github.com/stpnv0/HotelBooker/internal/repository/memory"
	"github.com/stpnv0/HotelBooker/internal/router"
	"github.com/stpnv0/HotelBooker/internal/scheduler"
	"github.com/stpnv0/HotelBooker/internal/service"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	memStore   *memory.Store
	redis      *redis.Client
	metrics    *metrics.Metrics
	tokens     *auth.TokenManager
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

// repos is the set of collaborators the booking service runs on.
type repos struct {
	tx          ports.Transactor
	enrollments ports.EnrollmentRepo
	tickets     ports.TicketRepo
	rooms       ports.RoomRepo
	bookings    ports.BookingRepo
	sessions    ports.SessionRepo
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg, metrics: metrics.New()}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HotelBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if app.tokens, err = auth.NewTokenManager(cfg.Auth.JWTSecret); err != nil {
		return nil, fmt.Errorf("init tokens: %w", err)
	}

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(r); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*repos, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.memStore = memory.New()
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "using in-memory storage, data is not persisted")

		token, err := seedDemo(a.memStore, a.tokens, a.log)
		if err != nil {
			return nil, fmt.Errorf("seed demo data: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.DebugLevel, "demo bearer token",
			logger.Any("user_id", demoUserID),
			logger.String("token", token),
		)

		return &repos{
			tx:          a.memStore,
			enrollments: a.memStore.Enrollments(),
			tickets:     a.memStore.Tickets(),
			rooms:       a.memStore.Rooms(),
			bookings:    a.memStore.Bookings(),
			sessions:    a.memStore.Sessions(),
		}, nil
	}

	if err := a.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err := a.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	return &repos{
		tx:          repository.NewTransactor(a.db),
		enrollments: repository.NewEnrollmentRepo(a.db),
		tickets:     repository.NewTicketRepo(a.db),
		rooms:       repository.NewRoomRepo(a.db),
		bookings:    repository.NewBookingRepo(a.db),
		sessions:    repository.NewSessionRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initSessions(sessions ports.SessionRepo) (ports.SessionRepo, error) {
	if !a.cfg.Redis.Enabled() {
		return sessions, nil
	}

	a.redis = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "session cache enabled",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Auth.SessionCacheTTL),
	)

	return auth.NewCachedSessions(sessions, a.redis, a.cfg.Auth.SessionCacheTTL, a.log), nil
}

func (a *App) initServices(r *repos) error {
	sessions, err := a.initSessions(r.sessions)
	if err != nil {
		return fmt.Errorf("init sessions: %w", err)
	}

	bookingService := service.NewBookingService(
		r.tx,
		r.enrollments,
		r.tickets,
		r.rooms,
		r.bookings,
		a.log,
		service.WithExemptCurrentRoom(a.cfg.Booking.ExemptCurrentRoom),
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.metrics,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, a.metrics)
	rt := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.BearerAuth(auth.NewSessionResolver(a.tokens, sessions)),
		a.metrics.Handler(),
		middleware.RequestID(),
		middleware.Metrics(a.metrics),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log, a.metrics),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      rt,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
