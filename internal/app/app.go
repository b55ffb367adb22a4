package app

import (
	"context"
	"log/slog"
	"matchday/internal/app/rest"
	"matchday/internal/config"
	v1 "matchday/internal/http/v1"
	"matchday/internal/http/v1/middleware"
	"matchday/internal/http/v1/views"
	"matchday/internal/lib/logger/sl"
	"matchday/internal/lib/migrator"
	"matchday/internal/lib/password"
	"matchday/internal/repo"
	"matchday/internal/service"
	"matchday/internal/session"
	"matchday/internal/storage"
	"time"
)

type App struct {
	log      *slog.Logger
	cfg      *config.Config
	storage  *storage.Storage
	sessions *session.Manager
	limiter  *middleware.RateLimiter
	restApp  *rest.App
	ctx      context.Context
	cancel   context.CancelFunc
}

func MustNew(log *slog.Logger, cfg *config.Config) *App {
	if err := migrator.RunMigrations(cfg.Storage, log); err != nil {
		log.Error("failed to run migrations", sl.Err(err))
		panic(err)
	}

	st := storage.Init(cfg.Storage)

	userRepo := repo.NewUserRepo(st.GetDB())
	teamRepo := repo.NewTeamRepo(st.GetDB())
	matchRepo := repo.NewMatchRepo(st.GetDB())

	var sessionStore session.Store
	switch cfg.Session.Store {
	case config.SessionStoreSQL:
		sessionStore = repo.NewSessionRepo(st.GetDB())
	default:
		sessionStore = session.NewMemoryStore()
	}

	sessions := session.NewManager(log, sessionStore, session.Options{
		CookieName: cfg.Session.CookieName,
		Lifetime:   cfg.Session.Lifetime,
		Secure:     cfg.Session.Secure,
	})

	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)

	authService := service.NewAuthService(log, userRepo, hasher)
	userService := service.NewUserService(log, userRepo)
	teamService := service.NewTeamService(log, teamRepo)
	homeService := service.NewHomeService(log, userRepo, matchRepo, teamRepo)

	limiter := middleware.NewRateLimiter(log, cfg.Auth.RateLimit, cfg.Auth.RateBurst)

	routerDependencies := v1.RouterDependencies{
		AuthService: authService,
		UserService: userService,
		TeamService: teamService,
		HomeService: homeService,
		Sessions:    sessions,
		Views:       views.MustNew(),
		AuthLimiter: limiter,
	}

	restApp := rest.New(
		log,
		&routerDependencies,
		cfg.Server,
	)

	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		log:      log,
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
		storage:  st,
		sessions: sessions,
		limiter:  limiter,
		restApp:  restApp,
	}
}

// MustRun starts the background housekeeping and blocks serving HTTP.
func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application", slog.String("env", a.cfg.Env))

	go a.sessions.RunCleanup(a.ctx, a.cfg.Session.CleanupInterval)
	go a.resetLimiter(a.ctx, a.cfg.Session.CleanupInterval)

	if err := a.restApp.Run(); err != nil {
		panic(err)
	}
}

func (a *App) GracefulShutdown() {
	const op = "app.GracefulShutdown"
	log := a.log.With(slog.String("op", op))
	log.Info("shutting down application")

	a.cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.restApp.Stop(ctx); err != nil {
		log.Error("failed to stop HTTP server", sl.Err(err))
	}

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			log.Error("failed to close database", sl.Err(err))
			return
		}
		log.Info("database connection closed")
	}
}

func (a *App) resetLimiter(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.limiter.Reset()
		}
	}
}
