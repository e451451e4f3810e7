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

	"houseBooker/internal/config"
	"houseBooker/internal/http-server/handlers/auth/login"
	"houseBooker/internal/http-server/handlers/auth/logout"
	"houseBooker/internal/http-server/handlers/auth/switchUser"
	"houseBooker/internal/http-server/handlers/booking/checkOverlap"
	"houseBooker/internal/http-server/handlers/booking/createBooking"
	"houseBooker/internal/http-server/handlers/booking/deleteBooking"
	"houseBooker/internal/http-server/handlers/booking/getDensity"
	"houseBooker/internal/http-server/handlers/booking/nextArrival"
	"houseBooker/internal/http-server/handlers/booking/suggestSlots"
	"houseBooker/internal/http-server/handlers/booking/updateBooking"
	"houseBooker/internal/http-server/handlers/event/getAllEvents"
	"houseBooker/internal/http-server/handlers/users/getUsers"
	"houseBooker/internal/http-server/middleware/auth"
	"houseBooker/internal/http-server/middleware/mwlogger"
	"houseBooker/internal/lib/logger/handlers/slogpretty"
	"houseBooker/internal/lib/logger/sl"
	"houseBooker/internal/models"
	"houseBooker/internal/scheduler"
	"houseBooker/internal/session"
	"houseBooker/internal/storage/postgres"
	"houseBooker/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

// appStorage is what the service needs from either backend.
type appStorage interface {
	scheduler.Store
	User(ctx context.Context, id int64) (models.User, error)
	Migrate(ctx context.Context) error
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting house booker", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	storage, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(context.Background()); err != nil {
		log.Error("failed to migrate storage", sl.Err(err))
		os.Exit(1)
	}

	sched := scheduler.New(log, storage,
		scheduler.WithSuggestDefaults(cfg.Scheduler.SuggestRadiusDays, cfg.Scheduler.SuggestMaxResults),
	)

	sessions := session.NewRegistry(cfg.Session.TTL)

	cookie := auth.Cookie{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.SecureCookie,
	}

	router := newRouter(log, storage, sched, sessions, cookie)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Session.PurgeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := sessions.PurgeExpired(); n > 0 {
					log.Debug("expired sessions purged", slog.Int("count", n))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(cfg *config.Config) (appStorage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newRouter(
	log *slog.Logger,
	storage appStorage,
	sched *scheduler.Scheduler,
	sessions *session.Registry,
	cookie auth.Cookie,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	router.Get("/users", getUsers.New(log, storage))
	router.Post("/auth/login", login.New(log, storage, sessions, cookie))
	router.Post("/auth/logout", logout.New(log, sessions, cookie))

	router.Group(func(r chi.Router) {
		r.Use(auth.New(log, sessions, cookie.Name))

		r.Post("/auth/switch/{id}", switchUser.New(log, storage, sessions, cookie))
		r.Get("/events", getAllEvents.New(log, sched))

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", createBooking.New(log, sched))
			r.Get("/check-overlap", checkOverlap.New(log, sched))
			r.Get("/next", nextArrival.New(log, sched))
			r.Get("/suggest", suggestSlots.New(log, sched))
			r.Get("/density", getDensity.New(log, sched))
			r.Patch("/{id}", updateBooking.New(log, sched))
			r.Delete("/{id}", deleteBooking.New(log, sched))
		})
	})

	return router
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
