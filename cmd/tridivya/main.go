package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"tridivya/internal/booking"
	"tridivya/internal/config"
	"tridivya/internal/http-server/handlers/announcement/createAnnouncement"
	"tridivya/internal/http-server/handlers/announcement/deleteAnnouncement"
	"tridivya/internal/http-server/handlers/announcement/listAnnouncements"
	"tridivya/internal/http-server/handlers/announcement/updateAnnouncement"
	"tridivya/internal/http-server/handlers/auth/login"
	"tridivya/internal/http-server/handlers/auth/logout"
	"tridivya/internal/http-server/handlers/auth/me"
	"tridivya/internal/http-server/handlers/auth/register"
	"tridivya/internal/http-server/handlers/booking/createBooking"
	"tridivya/internal/http-server/handlers/booking/deleteBooking"
	"tridivya/internal/http-server/handlers/booking/listBookings"
	"tridivya/internal/http-server/handlers/booking/updateBooking"
	"tridivya/internal/http-server/handlers/booking/updateBookingStatus"
	"tridivya/internal/http-server/handlers/content/createContent"
	"tridivya/internal/http-server/handlers/content/deleteContent"
	"tridivya/internal/http-server/handlers/content/getContent"
	"tridivya/internal/http-server/handlers/content/listContent"
	"tridivya/internal/http-server/handlers/content/search"
	"tridivya/internal/http-server/handlers/content/updateContent"
	"tridivya/internal/http-server/handlers/payment/initiatePayment"
	"tridivya/internal/http-server/handlers/payment/paymentCallback"
	"tridivya/internal/http-server/handlers/saved/listSaved"
	"tridivya/internal/http-server/handlers/saved/saveContent"
	"tridivya/internal/http-server/handlers/saved/unsaveContent"
	"tridivya/internal/http-server/handlers/settings/getSettings"
	"tridivya/internal/http-server/handlers/settings/updateSettings"
	"tridivya/internal/http-server/handlers/user/deleteUser"
	"tridivya/internal/http-server/handlers/user/listUsers"
	"tridivya/internal/http-server/handlers/user/updateUserRole"
	"tridivya/internal/http-server/middleware/auth"
	"tridivya/internal/http-server/middleware/mwlogger"
	"tridivya/internal/lib/api/response"
	"tridivya/internal/lib/logger/handlers/slogpretty"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/lib/metrics"
	"tridivya/internal/payment/esewa"
	"tridivya/internal/storage/postgres"
	"tridivya/internal/storage/redis"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting tridivya", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Error("failed to load booking timezone", slog.String("timezone", cfg.Booking.Timezone), sl.Err(err))
		os.Exit(1)
	}

	today := func() string { return booking.Today(time.Now().In(loc)) }

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = storage.Migrate(ctx)
	cancel()
	if err != nil {
		log.Error("failed to migrate database", sl.Err(err))
		os.Exit(1)
	}

	tokens := redis.New(redis.NewClient(cfg.Redis))

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	err = tokens.Ping(ctx)
	cancel()
	if err != nil {
		log.Error("failed to connect to redis", sl.Err(err))
		os.Exit(1)
	}

	gateway := esewa.New(esewa.Config{
		URL:         cfg.Esewa.URL,
		ProductCode: cfg.Esewa.ProductCode,
		SecretKey:   cfg.Esewa.SecretKey,
		SuccessURL:  cfg.Esewa.SuccessURL,
		FailureURL:  cfg.Esewa.FailureURL,
	})

	m := metrics.New()
	secure := cfg.Env == envProd
	secret := cfg.Auth.JWTSecret

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(m.Middleware)

	router.Handle("/metrics", m.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := storage.Ping(r.Context()); err != nil {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("database unavailable"))
			return
		}
		render.JSON(w, r, response.OK())
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", register.New(log, storage, secret, cfg.Auth.TokenTTL, secure))
		r.Post("/auth/login", login.New(log, storage, secret, cfg.Auth.TokenTTL, secure))

		r.Get("/content/{kind}", listContent.New(log, storage, false))
		r.Get("/content/{kind}/{id}", getContent.New(log, storage, false))
		r.Get("/search", search.New(log, storage))
		r.Get("/announcements", listAnnouncements.New(log, storage, true))

		r.Get("/payments/esewa/success", paymentCallback.Success(log, storage, gateway, cfg.FrontendURL, m.PaymentsTotal))
		r.Get("/payments/esewa/failure", paymentCallback.Failure(log, cfg.FrontendURL, m.PaymentsTotal))

		r.Group(func(r chi.Router) {
			r.Use(auth.New(log, secret, tokens))

			r.Post("/auth/logout", logout.New(log, tokens, secure))
			r.Get("/auth/me", me.New(log, storage))

			r.Post("/bookings", createBooking.New(log, storage, today, m.BookingsCreated))
			r.Get("/bookings", listBookings.New(log, storage, false))
			r.Put("/bookings/{id}", updateBooking.New(log, storage))
			r.Delete("/bookings/{id}", deleteBooking.New(log, storage))

			r.Post("/payments/esewa/initiate", initiatePayment.New(log, storage, gateway, m.PaymentsTotal))

			r.Post("/saved", saveContent.New(log, storage))
			r.Get("/saved", listSaved.New(log, storage))
			r.Delete("/saved/{kind}/{id}", unsaveContent.New(log, storage))

			r.Get("/settings", getSettings.New(log, storage))
			r.Put("/settings", updateSettings.New(log, storage))

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly(log))

				r.Get("/bookings", listBookings.New(log, storage, true))
				r.Patch("/bookings/{id}/status", updateBookingStatus.New(log, storage))

				r.Get("/content/{kind}", listContent.New(log, storage, true))
				r.Get("/content/{kind}/{id}", getContent.New(log, storage, true))
				r.Post("/content/{kind}", createContent.New(log, storage))
				r.Put("/content/{kind}/{id}", updateContent.New(log, storage))
				r.Delete("/content/{kind}/{id}", deleteContent.New(log, storage))

				r.Get("/announcements", listAnnouncements.New(log, storage, false))
				r.Post("/announcements", createAnnouncement.New(log, storage, time.Now))
				r.Put("/announcements/{id}", updateAnnouncement.New(log, storage, time.Now))
				r.Delete("/announcements/{id}", deleteAnnouncement.New(log, storage))

				r.Get("/users", listUsers.New(log, storage))
				r.Patch("/users/{id}/role", updateUserRole.New(log, storage, tokens, cfg.Auth.TokenTTL))
				r.Delete("/users/{id}", deleteUser.New(log, storage, tokens, cfg.Auth.TokenTTL))
			})
		})
	})

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

	sweepCtx, stopSweep := context.WithCancel(context.Background())

	go func() {
		ticker := time.NewTicker(cfg.Booking.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := storage.CancelUnpaidBookings(sweepCtx, cfg.Booking.PaymentDeadline)
				if err != nil {
					log.Error("failed to cancel unpaid bookings", sl.Err(err))
				} else if n > 0 {
					m.BookingsSwept.Add(float64(n))
					log.Info("unpaid bookings cancelled", slog.Int64("count", n))
				}

				if n, err = storage.PublishDueAnnouncements(sweepCtx); err != nil {
					log.Error("failed to publish due announcements", sl.Err(err))
				} else if n > 0 {
					log.Info("scheduled announcements published", slog.Int64("count", n))
				}
			case <-sweepCtx.Done():
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

	log.Info("application stopping", slog.String("signal", sign.String()))

	stopSweep()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = tokens.Close(); err != nil {
		log.Error("failed to close redis connection", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
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
