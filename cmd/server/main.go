package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/event-hotel-booking/internal/config"
	"github.com/iliyamo/event-hotel-booking/internal/database"
	"github.com/iliyamo/event-hotel-booking/internal/handler"
	"github.com/iliyamo/event-hotel-booking/internal/middleware"
	"github.com/iliyamo/event-hotel-booking/internal/queue"
	"github.com/iliyamo/event-hotel-booking/internal/repository"
	"github.com/iliyamo/event-hotel-booking/internal/router"
	"github.com/iliyamo/event-hotel-booking/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := newLogger(cfg)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
	log.Info("server stopped")
}

// run wires the application and blocks until a signal arrives or a
// component fails.  Deferred cleanups run before it returns.
func run(cfg config.Config, log *logrus.Logger) error {
	db, err := database.Open(database.DSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient(cfg.Redis)
	if rdb == nil {
		log.Warn("redis unavailable; hotel cache and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	// repositories
	users := repository.NewUserRepo(db)
	sessions := repository.NewSessionRepo(db)
	enrollments := repository.NewEnrollmentRepo(db)
	tickets := repository.NewTicketRepo(db)
	bookings := repository.NewBookingRepo(db)
	hotels := repository.NewHotelCache(repository.NewHotelRepo(db), rdb, cfg.Cache, log.WithField("component", "hotel-cache"))

	// services
	var events service.EventPublisher = service.NopPublisher{}
	if cfg.EventsEnabled {
		events = queue.NewPublisher(cfg.RabbitURL)
	}
	eligibility := service.NewEligibilityChecker(enrollments, tickets)
	hotelSvc := service.NewHotelService(eligibility, hotels)
	bookingSvc := service.NewBookingService(eligibility, bookings, events, log.WithField("component", "booking"))

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log.WithField("component", "http")))

	protected := router.NewProtected(cfg.JWTSecret, sessions,
		middleware.NewTokenBucket(cfg.RateLimit, rdb, log.WithField("component", "ratelimit")))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, sessions, log))
	router.RegisterHotels(e, handler.NewHotelHandler(hotelSvc, log), protected)
	router.RegisterBooking(e, handler.NewBookingHandler(bookingSvc, log), protected)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Port
		log.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	if cfg.EventsEnabled {
		consumer := queue.NewConsumer(cfg.RabbitURL, cfg.BookingLogDir, log.WithField("component", "booking-consumer"))
		g.Go(func() error { return consumer.Run(gctx) })
	}

	return g.Wait()
}

// newLogger configures logrus for cfg.Env: text locally, JSON elsewhere.
func newLogger(cfg config.Config) *logrus.Logger {
	log := logrus.New()
	if cfg.Env == "local" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
