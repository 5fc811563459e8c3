// Command server runs the birthday reminder HTTP API and the daily mail job.
//
// @title                       Birthday Reminder API
// @version                     2.0
// @description                 Accounts, birthdays and daily birthday reminder emails.
// @BasePath                    /api/v2
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        accessToken
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/birthdaybook/birthday-api/internal/api"
	"github.com/birthdaybook/birthday-api/internal/api/handler"
	"github.com/birthdaybook/birthday-api/internal/core/service"
	"github.com/birthdaybook/birthday-api/internal/infrastructure/db/mongo"
	"github.com/birthdaybook/birthday-api/internal/infrastructure/db/redis"
	"github.com/birthdaybook/birthday-api/internal/infrastructure/http/handlers"
	"github.com/birthdaybook/birthday-api/internal/infrastructure/mail"
	"github.com/birthdaybook/birthday-api/internal/infrastructure/queue"
	"github.com/birthdaybook/birthday-api/internal/infrastructure/scheduler"
	"github.com/birthdaybook/birthday-api/internal/pkg/config"
	"github.com/birthdaybook/birthday-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "birthday-api",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	userRepo := mongo.NewUserRepository(db)
	birthdayRepo := mongo.NewBirthdayRepository(db)

	authService := service.NewAuthService(userRepo, service.TokenConfig{
		AccessSecret:  cfg.Token.AccessSecret,
		AccessTTL:     cfg.Token.AccessTTL,
		RefreshSecret: cfg.Token.RefreshSecret,
		RefreshTTL:    cfg.Token.RefreshTTL,
	}, logger.Component(log, "auth"))
	birthdayService := service.NewBirthdayService(birthdayRepo, logger.Component(log, "birthdays"))

	sched, err := newScheduler(cfg, birthdayRepo, rdb, log)
	if err != nil {
		return err
	}
	if sched != nil {
		sched.Start()
	}

	e := api.NewRouter(api.Deps{
		Log:       logger.Component(log, "http"),
		Auth:      authService,
		Birthdays: birthdayService,
		Cookies: handler.CookieConfig{
			Secure:     cfg.Cookie.Secure,
			AccessTTL:  cfg.Token.AccessTTL,
			RefreshTTL: cfg.Token.RefreshTTL,
		},
		Dependencies: map[string]handlers.Pinger{
			"mongodb": handlers.MongoPinger(db),
			"redis":   handlers.RedisPinger(rdb),
		},
		CORSOrigins: cfg.CORSOrigin,
		BodyLimit:   cfg.BodyLimit,
		Registerer:  prometheus.DefaultRegisterer,
		Gatherer:    prometheus.DefaultGatherer,
	})

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("http server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("reminder run still in progress at shutdown")
		}
	}
	return e.Shutdown(shutdownCtx)
}

// newScheduler wires the reminder job. It returns nil when no mail transport
// is configured, so the API still serves without one.
func newScheduler(cfg *config.Config, repo *mongo.BirthdayRepository, rdb *goredis.Client, log zerolog.Logger) (*scheduler.Scheduler, error) {
	mailLog := logger.Component(log, "reminder")

	mailer, err := mail.New(mail.Config{
		Service:      cfg.Mail.Service,
		Host:         cfg.Mail.Host,
		Port:         cfg.Mail.Port,
		Username:     cfg.Mail.User,
		Password:     cfg.Mail.Password,
		From:         cfg.Mail.Sender(),
		ResendAPIKey: cfg.Mail.ResendAPIKey,
	})
	if errors.Is(err, mail.ErrNoTransport) || errors.Is(err, mail.ErrNoSender) {
		mailLog.Warn().Err(err).Msg("mail is not configured, birthday reminders are disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	greetings, err := mail.NewGreetings("", "")
	if err != nil {
		return nil, err
	}

	reminder := service.NewReminderService(
		repo,
		redis.NewReminderClaims(rdb),
		queue.NewDispatcher(cfg.Reminder.Workers, mailer, logger.Component(log, "mail_queue")),
		greetings,
		mailLog,
	)

	return scheduler.New(scheduler.Config{
		Schedule: cfg.Reminder.Schedule,
		Timezone: cfg.Reminder.Timezone,
		Timeout:  cfg.Reminder.Timeout,
	}, reminder, mailLog)
}
