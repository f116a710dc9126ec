package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"task-calendar/config"
	_ "task-calendar/docs" // Swagger docs
	"task-calendar/internal/event/mirror"
	"task-calendar/internal/httpserver"
	"task-calendar/internal/middleware"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/gcalendar"
	"task-calendar/pkg/llmprovider"
	"task-calendar/pkg/log"
	"task-calendar/pkg/metrics"
	"task-calendar/pkg/postgres"
	pkgRedis "task-calendar/pkg/redis"
	"task-calendar/pkg/scope"
	"task-calendar/pkg/telegram"
)

// @title       Task Calendar API
// @description Calendar events with a natural-language assistant, Google Calendar mirroring and a Telegram bot.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Shared components
	parser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	m := metrics.New()
	llm := newLLM(ctx, cfg, logger, m)

	var scopeManager *scope.Manager
	if cfg.JWT.SecretKey != "" {
		if scopeManager, err = scope.New(cfg.JWT.SecretKey); err != nil {
			return fmt.Errorf("jwt: %w", err)
		}
	} else {
		logger.Warn(ctx, "jwt.secret_key not set: every caller is anonymous and sees all events")
	}

	// 4. Storage
	db, err := connectPostgres(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	var redisClient *goredis.Client
	if cfg.Session.Store == "redis" {
		redisClient, err = pkgRedis.Connect(ctx, pkgRedis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer redisClient.Close()
	}

	// 5. Optional integrations
	var calendar mirror.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	}

	// 6. HTTP Server
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      db,
		Redis:           redisClient,
		Session:         httpserver.SessionConfig{Size: cfg.Session.Size, TTL: cfg.Session.TTL},
		Parser:          parser,
		LLM:             llm,
		Scope:           scopeManager,
		Metrics:         m,
		RateLimit: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
			RateLimitBurst:  cfg.RateLimit.Burst,
		},
		Calendar:       calendar,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		TelegramBot:    bot,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 7. Run
	return srv.Run(ctx)
}

// newLLM returns a manager over the configured providers. With none usable, the returned
// manager fails every call and the assistant classifies by keywords.
func newLLM(ctx context.Context, cfg *config.Config, logger log.Logger, m *metrics.Metrics) *llmprovider.Manager {
	if len(cfg.LLM.Providers) == 0 {
		logger.Warn(ctx, "No LLM providers configured: using keyword classification only")
		return llmprovider.NewManager(nil, nil, logger)
	}

	manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger, m.ObserveLLMCall)
	if err != nil {
		logger.Warnf(ctx, "LLM providers unavailable, using keyword classification only: %v", err)
		return llmprovider.NewManager(nil, nil, logger)
	}
	return manager
}

// connectPostgres returns nil when no host is configured.
func connectPostgres(ctx context.Context, cfg *config.Config, logger log.Logger) (*sqlx.DB, error) {
	if cfg.Postgres.Host == "" {
		logger.Warn(ctx, "postgres.host not set: events are kept in memory")
		return nil, nil
	}

	db, err := postgres.Connect(ctx, postgres.Config{
		Host:         cfg.Postgres.Host,
		Port:         cfg.Postgres.Port,
		User:         cfg.Postgres.User,
		Password:     cfg.Postgres.Password,
		DBName:       cfg.Postgres.DBName,
		SSLMode:      cfg.Postgres.SSLMode,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("postgres migrate: %w", err)
		}
	}
	return db, nil
}
