package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"

	"task-calendar/internal/event/mirror"
	"task-calendar/internal/middleware"
	"task-calendar/internal/router"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/log"
	"task-calendar/pkg/metrics"
	"task-calendar/pkg/scope"
	"task-calendar/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage. A nil postgresDB keeps events in memory; a nil redis keeps sessions in memory.
	postgresDB *sqlx.DB
	redis      *goredis.Client
	session    SessionConfig

	// Calendar assistant
	parser    *datemath.Parser
	llm       router.Generator
	scope     *scope.Manager
	metrics   *metrics.Metrics
	rateLimit middleware.Config

	// Optional integrations
	calendar       mirror.Calendar
	calendarID     string
	telegramBot    *telegram.Bot
	telegramSecret string
}

// SessionConfig sizes the in-memory session store and sets the session TTL for both stores.
type SessionConfig struct {
	Size int
	TTL  time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sqlx.DB
	Redis      *goredis.Client
	Session    SessionConfig

	Parser    *datemath.Parser
	LLM       router.Generator
	Scope     *scope.Manager
	Metrics   *metrics.Metrics
	RateLimit middleware.Config

	Calendar       mirror.Calendar
	CalendarID     string
	TelegramBot    *telegram.Bot
	TelegramSecret string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		redis:           cfg.Redis,
		session:         cfg.Session,
		parser:          cfg.Parser,
		llm:             cfg.LLM,
		scope:           cfg.Scope,
		metrics:         cfg.Metrics,
		rateLimit:       cfg.RateLimit,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		telegramBot:     cfg.TelegramBot,
		telegramSecret:  cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	if srv.llm == nil {
		return errors.New("llm generator is required")
	}
	return nil
}
