package main // Entry point package

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gorilla/csrf"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/lmittmann/tint"

	"github.com/cohai/studio-web/internal/api"
	"github.com/cohai/studio-web/internal/config"
	"github.com/cohai/studio-web/internal/handler"
	mw "github.com/cohai/studio-web/internal/middleware"
	"github.com/cohai/studio-web/internal/notify"
	"github.com/cohai/studio-web/internal/router"
	"github.com/cohai/studio-web/internal/session"
	"github.com/cohai/studio-web/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	logger := newLogger(cfg.Env)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable, sessions are in-memory only")
	}

	apiClient := api.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute
	store := session.NewStore(apiClient, rdb, sessionTTL, logger)

	var notifier *notify.Publisher
	if amqpURL := brokerURL(); amqpURL != "" {
		notifier = notify.NewPublisher(amqpURL, logger)
		go notify.StartLeadConsumer(amqpURL, logger)
	} else {
		logger.Info("amqp not configured, lead notifications disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())

	secure := cfg.Env == "prod"
	e.Use(echo.WrapMiddleware(csrf.Protect(
		[]byte(cfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	)))
	e.Use(mw.WithSession(store, cfg.SessionSecret))

	public := &handler.PublicHandler{API: apiClient, Notifier: notifier, Log: logger}
	auth := &handler.AuthHandler{Store: store, Secret: cfg.SessionSecret, TTL: sessionTTL, Secure: secure, Log: logger}
	client := &handler.ClientHandler{API: apiClient, Store: store, Log: logger}
	admin := &handler.AdminHandler{API: apiClient, Log: logger}

	router.RegisterPublic(e, public, auth, rdb)
	router.RegisterCabinet(e, auth, client)
	router.RegisterAdmin(e, admin)

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "env", cfg.Env, "backend", cfg.APIBaseURL)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// newLogger builds the process logger: colored text in dev, plain text in
// prod where the collector does its own formatting.
func newLogger(env string) *slog.Logger {
	if env == "prod" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
}

// brokerURL reads the AMQP address under either of its conventional names.
func brokerURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}
