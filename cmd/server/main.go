package main // Entry point package

import (
	"context"
	"errors"
	"log" // Logging library
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rmonterol/tour-admin/internal/api"
	"github.com/rmonterol/tour-admin/internal/config"
	"github.com/rmonterol/tour-admin/internal/handler"
	mw "github.com/rmonterol/tour-admin/internal/middleware"
	"github.com/rmonterol/tour-admin/internal/router"
	"github.com/rmonterol/tour-admin/internal/session"
	"github.com/rmonterol/tour-admin/internal/view"
)

func main() {
	cfg := config.Load()          // Load environment config
	rlCfg := config.LoadRateLimitConfig()
	rdb := config.NewRedisClient() // nil when Redis is unreachable

	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		log.Println("redis unavailable: sessions held in memory, login rate limit disabled")
		store = session.NewMemoryStore(cfg.SessionTTL)
	}

	client, err := api.New(cfg.APIBaseURL, cfg.APITimeout, session.Token)
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	sessions := session.NewManager(store,
		session.NewCookieCodec(cfg.SessionSecret, cfg.SessionTTL), client)

	renderer, err := view.New("web/templates")
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(mw.AccessLog())
	e.Use(echomw.Recover())
	e.Use(mw.WithSession(sessions))

	router.Register(e,
		handler.NewAuthHandler(client, sessions),
		handler.NewCustomerHandler(client, cfg.PageLimit),
		handler.NewTourHandler(client, cfg.PageLimit),
		handler.NewReservationHandler(client, cfg.PageLimit),
		mw.LoginRateLimit(rlCfg, rdb),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()

		shutdownCtx, done := context.WithTimeout(context.Background(), 4*time.Second)
		defer done()

		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, api=%s)", addr, cfg.Env, cfg.APIBaseURL)

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err) // Log and exit if server fails
	}

	log.Println("stopped gracefully")
}
