package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"club-content-api/config"
	"club-content-api/internal/content"
	"club-content-api/internal/global/cache"
	"club-content-api/internal/global/database"
	"club-content-api/internal/global/httpclient"
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/middleware"
	internalOtel "club-content-api/internal/global/otel"
	"club-content-api/internal/global/sentry"
	"club-content-api/internal/module"
	"club-content-api/tools"

	"github.com/gin-gonic/gin"
)

var (
	log         *slog.Logger
	rateLimiter *middleware.RateLimiter
)

func Init(version string) {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(version); err != nil {
		log.Error("Sentry 初始化失败", "error", err)
	}
	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		tools.PanicOnErr(internalOtel.Init(context.Background(), version))
	}

	database.Init()
	cache.Init()
	httpclient.Init()

	cfg := config.Get()
	resolver := content.NewResolver(
		content.NewSQLGateway(database.DB),
		cache.KV,
		content.NewHTTPMarkdown(httpclient.Client),
		logger.New("Content"),
		content.Options{
			Counters: content.Counters{
				PRsMergedThisSemester: cfg.Stats.PRsMergedThisSemester,
				WorkshopsHeld:         cfg.Stats.WorkshopsHeld,
				ProjectsContributedTo: cfg.Stats.ProjectsContributedTo,
			},
			StatsTTL:    time.Duration(cfg.Stats.CacheTTLSeconds) * time.Second,
			MarkdownTTL: time.Duration(cfg.Blog.MarkdownCacheTTLSeconds) * time.Second,
		},
	)

	for _, m := range module.Modules {
		log.Info("Init Module", "module", m.GetName())
		m.Init(resolver)
	}
}

func Run() {
	cfg := config.Get()
	gin.SetMode(string(cfg.Mode))
	r := gin.New()

	switch cfg.Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.New("HTTP")))
	case config.ModeDebug:
		r.Use(gin.Logger(), middleware.Logger(nil))
	}
	r.Use(sentry.Middleware(), middleware.SentryEnrichIP())
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())
	if cfg.OTel.Enable {
		r.Use(middleware.Trace())
	}

	api := r.Group("/" + cfg.Prefix)
	if cfg.RateLimit.PerSecond > 0 {
		rateLimiter = middleware.NewRateLimiter(logger.New("RateLimit"), cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
		go rateLimiter.Start()
		api.Use(rateLimiter.Handler())
	}

	for _, m := range module.Modules {
		log.Info("Init Router", "module", m.GetName())
		if rm, ok := m.(module.RootModule); ok {
			rm.InitRootRouter(&r.RouterGroup)
		}
		m.InitRouter(api)
	}

	srv := &http.Server{
		Addr:              cfg.Host + ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			tools.PanicOnErr(err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdown(srv)
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown", "error", err)
	}
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if m, ok := cache.KV.(*cache.Memory); ok {
		m.Stop()
	}
	if err := internalOtel.Shutdown(ctx); err != nil {
		log.Error("Failed to shutdown TracerProvider", "error", err)
	}
	sentry.Flush(2 * time.Second)
}
