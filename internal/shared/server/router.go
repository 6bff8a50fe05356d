package server

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"

	"match-backend/internal/analyze"
	"match-backend/internal/beautify"
	"match-backend/internal/extract"
	"match-backend/internal/health"
	"match-backend/internal/llm"
	"match-backend/internal/llm/deepseek"
	"match-backend/internal/reports"
	"match-backend/internal/shared/config"
	"match-backend/internal/shared/server/middleware"
	"match-backend/internal/shared/storage/db"
	"match-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Warn("db.connect.failed", map[string]any{"error": err.Error()})
		} else if err := db.RunMigrations(context.Background(), conn); err != nil {
			telemetry.Warn("db.migrate.failed", map[string]any{"error": err.Error()})
			conn.Close()
		} else {
			sqlDB = conn
		}
	}

	var mirror reports.Mirror
	if sqlDB != nil {
		mirror = &reports.PGMirror{DB: sqlDB}
	} else {
		mirror = reports.NewFileMirror(cfg.StorageFile)
	}
	store := reports.NewStore(mirror, reports.WithLegacyResumeFile(cfg.LegacyResumeFile))

	var llmClient llm.Client
	if cfg.DeepSeekAPIKey != "" {
		client, err := deepseek.NewClient(cfg.DeepSeekAPIKey, cfg.DeepSeekBaseURL, cfg.LLMModel)
		if err != nil {
			telemetry.Warn("llm.client.init_failed", map[string]any{"error": err.Error()})
		} else {
			llmClient = client
		}
	}

	// Handlers reject provider requests before touching the client when
	// the key is absent, so a nil client is never called.
	limiter := middleware.NewRateLimiter(nil)
	providerRule := middleware.RateLimitRule{Rate: 0.2, Burst: 3}

	api := r.Group("/api/v1")
	health.NewHandler(cfg).RegisterRoutes(api)
	analyze.NewHandler(&analyze.Service{LLM: llmClient}, cfg).
		RegisterRoutes(api, middleware.RateLimit(limiter, providerRule))
	beautify.NewHandler(&beautify.Service{LLM: llmClient, Store: store, BaseURL: cfg.BaseURL}, cfg).
		RegisterRoutes(api, middleware.RateLimit(limiter, providerRule))
	reports.NewHandler(store).RegisterRoutes(api)
	extract.NewHandler().RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
