// Package server wires middleware, routes, and dependencies into the gin
// engine.
package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tpupu/resume-builder/internal/builder"
	"github.com/Tpupu/resume-builder/internal/drafts"
	"github.com/Tpupu/resume-builder/internal/importer"
	"github.com/Tpupu/resume-builder/internal/shared/config"
	"github.com/Tpupu/resume-builder/internal/shared/metrics"
	"github.com/Tpupu/resume-builder/internal/shared/server/middleware"
	"github.com/Tpupu/resume-builder/internal/shared/server/respond"
	"github.com/Tpupu/resume-builder/internal/shared/storage/db"
	"github.com/Tpupu/resume-builder/resume/render"
)

// rate-limited route group for endpoints that do real work per request
const renderGroup = "RENDER"

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				renderGroup: {Rate: float64(cfg.RateLimitPerMin) / 60.0, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				switch c.Request.URL.Path {
				case "/download_pdf", "/download-pdf", "/import":
					return renderGroup
				}
				return ""
			},
		}),
	)

	r.SetHTMLTemplate(render.Templates())
	r.StaticFS("/static", render.Static())

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var draftRepo drafts.Repo
	if sqlDB != nil {
		draftRepo = &drafts.PGRepo{DB: sqlDB}
	} else {
		draftRepo = drafts.NewMemoryRepo()
	}

	builder.NewHandler(cfg.PDFPageLimitMax).RegisterRoutes(r)
	(&importer.Handler{}).RegisterRoutes(r)

	api := r.Group("/api/v1")
	drafts.NewHandler(draftRepo).RegisterRoutes(api)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	r.NoRoute(NotFound)

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

// NotFound is installed as the fallback handler.
func NotFound(c *gin.Context) {
	respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
}
