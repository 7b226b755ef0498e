package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davidly-empire/security-verifier-server/config"
	"github.com/davidly-empire/security-verifier-server/internal/api/handler"
	"github.com/davidly-empire/security-verifier-server/internal/api/middleware"
	"github.com/davidly-empire/security-verifier-server/pkg/jwt"
	"github.com/davidly-empire/security-verifier-server/pkg/redis"
)

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// authentication (no token required)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			users := authorized.Group("/users")
			users.Use(middleware.RoleAuth("admin"))
			{
				users.POST("", h.User.Create)
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			factories := authorized.Group("/factories")
			{
				factories.GET("", h.Factory.List)
				factories.GET("/:code", h.Factory.Get)
				factories.GET("/:code/checkpoints", h.Checkpoint.ListByFactory)
				factories.POST("", middleware.RoleAuth("admin"), h.Factory.Create)
				factories.PUT("/:code", middleware.RoleAuth("admin"), h.Factory.Update)
				factories.DELETE("/:code", middleware.RoleAuth("admin"), h.Factory.Delete)
			}

			checkpoints := authorized.Group("/checkpoints")
			{
				checkpoints.GET("/:id", h.Checkpoint.Get)
				checkpoints.POST("", middleware.RoleAuth("admin"), h.Checkpoint.Create)
				checkpoints.PUT("/:id", middleware.RoleAuth("admin"), h.Checkpoint.Update)
				checkpoints.DELETE("/:id", middleware.RoleAuth("admin"), h.Checkpoint.Delete)
			}

			scans := authorized.Group("/scans")
			{
				scans.POST("", h.Scan.Create)
				scans.GET("", h.Scan.List)
				scans.DELETE("/:id", middleware.RoleAuth("admin"), h.Scan.Delete)
			}

			reports := authorized.Group("/reports")
			{
				reports.GET("/guard-compliance", h.Report.GuardCompliance)
				reports.GET("/rounds", middleware.RoleAuth("admin", "supervisor"), h.Report.FactoryRounds)
				reports.GET("/patrol-activity", middleware.RoleAuth("admin", "supervisor"), h.Report.PatrolActivity)
				reports.POST("/recompute-statuses", middleware.RoleAuth("admin"), h.Report.Recompute)
			}

			exports := authorized.Group("/exports")
			exports.Use(middleware.RoleAuth("admin", "supervisor"))
			{
				exports.GET("/rounds.xlsx", h.Export.RoundReportXLSX)
				exports.GET("/schedule.ics", h.Export.ScheduleICS)
			}
		}
	}

	return r
}
