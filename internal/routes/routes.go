package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-saas/internal/audit"
	"github.com/BruksfildServices01/agenda-saas/internal/cache"
	"github.com/BruksfildServices01/agenda-saas/internal/capacity"
	"github.com/BruksfildServices01/agenda-saas/internal/config"
	"github.com/BruksfildServices01/agenda-saas/internal/handlers"
	infraRepo "github.com/BruksfildServices01/agenda-saas/internal/infra/repository"
	"github.com/BruksfildServices01/agenda-saas/internal/middleware"
	ucScheduling "github.com/BruksfildServices01/agenda-saas/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// uma instância de cache por processo — nunca compartilhada entre
	// workers, nunca fonte-de-verdade
	cacheTTL := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	snapshots := cache.New[capacity.Snapshot](cacheTTL)

	// ======================================================
	// 🧠 USE CASES — SCHEDULING
	// ======================================================
	createLocalUC := ucScheduling.NewCreateFromLocalTime(
		store,
		snapshots,
		auditDispatcher,
	)

	createTextUC := ucScheduling.NewCreateFromNaturalLanguage(
		store,
		snapshots,
		auditDispatcher,
	)

	utilizationUC := ucScheduling.NewGetUtilization(
		store,
		store,
		snapshots,
		cacheTTL,
	)

	transitionUC := ucScheduling.NewTransitionStatus(
		store,
		snapshots,
		auditDispatcher,
	)

	listDayUC := ucScheduling.NewListDay(store)

	invalidateUC := ucScheduling.NewInvalidateSnapshots(
		snapshots,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	schedulingHandler := handlers.NewSchedulingHandler(
		createLocalUC,
		utilizationUC,
		transitionUC,
		listDayUC,
		invalidateUC,
	)

	publicHandler := handlers.NewPublicHandler(
		createLocalUC,
		createTextUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (agente de voz / chatbot)
		// ------------------------------
		publicAPI := api.Group("/public")

		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
			limiter := middleware.NewRateLimiter(
				rdb,
				cfg.RateLimit,
				time.Duration(cfg.RateWindowSec)*time.Second,
			)
			publicAPI.Use(limiter.Middleware())
		}

		{
			publicAPI.POST("/:businessID/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// 🏢 API DO NEGÓCIO (dashboard)
		// ------------------------------
		business := api.Group("/businesses/:businessID")
		{
			business.POST("/appointments", schedulingHandler.Create)
			business.GET("/appointments", schedulingHandler.ListByDay)
			business.PATCH("/appointments/:id/status", schedulingHandler.UpdateStatus)

			business.GET("/utilization", schedulingHandler.GetUtilization)
			business.DELETE("/cache", schedulingHandler.InvalidateCache)
		}
	}
}
