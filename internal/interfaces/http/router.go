package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	alertUsecases "vigia/internal/application/alert/usecases"
	autoalertUsecases "vigia/internal/application/autoalert/usecases"
	replyUsecases "vigia/internal/application/reply/usecases"
	"vigia/internal/infrastructure/config"
	"vigia/internal/infrastructure/mockdata"
	"vigia/internal/infrastructure/ratelimit"
	"vigia/internal/infrastructure/repository"
	"vigia/internal/infrastructure/scheduler"
	telegramInfra "vigia/internal/infrastructure/telegram"
	"vigia/internal/interfaces/http/handlers"
	telegramHandlers "vigia/internal/interfaces/http/handlers/telegram"
	"vigia/internal/interfaces/http/middleware"
	"vigia/internal/shared/db"
	"vigia/internal/shared/logger"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	alertHandler     *handlers.AlertHandler
	replyHandler     *handlers.ReplyHandler
	autoAlertHandler *handlers.AutoAlertHandler
	telegramHandler  *telegramHandlers.Handler
	healthHandler    *handlers.HealthHandler
	rateLimiter      *middleware.RateLimiter
	scheduler        *scheduler.AutoAlertScheduler
	autoAlertStatus  autoalertUsecases.GetStatusExecutor
	log              logger.Interface
}

// NewRouter creates the HTTP router with all dependencies.
// redisClient may be nil; webhook rate limiting is skipped without it.
func NewRouter(gormDB *gorm.DB, cfg *config.Config, redisClient *redis.Client, log logger.Interface) *Router {
	engine := gin.New()

	alertRepo := repository.NewAlertRepository(gormDB)
	replyRepo := repository.NewReplyRepository(gormDB)
	autoAlertConfigRepo := repository.NewAutoAlertConfigRepository(gormDB)

	txManager := db.NewTransactionManager(gormDB)

	botService := telegramInfra.NewBotService(cfg.Telegram)
	notifier := telegramInfra.NewNotifier(botService, log)

	createAlertUC := alertUsecases.NewCreateAlertUseCase(
		alertRepo, notifier, cfg.Telegram.LeaderChatID, cfg.Telegram.LeaderName, log)
	listAlertsUC := alertUsecases.NewListAlertsUseCase(alertRepo, log)
	handleReplyUC := alertUsecases.NewHandleReplyUseCase(
		alertRepo, replyRepo, txManager, notifier, &cfg.Telegram, log)
	setOperatingUC := alertUsecases.NewSetOperatingStatusUseCase(alertRepo, log)
	getStatsUC := alertUsecases.NewGetStatsUseCase(alertRepo, log)
	getLastUpdateUC := alertUsecases.NewGetLastUpdateUseCase(alertRepo, log)
	purgeAlertsUC := alertUsecases.NewPurgeAlertsUseCase(alertRepo, log)

	listRepliesUC := replyUsecases.NewListRepliesUseCase(replyRepo, log)

	generator := mockdata.NewGenerator(cfg.Telegram.LeaderName)
	generateNowUC := autoalertUsecases.NewGenerateNowUseCase(createAlertUC, generator, log)

	autoAlertScheduler := scheduler.NewAutoAlertScheduler(scheduler.ProducerFunc(func(ctx context.Context) error {
		_, err := generateNowUC.Execute(ctx)
		return err
	}), log)

	getStatusUC := autoalertUsecases.NewGetStatusUseCase(autoAlertConfigRepo, autoAlertScheduler, log)
	toggleUC := autoalertUsecases.NewToggleUseCase(autoAlertConfigRepo, autoAlertScheduler, log)
	updateIntervalUC := autoalertUsecases.NewUpdateIntervalUseCase(autoAlertConfigRepo, autoAlertScheduler, log)

	alertHandler := handlers.NewAlertHandler(
		createAlertUC, listAlertsUC, setOperatingUC, getStatsUC, getLastUpdateUC, purgeAlertsUC)
	replyHandler := handlers.NewReplyHandler(listRepliesUC)
	autoAlertHandler := handlers.NewAutoAlertHandler(getStatusUC, toggleUC, updateIntervalUC, generateNowUC)
	telegramHandler := telegramHandlers.NewHandler(handleReplyUC, cfg.Telegram.WebhookSecret, log)
	healthHandler := handlers.NewHealthHandler(gormDB)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, ratelimit.RateLimitConfig{
			RequestsPerMinute: 60,
			RequestsPerHour:   1000,
		})
	}

	return &Router{
		engine:           engine,
		alertHandler:     alertHandler,
		replyHandler:     replyHandler,
		autoAlertHandler: autoAlertHandler,
		telegramHandler:  telegramHandler,
		healthHandler:    healthHandler,
		rateLimiter:      rateLimiter,
		scheduler:        autoAlertScheduler,
		autoAlertStatus:  getStatusUC,
		log:              log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	api := r.engine.Group("/api")
	{
		alerts := api.Group("/alerts")
		{
			alerts.POST("", r.alertHandler.CreateAlert)
			alerts.GET("", r.alertHandler.ListAlerts)
			alerts.GET("/stats", r.alertHandler.GetStats)
			alerts.GET("/last-update", r.alertHandler.GetLastUpdate)
			alerts.DELETE("", r.alertHandler.PurgeAlerts)
			alerts.PATCH("/:id/status", r.alertHandler.SetOperatingStatus)
		}

		webhook := api.Group("/telegram")
		if r.rateLimiter != nil {
			webhook.Use(r.rateLimiter.Limit())
		}
		{
			webhook.POST("/webhook", r.telegramHandler.HandleWebhook)
		}

		api.GET("/replies", r.replyHandler.ListReplies)

		autoAlerts := api.Group("/auto-alerts")
		{
			autoAlerts.GET("/status", r.autoAlertHandler.GetStatus)
			autoAlerts.POST("/toggle", r.autoAlertHandler.Toggle)
			autoAlerts.PATCH("/interval", r.autoAlertHandler.UpdateInterval)
			autoAlerts.POST("/create-now", r.autoAlertHandler.GenerateNow)
		}
	}
}

// ResumeScheduler starts the auto alert loop when the persisted
// configuration says generation is enabled. Called once at boot so the
// scheduler survives restarts.
func (r *Router) ResumeScheduler(ctx context.Context) error {
	status, err := r.autoAlertStatus.Execute(ctx)
	if err != nil {
		return err
	}

	if status.Enabled {
		r.log.Infow("resuming auto alert scheduler",
			"interval_minutes", status.IntervalMinutes)
		r.scheduler.Start(time.Duration(status.IntervalMinutes) * time.Minute)
	}

	return nil
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Scheduler returns the auto alert scheduler for lifecycle management
func (r *Router) Scheduler() *scheduler.AutoAlertScheduler {
	return r.scheduler
}
