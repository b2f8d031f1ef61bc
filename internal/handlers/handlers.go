package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"impilo/registry/internal/cdn"
	"impilo/registry/internal/config"
	"impilo/registry/internal/middleware"
	"impilo/registry/internal/notify"
	"impilo/registry/internal/repository"
	"impilo/registry/internal/service"
	"impilo/registry/internal/storage"
)

type HandlerSet struct {
	log        zerolog.Logger
	cfg        *config.AppConfig
	intake     *service.IntakeService
	moderation *service.ModerationService
	auth       *service.AuthService
	regs       service.RegistrationStore
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, queue *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	regRepo := repository.NewRegistrationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	locator := cdn.NewLocator(cfg.CDN.BaseURL)
	enqueuer := notify.NewEnqueuer(queue, cfg.Notify.Stream)

	intake := service.NewIntakeService(regRepo, store, locator, cfg, log)
	moderation := service.NewModerationService(regRepo, enqueuer, log)
	auth := service.NewAuthService(adminRepo, cfg, log)

	return HandlerSet{
		log:        log,
		cfg:        cfg,
		intake:     intake,
		moderation: moderation,
		auth:       auth,
		regs:       regRepo,
	}
}

// NewHandlerSetWith wires explicit collaborators; tests use it with memory
// stores and fake channels.
func NewHandlerSetWith(log zerolog.Logger, cfg *config.AppConfig, intake *service.IntakeService, moderation *service.ModerationService, auth *service.AuthService, regs service.RegistrationStore) HandlerSet {
	return HandlerSet{
		log:        log,
		cfg:        cfg,
		intake:     intake,
		moderation: moderation,
		auth:       auth,
		regs:       regs,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	auth := router.Group("/auth")
	auth.POST("/login", h.Login)

	registrations := router.Group("/registrations")
	registrations.POST("", h.CreateRegistration)

	admin := registrations.Group("")
	admin.Use(middleware.AdminAuth(h.cfg))
	admin.GET("", h.ListRegistrations)
	admin.GET("/:id", h.GetRegistration)
	admin.PATCH("/:id/status", h.UpdateRegistrationStatus)
	admin.DELETE("/:id", h.DeleteRegistration)
}

// AuthService exposes the auth service for boot-time seeding.
func (h HandlerSet) AuthService() *service.AuthService {
	return h.auth
}

// Registrations exposes the store for the digest scheduler.
func (h HandlerSet) Registrations() service.RegistrationStore {
	return h.regs
}
