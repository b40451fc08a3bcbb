package routes

import (
	"time"

	"github.com/dicehaven/backend/internal/config"
	"github.com/dicehaven/backend/internal/handlers"
	"github.com/dicehaven/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	configHandler *handlers.ConfigHandler,
	campaignHandler *handlers.CampaignHandler,
	contentHandler *handlers.ContentHandler,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", healthHandler.Check)
	api.Get("/config", configHandler.Get)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Campaigns (browse public, mutate with JWT)
	api.Get("/campaigns", campaignHandler.List)
	api.Get("/campaigns/:id", campaignHandler.Get)
	api.Get("/campaigns/:id/characters", campaignHandler.ListCharacters)
	api.Get("/campaigns/:id/chat", campaignHandler.ListChatMessages)
	api.Post("/campaigns", middleware.JWTProtected(cfg), campaignHandler.Create)
	api.Post("/campaigns/:id/characters", middleware.JWTProtected(cfg), campaignHandler.CreateCharacter)
	api.Post("/campaigns/:id/chat", middleware.JWTProtected(cfg), campaignHandler.PostChatMessage)

	// Posts and comments
	api.Get("/posts", contentHandler.ListPosts)
	api.Get("/posts/:id", contentHandler.GetPost)
	api.Get("/posts/:id/comments", contentHandler.ListComments)
	api.Post("/posts", middleware.JWTProtected(cfg), contentHandler.CreatePost)
	api.Post("/posts/:id/comments", middleware.JWTProtected(cfg), contentHandler.CreateComment)

	// Reports — any authenticated user may file one
	api.Post("/reports", middleware.JWTProtected(cfg), reportHandler.CreateReport)

	// Admin moderation panel (JWT + moderation authority)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/moderation/reports", reportHandler.ListReports)
	admin.Get("/moderation/reports/:target_type/:target_id", reportHandler.ListUnresolvedForTarget)
	admin.Put("/moderation/reports/:id", reportHandler.UpdateStatus)

	admin.Put("/users/:id/status", adminHandler.SetUserStatus)
	admin.Delete("/posts/:id", adminHandler.RemovePost)
	admin.Delete("/comments/:id", adminHandler.RemoveComment)
	admin.Delete("/chat-messages/:id", adminHandler.RemoveChatMessage)
	admin.Delete("/campaigns/:id", adminHandler.DeleteCampaign)

	admin.Get("/audit", adminHandler.RecentAudit)
	admin.Get("/audit/:subject_type/:subject_id", adminHandler.AuditTrail)
}
