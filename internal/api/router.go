package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inkwellpress/publisher-backend/internal/announcement"
	annHttp "github.com/inkwellpress/publisher-backend/internal/announcement/http"
	"github.com/inkwellpress/publisher-backend/internal/auth"
	"github.com/inkwellpress/publisher-backend/internal/event"
	eventHttp "github.com/inkwellpress/publisher-backend/internal/event/http"
	"github.com/inkwellpress/publisher-backend/internal/media"
	mediaHttp "github.com/inkwellpress/publisher-backend/internal/media/http"
	"github.com/inkwellpress/publisher-backend/internal/order"
	orderHttp "github.com/inkwellpress/publisher-backend/internal/order/http"
	"github.com/inkwellpress/publisher-backend/internal/user"
)

// Config holds the dependencies required to assemble the router.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	UploadDir    string

	UserService  user.Service
	EventService event.Service
	AnnService   announcement.Service
	OrderService order.Service
	MediaService media.Service

	JWTManager      *auth.JWTManager
	AdminClassifier *auth.AdminClassifier
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks the authenticated email against the allowlist.
	adminMiddleware := RequireAdmin(cfg.AdminClassifier)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager, cfg.AdminClassifier)
	eventHandler := eventHttp.NewHandler(cfg.EventService)
	annHandler := annHttp.NewHandler(cfg.AnnService)
	orderHandler := orderHttp.NewHandler(cfg.OrderService)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService)

	// Uploaded media is served straight from disk.
	if cfg.UploadDir != "" {
		r.Static("/uploads", cfg.UploadDir)
	}

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/me", authMiddleware, authHandler.Me)

		// Back-office entry: redirects instead of JSON errors.
		v1.GET("/admin", auth.AuthOptional(cfg.JWTManager), AdminPage(cfg.AdminClassifier))

		eventHttp.RegisterRoutes(v1, eventHandler, authMiddleware, adminMiddleware)
		annHttp.RegisterRoutes(v1, annHandler, authMiddleware, adminMiddleware)
		orderHttp.RegisterRoutes(v1, orderHandler, authMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler, authMiddleware, adminMiddleware)
	}

	return r
}
