package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwellpress/publisher-backend/internal/announcement"
	"github.com/inkwellpress/publisher-backend/internal/api"
	"github.com/inkwellpress/publisher-backend/internal/auth"
	"github.com/inkwellpress/publisher-backend/internal/event"
	"github.com/inkwellpress/publisher-backend/internal/media"
	"github.com/inkwellpress/publisher-backend/internal/order"
	"github.com/inkwellpress/publisher-backend/internal/pkg/storage"
	"github.com/inkwellpress/publisher-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	AdminEmails  []string
	UploadDir    string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	adminClassifier := auth.NewAdminClassifier(cfg.AdminEmails)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Event Module
	eventRepo := event.NewPgxRepository(cfg.DBPool)
	eventService := event.NewService(eventRepo)

	// Announcement Module
	annRepo := announcement.NewPgxRepository(cfg.DBPool)
	annService := announcement.NewService(annRepo)

	// Order Module
	orderRepo := order.NewPgxRepository(cfg.DBPool)
	orderService := order.NewService(orderRepo, eventService)

	// Media Module
	localStore, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init upload storage: %w", err)
	}
	mediaService := media.NewService(localStore, storage.NewImageProcessor(), "/uploads")

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UploadDir:       cfg.UploadDir,
		UserService:     userService,
		EventService:    eventService,
		AnnService:      annService,
		OrderService:    orderService,
		MediaService:    mediaService,
		JWTManager:      jwtManager,
		AdminClassifier: adminClassifier,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
