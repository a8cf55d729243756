package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kindredapp/kindred-backend/internal/completion"
	"github.com/kindredapp/kindred-backend/internal/config"
	"github.com/kindredapp/kindred-backend/internal/delivery/http"
	"github.com/kindredapp/kindred-backend/internal/delivery/http/handler"
	"github.com/kindredapp/kindred-backend/internal/delivery/http/middleware"
	"github.com/kindredapp/kindred-backend/internal/infrastructure/database"
	"github.com/kindredapp/kindred-backend/internal/infrastructure/gemini"
	"github.com/kindredapp/kindred-backend/internal/infrastructure/server"
	"github.com/kindredapp/kindred-backend/internal/repository/postgres"
	"github.com/kindredapp/kindred-backend/internal/usecase/auth"
	"github.com/kindredapp/kindred-backend/internal/usecase/onboarding"
	"github.com/kindredapp/kindred-backend/internal/usecase/profile"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis; the completion cache degrades to recomputes when
	// Redis is down, so a failure here is a warning, not a startup error.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize Redis, completion cache disabled: %v\n", err)
		redisClient = nil
	}

	// Initialize Gemini client
	geminiClient, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		fmt.Printf("Warning: Failed to initialize Gemini client: %v\n", err)
		// Don't fail, just continue without AI features
	}

	// Section registry; weight mistakes fail here, at startup.
	registry := completion.DefaultRegistry()

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		profileRepo,
		sessionRepo,
		cfg.JWT.Secret,
	)

	profileUseCase := profile.NewProfileUseCase(
		profileRepo,
		registry,
		redisClient,
		geminiClient,
	)

	onboardingUseCase := onboarding.NewOnboardingUseCase(
		profileRepo,
		registry,
		redisClient,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	onboardingHandler := handler.NewOnboardingHandler(onboardingUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		profileHandler,
		onboardingHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
