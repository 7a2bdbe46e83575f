package di

import (
	"github.com/Ram45016/water-purifier-api/internal/handler"
	"github.com/Ram45016/water-purifier-api/internal/repository"
	"github.com/Ram45016/water-purifier-api/internal/service"
	"github.com/Ram45016/water-purifier-api/internal/token"
	"github.com/Ram45016/water-purifier-api/pkg/config"
	"github.com/Ram45016/water-purifier-api/pkg/database"
	"github.com/Ram45016/water-purifier-api/pkg/logger"
	"github.com/Ram45016/water-purifier-api/pkg/redis"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB     *database.PostgresDB
	Redis  *redis.Client
	Tokens *token.Manager

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository

	// Services
	AuthService    service.AuthService
	ProductService service.ProductService

	// Handlers
	HealthHandler  *handler.HealthHandler
	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
}

// ContainerConfig contains configuration for building the container.
// Redis is optional; when nil the product repository runs uncached.
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client
	Log    *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	c.Tokens = token.NewManager(&token.Config{
		AccessSecret:  cfg.Config.JWT.AccessSecret,
		RefreshSecret: cfg.Config.JWT.RefreshSecret,
		AccessTTL:     cfg.Config.JWT.AccessTokenTTL,
		RefreshTTL:    cfg.Config.JWT.RefreshTokenTTL,
	})

	// Initialize repositories
	c.UserRepo = repository.NewPostgresUserRepository(c.DB.Pool())

	pgProductRepo := repository.NewPostgresProductRepository(c.DB.Pool())
	if c.Redis != nil {
		c.ProductRepo = repository.NewCachedProductRepository(pgProductRepo, c.Redis)
	} else {
		c.ProductRepo = pgProductRepo
	}

	// Initialize services
	c.AuthService = service.NewAuthService(c.UserRepo, c.Tokens, &service.AuthServiceConfig{
		BcryptCost:       cfg.Config.Auth.BcryptCost,
		AllowAdminSignup: cfg.Config.Auth.AllowAdminSignup,
	})
	c.ProductService = service.NewProductService(c.ProductRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, cfg.Log)
	c.ProductHandler = handler.NewProductHandler(c.ProductService, cfg.Log)

	return c
}
