package container

import (
	"context"
	"fmt"
	"time"

	"bakery-storefront/internal/config"
	infraCache "bakery-storefront/internal/infrastructure/cache"
	"bakery-storefront/internal/infrastructure/database"
	"bakery-storefront/internal/infrastructure/events"
	"bakery-storefront/internal/infrastructure/httpclient"
	"bakery-storefront/internal/infrastructure/queue"
	"bakery-storefront/pkg/cache"
	"bakery-storefront/pkg/logger"

	cartHandler "bakery-storefront/internal/domains/cart/handler"
	cartRepo "bakery-storefront/internal/domains/cart/repository"
	cartService "bakery-storefront/internal/domains/cart/service"
	catalogHandler "bakery-storefront/internal/domains/catalog/handler"
	catalogService "bakery-storefront/internal/domains/catalog/service"
	identityHandler "bakery-storefront/internal/domains/identity/handler"
	identityRepo "bakery-storefront/internal/domains/identity/repository"
	identityService "bakery-storefront/internal/domains/identity/service"
	recommendationHandler "bakery-storefront/internal/domains/recommendation/handler"
	recommendationRepo "bakery-storefront/internal/domains/recommendation/repository"
	recommendationService "bakery-storefront/internal/domains/recommendation/service"
	weatherGateway "bakery-storefront/internal/domains/weather/gateway"
	weatherService "bakery-storefront/internal/domains/weather/service"

	"github.com/hibiken/asynq"
	"github.com/twmb/franz-go/pkg/kgo"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API process.
// Order of construction: config, infrastructure, repositories, services, handlers.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config *config.Config
	Redis  *infraCache.RedisClient
	Cache  cache.Cache
	DB     *database.PostgresDB // nil unless CART_STORE=postgres

	asynqClient *asynq.Client
	queueClient *queue.Client
	kafkaClient *kgo.Client

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	CartRepo       cartRepo.RepositoryInterface
	SessionRepo    identityRepo.RepositoryInterface
	SuggestionRepo recommendationRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================

	Catalog        *catalogService.Catalog
	CartService    *cartService.CartService
	Identity       *identityService.IdentityService
	WeatherService *weatherService.WeatherService
	Recommender    *recommendationService.Engine

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	CatalogHandler        *catalogHandler.Handler
	CartHandler           *cartHandler.Handler
	IdentityHandler       *identityHandler.Handler
	RecommendationHandler *recommendationHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

func NewContainer() (*Container, error) {
	logger.Info("🔧 Initializing DI container", nil)

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	if err := c.initInfrastructure(); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 3: REPOSITORIES
	// ========================================
	c.initRepositories()

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	if err := c.initServices(); err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.initHandlers()

	logger.Info("🎉 DI container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
		"cart_store":  cfg.Cart.Store,
		"kafka":       c.kafkaClient != nil,
	})
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initInfrastructure() error {
	cfg := c.Config

	// Redis backs sessions, cart snapshots and the checkout queue.
	c.Redis = infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.Redis.Connect(ctx); err != nil {
		// Not fatal: cart reads degrade to empty, sessions to anonymous.
		logger.Warn("⚠️ Redis unavailable at startup", map[string]interface{}{"error": err.Error()})
	}
	c.Cache = infraCache.NewRedisCache(c.Redis)

	if cfg.Cart.Store == config.CartStorePostgres {
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)
		dbCtx, dbCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer dbCancel()
		if err := db.Connect(dbCtx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
	}

	c.queueClient, c.asynqClient = queue.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	if len(cfg.Events.Brokers) > 0 {
		kCtx, kCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer kCancel()
		client, err := events.NewKafkaClient(kCtx, cfg.Events.Brokers, cfg.Events.Topic)
		if err != nil {
			logger.Warn("⚠️ Kafka unavailable, cart activity will only be logged", map[string]interface{}{
				"brokers": cfg.Events.Brokers,
				"error":   err.Error(),
			})
		} else {
			c.kafkaClient = client
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		c.CartRepo = cartRepo.NewPostgresRepository(c.DB.Pool)
	} else {
		c.CartRepo = cartRepo.NewRedisRepository(c.Redis.Client, c.Config.Cart.SnapshotTTL)
	}
	c.SessionRepo = identityRepo.NewSessionRepository(c.Cache, c.Config.Cart.SessionTTL)
	c.SuggestionRepo = recommendationRepo.NewSnapshotRepository(c.Cache, c.Config.Weather.SuggestionTTL)
}

func (c *Container) initServices() error {
	cfg := c.Config

	catalog, err := catalogService.Load(cfg.Catalog.SpreadsheetPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	c.Catalog = catalog

	var publisher cartService.ActivityPublisher = events.LogPublisher{}
	if c.kafkaClient != nil {
		publisher = events.NewKafkaPublisher(c.kafkaClient)
	}

	c.CartService = cartService.NewCartService(
		c.CartRepo,
		catalog,
		c.queueClient,
		publisher,
		cartService.Config{
			ShippingFee:   cfg.Cart.ShippingFee,
			CheckoutDelay: cfg.Cart.CheckoutDelay,
		},
	)

	// Sign-in merges the device cart into the user's cart, sign-out keeps a
	// copy of the user's cart on the device.
	c.Identity = identityService.NewIdentityService(c.SessionRepo)
	c.Identity.OnSignIn(func(ctx context.Context, sessionID, userID string) {
		c.CartService.MergeOnSignIn(ctx, sessionID, userID)
	})
	c.Identity.OnSignOut(c.CartService.KeepOnSignOut)

	httpClient := httpclient.NewTracedClient(cfg.Weather.Timeout)
	c.WeatherService = weatherService.NewWeatherService(
		weatherGateway.NewOpenWeatherClient(weatherGateway.OpenWeatherConfig{
			APIKey:  cfg.Weather.APIKey,
			BaseURL: cfg.Weather.BaseURL,
			Units:   cfg.Weather.Units,
			Lang:    cfg.Weather.Lang,
		}, httpClient),
		weatherGateway.NewViaCEPClient(cfg.Weather.PostalURL, httpClient),
		weatherService.Config{
			DefaultCity: cfg.Weather.DefaultCity,
			Timeout:     cfg.Weather.Timeout,
		},
	)

	c.Recommender = recommendationService.NewEngine(catalog, c.SuggestionRepo)

	return nil
}

func (c *Container) initHandlers() {
	c.CatalogHandler = catalogHandler.NewHandler(c.Catalog)
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.IdentityHandler = identityHandler.NewHandler(c.Identity, c.CartService)
	c.RecommendationHandler = recommendationHandler.NewHandler(c.WeatherService, c.Recommender, c.CartService)
}

// Cleanup releases connections; safe on a partially built container.
func (c *Container) Cleanup() {
	logger.Info("🧹 Cleaning up container resources", nil)

	if c.kafkaClient != nil {
		c.kafkaClient.Close()
	}
	if c.asynqClient != nil {
		if err := c.asynqClient.Close(); err != nil {
			logger.Error("Failed to close queue client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}

	logger.Info("✅ Container cleanup completed", nil)
}
