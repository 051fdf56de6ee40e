package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"sklyit/cache"
	"sklyit/config"
	"sklyit/database"
	"sklyit/handlers"
	"sklyit/mail"
	"sklyit/routes"
	"sklyit/services"
	"sklyit/storage"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := config.Load(); err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	cfg := config.AppConfig

	database.InitDB(cfg.DatabaseURL)
	defer database.CloseDB()
	db := database.GetDB()

	database.InitMongo(cfg.MongoURI)
	defer database.CloseMongo()
	postsCollection := database.Mongo.Database(cfg.MongoDB).Collection("posts")

	// Cache: Redis when configured, in-process store otherwise.
	var store cache.Store
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		redisStore, err := cache.NewRedis(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info().Msg("search cache backed by Redis")
	} else {
		store = cache.NewMemory()
		logger.Info().Msg("search cache backed by in-process store")
	}

	var blob storage.BlobStore
	if cfg.AzureStorageConnString != "" {
		azure, err := storage.NewAzureBlobStore(cfg.AzureStorageConnString, cfg.AzureContainerName)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize blob storage")
		}
		blob = azure
	} else {
		logger.Warn().Msg("blob storage not configured; image uploads disabled")
	}

	var mailer mail.Mailer
	if cfg.EmailUser != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	} else {
		logger.Warn().Msg("mail not configured; password reset emails disabled")
	}

	clientsSvc := services.NewClientsService(db, logger)
	prefsSvc := services.NewPreferencesService(db)
	searchSvc := services.NewSearchService(clientsSvc, store, prefsSvc, cfg.SearchCacheTTL, logger)
	analyticsSvc := services.NewAnalyticsService(db, logger)
	insightsSvc := services.NewInsightsService(analyticsSvc, cfg.GeminiAPIKey, logger)
	ordersSvc := services.NewOrdersService(db, logger)
	customersSvc := services.NewCustomersService(db, logger)
	catalogSvc := services.NewCatalogService(db, blob, logger)
	postsSvc := services.NewPostsService(postsCollection, blob, logger)
	usersSvc := services.NewUsersService(db, blob, logger)
	authSvc := services.NewAuthService(usersSvc, mailer, logger)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(cors.New())

	routes.SetupRoutes(app, &routes.Registry{
		Auth:      handlers.NewAuthHandler(authSvc),
		Users:     handlers.NewUserHandler(usersSvc),
		Search:    handlers.NewSearchHandler(searchSvc, prefsSvc),
		Clients:   handlers.NewClientHandler(clientsSvc),
		Orders:    handlers.NewOrderHandler(ordersSvc),
		Customers: handlers.NewCustomerHandler(customersSvc),
		Analytics: handlers.NewAnalyticsHandler(analyticsSvc, insightsSvc),
		Catalog:   handlers.NewCatalogHandler(catalogSvc),
		Posts:     handlers.NewPostHandler(postsSvc),
	})

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
