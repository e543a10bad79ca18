package main

import (
	"context"
	"fmt"

	"search-srv/config"
	configKafka "search-srv/config/kafka"
	configPostgre "search-srv/config/postgre"
	configRedis "search-srv/config/redis"
	_ "search-srv/docs" // Import swagger docs
	"search-srv/internal/httpserver"
	pkgJWT "search-srv/pkg/jwt"
	"search-srv/pkg/log"
	"search-srv/pkg/scope"
)

// @title       Mundo Tango Search API
// @description Universal search across people, posts, events, groups and memories.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name mt_auth_token
// @description Optional. Identifies the caller so their private memories are searchable and their history is kept.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Optional. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Kafka producer (optional)
	kafkaProducer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Kafka producer: ", err)
		return
	}
	if kafkaProducer != nil {
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	} else {
		logger.Infof(ctx, "Kafka disabled, click-throughs are only logged")
	}

	// 6. Initialize JWT verifier (optional)
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		RedisClient: redisClient,

		// Messaging Configuration
		KafkaProducer: kafkaProducer,

		// Authentication Configuration
		JWTManager: jwtManager,
		CookieName: cfg.Cookie.Name,

		// Domain Configuration
		Search: cfg.Search,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeJWTManager returns nil when no secret is configured, so the
// server runs with anonymous access only.
func initializeJWTManager(cfg *config.Config) (scope.Manager, error) {
	if cfg.JWT.SecretKey == "" {
		return nil, nil
	}
	m, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
