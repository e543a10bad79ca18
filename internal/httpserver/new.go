package httpserver

import (
	"database/sql"
	"errors"

	"search-srv/config"
	"search-srv/internal/search"
	pkgKafka "search-srv/pkg/kafka"
	"search-srv/pkg/log"
	pkgRedis "search-srv/pkg/redis"
	"search-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis

	// Messaging Configuration (optional)
	kafkaProducer pkgKafka.IProducer

	// Authentication Configuration (optional)
	jwtManager scope.Manager
	cookieName string

	// Domain Configuration
	searchConfig config.SearchConfig
	searchUC     search.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis

	// Messaging Configuration (optional, nil disables click publishing)
	KafkaProducer pkgKafka.IProducer

	// Authentication Configuration (optional, nil makes every request anonymous)
	JWTManager scope.Manager
	CookieName string

	// Domain Configuration
	Search config.SearchConfig
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,

		// Messaging Configuration
		kafkaProducer: cfg.KafkaProducer,

		// Authentication Configuration
		jwtManager: cfg.JWTManager,
		cookieName: cfg.CookieName,

		// Domain Configuration
		searchConfig: cfg.Search,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}

	return nil
}
