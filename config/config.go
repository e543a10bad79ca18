package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Searchable collections, trending counters, search history
	Postgres PostgresConfig

	// Redis - Suggestion and trending cache
	Redis RedisConfig

	// Kafka - Click-through events (optional)
	Kafka KafkaConfig

	// JWT - Optional caller identification
	JWT    JWTConfig
	Cookie CookieConfig

	// Search - Gateway tuning
	Search SearchConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled  bool
	Brokers  []string
	Topic    string
	ClientID string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CookieConfig names the cookie the access token may be read from.
type CookieConfig struct {
	Name string
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
// An empty SecretKey disables verification and every request is anonymous.
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// SearchConfig tunes the search gateway.
type SearchConfig struct {
	DefaultLimit       int
	MaxLimit           int
	LookupTimeout      time.Duration
	TrackingTimeout    time.Duration
	TrendingWindow     time.Duration
	IsolateFailures    bool
	SuggestionCacheTTL time.Duration
	TrendingCacheTTL   time.Duration
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("search-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/mundo/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Click-through publishing (optional)
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// Cookie
	cfg.Cookie.Name = viper.GetString("cookie.name")

	// Search
	cfg.Search.DefaultLimit = viper.GetInt("search.default_limit")
	cfg.Search.MaxLimit = viper.GetInt("search.max_limit")
	cfg.Search.LookupTimeout = viper.GetDuration("search.lookup_timeout")
	cfg.Search.TrackingTimeout = viper.GetDuration("search.tracking_timeout")
	cfg.Search.TrendingWindow = viper.GetDuration("search.trending_window")
	cfg.Search.IsolateFailures = viper.GetBool("search.isolate_failures")
	cfg.Search.SuggestionCacheTTL = viper.GetDuration("search.suggestion_cache_ttl")
	cfg.Search.TrendingCacheTTL = viper.GetDuration("search.trending_cache_ttl")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "mundotango")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "public")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. Kafka (topic: search.click)
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "search.click")
	viper.SetDefault("kafka.client_id", "search-srv")

	// JWT
	viper.SetDefault("jwt.issuer", "")
	viper.SetDefault("jwt.audience", []string{})

	// Cookie
	viper.SetDefault("cookie.name", "mt_auth_token")

	// Search
	viper.SetDefault("search.default_limit", 20)
	viper.SetDefault("search.max_limit", 50)
	viper.SetDefault("search.lookup_timeout", "0s")
	viper.SetDefault("search.tracking_timeout", "5s")
	viper.SetDefault("search.trending_window", "168h") // 7 days
	viper.SetDefault("search.isolate_failures", false)
	viper.SetDefault("search.suggestion_cache_ttl", "1m")
	viper.SetDefault("search.trending_cache_ttl", "5m")
}

func validate(cfg *Config) error {
	// JWT is optional, but a configured secret must be strong enough
	if cfg.JWT.SecretKey != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka.enabled is true")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka.enabled is true")
		}
	}

	// Validate Search Configuration
	if cfg.Search.MaxLimit < 1 || cfg.Search.MaxLimit > 50 {
		return fmt.Errorf("search.max_limit must be between 1 and 50")
	}
	if cfg.Search.DefaultLimit < 1 || cfg.Search.DefaultLimit > cfg.Search.MaxLimit {
		return fmt.Errorf("search.default_limit must be between 1 and search.max_limit")
	}
	if cfg.Search.LookupTimeout < 0 || cfg.Search.TrackingTimeout < 0 {
		return fmt.Errorf("search timeouts must not be negative")
	}
	if cfg.Search.TrendingWindow <= 0 {
		return fmt.Errorf("search.trending_window must be greater than 0")
	}

	return nil
}
