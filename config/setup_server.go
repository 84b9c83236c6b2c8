package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

const (
	InvalidationBackendMemory = "memory"
	InvalidationBackendRedis  = "redis"

	secretEnvKey = "AUTH_JWT_SECRET"
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig     `yaml:"databaseConfig"`
	RedisConfig    RedisConfig        `yaml:"redisConfig"`
	ServerAddr     string             `yaml:"serverAddr"`
	S3Config       S3Config           `yaml:"s3Config"`
	JWT            JWTConfig          `yaml:"jwt"`
	Security       SecurityConfig     `yaml:"security"`
	Invalidation   InvalidationConfig `yaml:"invalidation"`
	Posts          PostsConfig        `yaml:"posts"`
	Logging        LoggingConfig      `yaml:"logging"`
}

func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	if secret := os.Getenv(secretEnvKey); secret != "" {
		cfg.JWT.SecretKey = secret
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.JWT.AccessTokenTTL == "" {
		cfg.JWT.AccessTokenTTL = "1m"
	}
	if cfg.JWT.RefreshTokenTTL == "" {
		cfg.JWT.RefreshTokenTTL = "24h"
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "auth-web-server"
	}
	if cfg.Security.BcryptCost == 0 {
		cfg.Security.BcryptCost = 4
	}
	if cfg.Invalidation.Backend == "" {
		cfg.Invalidation.Backend = InvalidationBackendMemory
	}
	if cfg.Posts.SourceURL == "" {
		cfg.Posts.SourceURL = "https://jsonplaceholder.typicode.com/posts"
	}
	if cfg.Posts.Timeout == "" {
		cfg.Posts.Timeout = "10s"
	}
	if cfg.Posts.MaxBodyBytes <= 0 {
		cfg.Posts.MaxBodyBytes = 10 << 20
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func (cfg *AppConfig) validate() error {
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("не задан jwt.secret_key")
	}

	switch cfg.Invalidation.Backend {
	case InvalidationBackendMemory, InvalidationBackendRedis:
	default:
		return fmt.Errorf("неизвестный invalidation.backend: %q", cfg.Invalidation.Backend)
	}

	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
