package main

import (
	"auth-web-server/config"
	_ "auth-web-server/docs"
	"auth-web-server/internal/handler"
	"auth-web-server/internal/ports"
	"auth-web-server/internal/repository"
	"auth-web-server/internal/security"
	"auth-web-server/internal/service"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title auth-web-server
// @version 1.0
// @description REST API регистрации, аутентификации по JWT и загрузки постов

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := config.SetupLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("Ошибка настройки логгера: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Ошибка при закрытии БД", zap.Error(err))
		}
	}()

	if cfg.DatabaseConfig.Migrate {
		if err := db.RunMigrations(ctx); err != nil {
			logger.Fatal("Ошибка миграций", zap.Error(err))
		}
	}

	store, closeStore := setupInvalidationStore(cfg, logger)
	defer closeStore()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	jwtService, err := security.NewJWTService(&cfg.JWT, store)
	if err != nil {
		logger.Fatal("Ошибка создания JWT сервиса", zap.Error(err))
	}
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)

	var archive ports.PostArchive
	if cfg.S3Config.Enabled {
		s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
		if err != nil {
			logger.Fatal("Ошибка создания S3 сервиса", zap.Error(err))
		}
		archive = s3Service
	}

	postsTimeout, err := time.ParseDuration(cfg.Posts.Timeout)
	if err != nil {
		logger.Fatal("Неверный posts.timeout", zap.Error(err))
	}

	authService := service.NewAuthenticationService(userRepo, jwtService, hasher)
	userService := service.NewUserService(userRepo, hasher)
	postService := service.NewPostService(postRepo, archive, cfg.Posts.SourceURL, postsTimeout, cfg.Posts.MaxBodyBytes)

	authHandler := handler.NewAuthenticationHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	auth := protected(jwtService, authService)
	setupAuthRoutes(router, authHandler, auth)
	setupUserRoutes(router, userHandler, auth)
	setupPostRoutes(router, postHandler, auth)

	runServer(ctx, srv)
}

// setupInvalidationStore : выбирает хранилище отозванных токенов по конфигу
func setupInvalidationStore(cfg *config.AppConfig, logger *zap.Logger) (ports.InvalidationStore, func()) {
	if cfg.Invalidation.Backend != config.InvalidationBackendRedis {
		return security.NewMemoryInvalidationStore(), func() {}
	}

	refreshTTL, err := time.ParseDuration(cfg.JWT.RefreshTokenTTL)
	if err != nil {
		logger.Fatal("Неверный jwt.refresh_token_ttl", zap.Error(err))
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		logger.Fatal("Ошибка подключения к Redis", zap.Error(err))
	}

	return repository.NewInvalidationRepository(redisClient.Client, refreshTTL), func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Ошибка при закрытии Redis", zap.Error(err))
		}
	}
}

// protected : маршруты, доступные только с валидным access токеном
func protected(tokens ports.TokenService, resolver security.IdentityResolver) func(r chi.Router) {
	return func(r chi.Router) {
		r.Use(security.JWTMiddleware(tokens, resolver))
		r.Use(security.RequireIdentity)
	}
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, auth func(r chi.Router)) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/sign-in", h.SignIn)
			r.Post("/refresh", h.Refresh)
			r.Post("/logout", h.Logout)
		})
		r.Group(func(r chi.Router) {
			auth(r)
			r.Get("/me", h.Me)
		})
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler, auth func(r chi.Router)) {
	r.Route("/user", func(r chi.Router) {
		r.Post("/registration", h.RegisterUser)

		r.Group(func(r chi.Router) {
			auth(r)
			r.Get("/{id}", h.GetUserByID)
			r.Get("/email/{email}", h.GetUserByEmail)
		})
	})
}

func setupPostRoutes(r chi.Router, h *handler.PostHandler, auth func(r chi.Router)) {
	r.Route("/api/posts", func(r chi.Router) {
		auth(r)
		r.Get("/", h.GetAllPosts)
		r.Get("/fetch", h.FetchPosts)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	logger := zap.L()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("ошибка работы сервера", zap.Error(err))
		}
	case sig := <-signalChannel:
		logger.Info("получен сигнал остановки работы сервера", zap.Stringer("signal", sig))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		logger.Error("ошибка при остановке сервера", zap.Error(err))
	} else {
		logger.Info("Сервер успешно остановлен")
	}
}
