package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"fitcoach/internal/config"
	"fitcoach/internal/db"
	"fitcoach/internal/email"
	apihttp "fitcoach/internal/http"
	"fitcoach/internal/llm"
	"fitcoach/internal/repository"
	"fitcoach/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	trainerRepo := repository.NewPgTrainerRepository(pool)
	clientRepo := repository.NewPgClientRepository(pool)
	anamnesisRepo := repository.NewPgAnamnesisRepository(pool)
	catalogRepo := repository.NewPgCatalogRepository(pool)

	var (
		loginLimiter service.LoginRateLimiter
		tokenStore   service.RefreshTokenStore
		redisClient  *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
			redisClient = nil
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, 10*time.Minute, 5)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	catalogCache := service.NewCachedCatalog(
		redisClient,
		catalogRepo,
		time.Duration(cfg.CatalogCacheTTLMinutes)*time.Minute,
		logger,
	)

	// Sin SMTP configurado no hay sender; el scoring lo trata como opcional.
	var emailSender email.Sender
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	trainerSvc := service.NewTrainerService(logger, trainerRepo, loginLimiter)
	scoringSvc := service.NewScoringService(logger, anamnesisRepo, catalogCache, clientRepo, emailSender)
	suggestionSvc := service.NewSuggestionService(logger, llmClient, anamnesisRepo)

	trainerHandler := apihttp.NewTrainerHandler(logger, trainerSvc, jwtSvc)
	clientHandler := apihttp.NewClientHandler(logger, clientRepo)
	anamnesisHandler := apihttp.NewAnamnesisHandler(logger, clientRepo, anamnesisRepo, scoringSvc, suggestionSvc)
	catalogHandler := apihttp.NewCatalogHandler(logger, catalogRepo, catalogCache)

	router := apihttp.NewRouter(logger, jwtSvc, trainerHandler, clientHandler, anamnesisHandler, catalogHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
