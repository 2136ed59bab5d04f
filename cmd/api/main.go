package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"admin-auth/internal/config"
	"admin-auth/internal/db"
	"admin-auth/internal/email"
	apihttp "admin-auth/internal/http"
	"admin-auth/internal/repository"
	"admin-auth/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
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

	var (
		codesRepo repository.OTPRepository
		storePing apihttp.Pinger
	)
	switch {
	case cfg.DatabaseURL != "":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		codesRepo = repository.NewPgOTPRepository(pool)
		storePing = apihttp.PingFunc(pool.Ping)
	case cfg.MongoURI != "":
		client, database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Fatal("mongo connect", zap.Error(err))
		}
		defer client.Disconnect(ctx)
		codesRepo = repository.NewMongoOTPRepository(database)
		storePing = apihttp.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		})
	default:
		logger.Warn("no database configured, using in-memory otp store")
		codesRepo = repository.NewMemoryOTPRepository()
	}

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	window := time.Duration(cfg.OTPRateLimitWindowMinutes) * time.Minute
	requestLimit := service.NewMemoryRateLimiter(window, cfg.OTPRateLimitMax)
	verifyLimit := service.NewMemoryRateLimiter(window, cfg.OTPRateLimitMax)
	requestIPLimit := service.NewMemoryRateLimiter(window, cfg.OTPRateLimitMax)
	verifyIPLimit := service.NewMemoryRateLimiter(window, cfg.OTPRateLimitMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			requestLimit = service.NewRedisRateLimiter(redisClient, window, cfg.OTPRateLimitMax, "otp:rl:request:")
			verifyLimit = service.NewRedisRateLimiter(redisClient, window, cfg.OTPRateLimitMax, "otp:rl:verify:")
			requestIPLimit = service.NewRedisRateLimiter(redisClient, window, cfg.OTPRateLimitMax, "otp:rl:request-ip:")
			verifyIPLimit = service.NewRedisRateLimiter(redisClient, window, cfg.OTPRateLimitMax, "otp:rl:verify-ip:")
		}
		cancel()
	}

	allowList := service.NewAllowList(cfg.AllowedEmails)
	if allowList.Len() == 0 {
		logger.Warn("allow-list is empty, nobody can authenticate")
	}
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTSessionTTLHours)*time.Hour)

	authSvc := service.NewAuthService(
		logger,
		codesRepo,
		emailSender,
		allowList,
		requestLimit,
		verifyLimit,
		time.Duration(cfg.OTPTTLMinutes)*time.Minute,
	)
	authHandler := apihttp.NewAuthHandler(logger, authSvc, jwtSvc)
	healthHandler := apihttp.NewHealthHandler(logger, storePing)
	router := apihttp.NewRouter(logger, authHandler, healthHandler, jwtSvc, requestIPLimit, verifyIPLimit)

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
