package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"talenttrack/internal/app"
	"talenttrack/internal/config"
	"talenttrack/internal/database"
	apphttp "talenttrack/internal/http"
	"talenttrack/internal/http/handlers"
	"talenttrack/internal/http/metrics"
	httpmw "talenttrack/internal/http/middleware"
	"talenttrack/internal/observability"
	"talenttrack/internal/repository/postgres"
	"talenttrack/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Debug)

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to migrate schema", "err", err)
	}

	teamRepo := postgres.NewTeamRepository(db)
	userRepo := postgres.NewUserRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	positionRepo := postgres.NewPositionRepository(db)
	pipelineRepo := postgres.NewPipelineRepository(db)

	tokens := security.NewTokenProvider(cfg.JWTSecret)
	verifier := security.NewVerifier(cfg.OIDCJWKSURL, cfg.OIDCIssuer, cfg.OIDCClientID, cfg.JWKSRefresh, nil)
	oidc := security.NewOIDCClient(cfg.OIDCDomain, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURI, nil)

	userService := app.NewUserService(userRepo)
	teamService := app.NewTeamService(teamRepo, positionRepo)
	candidateService := app.NewCandidateService(candidateRepo, pipelineRepo)
	positionService := app.NewPositionService(positionRepo, teamRepo, userRepo, pipelineRepo)
	pipelineService := app.NewPipelineService(pipelineRepo, candidateRepo, positionRepo)
	authService := app.NewAuthService(userService, tokens, oidc, verifier, cfg.Debug, cfg.AllowedEmailDomain, cfg.DevTokenTTL)

	var limiter httpmw.Limiter = httpmw.NewMemoryLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", "err", err)
		}
		limiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
	}

	collector := metrics.NewCollector()

	cookies := handlers.CookieConfig{Domain: cfg.CookieDomain, Secure: cfg.CookieSecure}
	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:      handlers.NewAuthHandler(authService, cookies),
		TeamHandler:      handlers.NewTeamHandler(teamService),
		UserHandler:      handlers.NewUserHandler(userService),
		CandidateHandler: handlers.NewCandidateHandler(candidateService, pipelineService),
		PositionHandler:  handlers.NewPositionHandler(positionService),
		AuthMiddleware:   httpmw.NewAuthMiddleware(authService),
		Limiter:          limiter,
		Metrics:          collector,
		Logger:           logger,
		RequestTimeout:   cfg.RequestTimeout,
		CORSOrigin:       cfg.CORSOrigin,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown failed", "err", err)
	}
}
