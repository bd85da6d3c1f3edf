package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jblavisse/scriptalium/db"
	"github.com/jblavisse/scriptalium/internal/application/auth"
	"github.com/jblavisse/scriptalium/internal/application/project"
	"github.com/jblavisse/scriptalium/internal/application/text"
	"github.com/jblavisse/scriptalium/internal/config"
	infraauth "github.com/jblavisse/scriptalium/internal/infrastructure/auth"
	httprouter "github.com/jblavisse/scriptalium/internal/infrastructure/http"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/handlers"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/middleware"
	"github.com/jblavisse/scriptalium/internal/infrastructure/persistence/postgres"
	"github.com/jblavisse/scriptalium/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := db.Migrate(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	textRepo := postgres.NewTextRepository(pool)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})
	issuer := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret))

	registerUC := auth.NewRegisterUser(userRepo, hasher)
	loginUC := auth.NewLogin(userRepo, hasher, issuer, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	refreshUC := auth.NewRefresh(issuer, cfg.JWT.AccessExpiry)

	createProjectUC := project.NewCreate(projectRepo)
	listProjectsUC := project.NewList(projectRepo)
	getProjectUC := project.NewGet(projectRepo)
	updateProjectUC := project.NewUpdate(projectRepo)
	deleteProjectUC := project.NewDelete(projectRepo)

	createTextUC := text.NewCreateText(textRepo)
	addAnnotationUC := text.NewAddAnnotation(textRepo)

	cookieSecure := !cfg.Debug
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, refreshUC, userRepo, cookieSecure, log)
	projectsHandler := handlers.NewProjectsHandler(createProjectUC, listProjectsUC, getProjectUC, updateProjectUC, deleteProjectUC, log)
	textsHandler := handlers.NewTextsHandler(createTextUC, addAnnotationUC, log)
	csrfHandler := handlers.NewCSRFHandler(cookieSecure)
	healthHandler := handlers.NewHealthHandler(pool)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Debug))
	corsMiddleware := middleware.CORS(cfg.CORS.AllowedOrigins)
	cookieAuth := middleware.NewCookieAuth(issuer)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:     authHandler,
		ProjectsHandler: projectsHandler,
		TextsHandler:    textsHandler,
		CSRFHandler:     csrfHandler,
		HealthHandler:   healthHandler,
		CookieAuth:      cookieAuth,
		Log:             log,
		Secure:          secureMiddleware,
		CORS:            corsMiddleware,
		IPRateLimit:     ipLimit,
		Metrics:         true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
