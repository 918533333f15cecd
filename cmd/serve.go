package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scoresense/sports-api/internal/api"
	"github.com/scoresense/sports-api/internal/core/authz"
	"github.com/scoresense/sports-api/internal/core/service"
	"github.com/scoresense/sports-api/internal/infrastructure/cache"
	"github.com/scoresense/sports-api/internal/infrastructure/db/postgres"
	"github.com/scoresense/sports-api/internal/pkg/config"
	"github.com/scoresense/sports-api/pkg/logger"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is a development convenience; production relies on real
		// environment variables.
		_ = godotenv.Load()
		cfg := config.Load()

		log := logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.IsDevelopment(),
		})

		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := postgres.Connect(ctx, cfg.Postgres.DSN())
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer func() {
			if err := postgres.Close(db); err != nil {
				log.Warn().Err(err).Msg("closing database")
			}
		}()

		rdb, err := cache.Connect(ctx, cache.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			// The team cache is best-effort; the service stays up
			// without it.
			log.Warn().Err(err).Msg("redis unavailable, team cache disabled")
			rdb = nil
		}

		userRepo := postgres.NewUserRepository(db)
		roleRepo := postgres.NewRoleRepository(db)
		teamRepo := postgres.NewTeamRepository(db)
		playerRepo := postgres.NewPlayerRepository(db)
		matchRepo := postgres.NewMatchRepository(db)
		newsRepo := postgres.NewNewsRepository(db)
		statsRepo := postgres.NewPlayerStatsRepository(db)

		var teamCache service.TeamCache
		if rdb != nil {
			teamCache = cache.NewTeamCache(rdb, log)
		}

		tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
		authService := service.NewAuthService(userRepo, roleRepo, tokenService)

		deps := api.Dependencies{
			DB:      db,
			Redis:   rdb,
			Logger:  log,
			Policy:  authz.Default(),
			Tokens:  tokenService,
			Auth:    authService,
			Teams:   service.NewTeamService(teamRepo, teamCache),
			Players: service.NewPlayerService(playerRepo, teamRepo),
			Matches: service.NewMatchService(matchRepo, teamRepo),
			News:    service.NewNewsService(newsRepo, teamRepo),
			Stats:   service.NewPlayerStatsService(statsRepo, playerRepo, matchRepo),
			Roles:   service.NewRoleService(roleRepo),
		}

		e, err := api.NewRouter(deps)
		if err != nil {
			return fmt.Errorf("build router: %w", err)
		}

		go func() {
			log.Info().Str("port", cfg.Port).Msg("starting server")
			if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("server stopped")
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
