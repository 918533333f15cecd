package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/scoresense/sports-api/docs"
	"github.com/scoresense/sports-api/internal/api/handler"
	"github.com/scoresense/sports-api/internal/api/middleware"
	"github.com/scoresense/sports-api/internal/core/authz"
	"github.com/scoresense/sports-api/internal/core/ports"
	"github.com/scoresense/sports-api/internal/graph"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger zerolog.Logger
	Policy *authz.Policy

	Tokens  ports.TokenService
	Auth    ports.AuthService
	Teams   ports.TeamService
	Players ports.PlayerService
	Matches ports.MatchService
	News    ports.NewsService
	Stats   ports.PlayerStatsService
	Roles   ports.RoleService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Access decisions for every route, REST and GraphQL alike, flow through
// deps.Policy: the Gate middleware enforces it per request, and GraphQL
// resolvers consult it again per operation.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("scoresense"))
	e.Use(middleware.Gate(deps.Policy, deps.Tokens))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	teamHandler := handler.NewTeamHandler(deps.Teams)
	playerHandler := handler.NewPlayerHandler(deps.Players)
	matchHandler := handler.NewMatchHandler(deps.Matches)
	newsHandler := handler.NewNewsHandler(deps.News)
	statsHandler := handler.NewPlayerStatsHandler(deps.Stats)
	roleHandler := handler.NewRoleHandler(deps.Roles)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/api/users", authHandler.Register)
	e.GET("/api/users/me", authHandler.Me)

	// --- Teams ---
	e.GET("/api/teams", teamHandler.GetAll)
	e.GET("/api/teams/:id", teamHandler.Get)
	e.POST("/api/teams", teamHandler.Create)
	e.PUT("/api/teams/:id", teamHandler.Update)
	e.DELETE("/api/teams/:id", teamHandler.Delete)

	// --- Players ---
	e.GET("/api/players", playerHandler.GetAll)
	e.GET("/api/players/by-nationality", playerHandler.GetByNationality)
	e.GET("/api/players/by-team/:teamId", playerHandler.GetByTeam)
	e.GET("/api/players/:id", playerHandler.Get)
	e.POST("/api/players", playerHandler.Create)
	e.PUT("/api/players/:id", playerHandler.Update)
	e.DELETE("/api/players/:id", playerHandler.Delete)

	// --- Matches ---
	e.GET("/api/matches", matchHandler.GetAll)
	e.GET("/api/matches/by-home-team/:teamId", matchHandler.GetByHomeTeam)
	e.GET("/api/matches/by-away-team/:teamId", matchHandler.GetByAwayTeam)
	e.GET("/api/matches/:id", matchHandler.Get)
	e.POST("/api/matches", matchHandler.Create)

	// --- News ---
	e.GET("/api/news", newsHandler.GetAll)
	e.GET("/api/news/by-team/:teamId", newsHandler.GetByTeam)
	e.GET("/api/news/:id", newsHandler.Get)
	e.POST("/api/news", newsHandler.Create)
	e.PUT("/api/news/:id", newsHandler.Update)
	e.DELETE("/api/news/:id", newsHandler.Delete)

	// --- Player statistics ---
	e.GET("/api/player-stats", statsHandler.GetAll)
	e.GET("/api/player-stats/with-red-cards", statsHandler.GetWithRedCards)
	e.GET("/api/player-stats/with-min-goals", statsHandler.GetWithMinGoals)
	e.GET("/api/player-stats/:id", statsHandler.Get)
	e.POST("/api/player-stats", statsHandler.Create)

	// --- Roles ---
	e.GET("/api/roles", roleHandler.GetAll)
	e.GET("/api/roles/:id", roleHandler.Get)
	e.POST("/api/roles", roleHandler.Create)
	e.DELETE("/api/roles/:id", roleHandler.Delete)

	// --- GraphQL ---
	resolver := graph.NewResolver(deps.Players, deps.Stats, deps.Policy)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}
	gql := echo.WrapHandler(graph.NewHTTPHandler(schema))
	e.Any("/graphql", gql)
	e.GET("/graphiql", gql)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
