package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type PlayerStatsHandler struct {
	service ports.PlayerStatsService
}

func NewPlayerStatsHandler(service ports.PlayerStatsService) *PlayerStatsHandler {
	return &PlayerStatsHandler{service: service}
}

// GetAll handles GET /api/player-stats.
//
// @Summary      List player statistics (paginated)
// @Tags         player-stats
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[playerStatsResponse]
// @Router       /api/player-stats [get]
func (h *PlayerStatsHandler) GetAll(c echo.Context) error {
	page, err := h.service.GetAllPaged(c.Request().Context(), pageSpec(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapPage(page, toPlayerStatsResponse))
}

// Get handles GET /api/player-stats/:id.
//
// @Summary      Get a statistics row by ID
// @Tags         player-stats
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Stat ID"
// @Success      200  {object}  playerStatsResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/player-stats/{id} [get]
func (h *PlayerStatsHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	stats, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlayerStatsResponse(*stats))
}

// Create handles POST /api/player-stats. Both the player and the match
// references must name existing rows.
//
// @Summary      Record statistics for a player in a match
// @Tags         player-stats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      playerStatsRequest  true  "Statistics"
// @Success      201   {object}  playerStatsResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/player-stats [post]
func (h *PlayerStatsHandler) Create(c echo.Context) error {
	var req playerStatsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stats, err := h.service.Create(c.Request().Context(), ports.PlayerStatsInput{
		PlayerID:      req.PlayerID,
		MatchID:       req.MatchID,
		Goals:         req.Goals,
		Assists:       req.Assists,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
		MinutesPlayed: req.MinutesPlayed,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPlayerStatsResponse(*stats))
}

// GetWithRedCards handles GET /api/player-stats/with-red-cards.
//
// @Summary      List statistics rows with at least one red card
// @Tags         player-stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  playerStatsResponse
// @Router       /api/player-stats/with-red-cards [get]
func (h *PlayerStatsHandler) GetWithRedCards(c echo.Context) error {
	rows, err := h.service.GetWithRedCards(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(rows, toPlayerStatsResponse))
}

// GetWithMinGoals handles GET /api/player-stats/with-min-goals.
//
// @Summary      List statistics rows with at least the given goal count
// @Tags         player-stats
// @Produce      json
// @Security     BearerAuth
// @Param        goals  query     int  true  "Minimum goals"
// @Success      200    {array}   playerStatsResponse
// @Failure      400    {object}  errorResponse
// @Router       /api/player-stats/with-min-goals [get]
func (h *PlayerStatsHandler) GetWithMinGoals(c echo.Context) error {
	goals, err := strconv.Atoi(c.QueryParam("goals"))
	if err != nil || goals < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "goals must be a non-negative integer")
	}
	rows, err := h.service.GetWithMinGoals(c.Request().Context(), goals)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(rows, toPlayerStatsResponse))
}

func toPlayerStatsResponse(s domain.PlayerStats) playerStatsResponse {
	return playerStatsResponse{
		StatID:        s.StatID,
		PlayerID:      s.PlayerID,
		MatchID:       s.MatchID,
		Goals:         s.Goals,
		Assists:       s.Assists,
		YellowCards:   s.YellowCards,
		RedCards:      s.RedCards,
		MinutesPlayed: s.MinutesPlayed,
	}
}
