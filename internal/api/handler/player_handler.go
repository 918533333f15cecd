package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type PlayerHandler struct {
	service ports.PlayerService
}

func NewPlayerHandler(service ports.PlayerService) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// GetAll handles GET /api/players.
//
// @Summary      List players (paginated)
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[playerResponse]
// @Router       /api/players [get]
func (h *PlayerHandler) GetAll(c echo.Context) error {
	page, err := h.service.GetAllPaged(c.Request().Context(), pageSpec(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapPage(page, toPlayerResponse))
}

// Get handles GET /api/players/:id.
//
// @Summary      Get player by ID
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Player ID"
// @Success      200  {object}  playerResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/players/{id} [get]
func (h *PlayerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	player, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlayerResponse(*player))
}

// Create handles POST /api/players. The team reference must name an
// existing team.
//
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      playerRequest  true  "Player details"
// @Success      201   {object}  playerResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/players [post]
func (h *PlayerHandler) Create(c echo.Context) error {
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.service.Create(c.Request().Context(), toPlayerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPlayerResponse(*player))
}

// Update handles PUT /api/players/:id.
//
// @Summary      Update a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Player ID"
// @Param        body  body      playerRequest  true  "Player details"
// @Success      200   {object}  playerResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/players/{id} [put]
func (h *PlayerHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	player, err := h.service.Update(c.Request().Context(), id, toPlayerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlayerResponse(*player))
}

// Delete handles DELETE /api/players/:id.
//
// @Summary      Delete a player
// @Tags         players
// @Security     BearerAuth
// @Param        id  path  int  true  "Player ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/players/{id} [delete]
func (h *PlayerHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetByNationality handles GET /api/players/by-nationality.
//
// @Summary      Search players by nationality
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        nationality  query     string  true   "Nationality"
// @Param        page         query     int     false  "Page number (1-based)"
// @Param        size         query     int     false  "Page size"
// @Success      200          {object}  ports.Page[playerResponse]
// @Router       /api/players/by-nationality [get]
func (h *PlayerHandler) GetByNationality(c echo.Context) error {
	nationality := c.QueryParam("nationality")
	if nationality == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "nationality is required")
	}
	page, err := h.service.GetByNationality(c.Request().Context(), nationality, pageSpec(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapPage(page, toPlayerResponse))
}

// GetByTeam handles GET /api/players/by-team/:teamId.
//
// @Summary      Search players by team
// @Tags         players
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      int  true   "Team ID"
// @Param        page    query     int  false  "Page number (1-based)"
// @Param        size    query     int  false  "Page size"
// @Success      200     {object}  ports.Page[playerResponse]
// @Router       /api/players/by-team/{teamId} [get]
func (h *PlayerHandler) GetByTeam(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	page, err := h.service.GetByTeam(c.Request().Context(), teamID, pageSpec(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapPage(page, toPlayerResponse))
}

func toPlayerInput(req playerRequest) ports.PlayerInput {
	return ports.PlayerInput{
		Name:        req.Name,
		Position:    req.Position,
		Age:         req.Age,
		Nationality: req.Nationality,
		Height:      req.Height,
		Weight:      req.Weight,
		TeamID:      req.TeamID,
	}
}

func toPlayerResponse(p domain.Player) playerResponse {
	return playerResponse{
		PlayerID:    p.PlayerID,
		Name:        p.Name,
		Position:    p.Position,
		Age:         p.Age,
		Nationality: p.Nationality,
		Height:      p.Height,
		Weight:      p.Weight,
		TeamID:      p.TeamID,
	}
}
