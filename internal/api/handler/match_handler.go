package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type MatchHandler struct {
	service ports.MatchService
}

func NewMatchHandler(service ports.MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

// GetAll handles GET /api/matches.
//
// @Summary      List matches (paginated)
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[matchResponse]
// @Router       /api/matches [get]
func (h *MatchHandler) GetAll(c echo.Context) error {
	page, err := h.service.GetAllPaged(c.Request().Context(), pageSpec(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapPage(page, toMatchResponse))
}

// Get handles GET /api/matches/:id.
//
// @Summary      Get match by ID
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Match ID"
// @Success      200  {object}  matchResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/matches/{id} [get]
func (h *MatchHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	match, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMatchResponse(*match))
}

// Create handles POST /api/matches. Both team references must name
// existing teams before the match is stored.
//
// @Summary      Create a match
// @Tags         matches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      matchRequest  true  "Match details"
// @Success      201   {object}  matchResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/matches [post]
func (h *MatchHandler) Create(c echo.Context) error {
	var req matchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	match, err := h.service.Create(c.Request().Context(), ports.MatchInput{
		MatchDate:  req.MatchDate,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMatchResponse(*match))
}

// GetByHomeTeam handles GET /api/matches/by-home-team/:teamId.
//
// @Summary      List matches played at home by a team
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      int  true  "Team ID"
// @Success      200     {array}   matchResponse
// @Router       /api/matches/by-home-team/{teamId} [get]
func (h *MatchHandler) GetByHomeTeam(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	matches, err := h.service.GetByHomeTeam(c.Request().Context(), teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(matches, toMatchResponse))
}

// GetByAwayTeam handles GET /api/matches/by-away-team/:teamId.
//
// @Summary      List matches played away by a team
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      int  true  "Team ID"
// @Success      200     {array}   matchResponse
// @Router       /api/matches/by-away-team/{teamId} [get]
func (h *MatchHandler) GetByAwayTeam(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	matches, err := h.service.GetByAwayTeam(c.Request().Context(), teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(matches, toMatchResponse))
}

func toMatchResponse(m domain.Match) matchResponse {
	return matchResponse{
		MatchID:    m.MatchID,
		MatchDate:  m.MatchDate,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
	}
}
