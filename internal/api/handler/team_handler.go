package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type TeamHandler struct {
	service ports.TeamService
}

func NewTeamHandler(service ports.TeamService) *TeamHandler {
	return &TeamHandler{service: service}
}

// GetAll handles GET /api/teams.
//
// @Summary      List teams (paginated)
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[teamResponse]
// @Router       /api/teams [get]
func (h *TeamHandler) GetAll(c echo.Context) error {
	page, err := h.service.GetAllPaged(c.Request().Context(), pageSpec(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapPage(page, toTeamResponse))
}

// Get handles GET /api/teams/:id.
//
// @Summary      Get team by ID
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Team ID"
// @Success      200  {object}  teamResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/teams/{id} [get]
func (h *TeamHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	team, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTeamResponse(*team))
}

// Create handles POST /api/teams.
//
// @Summary      Create a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teamRequest  true  "Team details"
// @Success      201   {object}  teamResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/teams [post]
func (h *TeamHandler) Create(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Create(c.Request().Context(), toTeamInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTeamResponse(*team))
}

// Update handles PUT /api/teams/:id.
//
// @Summary      Update a team
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Team ID"
// @Param        body  body      teamRequest  true  "Team details"
// @Success      200   {object}  teamResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/teams/{id} [put]
func (h *TeamHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	team, err := h.service.Update(c.Request().Context(), id, toTeamInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTeamResponse(*team))
}

// Delete handles DELETE /api/teams/:id.
//
// @Summary      Delete a team
// @Tags         teams
// @Security     BearerAuth
// @Param        id  path  int  true  "Team ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/teams/{id} [delete]
func (h *TeamHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toTeamInput(req teamRequest) ports.TeamInput {
	return ports.TeamInput{
		Name:        req.Name,
		City:        req.City,
		Stadium:     req.Stadium,
		FoundedYear: req.FoundedYear,
	}
}

func toTeamResponse(t domain.Team) teamResponse {
	return teamResponse{
		TeamID:      t.TeamID,
		Name:        t.Name,
		City:        t.City,
		Stadium:     t.Stadium,
		FoundedYear: t.FoundedYear,
	}
}
