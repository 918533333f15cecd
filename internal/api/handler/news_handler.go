package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/domain"
	"github.com/scoresense/sports-api/internal/core/ports"
)

type NewsHandler struct {
	service ports.NewsService
}

func NewNewsHandler(service ports.NewsService) *NewsHandler {
	return &NewsHandler{service: service}
}

// GetAll handles GET /api/news.
//
// @Summary      List news (paginated)
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (1-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  ports.Page[newsResponse]
// @Router       /api/news [get]
func (h *NewsHandler) GetAll(c echo.Context) error {
	page, err := h.service.GetAllPaged(c.Request().Context(), pageSpec(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapPage(page, toNewsResponse))
}

// Get handles GET /api/news/:id.
//
// @Summary      Get a news item by ID
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "News ID"
// @Success      200  {object}  newsResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNewsResponse(*item))
}

// Create handles POST /api/news. The team reference must name an
// existing team.
//
// @Summary      Create a news item
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      newsRequest  true  "News details"
// @Success      201   {object}  newsResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), toNewsInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toNewsResponse(*item))
}

// Update handles PUT /api/news/:id.
//
// @Summary      Update a news item
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "News ID"
// @Param        body  body      newsRequest  true  "News details"
// @Success      200   {object}  newsResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Update(c.Request().Context(), id, toNewsInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNewsResponse(*item))
}

// Delete handles DELETE /api/news/:id.
//
// @Summary      Delete a news item
// @Tags         news
// @Security     BearerAuth
// @Param        id  path  int  true  "News ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// GetByTeam handles GET /api/news/by-team/:teamId.
//
// @Summary      List news about a team
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      int  true  "Team ID"
// @Success      200     {array}   newsResponse
// @Router       /api/news/by-team/{teamId} [get]
func (h *NewsHandler) GetByTeam(c echo.Context) error {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		return err
	}
	items, err := h.service.GetByTeam(c.Request().Context(), teamID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mapSlice(items, toNewsResponse))
}

func toNewsInput(req newsRequest) ports.NewsInput {
	return ports.NewsInput{
		Title:       req.Title,
		Content:     req.Content,
		PublishedAt: req.PublishedAt,
		TeamID:      req.TeamID,
	}
}

func toNewsResponse(n domain.News) newsResponse {
	return newsResponse{
		NewsID:      n.NewsID,
		Title:       n.Title,
		Content:     n.Content,
		PublishedAt: n.PublishedAt,
		TeamID:      n.TeamID,
	}
}
