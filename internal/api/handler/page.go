package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scoresense/sports-api/internal/core/ports"
)

// pageSpec reads ?page=X&size=Y query parameters. Missing or malformed
// values fall back to the defaults applied by PageSpec.Normalize.
func pageSpec(c echo.Context) ports.PageSpec {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return ports.PageSpec{Page: page, Size: size}
}

// mapPage converts a page of domain entities to a page of response DTOs,
// preserving the paging metadata.
func mapPage[T, R any](p *ports.Page[T], f func(T) R) *ports.Page[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = f(item)
	}
	return &ports.Page[R]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		Size:       p.Size,
		TotalPages: p.TotalPages,
	}
}

func mapSlice[T, R any](items []T, f func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = f(item)
	}
	return out
}

// pathID parses the :id path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
