package calclog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinscore/clinscore/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/calculations", h.ListCalculations)
}

func (h *Handler) ListCalculations(c echo.Context) error {
	params := map[string]string{}
	if v := c.QueryParam("score_id"); v != "" {
		params["score_id"] = v
	}
	if v := c.QueryParam("outcome"); v != "" {
		params["outcome"] = v
	}
	page := pagination.FromContext(c)

	records, total, err := h.svc.Search(c.Request().Context(), params, page.Limit, page.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	if records == nil {
		records = []*Record{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"calculations": records,
		"total":        total,
		"has_more":     page.HasNext(total),
	})
}
