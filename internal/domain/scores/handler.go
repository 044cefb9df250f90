package scores

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinscore/clinscore/internal/domain/calclog"
	"github.com/clinscore/clinscore/internal/registry"
)

type Handler struct {
	svc    *Service
	audit  *calclog.Service
	logger zerolog.Logger
}

// NewHandler wires the score service; audit may be nil when no
// calculation log is configured.
func NewHandler(svc *Service, audit *calclog.Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, audit: audit, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/scores/:score_id", h.CalculateScore)
	api.GET("/scores", h.ListScores)
	api.GET("/scores/:score_id", h.GetScore)
	api.GET("/categories", h.ListCategories)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	ScoreID string `json:"score_id,omitempty"`
	Param   string `json:"param,omitempty"`
}

func (h *Handler) CalculateScore(c echo.Context) error {
	scoreID := c.Param("score_id")
	start := time.Now()

	params, err := decodeParams(c.Request().Body)
	if err != nil {
		h.record(c, scoreID, calclog.OutcomeValidationError, http.StatusUnprocessableEntity, start)
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation_error",
			Message: "request body must be a JSON object of parameters",
			ScoreID: scoreID,
		})
	}

	result, err := h.svc.Calculate(scoreID, params)
	if err != nil {
		var verr *registry.ValidationError
		switch {
		case errors.Is(err, registry.ErrUnknownScore):
			h.record(c, scoreID, calclog.OutcomeUnknownScore, http.StatusNotFound, start)
			return c.JSON(http.StatusNotFound, errorResponse{
				Error:   "unknown_score",
				Message: "no calculator registered for this score_id",
				ScoreID: scoreID,
			})
		case errors.As(err, &verr):
			h.record(c, scoreID, calclog.OutcomeValidationError, http.StatusUnprocessableEntity, start)
			return c.JSON(http.StatusUnprocessableEntity, errorResponse{
				Error:   "validation_error",
				Message: verr.Message,
				ScoreID: scoreID,
				Param:   verr.Param,
			})
		default:
			// The response never carries internal error details.
			h.record(c, scoreID, calclog.OutcomeInternalError, http.StatusInternalServerError, start)
			h.logger.Error().Err(err).Str("score_id", scoreID).Msg("calculation failed")
			return c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "internal_error",
				Message: "calculation failed",
				ScoreID: scoreID,
			})
		}
	}

	h.record(c, scoreID, calclog.OutcomeSuccess, http.StatusOK, start)
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ListScores(c echo.Context) error {
	defs := h.svc.List(c.QueryParam("category"), c.QueryParam("search"))
	if defs == nil {
		defs = []registry.Definition{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scores": defs,
		"total":  len(defs),
	})
}

func (h *Handler) GetScore(c echo.Context) error {
	scoreID := c.Param("score_id")
	def, ok := h.svc.Get(scoreID)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{
			Error:   "unknown_score",
			Message: "no calculator registered for this score_id",
			ScoreID: scoreID,
		})
	}
	return c.JSON(http.StatusOK, def)
}

func (h *Handler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": h.svc.Categories(),
	})
}

// decodeParams reads the request body as a parameter object. An empty
// body is treated as an empty parameter set; anything that is not a
// JSON object is rejected.
func decodeParams(body io.Reader) (registry.Params, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return registry.Params{}, nil
	}
	var params registry.Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	if params == nil {
		params = registry.Params{}
	}
	return params, nil
}

func (h *Handler) record(c echo.Context, scoreID, outcome string, status int, start time.Time) {
	if h.audit == nil {
		return
	}
	rid, _ := c.Get("request_id").(string)
	h.audit.Log(c.Request().Context(), &calclog.Record{
		ScoreID:    scoreID,
		Outcome:    outcome,
		StatusCode: status,
		DurationMS: time.Since(start).Milliseconds(),
		RequestID:  rid,
		ClientIP:   c.RealIP(),
	})
}
