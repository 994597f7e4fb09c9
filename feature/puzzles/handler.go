package puzzles

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"breezechess/core/apperr"
	"breezechess/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for puzzles.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the puzzle routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/getPuzzles", h.HandleGetPuzzles)
}

// HandleGetPuzzles returns puzzles matching the given filters.
// @Summary Get Puzzles
// @Description Select `count` puzzles, optionally restricted to the themes listed in `filters.themes`.
// @Tags puzzles
// @Accept json
// @Produce json
// @Param request body Request true "Filters and count"
// @Success 200 {object} Response "Selected puzzles"
// @Failure 500 {object} ErrorResponse "Any failure, with its kind"
// @Router /getPuzzles [post]
func (h *Handler) HandleGetPuzzles(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, err := decodeRequest(c.Body())
	if err != nil {
		return h.fail(c, l, err)
	}

	resp, err := h.service.GetPuzzles(c.UserContext(), req)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(resp)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	kind := apperr.KindOf(err)
	l.Error("Puzzle request failed",
		zap.String("kind", string(kind)),
		zap.String("op", apperr.OpOf(err)),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Detail: err.Error(),
		Kind:   kind,
	})
}

// wireRequest is the raw body of POST /getPuzzles. Numbers stay json.Number
// so filter values are echoed back exactly as sent.
type wireRequest struct {
	Filters map[string]any `json:"filters"`
	Count   *json.Number   `json:"count"`
}

func decodeRequest(body []byte) (Request, error) {
	var wire wireRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&wire); err != nil {
		return Request{}, apperr.Validation("puzzles.decode", err)
	}
	if dec.More() {
		return Request{}, apperr.Validationf("puzzles.decode", "unexpected data after request body")
	}

	req := Request{Filters: wire.Filters}
	if wire.Count != nil {
		count, err := parseCount(*wire.Count)
		if err != nil {
			return Request{}, err
		}
		req.Count = &count
	}
	return req, nil
}

// parseCount accepts integers and integral floats such as 3.0.
func parseCount(n json.Number) (int, error) {
	if count, err := strconv.Atoi(n.String()); err == nil {
		return count, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, apperr.Validationf("puzzles.decode", "count must be an integer, got %s", n.String())
	}
	return int(f), nil
}
