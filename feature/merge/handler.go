package merge

import (
	"game-insights/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the merge engine.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the merge routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/merge")
	group.Post("/", h.HandleRebuild)
	group.Get("/summary", h.HandleSummary)
}

// HandleRebuild rebuilds the merged table from the leaf stores.
// @Summary Rebuild merged table
// @Description Recomputes the games-sales join wholesale and replaces the merged table.
// @Tags merge
// @Produce json
// @Success 200 {object} merge.Stats "Join statistics"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /merge [post]
func (h *Handler) HandleRebuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	stats, err := h.service.Rebuild(c.Context())
	if err != nil {
		l.Error("Merge rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stats)
}

// HandleSummary returns the current merged row count.
// @Summary Merged table summary
// @Description Returns the number of rows currently in the merged table.
// @Tags merge
// @Produce json
// @Success 200 {object} map[string]int64 "Row count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /merge/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	count, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Merge summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"merged_records": count})
}
