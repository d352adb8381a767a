package report

import (
	"errors"
	"strconv"

	"game-insights/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reports")
	group.Get("/top-sellers", h.HandleTopSellers)
	group.Get("/genre-sales", h.HandleGenreSales)
	group.Get("/genre-ratings", h.HandleGenreRatings)
	group.Get("/publishers", h.HandlePublishers)
	group.Get("/platform-sales", h.HandlePlatformSales)
	group.Get("/yearly-sales", h.HandleYearlySales)
	group.Get("/top-wishlist", h.HandleTopWishlist)
	group.Get("/overview", h.HandleOverview)
}

// HandleTopSellers returns the best-selling titles globally.
// @Summary Top global sellers
// @Description Titles ranked by reported global sales, descending.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.SellerRow "Ranked titles"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/top-sellers [get]
func (h *Handler) HandleTopSellers(c *fiber.Ctx) error {
	limit, err := parseLimit(c, DefaultLimit)
	if err != nil {
		return badLimit(c, err)
	}

	rows, err := h.service.TopGlobalSellers(c.Context(), limit)
	return respond(c, h.service.logger, rows, err)
}

// HandleGenreSales returns genres ranked by summed global sales.
// @Summary Top genres by sales
// @Description Engagement-side genre groups ranked by total global sales.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.GenreSalesRow "Ranked genres"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/genre-sales [get]
func (h *Handler) HandleGenreSales(c *fiber.Ctx) error {
	limit, err := parseLimit(c, DefaultLimit)
	if err != nil {
		return badLimit(c, err)
	}

	rows, err := h.service.TopGenresBySales(c.Context(), limit)
	return respond(c, h.service.logger, rows, err)
}

// HandleGenreRatings returns genres ranked by mean rating.
// @Summary Average rating by genre
// @Description Genre groups ranked by mean community rating (2 decimals).
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.GenreRatingRow "Ranked genres"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/genre-ratings [get]
func (h *Handler) HandleGenreRatings(c *fiber.Ctx) error {
	limit, err := parseLimit(c, DefaultLimit)
	if err != nil {
		return badLimit(c, err)
	}

	rows, err := h.service.AverageRatingByGenre(c.Context(), limit)
	return respond(c, h.service.logger, rows, err)
}

// HandlePublishers returns publishers ranked by total sales.
// @Summary Publisher performance
// @Description Publishers ranked by total global sales with distinct title counts.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {array} models.PublisherRow "Ranked publishers"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/publishers [get]
func (h *Handler) HandlePublishers(c *fiber.Ctx) error {
	limit, err := parseLimit(c, DefaultPublisherLimit)
	if err != nil {
		return badLimit(c, err)
	}

	rows, err := h.service.PublisherPerformance(c.Context(), limit)
	return respond(c, h.service.logger, rows, err)
}

// HandlePlatformSales returns platforms ranked by total sales.
// @Summary Platform sales
// @Description Sales-side platforms ranked by total global sales with mean ratings.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.PlatformRow "Ranked platforms"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/platform-sales [get]
func (h *Handler) HandlePlatformSales(c *fiber.Ctx) error {
	limit, err := parseLimit(c, DefaultLimit)
	if err != nil {
		return badLimit(c, err)
	}

	rows, err := h.service.PlatformSales(c.Context(), limit)
	return respond(c, h.service.logger, rows, err)
}

// HandleYearlySales returns the global sales trend by year.
// @Summary Yearly sales trend
// @Description Global sales summed per sales-dataset year, ascending.
// @Tags reports
// @Produce json
// @Success 200 {array} models.YearlyRow "Yearly totals"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/yearly-sales [get]
func (h *Handler) HandleYearlySales(c *fiber.Ctx) error {
	rows, err := h.service.YearlySales(c.Context())
	return respond(c, h.service.logger, rows, err)
}

// HandleTopWishlist returns the most wishlisted titles.
// @Summary Top wishlisted titles
// @Description Titles ranked by wishlist count from the engagement store.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {array} models.WishlistRow "Ranked titles"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/top-wishlist [get]
func (h *Handler) HandleTopWishlist(c *fiber.Ctx) error {
	limit, err := parseLimit(c, DefaultLimit)
	if err != nil {
		return badLimit(c, err)
	}

	rows, err := h.service.TopWishlisted(c.Context(), limit)
	return respond(c, h.service.logger, rows, err)
}

// HandleOverview returns the dashboard KPI row.
// @Summary Dataset overview
// @Description KPI summary over the merged store.
// @Tags reports
// @Produce json
// @Success 200 {object} models.Overview "KPI row"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reports/overview [get]
func (h *Handler) HandleOverview(c *fiber.Ctx) error {
	o, err := h.service.Overview(c.Context())
	return respond(c, h.service.logger, o, err)
}

// parseLimit reads the limit query parameter. A missing parameter uses
// the report default; a present but non-integer value is rejected so
// "limit=ten" doesn't silently fall back.
func parseLimit(c *fiber.Ctx, def int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidLimit
	}
	return limit, nil
}

func badLimit(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func respond(c *fiber.Ctx, l *zap.Logger, payload any, err error) error {
	if err != nil {
		if errors.Is(err, ErrInvalidLimit) {
			return badLimit(c, err)
		}
		logger.WithRayID(l, c).Error("Report failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(payload)
}
