package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-bot/internal/api/dto"
	"github.com/spec-kit/support-bot/internal/service"
	apperrors "github.com/spec-kit/support-bot/pkg/util"
)

// AdminStatsHandler exposes support and review aggregates plus the
// auto-response toggle.
type AdminStatsHandler struct {
	support *service.SupportService
	reviews *service.ReviewService
}

// NewAdminStatsHandler builds the handler.
func NewAdminStatsHandler(support *service.SupportService, reviews *service.ReviewService) *AdminStatsHandler {
	return &AdminStatsHandler{support: support, reviews: reviews}
}

// SupportStats returns the ticket rollup.
func (h *AdminStatsHandler) SupportStats(c *fiber.Ctx) error {
	return c.JSON(h.support.Statistics())
}

// ReviewStats returns the review aggregates and featured list.
func (h *AdminStatsHandler) ReviewStats(c *fiber.Ctx) error {
	stats, verified := h.reviews.Statistics()
	return c.JSON(dto.ReviewStatsResponse{
		Statistics:      stats,
		VerifiedReviews: verified,
		Featured:        h.reviews.FeaturedReviews(),
	})
}

// ListReviews returns every review.
func (h *AdminStatsHandler) ListReviews(c *fiber.Ctx) error {
	all := h.reviews.AllReviews()
	return c.JSON(dto.ReviewListResponse{Reviews: all, Total: len(all)})
}

// DeleteReview removes a review and reverses its statistics.
func (h *AdminStatsHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid review id", nil)
	}
	if err := h.reviews.DeleteReview(reviewID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetAutoResponses flips the keyword auto-reply toggle.
func (h *AdminStatsHandler) SetAutoResponses(c *fiber.Ctx) error {
	var req dto.AutoResponsesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}
	if err := h.support.SetAutoResponses(req.Enabled); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"auto_responses_enabled": req.Enabled})
}
