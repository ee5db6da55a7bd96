package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-pathfinder/internal/models"
	"alfredoptarigan/career-pathfinder/internal/services"
)

type CareersHandler struct {
	careerService services.CareerService
	timeout       time.Duration
}

func NewCareersHandler(careerService services.CareerService, timeout time.Duration) *CareersHandler {
	return &CareersHandler{
		careerService: careerService,
		timeout:       timeout,
	}
}

// HandleSuggest handles POST /careers
func (h *CareersHandler) HandleSuggest(c *fiber.Ctx) error {
	var req models.SuggestRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	profile := req.Profile()
	if profile.Interests == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interests is required",
		})
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	careers := h.careerService.SuggestCareers(ctx, profile)

	return c.JSON(models.SuggestResponse{
		Profile: profile,
		Careers: careers,
	})
}

// requestContext carries the request id into the service and bounds the
// whole generation pipeline.
func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := c.UserContext()
	if id, ok := c.Locals("requestid").(string); ok {
		ctx = services.WithRequestID(ctx, id)
	}

	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
