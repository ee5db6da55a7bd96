package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-pathfinder/internal/models"
	"alfredoptarigan/career-pathfinder/internal/services"
)

type RoadmapHandler struct {
	careerService services.CareerService
	timeout       time.Duration
}

func NewRoadmapHandler(careerService services.CareerService, timeout time.Duration) *RoadmapHandler {
	return &RoadmapHandler{
		careerService: careerService,
		timeout:       timeout,
	}
}

// HandleGetRoadmap handles GET /roadmap/:career
func (h *RoadmapHandler) HandleGetRoadmap(c *fiber.Ctx) error {
	career, err := url.PathUnescape(c.Params("career"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid career name",
		})
	}

	career = strings.TrimSpace(career)
	if career == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "career is required",
		})
	}

	var req models.SuggestRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid query parameters",
		})
	}
	profile := req.Profile()

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	roadmap := h.careerService.BuildRoadmaps(ctx, career, profile)

	return c.JSON(models.RoadmapResponse{
		Career:  career,
		Profile: profile,
		Roadmap: roadmap,
	})
}
