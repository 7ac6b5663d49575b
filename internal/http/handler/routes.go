package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"mcpsite/internal/service"
	"mcpsite/internal/site"
)

// RegisterRoutes attaches the page and API routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.PageService, log logrus.FieldLogger) {
	for _, p := range svc.Pages(context.Background()).Items {
		app.Get(site.Path(p.Slug), RenderPage(svc, p.Slug, log))
	}

	api := app.Group("/api")
	api.Get("/pages", ListPages(svc))
	api.Get("/applications", ListApplications(svc))

	app.Get("/health", HealthCheck(svc))
	app.Get("/healthz", LivenessProbe())
}

// RenderPage serves the HTML document for one page.
func RenderPage(svc service.PageService, slug string, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := svc.Render(c.UserContext(), slug)
		if err != nil {
			if errors.Is(err, service.ErrPageNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "page not found")
			}
			log.WithFields(logrus.Fields{
				"request_id": requestIDFromCtx(c),
				"page":       slug,
			}).WithError(err).Error("page_render_failed")
			return writeError(c, fiber.StatusInternalServerError, "RENDER_FAILED", "page could not be rendered")
		}
		c.Type("html", "utf-8")
		return c.Send(body)
	}
}

// ListPages godoc
// @Summary List pages
// @Description Navigation entries in display order.
// @Tags pages
// @Produce json
// @Success 200 {object} service.PageListResult
// @Router /api/pages [get]
func ListPages(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Pages(c.UserContext()))
	}
}

// ListApplications godoc
// @Summary List application domains
// @Description Application records shown on the Applications page, in declared order.
// @Tags applications
// @Produce json
// @Success 200 {object} service.ApplicationListResult
// @Router /api/applications [get]
func ListApplications(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Applications(c.UserContext()))
	}
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Renders every page once; 503 if any fails.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(svc service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := svc.Check(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "pages unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
