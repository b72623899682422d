package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/service"
)

// registerDashboard wires the metrics endpoints. The multi-franchise
// variant narrows the requested IDs to the caller's visible set and reports
// the rejected remainder.
func registerDashboard(r fiber.Router, dashboard *service.DashboardService) {
	g := r.Group("/dashboard")

	g.Get(
		"/franchises/:id/metrics", func(c *fiber.Ctx) error {
			id := c.Params("id")
			if !scopeOf(c).Allows(id) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			m, err := dashboard.Metrics(id)
			if err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: m})
		},
	)

	type metricsRes struct {
		Metrics []*service.Metrics `json:"metrics"`
		Denied  []string           `json:"denied,omitempty"`
	}
	g.Get(
		"/metrics", func(c *fiber.Ctx) error {
			requested := franchiseIDQuery(c)
			scope := scopeOf(c)
			var denied []string
			if len(requested) == 0 {
				if scope.All {
					return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "franchiseId is required"})
				}
				requested = scope.IDs
			} else {
				requested, denied = scope.Grant(requested)
			}
			res := metricsRes{Metrics: make([]*service.Metrics, 0, len(requested)), Denied: denied}
			for _, id := range requested {
				m, err := dashboard.Metrics(id)
				if err != nil {
					return renderError(c, err)
				}
				res.Metrics = append(res.Metrics, m)
			}
			return c.JSON(dataResponse{Data: res})
		},
	)
}
