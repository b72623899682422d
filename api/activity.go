package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// registerActivity wires the audit trail listing.
func registerActivity(r fiber.Router, activity model.ActivityStore) {
	r.Get(
		"/activity", func(c *fiber.Ctx) error {
			var franchiseID *string
			scope := scopeOf(c)
			if fid := optQuery(c, "franchiseId"); fid != nil {
				if !scope.Allows(*fid) {
					return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
				}
				franchiseID = fid
			} else if !scope.All && len(scope.IDs) == 1 {
				franchiseID = &scope.IDs[0]
			}
			entries, pagination, err := activity.ListPage(franchiseID, pageParams(c))
			if err != nil {
				return renderError(c, err)
			}
			if entries == nil {
				entries = []model.ActivityLog{}
			}
			return c.JSON(listResponse{Data: entries, Pagination: &pagination})
		},
	)
}
