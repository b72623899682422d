package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/service"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// registerWarnings wires the disciplinary warning endpoints.
func registerWarnings(
	r fiber.Router, warnings *service.WarningService,
	drivers model.DriversStore, staff model.StaffStore,
) {
	g := r.Group("/warnings")

	type createReq struct {
		DriverID  *string        `json:"driverId"`
		StaffID   *string        `json:"staffId"`
		Reason    string         `json:"reason"`
		Priority  model.Priority `json:"priority"`
		CreatedBy *string        `json:"createdBy"`
	}
	g.Post(
		"/", func(c *fiber.Ctx) error {
			var req createReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			if scope := scopeOf(c); !scope.All {
				fid := targetFranchise(drivers, staff, req.DriverID, req.StaffID)
				if fid != "" && !scope.Allows(fid) {
					return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
				}
			}
			actor := req.CreatedBy
			if u := currentUser(c); u != nil {
				actor = &u.Username
			}
			res, err := warnings.Issue(
				service.IssueWarningInput{
					DriverID:  req.DriverID,
					StaffID:   req.StaffID,
					Reason:    req.Reason,
					Priority:  req.Priority,
					CreatedBy: actor,
					ActorIP:   c.IP(),
				},
			)
			if err != nil {
				return renderError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(
				messageResponse{
					Message:   res.Message,
					Data:      res.Warning,
					AutoFired: res.AutoFired,
				},
			)
		},
	)

	g.Get(
		"/", func(c *fiber.Ctx) error {
			filter := model.WarningFilter{
				DriverID: optQuery(c, "driverId"),
				StaffID:  optQuery(c, "staffId"),
			}
			scope := scopeOf(c)
			if fid := optQuery(c, "franchiseId"); fid != nil {
				if !scope.Allows(*fid) {
					return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
				}
				filter.FranchiseID = fid
			} else if !scope.All && len(scope.IDs) == 1 {
				filter.FranchiseID = &scope.IDs[0]
			}

			if paginated(c) {
				items, pagination, err := warnings.ListPage(filter, pageParams(c))
				if err != nil {
					return renderError(c, err)
				}
				if items == nil {
					items = []model.Warning{}
				}
				return c.JSON(listResponse{Data: items, Pagination: &pagination})
			}
			items, err := warnings.List(filter)
			if err != nil {
				return renderError(c, err)
			}
			if items == nil {
				items = []model.Warning{}
			}
			return c.JSON(listResponse{Data: items})
		},
	)

	g.Get(
		"/:id", func(c *fiber.Ctx) error {
			w, err := warnings.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(w.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			return c.JSON(dataResponse{Data: w})
		},
	)

	g.Delete(
		"/:id", func(c *fiber.Ctx) error {
			w, err := warnings.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(w.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			var actor *string
			if u := currentUser(c); u != nil {
				actor = &u.Username
			}
			if err := warnings.Delete(c.Params("id"), actor, c.IP()); err != nil {
				return renderError(c, err)
			}
			return c.JSON(fiber.Map{"message": "Warning deleted successfully"})
		},
	)
}
