package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/service"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// registerComplaints wires the complaint endpoints.
func registerComplaints(
	r fiber.Router, complaints *service.ComplaintService,
	drivers model.DriversStore, staff model.StaffStore,
) {
	g := r.Group("/complaints")

	type createReq struct {
		DriverID    *string        `json:"driverId"`
		StaffID     *string        `json:"staffId"`
		Title       string         `json:"title"`
		Description string         `json:"description"`
		Severity    model.Severity `json:"severity"`
		CreatedBy   *string        `json:"createdBy"`
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
			complaint, err := complaints.File(
				service.FileComplaintInput{
					DriverID:    req.DriverID,
					StaffID:     req.StaffID,
					Title:       req.Title,
					Description: req.Description,
					Severity:    req.Severity,
					CreatedBy:   actor,
					ActorIP:     c.IP(),
				},
			)
			if err != nil {
				return renderError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{
				"message": "Complaint created successfully",
				"data":    complaint,
			})
		},
	)

	g.Get(
		"/", func(c *fiber.Ctx) error {
			filter := model.ComplaintFilter{
				DriverID: optQuery(c, "driverId"),
				StaffID:  optQuery(c, "staffId"),
			}
			if s := optQuery(c, "status"); s != nil {
				status := model.ComplaintStatus(*s)
				if !status.Valid() {
					return renderError(c, model.ValidationErrorFmt("invalid status: %s", status))
				}
				filter.Status = &status
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
				items, pagination, err := complaints.ListPage(filter, pageParams(c))
				if err != nil {
					return renderError(c, err)
				}
				if items == nil {
					items = []model.Complaint{}
				}
				return c.JSON(listResponse{Data: items, Pagination: &pagination})
			}
			items, err := complaints.List(filter)
			if err != nil {
				return renderError(c, err)
			}
			if items == nil {
				items = []model.Complaint{}
			}
			return c.JSON(listResponse{Data: items})
		},
	)

	g.Get(
		"/:id", func(c *fiber.Ctx) error {
			complaint, err := complaints.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(complaint.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			return c.JSON(dataResponse{Data: complaint})
		},
	)

	type statusReq struct {
		Status           model.ComplaintStatus `json:"status"`
		Resolution       *string               `json:"resolution"`
		ResolutionAction *string               `json:"resolutionAction"`
		ResolutionReason *string               `json:"resolutionReason"`
	}
	g.Patch(
		"/:id/status", func(c *fiber.Ctx) error {
			var req statusReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			existing, err := complaints.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(existing.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			var actor *string
			if u := currentUser(c); u != nil {
				actor = &u.Username
			}
			complaint, err := complaints.UpdateStatus(
				c.Params("id"), req.Status,
				service.ResolutionInput{
					Resolution:       req.Resolution,
					ResolutionAction: req.ResolutionAction,
					ResolutionReason: req.ResolutionReason,
				},
				actor, c.IP(),
			)
			if err != nil {
				return renderError(c, err)
			}
			return c.JSON(fiber.Map{
				"message": "Complaint status updated successfully",
				"data":    complaint,
			})
		},
	)

	g.Delete(
		"/:id", func(c *fiber.Ctx) error {
			existing, err := complaints.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(existing.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if err := complaints.Delete(c.Params("id")); err != nil {
				return renderError(c, err)
			}
			return c.JSON(fiber.Map{"message": "Complaint deleted successfully"})
		},
	)
}
