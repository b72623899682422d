package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// registerStaff wires staff CRUD.
func registerStaff(r fiber.Router, staff model.StaffStore, franchises model.FranchisesStore) {
	g := r.Group("/staff")

	type createReq struct {
		FranchiseID string `json:"franchiseId"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Role        string `json:"role"`
	}
	g.Post(
		"/", func(c *fiber.Ctx) error {
			var req createReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			if req.FranchiseID == "" || req.Name == "" {
				return renderError(c, model.ValidationError("franchiseId and name are required"))
			}
			if !scopeOf(c).Allows(req.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if _, err := franchises.Get(req.FranchiseID); err != nil {
				return renderError(c, err)
			}
			st := &model.Staff{
				FranchiseID: req.FranchiseID,
				Name:        req.Name,
				Email:       req.Email,
				Phone:       req.Phone,
				Role:        req.Role,
				Status:      model.StaffActive,
			}
			if err := staff.Create(st); err != nil {
				return renderError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(dataResponse{Data: st})
		},
	)

	g.Get(
		"/", func(c *fiber.Ctx) error {
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
			list, err := staff.List(franchiseID)
			if err != nil {
				return renderError(c, err)
			}
			if list == nil {
				list = []model.Staff{}
			}
			return c.JSON(listResponse{Data: list})
		},
	)

	g.Get(
		"/:id", func(c *fiber.Ctx) error {
			st, err := staff.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(st.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			return c.JSON(dataResponse{Data: st})
		},
	)

	type updateReq struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
		Role  *string `json:"role"`
	}
	g.Put(
		"/:id", func(c *fiber.Ctx) error {
			var req updateReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			st, err := staff.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(st.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if req.Name != nil {
				st.Name = *req.Name
			}
			if req.Email != nil {
				st.Email = *req.Email
			}
			if req.Phone != nil {
				st.Phone = *req.Phone
			}
			if req.Role != nil {
				st.Role = *req.Role
			}
			if err := staff.Update(st); err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: st})
		},
	)

	type statusReq struct {
		Status model.StaffStatus `json:"status"`
	}
	g.Patch(
		"/:id/status", func(c *fiber.Ctx) error {
			var req statusReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			if !req.Status.Valid() {
				return renderError(c, model.ValidationErrorFmt("invalid status: %s", req.Status))
			}
			st, err := staff.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(st.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if err := staff.UpdateStatus(st.ID, req.Status); err != nil {
				return renderError(c, err)
			}
			st.Status = req.Status
			return c.JSON(dataResponse{Data: st})
		},
	)

	g.Delete(
		"/:id", func(c *fiber.Ctx) error {
			st, err := staff.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(st.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if err := staff.Delete(st.ID); err != nil {
				return renderError(c, err)
			}
			return c.JSON(fiber.Map{"message": "Staff member deleted successfully"})
		},
	)
}
