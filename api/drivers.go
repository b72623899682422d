package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// registerDrivers wires driver CRUD. Discipline goes through the warning
// and complaint endpoints, not through here.
func registerDrivers(r fiber.Router, drivers model.DriversStore, franchises model.FranchisesStore) {
	g := r.Group("/drivers")

	type createReq struct {
		FranchiseID string `json:"franchiseId"`
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		License     string `json:"license"`
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
			d := &model.Driver{
				FranchiseID: req.FranchiseID,
				Name:        req.Name,
				Email:       req.Email,
				Phone:       req.Phone,
				License:     req.License,
				Status:      model.DriverActive,
			}
			if err := drivers.Create(d); err != nil {
				return renderError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(dataResponse{Data: d})
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
			list, err := drivers.List(franchiseID)
			if err != nil {
				return renderError(c, err)
			}
			if list == nil {
				list = []model.Driver{}
			}
			return c.JSON(listResponse{Data: list})
		},
	)

	g.Get(
		"/:id", func(c *fiber.Ctx) error {
			d, err := drivers.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(d.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			return c.JSON(dataResponse{Data: d})
		},
	)

	type updateReq struct {
		Name    *string `json:"name"`
		Email   *string `json:"email"`
		Phone   *string `json:"phone"`
		License *string `json:"license"`
	}
	g.Put(
		"/:id", func(c *fiber.Ctx) error {
			var req updateReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			d, err := drivers.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(d.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if req.Name != nil {
				d.Name = *req.Name
			}
			if req.Email != nil {
				d.Email = *req.Email
			}
			if req.Phone != nil {
				d.Phone = *req.Phone
			}
			if req.License != nil {
				d.License = *req.License
			}
			if err := drivers.Update(d); err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: d})
		},
	)

	type statusReq struct {
		Status model.DriverStatus `json:"status"`
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
			d, err := drivers.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(d.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			// A blacklisted driver stays terminated.
			if d.Blacklisted && req.Status != model.DriverTerminated {
				return renderError(c, model.ValidationError("driver is blacklisted"))
			}
			if err := drivers.UpdateStatus(d.ID, req.Status); err != nil {
				return renderError(c, err)
			}
			d.Status = req.Status
			return c.JSON(dataResponse{Data: d})
		},
	)

	g.Delete(
		"/:id", func(c *fiber.Ctx) error {
			d, err := drivers.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if !scopeOf(c).Allows(d.FranchiseID) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if err := drivers.Delete(d.ID); err != nil {
				return renderError(c, err)
			}
			return c.JSON(fiber.Map{"message": "Driver deleted successfully"})
		},
	)
}
