package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// registerFranchises wires franchise CRUD and the per-franchise settings
// endpoints. Creation and deletion are admin-only.
func registerFranchises(r fiber.Router, franchises model.FranchisesStore, settings model.SettingsStore) {
	g := r.Group("/franchises")

	type createReq struct {
		Name string `json:"name"`
		Code string `json:"code"`
		City string `json:"city"`
	}
	g.Post(
		"/", requireAdmin, func(c *fiber.Ctx) error {
			var req createReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			if req.Name == "" || req.Code == "" {
				return renderError(c, model.ValidationError("name and code are required"))
			}
			f := &model.Franchise{
				Name:   req.Name,
				Code:   req.Code,
				City:   req.City,
				Active: true,
			}
			if err := franchises.Create(f); err != nil {
				return renderError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(dataResponse{Data: f})
		},
	)

	g.Get(
		"/", func(c *fiber.Ctx) error {
			list, err := franchises.List()
			if err != nil {
				return renderError(c, err)
			}
			scope := scopeOf(c)
			visible := make([]model.Franchise, 0, len(list))
			for _, f := range list {
				if scope.Allows(f.ID) {
					visible = append(visible, f)
				}
			}
			return c.JSON(listResponse{Data: visible})
		},
	)

	g.Get(
		"/:id", func(c *fiber.Ctx) error {
			if !scopeOf(c).Allows(c.Params("id")) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			f, err := franchises.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: f})
		},
	)

	type updateReq struct {
		Name   *string `json:"name"`
		City   *string `json:"city"`
		Active *bool   `json:"active"`
	}
	g.Put(
		"/:id", requireAdmin, func(c *fiber.Ctx) error {
			var req updateReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			f, err := franchises.Get(c.Params("id"))
			if err != nil {
				return renderError(c, err)
			}
			if req.Name != nil {
				f.Name = *req.Name
			}
			if req.City != nil {
				f.City = *req.City
			}
			if req.Active != nil {
				f.Active = *req.Active
			}
			if err := franchises.Update(f); err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: f})
		},
	)

	g.Delete(
		"/:id", requireAdmin, func(c *fiber.Ctx) error {
			if _, err := franchises.Get(c.Params("id")); err != nil {
				return renderError(c, err)
			}
			if err := franchises.Delete(c.Params("id")); err != nil {
				return renderError(c, err)
			}
			return c.JSON(fiber.Map{"message": "Franchise deleted successfully"})
		},
	)

	// Per-franchise warning threshold override.
	type thresholdRes struct {
		FranchiseID string `json:"franchise_id"`
		Threshold   *int   `json:"threshold"`
	}
	g.Get(
		"/:id/settings/warning-threshold", func(c *fiber.Ctx) error {
			id := c.Params("id")
			if !scopeOf(c).Allows(id) {
				return c.Status(fiber.StatusForbidden).JSON(apiError{Error: "franchise not accessible"})
			}
			if _, err := franchises.Get(id); err != nil {
				return renderError(c, err)
			}
			var threshold int
			found, err := settings.GetAs(model.FranchiseScope(id), model.SettingKeyWarningThreshold, &threshold)
			if err != nil {
				return renderError(c, err)
			}
			res := thresholdRes{FranchiseID: id}
			if found {
				res.Threshold = &threshold
			}
			return c.JSON(dataResponse{Data: res})
		},
	)

	type thresholdReq struct {
		Threshold int `json:"threshold"`
	}
	g.Put(
		"/:id/settings/warning-threshold", requireAdmin, func(c *fiber.Ctx) error {
			id := c.Params("id")
			var req thresholdReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			if req.Threshold < 1 {
				return renderError(c, model.ValidationError("threshold must be at least 1"))
			}
			if _, err := franchises.Get(id); err != nil {
				return renderError(c, err)
			}
			if err := settings.SetAny(
				model.FranchiseScope(id), model.SettingKeyWarningThreshold, req.Threshold,
			); err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: thresholdRes{FranchiseID: id, Threshold: &req.Threshold}})
		},
	)

	g.Delete(
		"/:id/settings/warning-threshold", requireAdmin, func(c *fiber.Ctx) error {
			id := c.Params("id")
			if _, err := franchises.Get(id); err != nil {
				return renderError(c, err)
			}
			if err := settings.Delete(model.FranchiseScope(id), model.SettingKeyWarningThreshold); err != nil {
				return renderError(c, err)
			}
			return c.SendStatus(fiber.StatusNoContent)
		},
	)
}
