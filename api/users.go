package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// registerUsers wires dashboard user management. All routes are admin-only;
// in open mode (no users yet) the first POST bootstraps the initial admin.
func registerUsers(r fiber.Router, users model.UsersStore) {
	g := r.Group("/users", requireAdmin)

	g.Get(
		"/", func(c *fiber.Ctx) error {
			list, err := users.List()
			if err != nil {
				return renderError(c, err)
			}
			return c.JSON(listResponse{Data: list})
		},
	)

	type createReq struct {
		Username    string         `json:"username"`
		Password    string         `json:"password"`
		DisplayName string         `json:"display_name"`
		Role        model.UserRole `json:"role"`
		FranchiseID *string        `json:"franchise_id"`
	}
	g.Post(
		"/", func(c *fiber.Ctx) error {
			var req createReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			if req.Role == "" {
				req.Role = model.RoleStaff
			}
			u, err := users.Create(req.Username, req.Password, req.DisplayName, req.Role, req.FranchiseID)
			if err != nil {
				return renderError(c, err)
			}
			return c.Status(fiber.StatusCreated).JSON(dataResponse{Data: u})
		},
	)

	g.Get(
		"/:username", func(c *fiber.Ctx) error {
			u, err := users.Get(c.Params("username"))
			if err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: u})
		},
	)

	type updateReq struct {
		DisplayName *string `json:"display_name"`
		Password    *string `json:"password"`
		Disabled    *bool   `json:"disabled"`
	}
	g.Put(
		"/:username", func(c *fiber.Ctx) error {
			var req updateReq
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: "invalid body"})
			}
			u, err := users.Update(c.Params("username"), req.DisplayName, req.Password, req.Disabled)
			if err != nil {
				return renderError(c, err)
			}
			return c.JSON(dataResponse{Data: u})
		},
	)

	g.Delete(
		"/:username", func(c *fiber.Ctx) error {
			if err := users.Delete(c.Params("username")); err != nil {
				return renderError(c, err)
			}
			return c.SendStatus(fiber.StatusNoContent)
		},
	)
}
