package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tech-karippilly/drybros-app-sub006/service"
	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// Register mounts all API routes under the provided group. The login route
// is mounted before the auth middleware so credentials can be exchanged
// without a token.
func Register(r fiber.Router, backs model.Backends, svcs *service.Services, authCfg AuthConfig) {
	registerLogin(r, backs.Users, authCfg)
	r.Use(authMiddleware(backs.Users, authCfg))

	registerFranchises(r, backs.Franchises, backs.Settings)
	registerDrivers(r, backs.Drivers, backs.Franchises)
	registerStaff(r, backs.Staff, backs.Franchises)
	registerWarnings(r, svcs.Warnings, backs.Drivers, backs.Staff)
	registerComplaints(r, svcs.Complaints, backs.Drivers, backs.Staff)
	registerDashboard(r, svcs.Dashboard)
	registerActivity(r, backs.Activity)
	registerUsers(r, backs.Users)
}
