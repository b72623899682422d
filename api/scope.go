package api

import (
	"slices"
	"strings"

	arrays "github.com/adam-hanna/arrayOperations"
	"github.com/gofiber/fiber/v2"
	slices2 "tideland.dev/go/slices"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// franchiseScope restricts a request to the franchises its user may see.
// Admins and the open (no users) mode see everything, MANAGER and STAFF
// users only their own franchise.
type franchiseScope struct {
	// All is true for admins and open mode.
	All bool
	// IDs are the visible franchise IDs when All is false.
	IDs []string
}

func scopeOf(c *fiber.Ctx) franchiseScope {
	u := currentUser(c)
	if u == nil || u.Role == model.RoleAdmin {
		return franchiseScope{All: true}
	}
	if u.FranchiseID == nil {
		return franchiseScope{}
	}
	return franchiseScope{IDs: []string{*u.FranchiseID}}
}

// Allows reports whether a single franchise is visible.
func (s franchiseScope) Allows(franchiseID string) bool {
	if s.All {
		return true
	}
	return slices.Contains(s.IDs, franchiseID)
}

// Grant narrows a requested franchise list to the visible ones and returns
// the rejected remainder alongside.
func (s franchiseScope) Grant(requested []string) (granted, denied []string) {
	if s.All {
		return requested, nil
	}
	granted = arrays.Intersect(requested, s.IDs)
	denied = slices2.Subtract(requested, granted)
	return granted, denied
}

// targetFranchise resolves the franchise of the driver or staff member a
// warning or complaint is filed against. Ambiguous or unknown targets
// resolve empty so the workflow can report its canonical error instead.
func targetFranchise(drivers model.DriversStore, staff model.StaffStore, driverID, staffID *string) string {
	switch {
	case driverID != nil && staffID == nil:
		if d, err := drivers.Get(*driverID); err == nil {
			return d.FranchiseID
		}
	case staffID != nil && driverID == nil:
		if st, err := staff.Get(*staffID); err == nil {
			return st.FranchiseID
		}
	}
	return ""
}

// franchiseIDQuery reads the franchiseId query parameter, supporting a
// comma-separated list.
func franchiseIDQuery(c *fiber.Ctx) []string {
	raw := c.Query("franchiseId")
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
