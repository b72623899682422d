// Package api implements the HTTP surface of the platform as fiber handlers
// grouped per resource under /api/v1.
package api

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/tech-karippilly/drybros-app-sub006/storage/model"
)

// apiError is the uniform error body of all endpoints.
type apiError struct {
	Error string `json:"error"`
}

// renderError maps storage and service errors onto HTTP statuses:
// ValidationError 400, NotFoundError 404, AlreadyExistsError 409, anything
// else 500 with a generic body.
func renderError(c *fiber.Ctx, err error) error {
	switch err.(type) {
	case model.ValidationError:
		return c.Status(fiber.StatusBadRequest).JSON(apiError{Error: err.Error()})
	case model.NotFoundError:
		return c.Status(fiber.StatusNotFound).JSON(apiError{Error: err.Error()})
	case model.AlreadyExistsError:
		return c.Status(fiber.StatusConflict).JSON(apiError{Error: err.Error()})
	default:
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(apiError{Error: "Internal server error"})
	}
}

// dataResponse wraps a single resource.
type dataResponse struct {
	Data any `json:"data"`
}

// listResponse wraps a collection; Pagination is only set on paginated
// listings.
type listResponse struct {
	Data       any               `json:"data"`
	Pagination *model.Pagination `json:"pagination,omitempty"`
}

// messageResponse is the body of the warning creation endpoint.
type messageResponse struct {
	Message   string `json:"message"`
	Data      any    `json:"data"`
	AutoFired bool   `json:"autoFired"`
}

// pageParams reads page/limit from the query string; defaults and caps are
// applied by the storage layer.
func pageParams(c *fiber.Ctx) model.PageParams {
	return model.PageParams{
		Page:  c.QueryInt("page", model.DefaultPage),
		Limit: c.QueryInt("limit", model.DefaultLimit),
	}
}

// paginated reports whether the client asked for an explicit page, which
// switches listings from the full array to the paginated envelope.
func paginated(c *fiber.Ctx) bool {
	return c.Query("page") != "" || c.Query("limit") != ""
}

func optQuery(c *fiber.Ctx, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}
