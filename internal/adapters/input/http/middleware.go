package http

import (
	"vr-training-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth returns middleware that resolves the bearer token to a user
// identity and stores it in the request locals. Requests without a valid
// token are rejected before the handler runs.
func (hdl *HTTPHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
		}

		identity, err := hdl.identity.ResolveUser(c.UserContext(), token)
		if err != nil {
			return respondError(c, err)
		}

		c.Locals(identityLocalKey, identity)
		return c.Next()
	}
}

// callerIdentity returns the identity stored by RequireAuth, or nil on
// routes that run without the middleware.
func callerIdentity(c *fiber.Ctx) *domain.Identity {
	identity, _ := c.Locals(identityLocalKey).(*domain.Identity)
	return identity
}

// Me func
// Me godoc
// @Summary Current user
// @Description Returns the authenticated caller's identity
// @Tags AUTH
// @Success 200 {object} map[string]interface{}
// @Router /me [get]
// @Produce json
func (hdl *HTTPHandler) Me(c *fiber.Ctx) error {
	identity := callerIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status: Success,
		Data:   IdentityResponse{ID: identity.ID, Email: identity.Email},
	})
}
