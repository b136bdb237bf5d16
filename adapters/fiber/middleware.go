package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/homegym/homegym"
)

// requireSession wraps a handler with the session check. The current
// session's Account is stored in the context for downstream handlers;
// without a session the request is rejected before the handler runs.
func requireSession(gym *homegym.Gym, next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		account := gym.Sessions.Current()
		if account == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": homegym.ErrLoginRequired.Error(),
			})
		}

		c.Locals("account", account)
		return next(c)
	}
}

// currentAccount retrieves the Account stored by requireSession.
func currentAccount(c fiber.Ctx) *homegym.Account {
	account, _ := c.Locals("account").(*homegym.Account)
	return account
}
