package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// VendorIDKey is the session (and fiber.Ctx locals) key holding the
// authenticated vendor's identifier.
const VendorIDKey = "vendor_id"

// NewSessionStore builds the cookie-backed session store. The cookie carries
// only an opaque session ID; the vendor identity lives server-side.
func NewSessionStore(cookieName string) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cookieName,
		Expiration:     7 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// RequireVendor resolves the session cookie to a vendor ID and stores it in
// the request locals for handlers. Requests without an authenticated session
// are rejected with 401 before any mutation can happen.
func RequireVendor(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		vendorID, _ := sess.Get(VendorIDKey).(string)
		if vendorID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
			})
		}

		c.Locals(VendorIDKey, vendorID)
		return c.Next()
	}
}

// ActorID returns the vendor ID placed in the locals by RequireVendor, or
// an empty string when the request is unauthenticated.
func ActorID(c *fiber.Ctx) string {
	id, _ := c.Locals(VendorIDKey).(string)
	return id
}
