package auth_test

import (
	"net/http/httptest"
	"testing"

	"game-insights/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "secret")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("MissingKey", func(t *testing.T) {
		app := setupApp("secret")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("WrongKey", func(t *testing.T) {
		app := setupApp("secret")
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(auth.HeaderName, "nope")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("AuthDisabled", func(t *testing.T) {
		app := setupApp("")

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
