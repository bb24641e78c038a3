package flash

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetThenPop(t *testing.T) {
	app := fiber.New()

	app.Get("/set", func(c *fiber.Ctx) error {
		Set(c, LevelSuccess, "Welcome back! You are now logged in.")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/pop", func(c *fiber.Ctx) error {
		msg := Pop(c)
		if msg == nil {
			return c.SendString("none")
		}
		return c.SendString(msg.Level + ": " + msg.Text)
	})

	setResp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	require.NoError(t, err)

	var flashCookie *http.Cookie
	for _, c := range setResp.Cookies() {
		if c.Name == "sc_flash" {
			flashCookie = c
		}
	}
	require.NotNil(t, flashCookie)

	popReq := httptest.NewRequest(http.MethodGet, "/pop", nil)
	popReq.AddCookie(&http.Cookie{Name: flashCookie.Name, Value: flashCookie.Value})
	popResp, err := app.Test(popReq)
	require.NoError(t, err)

	body, err := io.ReadAll(popResp.Body)
	require.NoError(t, err)
	assert.Equal(t, "success: Welcome back! You are now logged in.", string(body))

	// Pop clears the cookie
	var cleared *http.Cookie
	for _, c := range popResp.Cookies() {
		if c.Name == "sc_flash" {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestPopWithoutCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/pop", func(c *fiber.Ctx) error {
		assert.Nil(t, Pop(c))
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/pop", nil))
	require.NoError(t, err)
}
