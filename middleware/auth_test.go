package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mi-sucursal/config"
)

func tokenDePrueba(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString([]byte(config.JWTSecret))
	require.NoError(t, err)
	return firmado
}

func appDePrueba() *fiber.App {
	app := fiber.New()
	app.Get("/protegida", AuthMiddleware, func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id":  ctx.Locals("userID"),
			"rol_tier": ctx.Locals("rolTier"),
		})
	})
	app.Get("/solo-encargados", AuthMiddleware, RequireEncargado, func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	config.JWTSecret = "secreto-de-test"
	app := appDePrueba()

	claims := jwt.MapClaims{
		"user_id":     float64(7),
		"session_id":  "abc-123",
		"rol_tier":    "vendedor",
		"sucursal_id": float64(2),
		"exp":         time.Now().Add(time.Hour).Unix(),
	}

	t.Run("token valido", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+tokenDePrueba(t, claims))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("sin header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protegida", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("formato invalido", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Token cualquiercosa")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("firma invalida", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		firmado, err := token.SignedString([]byte("otro-secreto"))
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+firmado)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token expirado", func(t *testing.T) {
		vencido := jwt.MapClaims{
			"user_id":    float64(7),
			"session_id": "abc-123",
			"rol_tier":   "vendedor",
			"exp":        time.Now().Add(-time.Hour).Unix(),
		}
		req := httptest.NewRequest("GET", "/protegida", nil)
		req.Header.Set("Authorization", "Bearer "+tokenDePrueba(t, vencido))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireEncargado(t *testing.T) {
	config.JWTSecret = "secreto-de-test"
	app := appDePrueba()

	hacer := func(tier string) int {
		claims := jwt.MapClaims{
			"user_id":    float64(1),
			"session_id": "s1",
			"rol_tier":   tier,
			"exp":        time.Now().Add(time.Hour).Unix(),
		}
		req := httptest.NewRequest("GET", "/solo-encargados", nil)
		req.Header.Set("Authorization", "Bearer "+tokenDePrueba(t, claims))
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, hacer("encargado"))
	assert.Equal(t, fiber.StatusForbidden, hacer("vendedor"))
}
