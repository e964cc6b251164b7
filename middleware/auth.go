package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"mi-sucursal/config"
	"mi-sucursal/services"
)

// AuthMiddleware valida el bearer token y deja la identidad resuelta
// en ctx.Locals: userID, sucursalID, rolTier y sessionID. El tier se
// clasifico una sola vez en el login, aca solo se lee del claim.
func AuthMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Falta el header Authorization",
		})
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Formato de Authorization invalido",
		})
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "metodo de firma invalido")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token invalido",
			"error":   err.Error(),
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token invalido",
		})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token sin identidad de usuario",
		})
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token sin sesion",
		})
	}

	rolTier, ok := claims["rol_tier"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token sin clasificacion de rol",
		})
	}

	// sucursal puede faltar para usuarios de gerencia central
	sucursalID := uint(0)
	if s, ok := claims["sucursal_id"].(float64); ok {
		sucursalID = uint(s)
	}

	ctx.Locals("userID", uint(userID))
	ctx.Locals("sessionID", sessionID)
	ctx.Locals("rolTier", rolTier)
	ctx.Locals("sucursalID", sucursalID)

	return ctx.Next()
}

// RequireEncargado corta el acceso a vistas de toda la red para los
// usuarios de nivel vendedor
func RequireEncargado(ctx *fiber.Ctx) error {
	tier, _ := ctx.Locals("rolTier").(string)
	if !services.EsEncargado(tier) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Requiere nivel de encargado",
		})
	}
	return ctx.Next()
}
