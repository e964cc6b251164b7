package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/models"
	"mi-sucursal/services"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

type loginInput struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// Login valida credenciales, clasifica el rol una unica vez y emite el
// token con la clasificacion adentro
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input loginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}
	if input.Usuario == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Faltan usuario o password",
		})
	}

	sessionID := uuid.New().String()
	now := time.Now()

	loginLog := models.LoginLog{
		SessionID:   sessionID,
		Usuario:     input.Usuario,
		LoginAt:     &now,
		IPAddress:   ctx.IP(),
		UserAgent:   ctx.Get("User-Agent"),
		LoginStatus: "FAILED",
	}

	var empleado models.Employee
	result := c.DB.Where("usuario = ?", input.Usuario).First(&empleado)
	if result.Error != nil {
		reason := "USER_NOT_FOUND"
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Usuario o contraseña incorrectos",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error consultando usuario",
			"error":   result.Error.Error(),
		})
	}

	if !empleado.Activo {
		reason := "USER_INACTIVE"
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Usuario inactivo",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(empleado.Password), []byte(input.Password)) != nil {
		reason := "WRONG_PASSWORD"
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Usuario o contraseña incorrectos",
		})
	}

	tier := services.ClassifyRol(empleado.Rol, empleado.Puesto)

	claims := jwt.MapClaims{
		"user_id":    empleado.ID,
		"session_id": sessionID,
		"rol_tier":   string(tier),
		"exp":        now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}
	if empleado.SucursalID != nil {
		claims["sucursal_id"] = *empleado.SucursalID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "No se pudo generar el token",
			"error":   err.Error(),
		})
	}

	loginLog.LoginStatus = "SUCCESS"
	c.DB.Create(&loginLog)

	ctx.Cookie(config.GetTokenCookie(tokenString))

	var sucursal *models.Sucursal
	if empleado.SucursalID != nil {
		var s models.Sucursal
		if err := c.DB.First(&s, *empleado.SucursalID).Error; err == nil {
			sucursal = &s
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login correcto",
		"data": fiber.Map{
			"access_token": tokenString,
			"token_type":   "bearer",
			"empleado": fiber.Map{
				"id":       empleado.ID,
				"usuario":  empleado.Usuario,
				"nombre":   empleado.NombreCompleto(),
				"rol":      empleado.Rol,
				"puesto":   empleado.Puesto,
				"rol_tier": string(tier),
			},
			"sucursal": sucursal,
		},
	})
}

// Me devuelve el perfil del empleado autenticado con su sucursal
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	userID, _ := ctx.Locals("userID").(uint)

	var empleado models.Employee
	if err := c.DB.First(&empleado, userID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Empleado no encontrado",
		})
	}

	var sucursal *models.Sucursal
	if empleado.SucursalID != nil {
		var s models.Sucursal
		if err := c.DB.First(&s, *empleado.SucursalID).Error; err == nil {
			sucursal = &s
		}
	}

	tier, _ := ctx.Locals("rolTier").(string)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"empleado": empleado,
			"sucursal": sucursal,
			"rol_tier": tier,
		},
	})
}

// Logout cierra la sesion. Ademas avisa si la caja del empleado tiene
// dias sin declarar en la ultima semana.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Sesion invalida",
		})
	}

	now := time.Now()
	c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)

	ctx.Cookie(config.GetTokenCookie(""))

	// dias sin cierre de caja de la sucursal del empleado
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	pendientes := []string{}
	if sucursalID != 0 {
		var cierres []models.CierreCaja
		c.DB.Joins("JOIN cajas ON cajas.id = cierre_cajas.caja_id").
			Where("cajas.sucursal_id = ? AND cierre_cajas.fecha_caja >= ?", sucursalID, now.AddDate(0, 0, -7)).
			Find(&cierres)
		for _, dia := range services.DiasSinCierre(cierres, now) {
			pendientes = append(pendientes, dia.Format("2006-01-02"))
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":            true,
		"message":            "Logout correcto",
		"cierres_pendientes": pendientes,
	})
}
