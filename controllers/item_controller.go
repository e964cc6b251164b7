package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{DB: DB}
}

// Search busca productos habilitados del maestro por codigo o nombre.
// Soporta el autocompletado de ventas perdidas y conteos; el front
// aplica debounce asi que no hace falta cache.
func (c *ItemController) Search(ctx *fiber.Ctx) error {
	q := ctx.Query("q")
	if len(q) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "La busqueda requiere al menos 2 caracteres",
		})
	}

	limit := ctx.QueryInt("limit", 20)
	if limit > 100 {
		limit = 100
	}

	var items []models.ItemCentral
	err := c.DB.Where("habilitado = ?", true).
		Where("cod_item ILIKE ? OR item ILIKE ? OR marca_nombre ILIKE ?",
			"%"+q+"%", "%"+q+"%", "%"+q+"%").
		Limit(limit).Find(&items).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error buscando productos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    items,
	})
}
