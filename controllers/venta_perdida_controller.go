package controllers

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

type VentaPerdidaController struct {
	DB *gorm.DB
}

func NewVentaPerdidaController(DB *gorm.DB) *VentaPerdidaController {
	return &VentaPerdidaController{DB: DB}
}

// GetAll lista las ventas perdidas registradas
func (c *VentaPerdidaController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.VentaPerdida{}).Order("fecha_registro DESC")

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	if mes := ctx.Query("mes"); mes != "" {
		query = query.Where("to_char(fecha_registro, 'YYYY-MM') = ?", mes)
	}

	var ventas []models.VentaPerdida
	if err := query.Find(&ventas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando ventas perdidas",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    ventas,
	})
}

type ventaPerdidaInput struct {
	CodItem       *string `json:"cod_item"`
	ItemNombre    string  `json:"item_nombre" validate:"required"`
	Marca         string  `json:"marca"`
	Cantidad      int     `json:"cantidad" validate:"required,min=1"`
	Observaciones string  `json:"observaciones"`
}

// Create registra una venta perdida. Sin cod_item se trata como
// producto nuevo no catalogado.
func (c *VentaPerdidaController) Create(ctx *fiber.Ctx) error {
	var input ventaPerdidaInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Faltan campos obligatorios",
			"error":   err.Error(),
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	sucursalID, _ := ctx.Locals("sucursalID").(uint)

	venta := models.VentaPerdida{
		SucursalID:      sucursalID,
		EmployeeID:      userID,
		CodItem:         input.CodItem,
		ItemNombre:      input.ItemNombre,
		Marca:           input.Marca,
		Cantidad:        input.Cantidad,
		EsProductoNuevo: input.CodItem == nil,
		Observaciones:   input.Observaciones,
	}

	if err := c.DB.Create(&venta).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error registrando venta perdida",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Venta perdida registrada",
		"data":    venta,
	})
}

// Delete elimina un registro propio o cualquiera si es encargado
func (c *VentaPerdidaController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var venta models.VentaPerdida
	if err := c.DB.First(&venta, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Registro no encontrado",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if !services.EsEncargado(tier) && venta.EmployeeID != userID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Solo se pueden borrar registros propios",
		})
	}

	if err := c.DB.Delete(&venta).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error eliminando registro",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Registro eliminado",
	})
}

// Resumen agrega las ventas perdidas del mes: cantidad de registros,
// unidades, productos nuevos y faltantes de stock. Los encargados ven
// el consolidado de toda la red si no filtran por sucursal.
func (c *VentaPerdidaController) Resumen(ctx *fiber.Ctx) error {
	mes := ctx.Query("mes", utils.PeriodoActual(time.Now()))

	type resumenRow struct {
		Registros       int64 `json:"registros"`
		Unidades        int64 `json:"unidades"`
		ProductosNuevos int64 `json:"productos_nuevos"`
		FaltaStock      int64 `json:"falta_stock"`
	}

	query := c.DB.Model(&models.VentaPerdida{}).
		Where("to_char(fecha_registro, 'YYYY-MM') = ?", mes)

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	var resumen resumenRow
	err := query.Select(`
		COUNT(*) AS registros,
		COALESCE(SUM(cantidad), 0) AS unidades,
		COUNT(*) FILTER (WHERE es_producto_nuevo) AS productos_nuevos,
		COUNT(*) FILTER (WHERE NOT es_producto_nuevo) AS falta_stock`).
		Scan(&resumen).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen de ventas perdidas",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"mes":     mes,
			"resumen": resumen,
		},
	})
}
