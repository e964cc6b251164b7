package controllers

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/services"
)

type DescargoController struct {
	DB *gorm.DB
}

func NewDescargoController(DB *gorm.DB) *DescargoController {
	return &DescargoController{DB: DB}
}

// GetAll lista los descargos de auditoria
func (c *DescargoController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.DescargoAuditoria{}).Order("fecha_descargo DESC")

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	if estado := ctx.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if categoria := ctx.Query("categoria"); categoria != "" {
		query = query.Where("categoria = ?", categoria)
	}

	var descargos []models.DescargoAuditoria
	if err := query.Find(&descargos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando descargos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    descargos,
	})
}

type descargoInput struct {
	Categoria      string `json:"categoria" validate:"required"`
	Titulo         string `json:"titulo" validate:"required"`
	Descripcion    string `json:"descripcion" validate:"required"`
	ReferenciaID   *uint  `json:"referencia_id"`
	ReferenciaTipo string `json:"referencia_tipo"`
}

// Create registra un descargo sobre una observacion de auditoria
func (c *DescargoController) Create(ctx *fiber.Ctx) error {
	var input descargoInput
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

	categoriaValida := false
	for _, cat := range models.CategoriasDescargo {
		if cat == input.Categoria {
			categoriaValida = true
			break
		}
	}
	if !categoriaValida {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Categoria de descargo desconocida",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	sucursalID, _ := ctx.Locals("sucursalID").(uint)

	descargo := models.DescargoAuditoria{
		SucursalID:     sucursalID,
		CreadoPorID:    userID,
		Categoria:      input.Categoria,
		Titulo:         input.Titulo,
		Descripcion:    input.Descripcion,
		Estado:         models.DescargoPendiente,
		ReferenciaID:   input.ReferenciaID,
		ReferenciaTipo: input.ReferenciaTipo,
	}

	if err := c.DB.Create(&descargo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creando descargo",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Descargo registrado",
		"data":    descargo,
	})
}

type resolverDescargoInput struct {
	Aprobar    bool   `json:"aprobar"`
	Comentario string `json:"comentario"`
}

// Resolver aprueba o rechaza un descargo pendiente. Solo encargados.
func (c *DescargoController) Resolver(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input resolverDescargoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	var descargo models.DescargoAuditoria
	if err := c.DB.First(&descargo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Descargo no encontrado",
		})
	}

	if descargo.Estado != models.DescargoPendiente {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "El descargo ya fue resuelto",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	now := time.Now()
	if input.Aprobar {
		descargo.Estado = models.DescargoAprobado
	} else {
		descargo.Estado = models.DescargoRechazado
	}
	descargo.ResueltoPorID = &userID
	descargo.FechaResolucion = &now
	descargo.ComentarioAuditor = input.Comentario

	if err := c.DB.Save(&descargo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error resolviendo descargo",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Descargo resuelto",
		"data":    descargo,
	})
}

// Resumen cuenta los descargos por estado
func (c *DescargoController) Resumen(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.DescargoAuditoria{})

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	type resumenRow struct {
		Total      int64 `json:"total"`
		Pendientes int64 `json:"pendientes"`
		Aprobados  int64 `json:"aprobados"`
		Rechazados int64 `json:"rechazados"`
	}

	var resumen resumenRow
	err := query.Select(`
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE estado = 'pendiente') AS pendientes,
		COUNT(*) FILTER (WHERE estado = 'aprobado') AS aprobados,
		COUNT(*) FILTER (WHERE estado = 'rechazado') AS rechazados`).
		Scan(&resumen).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen de descargos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    resumen,
	})
}
