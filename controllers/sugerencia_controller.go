package controllers

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/services"
)

type SugerenciaController struct {
	DB *gorm.DB
}

func NewSugerenciaController(DB *gorm.DB) *SugerenciaController {
	return &SugerenciaController{DB: DB}
}

// GetAll lista las sugerencias de conteo de la sucursal
func (c *SugerenciaController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.SugerenciaConteo{}).
		Preload("Productos").
		Order("fecha_sugerencia DESC").
		Limit(50)

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

	var sugerencias []models.SugerenciaConteo
	if err := query.Find(&sugerencias).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando sugerencias",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    sugerencias,
	})
}

type productoSugerenciaInput struct {
	CodItem      string `json:"cod_item" validate:"required"`
	Nombre       string `json:"nombre" validate:"required"`
	Precio       string `json:"precio"`
	StockSistema int    `json:"stock_sistema"`
}

type sugerenciaInput struct {
	Productos []productoSugerenciaInput `json:"productos" validate:"required,min=1"`
	Motivo    string                    `json:"motivo" validate:"required"`
}

// Create registra una sugerencia de conteo. Cualquier empleado puede
// proponer productos a contar.
func (c *SugerenciaController) Create(ctx *fiber.Ctx) error {
	var input sugerenciaInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}
	if err := validator.New().Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Debe incluir al menos un producto y el motivo",
			"error":   err.Error(),
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	if sucursalID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Usuario sin sucursal asignada",
		})
	}

	sugerencia := models.SugerenciaConteo{
		SucursalID:    sucursalID,
		SugeridoPorID: userID,
		Motivo:        input.Motivo,
		Estado:        models.SugerenciaPendiente,
	}
	for _, p := range input.Productos {
		sugerencia.Productos = append(sugerencia.Productos, models.ProductoSugerencia{
			CodItem:      p.CodItem,
			Nombre:       p.Nombre,
			Precio:       p.Precio,
			StockSistema: p.StockSistema,
		})
	}

	if err := c.DB.Create(&sugerencia).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error registrando sugerencia",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Sugerencia registrada",
		"data":    sugerencia,
	})
}

type resolverSugerenciaInput struct {
	Accion          string `json:"accion"`
	FechaProgramada string `json:"fecha_programada"`
	Comentario      string `json:"comentario"`
}

// Resolver aprueba o rechaza una sugerencia pendiente. Aprobar exige
// fecha programada y crea la tarea de control de stock correspondiente.
func (c *SugerenciaController) Resolver(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input resolverSugerenciaInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}
	if err := services.ValidarResolucionSugerencia(input.Accion, input.FechaProgramada); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	var sugerencia models.SugerenciaConteo
	if err := c.DB.Preload("Productos").First(&sugerencia, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Sugerencia no encontrada",
		})
	}

	if sugerencia.Estado != models.SugerenciaPendiente {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "La sugerencia ya fue resuelta",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	now := time.Now()
	sugerencia.ResueltoPorID = &userID
	sugerencia.FechaResolucion = &now
	sugerencia.ComentarioSupervisor = input.Comentario

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if input.Accion == "aprobar" {
			programada, err := time.Parse("2006-01-02", input.FechaProgramada)
			if err != nil {
				return err
			}

			tarea := services.TareaDesdeSugerencia(&sugerencia, userID, programada, now)
			if err := tx.Create(&tarea).Error; err != nil {
				return err
			}

			sugerencia.Estado = models.SugerenciaAprobada
			sugerencia.FechaProgramada = &programada
			sugerencia.TareaID = &tarea.ID
		} else {
			sugerencia.Estado = models.SugerenciaRechazada
		}
		return tx.Save(&sugerencia).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error resolviendo sugerencia",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Sugerencia resuelta",
		"data":    sugerencia,
	})
}

// PendientesCount cuenta las sugerencias pendientes de la sucursal
func (c *SugerenciaController) PendientesCount(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)

	var count int64
	err := c.DB.Model(&models.SugerenciaConteo{}).
		Where("sucursal_id = ? AND estado = ?", sucursalID, models.SugerenciaPendiente).
		Count(&count).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error contando sugerencias",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"count": count},
	})
}
