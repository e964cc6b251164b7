package controllers

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/repositories"
	"mi-sucursal/services"
)

type TareaController struct {
	DB   *gorm.DB
	repo *repositories.TareaRepository
}

func NewTareaController(DB *gorm.DB) *TareaController {
	return &TareaController{DB: DB, repo: repositories.NewTareaRepository(DB)}
}

type tareaInput struct {
	SucursalID       uint   `json:"sucursal_id" validate:"required"`
	Categoria        string `json:"categoria" validate:"required"`
	Titulo           string `json:"titulo" validate:"required"`
	Descripcion      string `json:"descripcion"`
	FechaVencimiento string `json:"fecha_vencimiento"`
}

// GetAll lista las tareas. Los vendedores solo ven su sucursal, los
// encargados pueden filtrar por cualquiera.
func (c *TareaController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.TareaSucursal{}).Order("fecha_asignacion DESC")

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

	var tareas []models.TareaSucursal
	if err := query.Find(&tareas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando tareas",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    tareas,
	})
}

// Create da de alta una tarea. Solo encargados (la ruta aplica el guard).
func (c *TareaController) Create(ctx *fiber.Ctx) error {
	var input tareaInput
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
	for _, cat := range models.CategoriasTareas {
		if cat == input.Categoria {
			categoriaValida = true
			break
		}
	}
	if !categoriaValida {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Categoria de tarea desconocida",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	now := time.Now()

	vencimiento := now.AddDate(0, 0, 7)
	if input.FechaVencimiento != "" {
		if v, err := time.Parse("2006-01-02", input.FechaVencimiento); err == nil {
			vencimiento = v
		}
	}

	tarea := models.TareaSucursal{
		SucursalID:       input.SucursalID,
		Categoria:        input.Categoria,
		Titulo:           input.Titulo,
		Descripcion:      input.Descripcion,
		AsignadoPor:      userID,
		FechaAsignacion:  now,
		FechaVencimiento: vencimiento,
		Estado:           models.TareaPendiente,
	}

	if err := c.DB.Create(&tarea).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creando tarea",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Tarea creada",
		"data":    tarea,
	})
}

type tareaEstadoInput struct {
	Estado string `json:"estado" validate:"required"`
}

// UpdateEstado avanza el estado de una tarea
func (c *TareaController) UpdateEstado(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input tareaEstadoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	switch input.Estado {
	case models.TareaPendiente, models.TareaEnProgreso, models.TareaCompletada:
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Estado de tarea desconocido",
		})
	}

	var tarea models.TareaSucursal
	if err := c.DB.First(&tarea, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Tarea no encontrada",
		})
	}

	tarea.Estado = input.Estado
	if input.Estado == models.TareaCompletada {
		userID, _ := ctx.Locals("userID").(uint)
		now := time.Now()
		tarea.CompletadoPor = &userID
		tarea.FechaCompletado = &now
	} else {
		tarea.CompletadoPor = nil
		tarea.FechaCompletado = nil
	}

	if err := c.DB.Save(&tarea).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error actualizando tarea",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Tarea actualizada",
		"data":    tarea,
	})
}

// Delete elimina una tarea. Solo encargados.
func (c *TareaController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var tarea models.TareaSucursal
	if err := c.DB.First(&tarea, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Tarea no encontrada",
		})
	}

	if err := c.DB.Delete(&tarea).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error eliminando tarea",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Tarea eliminada",
	})
}

// Resumen devuelve los contadores por estado de una sucursal
func (c *TareaController) Resumen(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	resumen, err := c.repo.Resumen(sucursalID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen de tareas",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    resumen,
	})
}

// Completar marca la tarea como completada por el empleado autenticado.
func (c *TareaController) Completar(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var tarea models.TareaSucursal
	if err := c.DB.First(&tarea, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Tarea no encontrada",
		})
	}

	if tarea.Estado == models.TareaCompletada {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "La tarea ya esta completada",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	now := time.Now()
	tarea.Estado = models.TareaCompletada
	tarea.CompletadoPor = &userID
	tarea.FechaCompletado = &now

	if err := c.DB.Save(&tarea).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error completando tarea",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Tarea completada",
		"data":    tarea,
	})
}

// Vencidas lista las tareas no completadas con fecha de vencimiento pasada.
func (c *TareaController) Vencidas(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.TareaSucursal{}).
		Where("estado <> ?", models.TareaCompletada).
		Where("fecha_vencimiento < CURRENT_DATE").
		Order("fecha_vencimiento ASC")

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	var tareas []models.TareaSucursal
	if err := query.Find(&tareas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando tareas vencidas",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    tareas,
	})
}

// Sucursales devuelve el listado de sucursales activas para el selector.
func (c *TareaController) Sucursales(ctx *fiber.Ctx) error {
	var sucursales []models.Sucursal
	if err := c.DB.Where("activa = ?", true).Order("nombre ASC").Find(&sucursales).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando sucursales",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    sucursales,
	})
}
