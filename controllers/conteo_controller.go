package controllers

import (
	"log"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/repositories"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

type ConteoController struct {
	DB   *gorm.DB
	repo *repositories.ConteoRepository
}

func NewConteoController(DB *gorm.DB) *ConteoController {
	return &ConteoController{DB: DB, repo: repositories.NewConteoRepository(DB)}
}

// GetAll lista los conteos sin el detalle de productos
func (c *ConteoController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.ConteoStock{}).Order("created_at DESC")

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
	if tarea := ctx.Query("tarea_id"); tarea != "" {
		query = query.Where("tarea_id = ?", tarea)
	}

	var conteos []models.ConteoStock
	if err := query.Find(&conteos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando conteos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    conteos,
	})
}

// GetByID devuelve un conteo con sus productos
func (c *ConteoController) GetByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var conteo models.ConteoStock
	if err := c.DB.Preload("Productos").First(&conteo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Conteo no encontrado",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"conteo":   conteo,
			"progreso": services.ProgresoConteo(&conteo),
		},
	})
}

type conteoInput struct {
	TareaID  uint     `json:"tarea_id" validate:"required"`
	CodItems []string `json:"cod_items" validate:"required,min=1"`
}

// Create abre un conteo en borrador a partir de una tarea de control
// de stock. Los productos se cargan desde el maestro central con su
// stock de sistema congelado al momento de la creacion.
func (c *ConteoController) Create(ctx *fiber.Ctx) error {
	var input conteoInput
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

	var tarea models.TareaSucursal
	if err := c.DB.First(&tarea, input.TareaID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Tarea no encontrada",
		})
	}

	var items []models.ItemCentral
	if err := c.DB.Where("cod_item IN ? AND habilitado = ?", input.CodItems, true).Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error buscando productos",
			"error":   err.Error(),
		})
	}
	if len(items) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Ningun producto habilitado para contar",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	if sucursalID == 0 {
		sucursalID = tarea.SucursalID
	}

	conteo := models.ConteoStock{
		TareaID:    input.TareaID,
		SucursalID: sucursalID,
		EmpleadoID: userID,
		Estado:     models.ConteoBorrador,
	}
	for _, item := range items {
		precio, err := utils.ParseNumeroEspanol(item.Costo)
		if err != nil {
			log.Printf("costo ilegible en el maestro para %s (%q), se valoriza en 0: %v",
				item.CodItem, item.Costo, err)
		}
		conteo.Productos = append(conteo.Productos, models.ProductoConteo{
			CodItem:      item.CodItem,
			Nombre:       item.Item,
			Precio:       precio,
			StockSistema: item.Stock,
		})
	}
	services.RecalcularConteo(&conteo)

	if err := c.DB.Create(&conteo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creando conteo",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Conteo creado en borrador",
		"data":    conteo,
	})
}

type productoConteoInput struct {
	ID            uint   `json:"id" validate:"required"`
	StockReal     *int   `json:"stock_real"`
	Observaciones string `json:"observaciones"`
}

type guardarConteoInput struct {
	Productos []productoConteoInput `json:"productos" validate:"required"`
}

// GuardarBorrador actualiza los conteos cargados. Sin guard de
// completitud: se puede guardar a cualquier nivel de avance.
func (c *ConteoController) GuardarBorrador(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input guardarConteoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	var conteo models.ConteoStock
	if err := c.DB.Preload("Productos").First(&conteo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Conteo no encontrado",
		})
	}

	if conteo.Estado != models.ConteoBorrador {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Solo se puede editar un conteo en borrador",
		})
	}

	porID := make(map[uint]productoConteoInput, len(input.Productos))
	for _, p := range input.Productos {
		porID[p.ID] = p
	}
	for i := range conteo.Productos {
		if edit, ok := porID[conteo.Productos[i].ID]; ok {
			conteo.Productos[i].StockReal = edit.StockReal
			conteo.Productos[i].Observaciones = edit.Observaciones
		}
	}

	services.RecalcularConteo(&conteo)

	if err := c.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(&conteo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error guardando conteo",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Borrador guardado",
		"data": fiber.Map{
			"conteo":   conteo,
			"progreso": services.ProgresoConteo(&conteo),
		},
	})
}

// ActualizarProducto actualiza un unico producto del conteo y recalcula
// las diferencias. Solo sobre borradores.
func (c *ConteoController) ActualizarProducto(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	productoID, err := ctx.ParamsInt("productoId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Producto invalido",
		})
	}

	var input productoConteoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	var conteo models.ConteoStock
	if err := c.DB.Preload("Productos").First(&conteo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Conteo no encontrado",
		})
	}

	if conteo.Estado != models.ConteoBorrador {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Solo se puede editar un conteo en borrador",
		})
	}

	encontrado := false
	for i := range conteo.Productos {
		if conteo.Productos[i].ID == uint(productoID) {
			conteo.Productos[i].StockReal = input.StockReal
			conteo.Productos[i].Observaciones = input.Observaciones
			encontrado = true
			break
		}
	}
	if !encontrado {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "El producto no pertenece al conteo",
		})
	}

	services.RecalcularConteo(&conteo)

	if err := c.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(&conteo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error guardando producto",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Producto actualizado",
		"data": fiber.Map{
			"conteo":   conteo,
			"progreso": services.ProgresoConteo(&conteo),
		},
	})
}

// Enviar pasa el conteo a revision. Se rechaza si quedan productos sin
// contar, nombrando cuantos faltan.
func (c *ConteoController) Enviar(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var conteo models.ConteoStock
	if err := c.DB.Preload("Productos").First(&conteo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Conteo no encontrado",
		})
	}

	if err := services.ValidarTransicionConteo(conteo.Estado, models.ConteoEnviado); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	if err := services.ValidarEnvioConteo(&conteo); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	now := time.Now()
	conteo.Estado = models.ConteoEnviado
	conteo.FechaConteo = &now
	services.RecalcularConteo(&conteo)

	if err := c.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(&conteo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error enviando conteo",
			"error":   err.Error(),
		})
	}

	var sucursal models.Sucursal
	c.DB.First(&sucursal, conteo.SucursalID)
	if err := services.NotificarConteoEnviado(&conteo, sucursal.Nombre); err != nil {
		log.Println("No se pudo notificar el conteo enviado:", err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Conteo enviado a revision",
		"data":    conteo,
	})
}

type revisarInput struct {
	Aprobar     bool   `json:"aprobar"`
	Comentarios string `json:"comentarios"`
}

// Revisar aprueba o rechaza un conteo enviado. Solo encargados.
func (c *ConteoController) Revisar(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input revisarInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	var conteo models.ConteoStock
	if err := c.DB.First(&conteo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Conteo no encontrado",
		})
	}

	destino := models.ConteoRechazado
	if input.Aprobar {
		destino = models.ConteoAprobado
	}
	if err := services.ValidarTransicionConteo(conteo.Estado, destino); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	now := time.Now()
	conteo.Estado = destino
	conteo.RevisadoPor = &userID
	conteo.FechaRevision = &now
	conteo.ComentariosAuditor = input.Comentarios

	if err := c.DB.Save(&conteo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error revisando conteo",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Conteo revisado",
		"data":    conteo,
	})
}

// Cerrar archiva un conteo ya revisado
func (c *ConteoController) Cerrar(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var conteo models.ConteoStock
	if err := c.DB.First(&conteo, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Conteo no encontrado",
		})
	}

	if err := services.ValidarTransicionConteo(conteo.Estado, models.ConteoCerrado); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	conteo.Estado = models.ConteoCerrado
	if err := c.DB.Save(&conteo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error cerrando conteo",
			"error":   err.Error(),
		})
	}

	// El cierre del conteo completa la tarea que lo origino.
	userID, _ := ctx.Locals("userID").(uint)
	now := time.Now()
	c.DB.Model(&models.TareaSucursal{}).Where("id = ?", conteo.TareaID).
		Updates(map[string]interface{}{
			"estado":           models.TareaCompletada,
			"completado_por":   userID,
			"fecha_completado": now,
		})

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Conteo cerrado",
		"data":    conteo,
	})
}

// ResumenPorSucursal arma la vista de auditoria de conteos de la red
func (c *ConteoController) ResumenPorSucursal(ctx *fiber.Ctx) error {
	resumen, err := c.repo.ResumenPorSucursal()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen de conteos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    resumen,
	})
}
