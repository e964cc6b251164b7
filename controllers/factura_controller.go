package controllers

import (
	"log"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/services"
)

type FacturaController struct {
	DB *gorm.DB
}

func NewFacturaController(DB *gorm.DB) *FacturaController {
	return &FacturaController{DB: DB}
}

// GetProveedores busca proveedores por nombre en el padron central de
// compras y en los custom de la sucursal, mezclados en un solo listado
func (c *FacturaController) GetProveedores(ctx *fiber.Ctx) error {
	q := ctx.Query("q")
	if len(q) < 2 {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data":    []services.ResultadoProveedor{},
		})
	}
	busqueda := "%" + q + "%"

	var centrales []models.ProveedorCentral
	if err := c.DB.Where("nombre ILIKE ?", busqueda).
		Order("nombre").Limit(20).Find(&centrales).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error buscando proveedores",
			"error":   err.Error(),
		})
	}

	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	var customs []models.ProveedorCustom
	if err := c.DB.Where("sucursal_id = ? AND nombre ILIKE ?", sucursalID, busqueda).
		Order("nombre").Limit(10).Find(&customs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error buscando proveedores custom",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    services.MergeProveedores(centrales, customs),
	})
}

type proveedorInput struct {
	Nombre string `json:"nombre" validate:"required"`
	CUIT   string `json:"cuit"`
}

// CreateProveedor da de alta un proveedor no catalogado
func (c *FacturaController) CreateProveedor(ctx *fiber.Ctx) error {
	var input proveedorInput
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

	proveedor := models.ProveedorCustom{
		Nombre:      input.Nombre,
		CUIT:        input.CUIT,
		CreadoPorID: userID,
		SucursalID:  sucursalID,
	}

	if err := c.DB.Create(&proveedor).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creando proveedor",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Proveedor creado",
		"data":    proveedor,
	})
}

// GetAll lista las facturas registradas
func (c *FacturaController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.FacturaProveedor{}).Order("fecha_registro DESC")

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	if inconsistencia := ctx.Query("con_inconsistencia"); inconsistencia == "true" {
		query = query.Where("tiene_inconsistencia = ?", true)
	}

	var facturas []models.FacturaProveedor
	if err := query.Find(&facturas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando facturas",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    facturas,
	})
}

type facturaInput struct {
	ProveedorID           *uint  `json:"proveedor_id"`
	ProveedorCustomID     *uint  `json:"proveedor_custom_id"`
	ProveedorNombre       string `json:"proveedor_nombre" validate:"required"`
	NumeroFactura         string `json:"numero_factura" validate:"required"`
	ImagenBase64          string `json:"imagen_base64"`
	TieneInconsistencia   bool   `json:"tiene_inconsistencia"`
	DetalleInconsistencia string `json:"detalle_inconsistencia"`
	Observaciones         string `json:"observaciones"`
	FechaFactura          string `json:"fecha_factura"`
}

// Create registra una factura o nota de credito con imagen adjunta en
// base64
func (c *FacturaController) Create(ctx *fiber.Ctx) error {
	var input facturaInput
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

	factura := models.FacturaProveedor{
		SucursalID:            sucursalID,
		EmployeeID:            userID,
		ProveedorID:           input.ProveedorID,
		ProveedorCustomID:     input.ProveedorCustomID,
		ProveedorNombre:       input.ProveedorNombre,
		NumeroFactura:         input.NumeroFactura,
		ImagenBase64:          input.ImagenBase64,
		TieneInconsistencia:   input.TieneInconsistencia,
		DetalleInconsistencia: input.DetalleInconsistencia,
		Observaciones:         input.Observaciones,
	}
	if input.FechaFactura != "" {
		if fecha, err := time.Parse("2006-01-02", input.FechaFactura); err == nil {
			factura.FechaFactura = &fecha
		}
	}

	if err := c.DB.Create(&factura).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error registrando factura",
			"error":   err.Error(),
		})
	}

	// Una factura con inconsistencia abre un descargo que el encargado
	// resuelve desde auditoria.
	if factura.TieneInconsistencia {
		descargo := models.DescargoAuditoria{
			SucursalID:     sucursalID,
			CreadoPorID:    userID,
			Categoria:      "gestion_administrativa",
			Titulo:         "Inconsistencia en factura " + factura.NumeroFactura,
			Descripcion:    factura.DetalleInconsistencia,
			Estado:         models.DescargoPendiente,
			ReferenciaID:   &factura.ID,
			ReferenciaTipo: "factura",
		}
		if err := c.DB.Create(&descargo).Error; err != nil {
			log.Printf("no se pudo abrir el descargo de la factura %d: %v", factura.ID, err)
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Factura registrada",
		"data":    factura,
	})
}

// Delete elimina una factura. Solo encargados.
func (c *FacturaController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var factura models.FacturaProveedor
	if err := c.DB.First(&factura, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Factura no encontrada",
		})
	}

	if err := c.DB.Delete(&factura).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error eliminando factura",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Factura eliminada",
	})
}
