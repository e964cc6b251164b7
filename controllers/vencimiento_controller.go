package controllers

import (
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/services"
)

type VencimientoController struct {
	DB *gorm.DB
}

func NewVencimientoController(DB *gorm.DB) *VencimientoController {
	return &VencimientoController{DB: DB}
}

type vencimientoResponse struct {
	models.ProductoVencimiento
	DiasParaVencer int `json:"dias_para_vencer"`
}

func diasParaVencer(fechaVencimiento time.Time, hoy time.Time) int {
	hoy = time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	return int(fechaVencimiento.Sub(hoy).Hours() / 24)
}

// GetAll lista los productos por vencer con el campo derivado
// dias_para_vencer recalculado en cada lectura
func (c *VencimientoController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.ProductoVencimiento{}).Order("fecha_vencimiento ASC")

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
	if mes := ctx.Query("mes"); mes != "" {
		query = query.Where("mes_importacion = ?", mes)
	}
	if dias := ctx.QueryInt("dias_limite"); dias > 0 {
		limite := time.Now().AddDate(0, 0, dias)
		query = query.Where("fecha_vencimiento <= ?", limite)
	}

	var productos []models.ProductoVencimiento
	if err := query.Find(&productos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando vencimientos",
			"error":   err.Error(),
		})
	}

	hoy := time.Now()
	respuesta := make([]vencimientoResponse, 0, len(productos))
	for _, p := range productos {
		respuesta = append(respuesta, vencimientoResponse{
			ProductoVencimiento: p,
			DiasParaVencer:      diasParaVencer(p.FechaVencimiento, hoy),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    respuesta,
	})
}

type vencimientoInput struct {
	SucursalID       uint   `json:"sucursal_id"`
	CodItem          string `json:"cod_item"`
	Producto         string `json:"producto" validate:"required"`
	Cantidad         int    `json:"cantidad" validate:"required,min=1"`
	Lote             string `json:"lote"`
	FechaVencimiento string `json:"fecha_vencimiento" validate:"required"`
}

// Create registra un producto proximo a vencer
func (c *VencimientoController) Create(ctx *fiber.Ctx) error {
	var input vencimientoInput
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

	fecha, err := time.Parse("2006-01-02", input.FechaVencimiento)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Fecha invalida, formato esperado YYYY-MM-DD",
		})
	}

	sucursalID := input.SucursalID
	if sucursalID == 0 {
		sucursalID, _ = ctx.Locals("sucursalID").(uint)
	}

	estado := models.VencimientoProximo
	if diasParaVencer(fecha, time.Now()) < 0 {
		estado = models.VencimientoVencido
	}

	producto := models.ProductoVencimiento{
		SucursalID:       sucursalID,
		CodItem:          input.CodItem,
		Producto:         input.Producto,
		Cantidad:         input.Cantidad,
		Lote:             input.Lote,
		FechaVencimiento: fecha,
		Estado:           estado,
	}

	if err := c.DB.Create(&producto).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error registrando vencimiento",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Vencimiento registrado",
		"data":    producto,
	})
}

type accionComercialInput struct {
	Accion              string `json:"accion" validate:"required"`
	PorcentajeDescuento *int   `json:"porcentaje_descuento"`
	SucursalDestinoID   *uint  `json:"sucursal_destino_id"`
}

// AplicarAccion asigna una accion comercial al producto y mueve el
// estado segun la accion
func (c *VencimientoController) AplicarAccion(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input accionComercialInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	accionValida := false
	for _, a := range models.AccionesComerciales {
		if a == input.Accion {
			accionValida = true
			break
		}
	}
	if !accionValida {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Accion comercial desconocida",
		})
	}

	var producto models.ProductoVencimiento
	if err := c.DB.First(&producto, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Producto no encontrado",
		})
	}

	now := time.Now()
	producto.TieneAccionComercial = true
	producto.AccionComercial = &input.Accion
	producto.PorcentajeDescuento = input.PorcentajeDescuento

	switch input.Accion {
	case models.AccionRotacion:
		if input.SucursalDestinoID == nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "La rotacion requiere sucursal de destino",
			})
		}
		producto.SucursalDestinoID = input.SucursalDestinoID
		producto.FechaMovimiento = &now
		producto.Estado = models.VencimientoEnviado
	case models.AccionDevolucion, models.AccionDestruccion, models.AccionDonacion, models.AccionConsumoInterno:
		producto.FechaRetiro = &now
		producto.Estado = models.VencimientoRetirado
	case models.AccionDescuento, models.AccionPromocion:
		// sigue a la venta, en gondola con precio intervenido
	}

	if err := c.DB.Save(&producto).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error aplicando accion",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Accion aplicada",
		"data":    producto,
	})
}

type vencimientoEstadoInput struct {
	Estado string `json:"estado" validate:"required"`
}

// UpdateEstado cambia el estado del producto en forma explicita
// (vendido, archivado, o rollback a proximo)
func (c *VencimientoController) UpdateEstado(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input vencimientoEstadoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	switch input.Estado {
	case models.VencimientoProximo, models.VencimientoVencido, models.VencimientoRetirado,
		models.VencimientoVendido, models.VencimientoEnviado, models.VencimientoArchivado:
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Estado desconocido",
		})
	}

	var producto models.ProductoVencimiento
	if err := c.DB.First(&producto, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Producto no encontrado",
		})
	}

	producto.Estado = input.Estado
	if input.Estado == models.VencimientoProximo {
		// rollback explicito: se limpia la accion aplicada
		producto.TieneAccionComercial = false
		producto.AccionComercial = nil
		producto.PorcentajeDescuento = nil
		producto.SucursalDestinoID = nil
		producto.FechaMovimiento = nil
		producto.FechaRetiro = nil
	}

	if err := c.DB.Save(&producto).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error actualizando estado",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Estado actualizado",
		"data":    producto,
	})
}

// ImportCSV carga el listado mensual de productos por vencer que
// exporta el sistema central
func (c *VencimientoController) ImportCSV(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Falta el archivo CSV",
		})
	}

	mes := ctx.FormValue("mes")
	if mes == "" {
		mes = time.Now().Format("2006-01")
	}

	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if s := ctx.FormValue("sucursal_id"); s != "" && services.EsEncargado(tier) {
		var parsed int
		if _, err := fmt.Sscanf(s, "%d", &parsed); err == nil && parsed > 0 {
			sucursalID = uint(parsed)
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "No se pudo abrir el archivo",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "No se pudo leer el archivo",
			"error":   err.Error(),
		})
	}

	productos, erroresFilas := services.ParseVencimientosCSV(data, mes)
	if len(productos) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "El archivo no tiene filas validas",
		})
	}

	hoy := time.Now()
	for i := range productos {
		productos[i].SucursalID = sucursalID
		if diasParaVencer(productos[i].FechaVencimiento, hoy) < 0 {
			productos[i].Estado = models.VencimientoVencido
		}
	}

	if err := c.DB.Create(&productos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error guardando vencimientos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d productos importados", len(productos)),
		"data": fiber.Map{
			"importados": len(productos),
			"errores":    erroresFilas,
		},
	})
}

// Delete elimina un registro de vencimiento. Solo encargados.
func (c *VencimientoController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var producto models.ProductoVencimiento
	if err := c.DB.First(&producto, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Producto no encontrado",
		})
	}

	if err := c.DB.Delete(&producto).Error; err != nil {
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

// Resumen devuelve los contadores de la sucursal: por vencer en 7 y 30
// dias, vencidos y retirados.
func (c *VencimientoController) Resumen(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	type resumenRow struct {
		PorVencer7  int64 `json:"por_vencer_7"`
		PorVencer30 int64 `json:"por_vencer_30"`
		Vencidos    int64 `json:"vencidos"`
		Retirados   int64 `json:"retirados"`
	}

	var resumen resumenRow
	err := c.DB.Raw(`
		SELECT
			COUNT(*) FILTER (WHERE estado = ? AND fecha_vencimiento <= CURRENT_DATE + INTERVAL '7 days') AS por_vencer7,
			COUNT(*) FILTER (WHERE estado = ? AND fecha_vencimiento <= CURRENT_DATE + INTERVAL '30 days') AS por_vencer30,
			COUNT(*) FILTER (WHERE estado = ?) AS vencidos,
			COUNT(*) FILTER (WHERE estado = ?) AS retirados
		FROM producto_vencimientos
		WHERE sucursal_id = ? AND deleted_at IS NULL`,
		models.VencimientoProximo, models.VencimientoProximo,
		models.VencimientoVencido, models.VencimientoRetirado,
		sucursalID).Scan(&resumen).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen de vencimientos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    resumen,
	})
}
