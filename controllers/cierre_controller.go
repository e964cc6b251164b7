package controllers

import (
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/repositories"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

type CierreController struct {
	DB   *gorm.DB
	repo *repositories.CierreRepository
}

func NewCierreController(DB *gorm.DB) *CierreController {
	return &CierreController{DB: DB, repo: repositories.NewCierreRepository(DB)}
}

// GetCajas lista las cajas activas de la sucursal del empleado
func (c *CierreController) GetCajas(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	var cajas []models.Caja
	if err := c.DB.Where("sucursal_id = ? AND activa = ?", sucursalID, true).Find(&cajas).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando cajas",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    cajas,
	})
}

// GetAll lista los cierres de caja con filtros de caja, estado y mes
func (c *CierreController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.CierreCaja{}).
		Joins("JOIN cajas ON cajas.id = cierre_cajas.caja_id").
		Order("cierre_cajas.fecha_caja DESC").
		Limit(30)

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("cajas.sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("cajas.sucursal_id = ?", sucursalID)
	}

	if caja := ctx.Query("caja_id"); caja != "" {
		query = query.Where("cierre_cajas.caja_id = ?", caja)
	}
	if estado := ctx.Query("estado"); estado != "" {
		query = query.Where("cierre_cajas.estado = ?", estado)
	}
	if mes := ctx.Query("mes"); mes != "" {
		query = query.Where("to_char(cierre_cajas.fecha_caja, 'YYYY-MM') = ?", mes)
	}

	var cierres []models.CierreCaja
	if err := query.Find(&cierres).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando cierres",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    cierres,
	})
}

type cierreInput struct {
	CajaID        uint   `json:"caja_id" validate:"required"`
	FechaCaja     string `json:"fecha_caja" validate:"required"`
	Monto         string `json:"monto" validate:"required"`
	TipoMonto     string `json:"tipo_monto"`
	Observaciones string `json:"observaciones"`
}

// Create declara el cierre del dia. Una sola declaracion por caja y
// fecha: la conciliacion posterior enriquece el registro, nunca lo
// recrea.
func (c *CierreController) Create(ctx *fiber.Ctx) error {
	var input cierreInput
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

	monto, err := utils.ParseMonto(input.Monto)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Monto invalido",
			"error":   err.Error(),
		})
	}

	fecha, err := time.Parse("2006-01-02", input.FechaCaja)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Fecha invalida, formato esperado YYYY-MM-DD",
		})
	}

	var caja models.Caja
	if err := c.DB.First(&caja, input.CajaID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Caja no encontrada",
		})
	}

	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if !services.EsEncargado(tier) && caja.SucursalID != sucursalID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "La caja no pertenece a su sucursal",
		})
	}

	existe, err := c.repo.ExisteCierre(input.CajaID, fecha)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error verificando cierre",
			"error":   err.Error(),
		})
	}
	if existe {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Ya existe un cierre para esta fecha",
		})
	}

	userID, _ := ctx.Locals("userID").(uint)

	tipoMonto := input.TipoMonto
	if tipoMonto == "" {
		tipoMonto = "recuento_fisico"
	}

	cierre := models.CierreCaja{
		CajaID:         input.CajaID,
		FechaCaja:      fecha,
		MontoDeclarado: monto,
		Estado:         models.CierreDeclarado,
		TipoMonto:      tipoMonto,
		IDPersonal:     userID,
		Observaciones:  input.Observaciones,
	}

	if err := c.DB.Create(&cierre).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error declarando cierre",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Cierre declarado",
		"data":    cierre,
	})
}

type conciliarInput struct {
	MontoSistema int64 `json:"monto_sistema"`
}

// Conciliar carga el monto del sistema sobre un cierre declarado. Lo
// usa el proceso de conciliacion, por eso exige nivel encargado.
func (c *CierreController) Conciliar(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input conciliarInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	var cierre models.CierreCaja
	if err := c.DB.First(&cierre, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cierre no encontrado",
		})
	}

	services.ConciliarCierre(&cierre, input.MontoSistema)

	if err := c.DB.Save(&cierre).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error conciliando cierre",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Cierre conciliado",
		"data": fiber.Map{
			"cierre":               cierre,
			"diferencia_formateada": utils.FormatMonto(*cierre.Diferencia),
		},
	})
}

// Pendientes lista los dias de la ultima semana sin declaracion por caja
func (c *CierreController) Pendientes(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	pendientes, err := c.repo.DiasPendientes(sucursalID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error buscando dias pendientes",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    pendientes,
	})
}

// Resumen agrega los cierres del mes de una sucursal
func (c *CierreController) Resumen(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	periodo := ctx.Query("mes")
	if periodo == "" {
		periodo = utils.PeriodoActual(time.Now())
	}

	resumen, err := c.repo.ResumenMes(sucursalID, periodo)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen de cierres",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    resumen,
	})
}
