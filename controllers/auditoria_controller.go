package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/models"
	"mi-sucursal/repositories"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

type AuditoriaController struct {
	DB          *gorm.DB
	cierreRepo  *repositories.CierreRepository
	conteoRepo  *repositories.ConteoRepository
	ventasAPI   *services.VendedoresClient
}

func NewAuditoriaController(DB *gorm.DB) *AuditoriaController {
	return &AuditoriaController{
		DB:         DB,
		cierreRepo: repositories.NewCierreRepository(DB),
		conteoRepo: repositories.NewConteoRepository(DB),
		ventasAPI:  services.NewVendedoresClient(),
	}
}

// Indicadores arma el tablero de auditoria de una sucursal. Cada
// fuente se consulta por separado; si una falla su indicador sale en
// cero en lugar de voltear el tablero completo.
func (c *AuditoriaController) Indicadores(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	ahora := time.Now()
	indicadores := []services.IndicadorAuditoria{}

	// orden y limpieza: tareas pendientes de la categoria
	var tareas []models.TareaSucursal
	if err := c.DB.Where("sucursal_id = ? AND categoria = ?", sucursalID, models.CategoriaOrdenLimpieza).
		Find(&tareas).Error; err == nil {
		pendientes := 0
		for _, t := range tareas {
			if t.Estado != models.TareaCompletada {
				pendientes++
			}
		}
		pct := float64(services.PorcentajePendientes(pendientes, len(tareas)))
		indicadores = append(indicadores, services.IndicadorAuditoria{
			Nombre:     "orden_limpieza",
			Porcentaje: pct,
			Severidad:  services.SeveridadOrden(pct),
		})
	} else {
		indicadores = append(indicadores, services.IndicadorSinDatos("orden_limpieza"))
	}

	// pedidos: conteos rechazados sobre revisados del ultimo mes
	if rechazos, err := c.conteoRepo.Rechazos(sucursalID); err == nil {
		pct := float64(services.PorcentajePendientes(rechazos.Rechazados, rechazos.Total))
		indicadores = append(indicadores, services.IndicadorAuditoria{
			Nombre:     "pedidos",
			Porcentaje: pct,
			Severidad:  services.SeveridadPedidos(pct),
		})
	} else {
		indicadores = append(indicadores, services.IndicadorSinDatos("pedidos"))
	}

	// gastos: datos de ventas del portal de vendedores
	if ventas, err := c.ventasAPI.ResumenVentas(sucursalID); err == nil {
		pct := services.RatioGastos(ventas.GastosMes, ventas.VentasMes)
		indicadores = append(indicadores, services.IndicadorAuditoria{
			Nombre:     "gastos",
			Porcentaje: pct,
			Severidad:  services.SeveridadGastos(pct),
		})
		indicadores = append(indicadores, services.IndicadorClub(
			ventas.FacturasConsumidorFinal, ventas.TotalFacturas, config.ClubMetaPorcentaje))
	} else {
		indicadores = append(indicadores, services.IndicadorSinDatos("gastos"))
		indicadores = append(indicadores, services.IndicadorSinDatos("club_mascotera"))
	}

	// caja: diferencia neta del mes en curso
	if resumen, err := c.cierreRepo.ResumenMes(sucursalID, utils.PeriodoActual(ahora)); err == nil {
		indicadores = append(indicadores, services.IndicadorAuditoria{
			Nombre:     "control_stock_caja",
			Porcentaje: float64(resumen.DiferenciaNeta),
			Severidad:  services.SeveridadCaja(resumen.DiferenciaNeta),
		})
	} else {
		indicadores = append(indicadores, services.IndicadorSinDatos("control_stock_caja"))
	}

	// tareas con mas de 5 dias sin completar, para el detalle
	var todas []models.TareaSucursal
	c.DB.Where("sucursal_id = ?", sucursalID).Find(&todas)
	vencidas := services.TareasVencidasAuditoria(todas, ahora)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"indicadores":     indicadores,
			"tareas_vencidas": vencidas,
		},
	})
}

// GetMensuales lista los puntajes mensuales cargados
func (c *AuditoriaController) GetMensuales(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.AuditoriaMensual{}).Order("periodo DESC, sucursal_id")

	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if sucursal := ctx.Query("sucursal_id"); sucursal != "" {
			query = query.Where("sucursal_id = ?", sucursal)
		}
	} else {
		sucursalID, _ := ctx.Locals("sucursalID").(uint)
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	if periodo := ctx.Query("periodo"); periodo != "" {
		query = query.Where("periodo = ?", periodo)
	}
	if limit := ctx.QueryInt("limit"); limit > 0 {
		query = query.Limit(limit)
	}

	var auditorias []models.AuditoriaMensual
	if err := query.Find(&auditorias).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando auditorias",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    auditorias,
	})
}

// GetTodas agrupa las auditorias de los ultimos 4 periodos por
// sucursal, para la vista comparativa de la red.
func (c *AuditoriaController) GetTodas(ctx *fiber.Ctx) error {
	var periodos []string
	err := c.DB.Model(&models.AuditoriaMensual{}).
		Distinct("periodo").Order("periodo DESC").Limit(4).
		Pluck("periodo", &periodos).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando periodos",
			"error":   err.Error(),
		})
	}

	var auditorias []models.AuditoriaMensual
	if len(periodos) > 0 {
		err = c.DB.Where("periodo IN ?", periodos).
			Order("sucursal_id, periodo DESC").
			Find(&auditorias).Error
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Error listando auditorias",
				"error":   err.Error(),
			})
		}
	}

	porSucursal := make(map[uint][]models.AuditoriaMensual)
	for _, a := range auditorias {
		porSucursal[a.SucursalID] = append(porSucursal[a.SucursalID], a)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"periodos":   periodos,
			"sucursales": porSucursal,
		},
	})
}

type auditoriaMensualInput struct {
	SucursalID            uint     `json:"sucursal_id" validate:"required"`
	Periodo               string   `json:"periodo" validate:"required,len=7"`
	OrdenLimpieza         *float64 `json:"orden_limpieza"`
	Pedidos               *float64 `json:"pedidos"`
	GestionAdministrativa *float64 `json:"gestion_administrativa"`
	ClubMascotera         *float64 `json:"club_mascotera"`
	ControlStockCaja      *float64 `json:"control_stock_caja"`
	Observaciones         string   `json:"observaciones"`
}

// UpsertMensual crea o actualiza el puntaje de una sucursal y periodo.
// El total se recalcula siempre en el servidor.
func (c *AuditoriaController) UpsertMensual(ctx *fiber.Ctx) error {
	var input auditoriaMensualInput
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

	var auditoria models.AuditoriaMensual
	err := c.DB.Where("sucursal_id = ? AND periodo = ?", input.SucursalID, input.Periodo).
		First(&auditoria).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error consultando auditoria",
			"error":   err.Error(),
		})
	}

	auditoria.SucursalID = input.SucursalID
	auditoria.Periodo = input.Periodo
	auditoria.OrdenLimpieza = input.OrdenLimpieza
	auditoria.Pedidos = input.Pedidos
	auditoria.GestionAdministrativa = input.GestionAdministrativa
	auditoria.ClubMascotera = input.ClubMascotera
	auditoria.ControlStockCaja = input.ControlStockCaja
	auditoria.Observaciones = input.Observaciones
	auditoria.PuntajeTotal = services.PuntajeTotal(&auditoria)

	if err := c.DB.Save(&auditoria).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error guardando auditoria",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Auditoria guardada",
		"data":    auditoria,
	})
}

type auditoriaBulkInput struct {
	Auditorias []auditoriaMensualInput `json:"auditorias" validate:"required,min=1,dive"`
}

// BulkMensual guarda los puntajes de varias sucursales en una sola
// transaccion, para la carga masiva de fin de mes
func (c *AuditoriaController) BulkMensual(ctx *fiber.Ctx) error {
	var input auditoriaBulkInput
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

	guardadas := 0
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range input.Auditorias {
			var auditoria models.AuditoriaMensual
			err := tx.Where("sucursal_id = ? AND periodo = ?", item.SucursalID, item.Periodo).
				First(&auditoria).Error
			if err != nil && err != gorm.ErrRecordNotFound {
				return err
			}

			auditoria.SucursalID = item.SucursalID
			auditoria.Periodo = item.Periodo
			auditoria.OrdenLimpieza = item.OrdenLimpieza
			auditoria.Pedidos = item.Pedidos
			auditoria.GestionAdministrativa = item.GestionAdministrativa
			auditoria.ClubMascotera = item.ClubMascotera
			auditoria.ControlStockCaja = item.ControlStockCaja
			auditoria.Observaciones = item.Observaciones
			auditoria.PuntajeTotal = services.PuntajeTotal(&auditoria)

			if err := tx.Save(&auditoria).Error; err != nil {
				return err
			}
			guardadas++
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error guardando auditorias",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d auditorias guardadas", guardadas),
	})
}

// ExportMensual genera el Excel de puntajes de un periodo
func (c *AuditoriaController) ExportMensual(ctx *fiber.Ctx) error {
	periodo := ctx.Query("periodo")
	if periodo == "" {
		periodo = utils.PeriodoActual(time.Now())
	}

	type fila struct {
		models.AuditoriaMensual
		SucursalNombre string
	}

	var filas []fila
	err := c.DB.Model(&models.AuditoriaMensual{}).
		Select("auditoria_mensuals.*, sucursals.nombre AS sucursal_nombre").
		Joins("JOIN sucursals ON sucursals.id = auditoria_mensuals.sucursal_id").
		Where("auditoria_mensuals.periodo = ?", periodo).
		Order("sucursals.nombre").
		Scan(&filas).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error consultando auditorias",
			"error":   err.Error(),
		})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Sucursal")
	f.SetCellValue(sheet, "B1", "Periodo")
	f.SetCellValue(sheet, "C1", "Orden y Limpieza")
	f.SetCellValue(sheet, "D1", "Pedidos")
	f.SetCellValue(sheet, "E1", "Gestion Administrativa")
	f.SetCellValue(sheet, "F1", "Club Mascotera")
	f.SetCellValue(sheet, "G1", "Control Stock y Caja")
	f.SetCellValue(sheet, "H1", "Puntaje Total")
	f.SetCellValue(sheet, "I1", "Observaciones")

	celda := func(v *float64) interface{} {
		if v == nil {
			return ""
		}
		return *v
	}

	for i, fila := range filas {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), fila.SucursalNombre)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), fila.Periodo)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), celda(fila.OrdenLimpieza))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), celda(fila.Pedidos))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), celda(fila.GestionAdministrativa))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), celda(fila.ClubMascotera))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), celda(fila.ControlStockCaja))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), celda(fila.PuntajeTotal))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", i+2), fila.Observaciones)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="auditoria_%s.xlsx"`, periodo))

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("No se pudo generar el Excel")
	}

	return nil
}
