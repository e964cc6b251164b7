package controllers

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/controllers/idgen"
	"mi-sucursal/models"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

type AjusteController struct {
	DB *gorm.DB
}

func NewAjusteController(DB *gorm.DB) *AjusteController {
	return &AjusteController{DB: DB}
}

// GetAll lista los ajustes importados con filtros de deposito y mes
func (c *AjusteController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.AjusteStock{}).Order("fecha DESC")

	if deposito := ctx.Query("deposito_id"); deposito != "" {
		query = query.Where("deposito_id = ?", deposito)
	}
	if mes := ctx.Query("mes"); mes != "" {
		query = query.Where("mes_importacion = ?", mes)
	}
	if tipo := ctx.Query("tipo"); tipo != "" {
		query = query.Where("tipo_movimiento = ?", tipo)
	}

	var ajustes []models.AjusteStock
	if err := query.Limit(500).Find(&ajustes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando ajustes",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    ajustes,
	})
}

// GetDepositos lista los depositos conocidos
func (c *AjusteController) GetDepositos(ctx *fiber.Ctx) error {
	var depositos []models.Deposito
	if err := c.DB.Order("nombre").Find(&depositos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando depositos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    depositos,
	})
}

// ImportCSV importa el export mensual de ajustes. El archivo llega
// como multipart; cada importacion recibe un lote propio para poder
// rastrearla o revertirla.
func (c *AjusteController) ImportCSV(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Falta el archivo CSV",
		})
	}

	mes := ctx.FormValue("mes")
	if mes == "" {
		mes = utils.PeriodoActual(time.Now())
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

	loteID := idgen.GenerateID()
	filas, erroresFilas := services.ParseAjustesCSV(data, mes, loteID)
	if len(filas) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "El archivo no tiene filas validas",
			"error":   fmt.Sprintf("%d filas con error", len(erroresFilas)),
		})
	}

	importadas, err := c.guardarAjustes(filas)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error guardando ajustes",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d ajustes importados", importadas),
		"data": fiber.Map{
			"lote_importacion": loteID,
			"importadas":       importadas,
			"errores":          erroresFilas,
		},
	})
}

// guardarAjustes persiste las filas resolviendo depositos por nombre,
// creando los que no existen
func (c *AjusteController) guardarAjustes(filas []services.FilaAjuste) (int, error) {
	importadas := 0
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		depositos := map[string]uint{}
		for _, fila := range filas {
			ajuste := fila.Ajuste

			if fila.Deposito != "" {
				id, ok := depositos[fila.Deposito]
				if !ok {
					var deposito models.Deposito
					if err := tx.Where("nombre = ?", fila.Deposito).
						FirstOrCreate(&deposito, models.Deposito{Nombre: fila.Deposito}).Error; err != nil {
						return err
					}
					id = deposito.ID
					depositos[fila.Deposito] = id
				}
				ajuste.DepositoID = &id
			}

			if err := tx.Create(&ajuste).Error; err != nil {
				return err
			}
			importadas++
		}
		return nil
	})
	return importadas, err
}

// ResumenMensual agrega los ajustes de un mes por tipo de movimiento
func (c *AjusteController) ResumenMensual(ctx *fiber.Ctx) error {
	mes := ctx.Query("mes")
	if mes == "" {
		mes = utils.PeriodoActual(time.Now())
	}

	type resumenTipo struct {
		TipoMovimiento string `json:"tipo_movimiento"`
		Movimientos    int    `json:"movimientos"`
		Unidades       int    `json:"unidades"`
	}

	var porTipo []resumenTipo
	sql := `SELECT tipo_movimiento, COUNT(*) AS movimientos,
	COALESCE(SUM(ABS(cantidad)), 0) AS unidades
	FROM ajuste_stocks
	WHERE mes_importacion = ? AND deleted_at IS NULL
	GROUP BY tipo_movimiento
	ORDER BY tipo_movimiento`
	if err := c.DB.Raw(sql, mes).Scan(&porTipo).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen",
			"error":   err.Error(),
		})
	}

	type totalesRow struct {
		Total        int64 `json:"total"`
		Ingresos     int64 `json:"ingresos"`
		Egresos      int64 `json:"egresos"`
		CantidadNeta int64 `json:"cantidad_neta"`
	}
	var totales totalesRow
	err := c.DB.Raw(`SELECT COUNT(*) AS total,
	COUNT(*) FILTER (WHERE tipo_movimiento = 'INGRESO') AS ingresos,
	COUNT(*) FILTER (WHERE tipo_movimiento = 'EGRESO') AS egresos,
	COALESCE(SUM(cantidad), 0) AS cantidad_neta
	FROM ajuste_stocks
	WHERE mes_importacion = ? AND deleted_at IS NULL`, mes).
		Scan(&totales).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando totales",
			"error":   err.Error(),
		})
	}

	type resumenDeposito struct {
		Deposito    string `json:"deposito"`
		Movimientos int    `json:"movimientos"`
		Unidades    int    `json:"unidades"`
	}
	var porDeposito []resumenDeposito
	err = c.DB.Raw(`SELECT d.nombre AS deposito, COUNT(*) AS movimientos,
	COALESCE(SUM(ABS(a.cantidad)), 0) AS unidades
	FROM ajuste_stocks a
	JOIN depositos d ON d.id = a.deposito_id
	WHERE a.mes_importacion = ? AND a.deleted_at IS NULL
	GROUP BY d.nombre
	ORDER BY d.nombre`, mes).Scan(&porDeposito).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error calculando resumen por deposito",
			"error":   err.Error(),
		})
	}

	var meses []string
	c.DB.Model(&models.AjusteStock{}).
		Distinct("mes_importacion").Order("mes_importacion DESC").
		Pluck("mes_importacion", &meses)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"mes":          mes,
			"totales":      totales,
			"por_tipo":     porTipo,
			"por_deposito": porDeposito,
			"meses":        meses,
		},
	})
}
