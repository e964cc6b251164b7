package controllers

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/repositories"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

type DashboardController struct {
	DB         *gorm.DB
	tareaRepo  *repositories.TareaRepository
	cierreRepo *repositories.CierreRepository
	conteoRepo *repositories.ConteoRepository
	ventasAPI  *services.VendedoresClient
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:         DB,
		tareaRepo:  repositories.NewTareaRepository(DB),
		cierreRepo: repositories.NewCierreRepository(DB),
		conteoRepo: repositories.NewConteoRepository(DB),
		ventasAPI:  services.NewVendedoresClient(),
	}
}

// Resumen arma el tablero de inicio de una sucursal. Las fuentes se
// consultan en paralelo y cada una degrada por separado: si el portal
// de vendedores no responde, las ventas salen en cero pero el resto
// del tablero se muestra igual.
func (c *DashboardController) Resumen(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	var (
		wg sync.WaitGroup

		ventas       *services.ResumenVentas
		tareas       *repositories.ResumenTareas
		cierres      []repositories.DiaPendiente
		ventasPerdidas int64
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		if v, err := c.ventasAPI.ResumenVentas(sucursalID); err == nil {
			ventas = v
		}
	}()

	go func() {
		defer wg.Done()
		if t, err := c.tareaRepo.Resumen(sucursalID); err == nil {
			tareas = t
		}
	}()

	go func() {
		defer wg.Done()
		if p, err := c.cierreRepo.DiasPendientes(sucursalID); err == nil {
			cierres = p
		}
	}()

	go func() {
		defer wg.Done()
		inicio := time.Now().AddDate(0, 0, -30)
		c.DB.Model(&models.VentaPerdida{}).
			Where("sucursal_id = ? AND fecha_registro >= ?", sucursalID, inicio).
			Count(&ventasPerdidas)
	}()

	wg.Wait()

	if ventas == nil {
		ventas = &services.ResumenVentas{SucursalID: sucursalID}
	}
	if tareas == nil {
		tareas = &repositories.ResumenTareas{}
	}
	if cierres == nil {
		cierres = []repositories.DiaPendiente{}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"ventas":             ventas,
			"tareas":             tareas,
			"cierres_pendientes": cierres,
			"ventas_perdidas":    ventasPerdidas,
			"periodo":            utils.PeriodoActual(time.Now()),
		},
	})
}

// ResumenRed arma la tabla comparativa de todas las sucursales para
// encargados. La ruta aplica el guard de nivel.
func (c *DashboardController) ResumenRed(ctx *fiber.Ctx) error {
	var (
		wg sync.WaitGroup

		tareas  []repositories.ResumenTareasSucursal
		conteos []repositories.ResumenConteosSucursal
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		if t, err := c.tareaRepo.ResumenPorSucursal(); err == nil {
			tareas = t
		}
	}()

	go func() {
		defer wg.Done()
		if cs, err := c.conteoRepo.ResumenPorSucursal(); err == nil {
			conteos = cs
		}
	}()

	wg.Wait()

	if tareas == nil {
		tareas = []repositories.ResumenTareasSucursal{}
	}
	if conteos == nil {
		conteos = []repositories.ResumenConteosSucursal{}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"tareas_por_sucursal":  tareas,
			"conteos_por_sucursal": conteos,
		},
	})
}

// Ventas proxyea el resumen de ventas del portal de vendedores. Si el
// portal no responde se devuelve el payload en cero con sin_datos.
func (c *DashboardController) Ventas(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	ventas, err := c.ventasAPI.ResumenVentas(sucursalID)
	if err != nil {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"ventas":    services.ResumenVentas{SucursalID: sucursalID},
				"sin_datos": true,
			},
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"ventas":    *ventas,
			"sin_datos": false,
		},
	})
}

// Objetivos proxyea el objetivo mensual y su avance.
func (c *DashboardController) Objetivos(ctx *fiber.Ctx) error {
	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) {
		if s := ctx.QueryInt("sucursal_id"); s > 0 {
			sucursalID = uint(s)
		}
	}

	objetivos, err := c.ventasAPI.Objetivos(sucursalID)
	if err != nil {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"objetivos": services.ObjetivosVentas{SucursalID: sucursalID},
				"sin_datos": true,
			},
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"objetivos": *objetivos,
			"sin_datos": false,
		},
	})
}
