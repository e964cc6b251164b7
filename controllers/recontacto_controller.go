package controllers

import (
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mi-sucursal/models"
	"mi-sucursal/repositories"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

type RecontactoController struct {
	DB   *gorm.DB
	repo *repositories.RecontactoRepository
}

func NewRecontactoController(DB *gorm.DB) *RecontactoController {
	return &RecontactoController{DB: DB, repo: repositories.NewRecontactoRepository(DB)}
}

// GetAll lista los clientes de la campaña de recontacto
func (c *RecontactoController) GetAll(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.ClienteRecontacto{}).Order("dias_sin_comprar DESC NULLS LAST")

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

	var clientes []models.ClienteRecontacto
	if err := query.Find(&clientes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando clientes",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    clientes,
	})
}

// GetHistorial devuelve los contactos registrados de un cliente
func (c *RecontactoController) GetHistorial(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var cliente models.ClienteRecontacto
	if err := c.DB.First(&cliente, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cliente no encontrado",
		})
	}

	var contactos []models.RegistroContacto
	if err := c.DB.Where("cliente_recontacto_id = ?", cliente.ID).
		Order("fecha_contacto DESC").Find(&contactos).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error listando contactos",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"cliente":   cliente,
			"contactos": contactos,
		},
	})
}

type contactoInput struct {
	Medio     string `json:"medio" validate:"required"`
	Resultado string `json:"resultado" validate:"required"`
	Notas     string `json:"notas"`
}

// RegistrarContacto agrega un intento de contacto y avanza el estado
// del cliente segun el resultado. Estados terminales rechazan nuevos
// contactos.
func (c *RecontactoController) RegistrarContacto(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input contactoInput
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

	var cliente models.ClienteRecontacto
	if err := c.DB.First(&cliente, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cliente no encontrado",
		})
	}

	if err := services.AplicarResultadoContacto(&cliente, input.Resultado); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	userID, _ := ctx.Locals("userID").(uint)
	now := time.Now()
	cliente.UltimoContacto = &now

	contacto := models.RegistroContacto{
		ClienteRecontactoID: cliente.ID,
		EmployeeID:          userID,
		SucursalID:          cliente.SucursalID,
		Medio:               input.Medio,
		Resultado:           input.Resultado,
		Notas:               input.Notas,
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contacto).Error; err != nil {
			return err
		}
		return tx.Save(&cliente).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error registrando contacto",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Contacto registrado",
		"data": fiber.Map{
			"cliente":  cliente,
			"contacto": contacto,
		},
	})
}

// ImportCSV carga el listado mensual de clientes sin compras. Hace
// upsert por nombre: un cliente ya cargado conserva su estado y su
// historial, solo se le refrescan los datos de ultima compra.
func (c *RecontactoController) ImportCSV(ctx *fiber.Ctx) error {
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

	clientes, erroresFilas := services.ParseRecontactosCSV(data, mes)
	if len(clientes) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "El archivo no tiene filas validas",
		})
	}

	hoy := time.Now()
	creados, actualizados := 0, 0
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		for _, cliente := range clientes {
			cliente.SucursalID = sucursalID
			if cliente.UltimaCompra != nil {
				dias := int(hoy.Sub(*cliente.UltimaCompra).Hours() / 24)
				cliente.DiasSinComprar = &dias
			}

			var existente models.ClienteRecontacto
			err := tx.Where("sucursal_id = ? AND cliente_nombre = ?", sucursalID, cliente.ClienteNombre).
				First(&existente).Error
			if err == nil {
				existente.ClienteCodigo = cliente.ClienteCodigo
				existente.ClienteTelefono = cliente.ClienteTelefono
				existente.ClienteEmail = cliente.ClienteEmail
				existente.UltimaCompra = cliente.UltimaCompra
				existente.DiasSinComprar = cliente.DiasSinComprar
				existente.MontoUltimaCompra = cliente.MontoUltimaCompra
				existente.MesImportacion = mes
				if err := tx.Save(&existente).Error; err != nil {
					return err
				}
				actualizados++
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return err
			}
			if err := tx.Create(&cliente).Error; err != nil {
				return err
			}
			creados++
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error importando clientes",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d clientes nuevos, %d actualizados", creados, actualizados),
		"data": fiber.Map{
			"creados":      creados,
			"actualizados": actualizados,
			"errores":      erroresFilas,
		},
	})
}

// Resumen cuenta los clientes de la campaña por estado
func (c *RecontactoController) Resumen(ctx *fiber.Ctx) error {
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
			"message": "Error calculando resumen",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    resumen,
	})
}

type recontactoInput struct {
	SucursalID        uint   `json:"sucursal_id"`
	ClienteCodigo     string `json:"cliente_codigo"`
	ClienteNombre     string `json:"cliente_nombre" validate:"required"`
	ClienteTelefono   string `json:"cliente_telefono"`
	ClienteEmail      string `json:"cliente_email"`
	MascotaNombre     string `json:"mascota_nombre"`
	MascotaTipo       string `json:"mascota_tipo"`
	UltimaCompra      string `json:"ultima_compra"`
	MontoUltimaCompra string `json:"monto_ultima_compra"`
}

// Create da de alta un cliente a recontactar de forma manual, fuera de
// la importacion mensual.
func (c *RecontactoController) Create(ctx *fiber.Ctx) error {
	var input recontactoInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}
	if err := validator.New().Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Datos incompletos",
			"error":   err.Error(),
		})
	}

	sucursalID, _ := ctx.Locals("sucursalID").(uint)
	tier, _ := ctx.Locals("rolTier").(string)
	if services.EsEncargado(tier) && input.SucursalID > 0 {
		sucursalID = input.SucursalID
	}

	cliente := models.ClienteRecontacto{
		SucursalID:        sucursalID,
		ClienteCodigo:     input.ClienteCodigo,
		ClienteNombre:     input.ClienteNombre,
		ClienteTelefono:   input.ClienteTelefono,
		ClienteEmail:      input.ClienteEmail,
		MascotaNombre:     input.MascotaNombre,
		MascotaTipo:       input.MascotaTipo,
		MontoUltimaCompra: input.MontoUltimaCompra,
		Estado:            models.RecontactoPendiente,
	}

	if input.UltimaCompra != "" {
		if fecha, err := utils.ParseFechaEspanol(input.UltimaCompra); err == nil {
			cliente.UltimaCompra = &fecha
			dias := int(time.Since(fecha).Hours() / 24)
			cliente.DiasSinComprar = &dias
		}
	}

	if err := c.DB.Create(&cliente).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creando cliente",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Cliente registrado",
		"data":    cliente,
	})
}

// UpdateEstado cambia el estado del cliente a mano, sin pasar por un
// registro de contacto. Pensado para correcciones del encargado.
func (c *RecontactoController) UpdateEstado(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input struct {
		Estado string `json:"estado"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request invalido",
		})
	}

	switch input.Estado {
	case models.RecontactoPendiente, models.RecontactoContactado,
		models.RecontactoRecuperado, models.RecontactoNoInteresado,
		models.RecontactoFallecido:
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Estado desconocido",
		})
	}

	var cliente models.ClienteRecontacto
	if err := c.DB.First(&cliente, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cliente no encontrado",
		})
	}

	cliente.Estado = input.Estado
	if err := c.DB.Save(&cliente).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error actualizando cliente",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Estado actualizado",
		"data":    cliente,
	})
}

// Delete elimina un cliente de la campaña junto con su historial.
func (c *RecontactoController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var cliente models.ClienteRecontacto
	if err := c.DB.First(&cliente, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cliente no encontrado",
		})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cliente_recontacto_id = ?", cliente.ID).
			Delete(&models.RegistroContacto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cliente).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error eliminando cliente",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Cliente eliminado",
	})
}
