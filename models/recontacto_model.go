package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados de cliente a recontactar. Los tres ultimos son terminales:
// una vez alcanzados no se registran mas contactos.
const (
	RecontactoPendiente    = "pendiente"
	RecontactoContactado   = "contactado"
	RecontactoRecuperado   = "recuperado"
	RecontactoNoInteresado = "no_interesado"
	RecontactoFallecido    = "fallecido"
)

type ClienteRecontacto struct {
	gorm.Model
	SucursalID uint `json:"sucursal_id" gorm:"index"`

	ClienteCodigo   string `json:"cliente_codigo" gorm:"index"`
	ClienteNombre   string `json:"cliente_nombre"`
	ClienteTelefono string `json:"cliente_telefono"`
	ClienteEmail    string `json:"cliente_email"`

	MascotaNombre string `json:"mascota_nombre"`
	MascotaTipo   string `json:"mascota_tipo"`

	UltimaCompra      *time.Time `json:"ultima_compra" gorm:"type:date"`
	DiasSinComprar    *int       `json:"dias_sin_comprar"`
	MontoUltimaCompra string     `json:"monto_ultima_compra"`

	Estado            string     `json:"estado" gorm:"default:'pendiente';index"`
	CantidadContactos int        `json:"cantidad_contactos"`
	UltimoContacto    *time.Time `json:"ultimo_contacto"`

	Importado      bool   `json:"importado"`
	MesImportacion string `json:"mes_importacion"`
}

type RegistroContacto struct {
	gorm.Model
	ClienteRecontactoID uint `json:"cliente_recontacto_id" gorm:"index"`
	EmployeeID          uint `json:"employee_id"`
	SucursalID          uint `json:"sucursal_id" gorm:"index"`

	FechaContacto time.Time `json:"fecha_contacto" gorm:"autoCreateTime"`
	Medio         string    `json:"medio"`     // telefono, whatsapp, email, presencial
	Resultado     string    `json:"resultado"` // contactado, no_contesta, numero_erroneo, interesado, no_interesado, fallecido
	Notas         string    `json:"notas"`
}
