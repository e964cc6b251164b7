package models

import (
	"time"

	"gorm.io/gorm"
)

type Sucursal struct {
	gorm.Model
	Codigo          string `json:"codigo" gorm:"unique"`
	Nombre          string `json:"nombre"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	DepositoID      *uint  `json:"deposito_id"`
	TieneVeterinaria bool  `json:"tiene_veterinaria"`
	TienePeluqueria  bool  `json:"tiene_peluqueria"`
	Activa          bool   `json:"activa" gorm:"default:true"`
}

type Employee struct {
	gorm.Model
	Usuario      string `json:"usuario" gorm:"unique"`
	Password     string `json:"-" gorm:"column:password_hash"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	FotoPerfil   string `json:"foto_perfil_url"`
	SucursalID   *uint  `json:"sucursal_id"`
	Rol          string `json:"rol"`
	Puesto       string `json:"puesto"`
	FraseEstado  string `json:"frase_estado"`
	Activo       bool   `json:"activo" gorm:"default:true"`
}

// NombreCompleto arma "Nombre Apellido" para mostrar en listados
func (e *Employee) NombreCompleto() string {
	if e.Apellido == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellido
}

type LoginLog struct {
	gorm.Model
	SessionID     string     `json:"session_id"`
	Usuario       string     `json:"usuario"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	LoginStatus   string     `json:"login_status"`
	FailureReason *string    `json:"failure_reason"`
}
