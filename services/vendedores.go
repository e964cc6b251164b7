package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mi-sucursal/config"
)

// VendedoresClient consulta el portal de vendedores, dueño de los
// datos de ventas y facturacion
type VendedoresClient struct {
	baseURL string
	client  *http.Client
}

func NewVendedoresClient() *VendedoresClient {
	return &VendedoresClient{
		baseURL: config.VendedoresAPIURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type ResumenVentas struct {
	SucursalID              uint    `json:"sucursal_id"`
	VentasMes               float64 `json:"ventas_mes"`
	GastosMes               float64 `json:"gastos_mes"`
	TotalFacturas           int     `json:"total_facturas"`
	FacturasConsumidorFinal int     `json:"facturas_consumidor_final"`
	TicketPromedio          float64 `json:"ticket_promedio"`
}

// ResumenVentas trae el resumen del mes en curso de una sucursal
func (c *VendedoresClient) ResumenVentas(sucursalID uint) (*ResumenVentas, error) {
	url := fmt.Sprintf("%s/sucursales/%d/resumen-ventas", c.baseURL, sucursalID)

	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("consultando portal de vendedores: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal de vendedores respondio %d", resp.StatusCode)
	}

	var resumen ResumenVentas
	if err := json.NewDecoder(resp.Body).Decode(&resumen); err != nil {
		return nil, fmt.Errorf("decodificando resumen de ventas: %w", err)
	}
	return &resumen, nil
}

type ObjetivosVentas struct {
	SucursalID       uint    `json:"sucursal_id"`
	ObjetivoMensual  float64 `json:"objetivo_mensual"`
	VentasAcumuladas float64 `json:"ventas_acumuladas"`
	Avance           float64 `json:"avance"`
	DiasRestantes    int     `json:"dias_restantes"`
}

// Objetivos trae el objetivo mensual y el avance de una sucursal
func (c *VendedoresClient) Objetivos(sucursalID uint) (*ObjetivosVentas, error) {
	url := fmt.Sprintf("%s/sucursales/%d/objetivos", c.baseURL, sucursalID)

	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("consultando portal de vendedores: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portal de vendedores respondio %d", resp.StatusCode)
	}

	var objetivos ObjetivosVentas
	if err := json.NewDecoder(resp.Body).Decode(&objetivos); err != nil {
		return nil, fmt.Errorf("decodificando objetivos: %w", err)
	}
	return &objetivos, nil
}
