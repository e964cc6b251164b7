package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"mi-sucursal/models"
	"mi-sucursal/utils"
)

// DetectarDelimitador mira la primera linea y elige entre punto y
// coma, coma y tab segun cual aparezca mas
func DetectarDelimitador(primeraLinea string) rune {
	candidatos := []rune{';', ',', '\t'}
	mejor := ';'
	max := 0
	for _, c := range candidatos {
		if n := strings.Count(primeraLinea, string(c)); n > max {
			max = n
			mejor = c
		}
	}
	return mejor
}

// decodificarLatin1 convierte byte a byte; en latin-1 cada byte es el
// code point directo
func decodificarLatin1(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// NormalizarContenido asegura UTF-8: los exports del sistema central
// llegan a veces en latin-1
func NormalizarContenido(data []byte) string {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data)
	}
	return decodificarLatin1(data)
}

// csvRows normaliza, sniffea el delimitador y devuelve las filas sin
// el encabezado, con errores por linea
func csvRows(data []byte) ([][]string, []string) {
	contenido := NormalizarContenido(data)
	lineas := strings.SplitN(contenido, "\n", 2)
	delimitador := DetectarDelimitador(lineas[0])

	reader := csv.NewReader(strings.NewReader(contenido))
	reader.Comma = delimitador
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var filas [][]string
	var errores []string
	numLinea := 0
	for {
		registro, err := reader.Read()
		if err == io.EOF {
			break
		}
		numLinea++
		if err != nil {
			errores = append(errores, fmt.Sprintf("linea %d: %v", numLinea, err))
			continue
		}
		if numLinea == 1 {
			continue
		}
		filas = append(filas, registro)
	}
	return filas, errores
}

// ParseVencimientosCSV lee el CSV mensual de productos por vencer.
// Columnas: producto;cod_item;cantidad;lote;fecha_vencimiento.
func ParseVencimientosCSV(data []byte, mesImportacion string) ([]models.ProductoVencimiento, []string) {
	filas, errores := csvRows(data)

	var productos []models.ProductoVencimiento
	for i, registro := range filas {
		linea := i + 2
		if len(registro) < 5 {
			errores = append(errores, fmt.Sprintf("linea %d: faltan columnas", linea))
			continue
		}

		fecha, err := utils.ParseFechaEspanol(registro[4])
		if err != nil {
			errores = append(errores, fmt.Sprintf("linea %d: %v", linea, err))
			continue
		}
		cantidad, err := utils.ParseNumeroEspanol(registro[2])
		if err != nil || cantidad <= 0 {
			errores = append(errores, fmt.Sprintf("linea %d: cantidad invalida '%s'", linea, registro[2]))
			continue
		}

		productos = append(productos, models.ProductoVencimiento{
			Producto:         strings.TrimSpace(registro[0]),
			CodItem:          strings.TrimSpace(registro[1]),
			Cantidad:         int(cantidad),
			Lote:             strings.TrimSpace(registro[3]),
			FechaVencimiento: fecha,
			Estado:           models.VencimientoProximo,
			Importado:        true,
			MesImportacion:   mesImportacion,
		})
	}
	return productos, errores
}

// ParseRecontactosCSV lee el listado mensual de clientes sin compras.
// Columnas: codigo;nombre;telefono;email;mascota;tipo_mascota;
// ultima_compra;monto_ultima_compra.
func ParseRecontactosCSV(data []byte, mesImportacion string) ([]models.ClienteRecontacto, []string) {
	filas, errores := csvRows(data)

	var clientes []models.ClienteRecontacto
	for i, registro := range filas {
		linea := i + 2
		if len(registro) < 4 {
			errores = append(errores, fmt.Sprintf("linea %d: faltan columnas", linea))
			continue
		}
		nombre := strings.TrimSpace(registro[1])
		if nombre == "" {
			errores = append(errores, fmt.Sprintf("linea %d: cliente sin nombre", linea))
			continue
		}

		cliente := models.ClienteRecontacto{
			ClienteCodigo:   strings.TrimSpace(registro[0]),
			ClienteNombre:   nombre,
			ClienteTelefono: strings.TrimSpace(registro[2]),
			ClienteEmail:    strings.TrimSpace(registro[3]),
			Estado:          models.RecontactoPendiente,
			Importado:       true,
			MesImportacion:  mesImportacion,
		}
		if len(registro) > 4 {
			cliente.MascotaNombre = strings.TrimSpace(registro[4])
		}
		if len(registro) > 5 {
			cliente.MascotaTipo = strings.TrimSpace(registro[5])
		}
		if len(registro) > 6 {
			if ultima, err := utils.ParseFechaEspanol(registro[6]); err == nil {
				cliente.UltimaCompra = &ultima
			}
		}
		if len(registro) > 7 {
			cliente.MontoUltimaCompra = strings.TrimSpace(registro[7])
		}

		clientes = append(clientes, cliente)
	}
	return clientes, errores
}

// FilaAjuste es una fila ya parseada del CSV de ajustes
type FilaAjuste struct {
	Ajuste   models.AjusteStock
	Deposito string
}

// ParseAjustesCSV lee el CSV completo de ajustes de stock. Devuelve
// las filas validas y los errores por fila; una fila rota no corta la
// importacion.
func ParseAjustesCSV(data []byte, mesImportacion string, loteID int64) ([]FilaAjuste, []string) {
	contenido := NormalizarContenido(data)
	lineas := strings.SplitN(contenido, "\n", 2)
	delimitador := DetectarDelimitador(lineas[0])

	reader := csv.NewReader(strings.NewReader(contenido))
	reader.Comma = delimitador
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var filas []FilaAjuste
	var errores []string
	numLinea := 0

	for {
		registro, err := reader.Read()
		if err == io.EOF {
			break
		}
		numLinea++
		if err != nil {
			errores = append(errores, fmt.Sprintf("linea %d: %v", numLinea, err))
			continue
		}
		if numLinea == 1 {
			// encabezado
			continue
		}
		if len(registro) < 6 {
			errores = append(errores, fmt.Sprintf("linea %d: faltan columnas", numLinea))
			continue
		}

		// columnas: fecha;deposito;cod_item;producto;cantidad;tipo;personal;costo
		fecha, err := utils.ParseFechaEspanol(registro[0])
		if err != nil {
			errores = append(errores, fmt.Sprintf("linea %d: %v", numLinea, err))
			continue
		}

		cantidad, err := utils.ParseNumeroEspanol(registro[4])
		if err != nil {
			errores = append(errores, fmt.Sprintf("linea %d: cantidad invalida '%s'", numLinea, registro[4]))
			continue
		}

		personal := ""
		if len(registro) > 6 {
			personal = strings.TrimSpace(registro[6])
		}
		costo := ""
		if len(registro) > 7 {
			costo = strings.TrimSpace(registro[7])
		}

		filas = append(filas, FilaAjuste{
			Deposito: utils.NormalizeDeposito(registro[1]),
			Ajuste: models.AjusteStock{
				Fecha:           fecha,
				CodItem:         strings.TrimSpace(registro[2]),
				Producto:        strings.TrimSpace(registro[3]),
				Cantidad:        int(cantidad),
				TipoMovimiento:  strings.ToUpper(utils.SimplifyTipoMovimiento(registro[5])),
				Personal:        personal,
				Costo:           costo,
				LoteImportacion: loteID,
				MesImportacion:  mesImportacion,
			},
		})
	}

	return filas, errores
}
