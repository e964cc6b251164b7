package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"mi-sucursal/config"
	"mi-sucursal/controllers/idgen"
	"mi-sucursal/models"
	"mi-sucursal/services"
	"mi-sucursal/utils"
)

// resultado de un archivo procesado, para el resumen por mail
type resultadoArchivo struct {
	Archivo    string
	Importadas int
	Errores    int
}

func main() {
	config.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	idgen.Init()

	log.Println("Processor de ajustes corriendo sobre", config.CSVImportDir)

	resultados := procesarPendientes(db)
	if len(resultados) > 0 {
		if err := enviarResumen(resultados); err != nil {
			log.Println("No se pudo enviar el resumen por mail:", err)
		}
	}

	log.Printf("Listo: %d archivos procesados", len(resultados))
}

// procesarPendientes recorre la carpeta de importacion y procesa los
// CSV que no figuran en el log de archivos
func procesarPendientes(db *gorm.DB) []resultadoArchivo {
	files, err := filepath.Glob(filepath.Join(config.CSVImportDir, "*.csv"))
	if err != nil {
		log.Fatal("No se pudo leer la carpeta de importacion:", err)
	}

	var resultados []resultadoArchivo
	for _, file := range files {
		if r := procesarArchivo(db, file); r != nil {
			resultados = append(resultados, *r)
		}
	}
	return resultados
}

func procesarArchivo(db *gorm.DB, path string) *resultadoArchivo {
	nombre := filepath.Base(path)

	var existente models.FileLog
	if err := db.Where("filename = ?", nombre).First(&existente).Error; err == nil {
		log.Println("Archivo ya procesado, se saltea:", nombre)
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		log.Println("No se pudo leer el archivo:", err)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Println("No se pudo leer el archivo:", err)
		return nil
	}

	// El mes sale del nombre AJUSTES_YYYY-MM.csv; si no, el actual
	mes := mesDesdeNombre(nombre)

	var importadas, erroresFila int
	var importErr error

	// el prefijo del archivo decide el tipo de importacion
	switch {
	case strings.HasPrefix(nombre, "AJUSTES_"):
		importadas, erroresFila, importErr = importarAjustes(db, data, mes, nombre, info.ModTime())
	case strings.HasPrefix(nombre, "VENCIMIENTOS_"):
		importadas, erroresFila, importErr = importarVencimientos(db, data, mes, nombre, info.ModTime())
	case strings.HasPrefix(nombre, "RECONTACTOS_"):
		importadas, erroresFila, importErr = importarRecontactos(db, data, mes, nombre, info.ModTime())
	default:
		log.Println("Archivo no reconocido, se saltea:", nombre)
		return nil
	}
	if importErr != nil {
		log.Println("Fallo la importacion de", nombre, ":", importErr)
		return nil
	}

	log.Printf("Procesado %s: %d filas importadas, %d con error", nombre, importadas, erroresFila)

	moverProcesado(path)

	return &resultadoArchivo{Archivo: nombre, Importadas: importadas, Errores: erroresFila}
}

func importarAjustes(db *gorm.DB, data []byte, mes, nombre string, modificado time.Time) (int, int, error) {
	loteID := idgen.GenerateID()
	filas, errores := services.ParseAjustesCSV(data, mes, loteID)

	importadas := 0
	err := db.Transaction(func(tx *gorm.DB) error {
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
		return tx.Create(&models.FileLog{Filename: nombre, DateModified: modificado}).Error
	})
	return importadas, len(errores), err
}

func importarVencimientos(db *gorm.DB, data []byte, mes, nombre string, modificado time.Time) (int, int, error) {
	productos, errores := services.ParseVencimientosCSV(data, mes)

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(productos) > 0 {
			if err := tx.Create(&productos).Error; err != nil {
				return err
			}
		}
		return tx.Create(&models.FileLog{Filename: nombre, DateModified: modificado}).Error
	})
	return len(productos), len(errores), err
}

func importarRecontactos(db *gorm.DB, data []byte, mes, nombre string, modificado time.Time) (int, int, error) {
	clientes, errores := services.ParseRecontactosCSV(data, mes)
	hoy := time.Now()

	importadas := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, cliente := range clientes {
			if cliente.UltimaCompra != nil {
				dias := int(hoy.Sub(*cliente.UltimaCompra).Hours() / 24)
				cliente.DiasSinComprar = &dias
			}

			var existente models.ClienteRecontacto
			err := tx.Where("cliente_nombre = ?", cliente.ClienteNombre).First(&existente).Error
			if err == nil {
				existente.UltimaCompra = cliente.UltimaCompra
				existente.DiasSinComprar = cliente.DiasSinComprar
				existente.MontoUltimaCompra = cliente.MontoUltimaCompra
				existente.MesImportacion = mes
				if err := tx.Save(&existente).Error; err != nil {
					return err
				}
				importadas++
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return err
			}
			if err := tx.Create(&cliente).Error; err != nil {
				return err
			}
			importadas++
		}
		return tx.Create(&models.FileLog{Filename: nombre, DateModified: modificado}).Error
	})
	return importadas, len(errores), err
}

func mesDesdeNombre(nombre string) string {
	base := strings.TrimSuffix(nombre, filepath.Ext(nombre))
	if idx := strings.LastIndex(base, "_"); idx >= 0 {
		candidato := base[idx+1:]
		if _, err := time.Parse("2006-01", candidato); err == nil {
			return candidato
		}
	}
	return utils.PeriodoActual(time.Now())
}

// moverProcesado deja el archivo en la carpeta hermana "processed"
func moverProcesado(path string) {
	destDir := filepath.Join(filepath.Dir(config.CSVImportDir), "processed")
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		log.Println("No se pudo crear la carpeta processed:", err)
		return
	}
	dest := filepath.Join(destDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		log.Println("No se pudo mover el archivo procesado:", err)
	}
}

func enviarResumen(resultados []resultadoArchivo) error {
	if config.SMTPHost == "" || config.MailTo == "" {
		return nil
	}

	var to []string
	for _, addr := range strings.Split(config.MailTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	if len(to) == 0 {
		return nil
	}

	var filas strings.Builder
	for _, r := range resultados {
		filas.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d</td><td>%d</td></tr>", r.Archivo, r.Importadas, r.Errores))
	}

	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Importacion de ajustes de stock</h3>
				<table border="1" cellpadding="4">
					<tr><th>Archivo</th><th>Importadas</th><th>Errores</th></tr>
					%s
				</table>
				<p>Este correo se genera automaticamente, no responder.</p>
			</body>
		</html>
	`, filas.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", "Importacion de ajustes "+time.Now().Format("2006-01-02"))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
