package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"mi-sucursal/config"
	"mi-sucursal/models"
)

func destinatarios() []string {
	var to []string
	for _, addr := range strings.Split(config.MailTo, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	return to
}

// NotificarConteoEnviado avisa por mail a los auditores cuando una
// sucursal envia un conteo a revision
func NotificarConteoEnviado(conteo *models.ConteoStock, sucursalNombre string) error {
	to := destinatarios()
	if config.SMTPHost == "" || len(to) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Conteo de stock enviado - %s", sucursalNombre)
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Conteo de stock enviado a revision</h3>
				<p>Sucursal: <strong>%s</strong></p>
				<p>Productos contados: <strong>%d de %d</strong></p>
				<p>Productos con diferencia: <strong>%d</strong></p>
				<p>Valorizacion de la diferencia: <strong>%.2f</strong></p>
				<p>Este correo se genera automaticamente, no responder.</p>
			</body>
		</html>
	`, sucursalNombre, conteo.ProductosContados, conteo.TotalProductos,
		conteo.ProductosConDiferencia, conteo.ValorizacionDiferencia)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
