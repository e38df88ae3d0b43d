package email

import "context"

// Sender define la interfaz para el envio del resumen de perfil al cliente.
// Un sender ausente (nil) significa que la notificacion esta deshabilitada.
type Sender interface {
	SendProfileSummary(ctx context.Context, toEmail, clientName, profileName string, confidence float64) error
}
