package intent

import (
	"context"
	"strings"

	"automaxbot/internal/model"
)

// KeywordClassifier matches the lowercased message against fixed keyword
// sets. Sets are checked in a fixed order so overlapping vocabulary resolves
// the same way every time: search beats detail beats appointment beats
// company info.
type KeywordClassifier struct{}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

var keywordRules = []struct {
	intent   Intent
	keywords []string
}{
	{SearchInventory, []string{
		"busco", "buscar", "coche", "coches", "auto", "autos",
		"carro", "carros", "vehículo", "vehículos", "vehiculo", "vehiculos",
		"inventario", "disponible", "disponibles", "catálogo", "catalogo",
		"qué tienen", "que tienen",
		// Naming a color or body type alone is an inventory query too.
		"color", "azul", "rojo", "negro", "blanco",
		"suv", "todoterreno", "sedán", "sedan", "hatchback", "compacto", "deportivo",
	}},
	{VehicleDetails, []string{
		"más información", "mas información", "más informacion", "mas informacion",
		"detalle", "detalles", "ficha", "especificaciones",
		"cuéntame", "cuentame", "dime más", "dime mas",
	}},
	// Test-drive wording on its own ("probar", "conducir") is not an
	// appointment request: it usually follows a vehicle sheet and the
	// composer already offers the booking flow there.
	{ScheduleAppointment, []string{
		"cita", "citas", "agendar", "agenda", "reservar", "reserva", "visita",
	}},
	{CompanyInfo, []string{
		"horario", "horarios", "dirección", "direccion",
		"ubicación", "ubicacion", "dónde están", "donde están", "donde estan",
		"teléfono", "telefono", "contacto", "correo", "email",
	}},
}

func (c *KeywordClassifier) Classify(_ context.Context, _ []model.ChatMessage, message string) Intent {
	q := strings.ToLower(message)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.intent
			}
		}
	}
	return GeneralChat
}
