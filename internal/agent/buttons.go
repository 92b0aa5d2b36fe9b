package agent

import "automaxbot/internal/model"

// welcomeButtons are the quick-reply choices attached to the welcome
// message; their taps round-trip through buttonUtterances below.
var welcomeButtons = []model.ReplyButton{
	{ID: "search_cars", Title: "🔍 Buscar coches"},
	{ID: "schedule_test", Title: "📅 Agendar cita"},
	{ID: "contact_info", Title: "📞 Contacto"},
}

// buttonUtterances maps interactive button IDs to the text the user would
// have typed, so button taps flow through the same classification as text.
var buttonUtterances = map[string]string{
	"search_cars":       "Busco un coche",
	"contact_info":      "¿Cuál es vuestro horario y dirección?",
	"see_details":       "Más información del vehículo",
	"compare_cars":      "Quiero comparar coches",
	"schedule_test":     "Quiero agendar una cita",
	"test_drive":        "Quiero agendar una cita para una prueba de manejo",
	"consultation":      "Quiero agendar una cita para una consulta",
	"inspection":        "Quiero agendar una cita para una inspección",
	"financing_options": "Quiero ver las opciones de financiamiento",
	"car_type_suv":      "Busco un SUV",
	"car_type_sedan":    "Busco un sedán",
	"car_type_sport":    "Busco un deportivo",
}

// UtteranceForButton converts a tapped button into plain text. Unknown
// button IDs fall back to the button title.
func UtteranceForButton(id, title string) string {
	if u, ok := buttonUtterances[id]; ok {
		return u
	}
	return title
}

// UtteranceForListSelection prefixes a list pick so the classifier sees a
// statement of interest rather than a bare vehicle name.
func UtteranceForListSelection(title string) string {
	return "Me interesa: " + title
}
