// Package dealership holds the business facts of the AutoMax dealership and
// the canned conversation blocks built from them, plus the appointment book
// and financing calculators.
package dealership

// BusinessInfo is the dealership's static contact card.
type BusinessInfo struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	Website   string
	Latitude  float64
	Longitude float64
}

// Info is the single AutoMax location.
var Info = BusinessInfo{
	Name:      "AutoMax",
	Address:   "123 Avenida Principal, Ciudad, Estado 12345",
	Phone:     "(555) 123-4567",
	Email:     "info@automax.com",
	Website:   "www.automax.com",
	Latitude:  19.4326,
	Longitude: -99.1332,
}

type daySchedule struct {
	Day   string
	Hours string
}

// openingHours is ordered Monday through Sunday for rendering.
var openingHours = []daySchedule{
	{"Lunes", "9:00 - 18:00"},
	{"Martes", "9:00 - 18:00"},
	{"Miércoles", "9:00 - 18:00"},
	{"Jueves", "9:00 - 18:00"},
	{"Viernes", "9:00 - 18:00"},
	{"Sábado", "9:00 - 14:00"},
	{"Domingo", "Cerrado"},
}

// services is what the dealership offers beyond sales.
var services = []string{
	"Venta de vehículos nuevos y seminuevos",
	"Pruebas de manejo",
	"Financiamiento y leasing",
	"Tasación de tu coche actual",
	"Taller y mantenimiento",
}
