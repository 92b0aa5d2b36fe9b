// Package catalog holds the simulated AutoMax inventory together with the
// deterministic search and detail-sheet logic that answers inventory
// questions without touching the completion model.
package catalog

import (
	"strings"

	"automaxbot/internal/model"
)

// The inventory is fixed at build time and never mutated. Identifiers are
// the canonical key shared by the filter engine and the detail resolver.
var vehicles = []model.Vehicle{
	{
		ID:           "BMW_X3_2023_BLU",
		Brand:        "BMW",
		Model:        "X3",
		Year:         2023,
		PriceEUR:     45000,
		Color:        "azul",
		Body:         model.BodySUV,
		Fuel:         model.FuelGasoline,
		Engine:       "2.0L Turbo 4 cilindros",
		Transmission: "automática de 8 velocidades",
		Power:        "252 CV",
		Drivetrain:   "xDrive (integral)",
		MileageKM:    9500,
		LengthMM:     4708,
		WidthMM:      1891,
		HeightMM:     1676,
		TrunkLiters:  550,
		Features: []string{
			"Techo panorámico",
			"BMW Live Cockpit Professional",
			"Asientos de cuero Vernasca",
			"Apple CarPlay y Android Auto",
			"Asistente de aparcamiento",
			"Faros LED adaptativos",
		},
		ImageRef: "images/bmw-x3-azul.jpg",
	},
	{
		ID:           "MERCEDES_CCLASS_2023_NEG",
		Brand:        "Mercedes-Benz",
		Model:        "Clase C",
		Year:         2023,
		PriceEUR:     42000,
		Color:        "negro",
		Body:         model.BodySedan,
		Fuel:         model.FuelGasoline,
		Engine:       "2.0L Turbo",
		Transmission: "automática 9G-TRONIC",
		Power:        "204 CV",
		MileageKM:    12000,
		LengthMM:     4751,
		WidthMM:      1820,
		HeightMM:     1438,
		TrunkLiters:  455,
		Features: []string{
			"MBUX con pantalla de 11.9\"",
			"Asientos calefactables",
			"Cámara de 360 grados",
			"Acceso sin llave KEYLESS-GO",
			"Paquete de iluminación ambiental",
		},
		ImageRef: "images/mercedes-clase-c-negro.jpg",
	},
	{
		ID:           "AUDI_A4_2022_BLA",
		Brand:        "Audi",
		Model:        "A4",
		Year:         2022,
		PriceEUR:     38000,
		Color:        "blanco",
		Body:         model.BodySedan,
		Fuel:         model.FuelGasoline,
		Engine:       "2.0 TFSI",
		Transmission: "S tronic de 7 velocidades",
		Power:        "190 CV",
		Drivetrain:   "quattro (integral)",
		MileageKM:    18500,
		LengthMM:     4762,
		WidthMM:      1847,
		HeightMM:     1428,
		TrunkLiters:  460,
		Features: []string{
			"Audi virtual cockpit",
			"MMI Navegación plus",
			"Sonido Bang & Olufsen",
			"Audi pre sense city",
			"Llantas de aleación de 18\"",
		},
		ImageRef: "images/audi-a4-blanco.jpg",
	},
	{
		ID:           "BMW_SERIE3_2023_BLU",
		Brand:        "BMW",
		Model:        "Serie 3",
		Year:         2023,
		PriceEUR:     40000,
		Color:        "azul",
		Body:         model.BodySedan,
		Fuel:         model.FuelGasoline,
		Engine:       "2.0L Turbo",
		Transmission: "automática de 8 velocidades",
		Power:        "184 CV",
		MileageKM:    7800,
		LengthMM:     4709,
		WidthMM:      1827,
		HeightMM:     1442,
		TrunkLiters:  480,
		Features: []string{
			"BMW Live Cockpit Plus",
			"Volante deportivo de cuero",
			"Sensores de aparcamiento delanteros y traseros",
			"Climatizador de 3 zonas",
			"Apple CarPlay y Android Auto",
		},
		ImageRef: "images/bmw-serie3-azul.jpg",
	},
	{
		ID:           "VW_TIGUAN_2022_ROJ",
		Brand:        "Volkswagen",
		Model:        "Tiguan",
		Year:         2022,
		PriceEUR:     32000,
		Color:        "rojo",
		Body:         model.BodySUV,
		Fuel:         model.FuelGasoline,
		Engine:       "1.5 TSI",
		Transmission: "DSG de 7 velocidades",
		Power:        "150 CV",
		MileageKM:    21000,
		LengthMM:     4509,
		WidthMM:      1839,
		HeightMM:     1673,
		TrunkLiters:  615,
		Features: []string{
			"Digital Cockpit Pro",
			"Portón trasero eléctrico",
			"Asistente de mantenimiento de carril",
			"App-Connect inalámbrico",
			"Barras de techo",
		},
		ImageRef: "images/vw-tiguan-rojo.jpg",
	},
	{
		ID:           "SEAT_LEON_2023_BLU",
		Brand:        "SEAT",
		Model:        "León",
		Year:         2023,
		PriceEUR:     25000,
		Color:        "azul",
		Body:         model.BodyHatchback,
		Fuel:         model.FuelGasoline,
		Engine:       "1.5 TSI",
		Transmission: "manual de 6 velocidades",
		Power:        "130 CV",
		MileageKM:    5600,
		LengthMM:     4368,
		WidthMM:      1800,
		HeightMM:     1456,
		TrunkLiters:  380,
		Features: []string{
			"SEAT Digital Cockpit",
			"Full Link (CarPlay / Android Auto)",
			"Sensor de lluvia y luces",
			"Control de crucero adaptativo",
			"Iluminación ambiental envolvente",
		},
		ImageRef: "images/seat-leon-azul.jpg",
	},
	{
		ID:           "FORD_MUSTANG_2023_ROJ",
		Brand:        "Ford",
		Model:        "Mustang",
		Year:         2023,
		PriceEUR:     55000,
		Color:        "rojo",
		Body:         model.BodySports,
		Fuel:         model.FuelGasoline,
		Engine:       "5.0L V8",
		Transmission: "manual de 6 velocidades",
		Power:        "450 CV",
		Drivetrain:   "propulsión trasera",
		MileageKM:    3200,
		LengthMM:     4788,
		WidthMM:      1916,
		HeightMM:     1381,
		TrunkLiters:  408,
		Features: []string{
			"Modos de conducción seleccionables",
			"Escape activo con válvulas",
			"Asientos deportivos Recaro",
			"SYNC 3 con pantalla táctil",
			"Frenos Brembo de 6 pistones",
		},
		ImageRef: "images/ford-mustang-rojo.jpg",
	},
}

// Vehicles returns a copy of the full inventory.
func Vehicles() []model.Vehicle {
	out := make([]model.Vehicle, len(vehicles))
	copy(out, vehicles)
	return out
}

func ByID(id string) (model.Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vehicle{}, false
}

func cheapestID() string {
	best := vehicles[0]
	for _, v := range vehicles[1:] {
		if v.PriceEUR < best.PriceEUR {
			best = v
		}
	}
	return best.ID
}

func mostExpensiveID() string {
	best := vehicles[0]
	for _, v := range vehicles[1:] {
		if v.PriceEUR > best.PriceEUR {
			best = v
		}
	}
	return best.ID
}

// firstWithColor returns the first catalog entry whose color contains the
// given descriptor, or the default identifier when none does.
func firstWithColor(color string) string {
	for _, v := range vehicles {
		if strings.Contains(strings.ToLower(v.Color), color) {
			return v.ID
		}
	}
	return DefaultVehicleID
}
