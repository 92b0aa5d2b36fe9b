package catalog

import "strings"

// DefaultVehicleID is the vehicle shown when a detail request names nothing
// the resolver recognizes.
const DefaultVehicleID = "BMW_X3_2023_BLU"

// DetailResult is a rendered vehicle sheet plus an optional image reference
// for transports that can attach media.
type DetailResult struct {
	Text     string
	ImageRef string
}

// detailRule maps a keyword to a vehicle ID. Rules are checked in order and
// the first match wins, so specific model names come before brands, and
// brands before superlatives and colors.
type detailRule struct {
	keyword string
	resolve func() string
}

func fixed(id string) func() string {
	return func() string { return id }
}

var detailRules = []detailRule{
	// Model names.
	{"x3", fixed("BMW_X3_2023_BLU")},
	{"serie 3", fixed("BMW_SERIE3_2023_BLU")},
	{"clase c", fixed("MERCEDES_CCLASS_2023_NEG")},
	{"c-class", fixed("MERCEDES_CCLASS_2023_NEG")},
	{"a4", fixed("AUDI_A4_2022_BLA")},
	{"tiguan", fixed("VW_TIGUAN_2022_ROJ")},
	{"león", fixed("SEAT_LEON_2023_BLU")},
	{"leon", fixed("SEAT_LEON_2023_BLU")},
	{"mustang", fixed("FORD_MUSTANG_2023_ROJ")},

	// Brands fall back to the flagship of each marque.
	{"bmw", fixed("BMW_X3_2023_BLU")},
	{"mercedes", fixed("MERCEDES_CCLASS_2023_NEG")},
	{"audi", fixed("AUDI_A4_2022_BLA")},
	{"volkswagen", fixed("VW_TIGUAN_2022_ROJ")},
	{"seat", fixed("SEAT_LEON_2023_BLU")},
	{"ford", fixed("FORD_MUSTANG_2023_ROJ")},

	// Price superlatives.
	{"más barato", cheapestID},
	{"mas barato", cheapestID},
	{"barato", cheapestID},
	{"económico", cheapestID},
	{"economico", cheapestID},
	{"más caro", mostExpensiveID},
	{"mas caro", mostExpensiveID},
	{"caro", mostExpensiveID},

	// Colors resolve to the first vehicle wearing them.
	{"azul", func() string { return firstWithColor("azul") }},
	{"rojo", func() string { return firstWithColor("rojo") }},
	{"negro", func() string { return firstWithColor("negro") }},
	{"blanco", func() string { return firstWithColor("blanco") }},
}

// ResolveReference maps a free-text detail request to a vehicle ID. Queries
// that match nothing resolve to DefaultVehicleID.
func ResolveReference(query string) string {
	if id, ok := ReferencedVehicle(query); ok {
		return id
	}
	return DefaultVehicleID
}

// ReferencedVehicle reports which vehicle a text names, if any. Callers that
// need to distinguish "named nothing" from the default use this directly.
func ReferencedVehicle(query string) (string, bool) {
	q := strings.ToLower(query)
	for _, r := range detailRules {
		if strings.Contains(q, r.keyword) {
			return r.resolve(), true
		}
	}
	return "", false
}

// Details resolves a query to a vehicle and renders its sheet.
func Details(query string) DetailResult {
	id := ResolveReference(query)
	v, ok := ByID(id)
	if !ok {
		return DetailResult{Text: "No pude encontrar ese vehículo en concreto. ¿Puedes decirme la marca o el modelo que te interesa? 🚗"}
	}
	return DetailResult{Text: renderSheet(v), ImageRef: v.ImageRef}
}
