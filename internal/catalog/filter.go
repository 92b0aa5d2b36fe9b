package catalog

import (
	"fmt"
	"sort"
	"strings"

	"automaxbot/internal/model"
)

// listLimit caps how many entries the listing spells out; the remainder is
// summarized in one line.
const listLimit = 3

// AppliedFilter records one filter pass that actually narrowed (or, for the
// price pass, reordered) the candidate set. The trace lives for a single
// request and feeds the empty-result explanation.
type AppliedFilter struct {
	Dimension string
	Value     string
}

type SearchResult struct {
	Text    string
	Matches []model.Vehicle
	Applied []AppliedFilter
}

var fuelKeywords = []struct {
	keyword string
	fuel    model.FuelType
}{
	{"eléctrico", model.FuelElectric},
	{"electrico", model.FuelElectric},
	{"electric", model.FuelElectric},
	{"híbrido", model.FuelHybrid},
	{"hibrido", model.FuelHybrid},
	{"diésel", model.FuelDiesel},
	{"diesel", model.FuelDiesel},
	{"gasolina", model.FuelGasoline},
}

var colorKeywords = []string{"azul", "rojo", "negro", "blanco"}

var bodyKeywords = []struct {
	keyword string
	body    model.BodyType
}{
	{"suv", model.BodySUV},
	{"todoterreno", model.BodySUV},
	{"sedán", model.BodySedan},
	{"sedan", model.BodySedan},
	{"hatchback", model.BodyHatchback},
	{"compacto", model.BodyHatchback},
	{"deportivo", model.BodySports},
}

var brandKeywords = []struct {
	keyword string
	brand   string
}{
	{"bmw", "BMW"},
	{"mercedes", "Mercedes-Benz"},
	{"audi", "Audi"},
	{"volkswagen", "Volkswagen"},
	{"seat", "SEAT"},
	{"ford", "Ford"},
}

var cheapKeywords = []string{"más barato", "mas barato", "barato", "económico", "economico"}
var expensiveKeywords = []string{"más caro", "mas caro", "caro", "de lujo"}

// Search runs the fixed filter sequence (fuel, price ordering, color, body
// type, brand) over the catalog and renders the result. Each pass applies
// only when one of its keywords appears in the utterance and the pass
// actually changes the candidate count; passes always operate on the set
// already narrowed by earlier passes.
func Search(query string) SearchResult {
	q := strings.ToLower(query)
	current := Vehicles()
	var applied []AppliedFilter

	// Fuel is special-cased: asking for a fuel type we simply do not stock
	// deserves a precise answer, not the generic empty message.
	for _, f := range fuelKeywords {
		if !strings.Contains(q, f.keyword) {
			continue
		}
		narrowed := keep(current, func(v model.Vehicle) bool { return v.Fuel == f.fuel })
		if len(narrowed) == 0 {
			return SearchResult{
				Text:    fmt.Sprintf("Lo sentimos, por ahora no tenemos vehículos de tipo %s en nuestro inventario. 🚗 ¿Quieres ver nuestros modelos de gasolina?", f.keyword),
				Applied: []AppliedFilter{{Dimension: "combustible", Value: f.keyword}},
			}
		}
		if len(narrowed) != len(current) {
			current = narrowed
			applied = append(applied, AppliedFilter{Dimension: "combustible", Value: f.keyword})
		}
		break
	}

	// Price pass reorders instead of narrowing; the listing heading reflects
	// the requested direction.
	if kw, ok := firstKeyword(q, cheapKeywords); ok {
		current = sortByPrice(current, false)
		applied = append(applied, AppliedFilter{Dimension: "precio", Value: kw})
	} else if kw, ok := firstKeyword(q, expensiveKeywords); ok {
		current = sortByPrice(current, true)
		applied = append(applied, AppliedFilter{Dimension: "precio", Value: kw})
	}

	for _, color := range colorKeywords {
		if strings.Contains(q, color) {
			c := color
			current, applied = applyPass(current, applied, "color", c, func(v model.Vehicle) bool {
				return strings.Contains(strings.ToLower(v.Color), c)
			})
			break
		}
	}

	for _, b := range bodyKeywords {
		if strings.Contains(q, b.keyword) {
			body := b.body
			current, applied = applyPass(current, applied, "carrocería", b.keyword, func(v model.Vehicle) bool {
				return v.Body == body
			})
			break
		}
	}

	for _, b := range brandKeywords {
		if strings.Contains(q, b.keyword) {
			brand := b.brand
			current, applied = applyPass(current, applied, "marca", b.keyword, func(v model.Vehicle) bool {
				return v.Brand == brand
			})
			break
		}
	}

	if len(current) == 0 {
		if len(applied) > 0 {
			return SearchResult{Text: renderEmptyWithFilters(applied), Applied: applied}
		}
		return SearchResult{
			Text: "No encontré vehículos exactos con esas características, pero tengo otras opciones que podrían interesarte. ¿Quieres que te muestre nuestro inventario completo?",
		}
	}

	return SearchResult{Text: renderListing(current, applied), Matches: current, Applied: applied}
}

func keep(in []model.Vehicle, pred func(model.Vehicle) bool) []model.Vehicle {
	var out []model.Vehicle
	for _, v := range in {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// applyPass narrows the candidate set and records the pass in the trace,
// but only when the result actually differs from the input.
func applyPass(current []model.Vehicle, applied []AppliedFilter, dimension, value string, pred func(model.Vehicle) bool) ([]model.Vehicle, []AppliedFilter) {
	narrowed := keep(current, pred)
	if len(narrowed) == len(current) {
		return current, applied
	}
	return narrowed, append(applied, AppliedFilter{Dimension: dimension, Value: value})
}

func firstKeyword(q string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return kw, true
		}
	}
	return "", false
}

func sortByPrice(in []model.Vehicle, descending bool) []model.Vehicle {
	out := make([]model.Vehicle, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].PriceEUR > out[j].PriceEUR
		}
		return out[i].PriceEUR < out[j].PriceEUR
	})
	return out
}

func renderEmptyWithFilters(applied []AppliedFilter) string {
	parts := make([]string, 0, len(applied))
	for _, f := range applied {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Dimension, f.Value))
	}
	return fmt.Sprintf("No encontré vehículos que cumplan todos los criterios (%s). ¿Quieres ver el inventario completo? 🚗", strings.Join(parts, ", "))
}

func renderListing(matches []model.Vehicle, applied []AppliedFilter) string {
	var b strings.Builder
	b.WriteString("🚗 Vehículos encontrados")
	for _, f := range applied {
		if f.Dimension == "precio" {
			b.WriteString(fmt.Sprintf(" (ordenados por precio: %s primero)", f.Value))
			break
		}
	}
	b.WriteString(":\n\n")

	shown := matches
	if len(shown) > listLimit {
		shown = shown[:listLimit]
	}
	for i, v := range shown {
		b.WriteString(fmt.Sprintf("%d. %s %s (%d)\n", i+1, v.Brand, v.Model, v.Year))
		b.WriteString(fmt.Sprintf("   Precio: %s | Color: %s\n", formatPrice(v.PriceEUR), v.Color))
		b.WriteString(fmt.Sprintf("   Motor: %s | %s\n\n", v.Engine, formatMileage(v.MileageKM)))
	}
	if extra := len(matches) - len(shown); extra > 0 {
		b.WriteString(fmt.Sprintf("... y %d vehículos más disponibles.\n\n", extra))
	}
	b.WriteString("¿Te interesa alguno? ¿Quieres que programemos una prueba de manejo? 📅")
	return b.String()
}
