package catalog

import (
	"fmt"
	"strings"

	"automaxbot/internal/model"
)

// formatPrice renders a currency-tagged integer as "€45,000".
func formatPrice(eur int) string {
	return "€" + groupDigits(eur, ",")
}

// formatMileage renders kilometers the Spanish way: "9.500 km".
func formatMileage(km int) string {
	return groupDigits(km, ".") + " km"
}

func groupDigits(n int, sep string) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// renderSheet produces the fixed-layout detail sheet: header data, technical
// block, dimensions block, numbered equipment list, warranty and a call to
// action.
func renderSheet(v model.Vehicle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚗 *%s %s (%d)*\n\n", v.Brand, v.Model, v.Year)
	fmt.Fprintf(&b, "Precio: %s\n", formatPrice(v.PriceEUR))
	fmt.Fprintf(&b, "Color: %s\n", v.Color)
	fmt.Fprintf(&b, "Kilometraje: %s\n", formatMileage(v.MileageKM))
	fmt.Fprintf(&b, "Carrocería: %s\n\n", v.Body)

	b.WriteString("*Especificaciones técnicas*\n")
	fmt.Fprintf(&b, "• Motor: %s\n", v.Engine)
	fmt.Fprintf(&b, "• Potencia: %s\n", v.Power)
	fmt.Fprintf(&b, "• Transmisión: %s\n", v.Transmission)
	fmt.Fprintf(&b, "• Combustible: %s\n", v.Fuel)
	if v.Drivetrain != "" {
		fmt.Fprintf(&b, "• Tracción: %s\n", v.Drivetrain)
	}
	b.WriteString("\n*Dimensiones*\n")
	fmt.Fprintf(&b, "• Largo: %s mm\n", groupDigits(v.LengthMM, "."))
	fmt.Fprintf(&b, "• Ancho: %s mm\n", groupDigits(v.WidthMM, "."))
	fmt.Fprintf(&b, "• Alto: %s mm\n", groupDigits(v.HeightMM, "."))
	fmt.Fprintf(&b, "• Maletero: %d L\n", v.TrunkLiters)

	b.WriteString("\n*Equipamiento*\n")
	for i, f := range v.Features {
		fmt.Fprintf(&b, "%d. %s\n", i+1, f)
	}

	b.WriteString("\nGarantía: 2 años del fabricante + 1 año adicional AutoMax.\n\n")
	b.WriteString("¿Quieres agendar una prueba de manejo? 📅")
	return b.String()
}
