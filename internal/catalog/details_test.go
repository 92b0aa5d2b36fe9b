package catalog

import (
	"strings"
	"testing"
)

func TestResolveReference(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"model name", "más información del x3", "BMW_X3_2023_BLU"},
		{"brand only", "cuéntame más del mercedes", "MERCEDES_CCLASS_2023_NEG"},
		{"model beats brand", "el serie 3 de bmw", "BMW_SERIE3_2023_BLU"},
		{"cheapest", "detalles del más barato", "SEAT_LEON_2023_BLU"},
		{"most expensive", "ficha del más caro", "FORD_MUSTANG_2023_ROJ"},
		{"color", "más información del rojo", "VW_TIGUAN_2022_ROJ"},
		{"nothing recognizable", "más información por favor", DefaultVehicleID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveReference(tt.query); got != tt.want {
				t.Errorf("ResolveReference(%q) = %s, want %s", tt.query, got, tt.want)
			}
		})
	}
}

func TestReferencedVehicle(t *testing.T) {
	if id, ok := ReferencedVehicle("financiamiento del tiguan"); !ok || id != "VW_TIGUAN_2022_ROJ" {
		t.Errorf("ReferencedVehicle = (%q, %v), want the Tiguan", id, ok)
	}
	if id, ok := ReferencedVehicle("¿qué opciones tienen?"); ok {
		t.Errorf("ReferencedVehicle on a generic question = (%q, %v), want no match", id, ok)
	}
}

func TestResolveReferenceIsDeterministic(t *testing.T) {
	// Conflicting keywords resolve by rule order, the same way every time.
	query := "el bmw rojo más barato"
	first := ResolveReference(query)
	for i := 0; i < 10; i++ {
		if got := ResolveReference(query); got != first {
			t.Fatalf("resolution changed between calls: %s vs %s", first, got)
		}
	}
	if first != "BMW_X3_2023_BLU" {
		t.Errorf("brand rule should win over color and price: got %s", first)
	}
}

func TestDetailsSheetLayout(t *testing.T) {
	res := Details("quiero más información del BMW X3")
	for _, want := range []string{
		"🚗 *BMW X3 (2023)*",
		"Precio: €45,000",
		"Color: azul",
		"Kilometraje: 9.500 km",
		"Tracción: xDrive (integral)",
		"*Especificaciones técnicas*",
		"*Dimensiones*",
		"*Equipamiento*",
		"Garantía",
		"prueba de manejo",
	} {
		if !strings.Contains(res.Text, want) {
			t.Errorf("sheet missing %q:\n%s", want, res.Text)
		}
	}
	if res.ImageRef == "" {
		t.Error("expected an image reference for the X3")
	}
}

func TestDetailsOmitsEmptyDrivetrain(t *testing.T) {
	res := Details("ficha del clase c")
	if strings.Contains(res.Text, "Tracción") {
		t.Errorf("sheet should omit the drivetrain line when unset:\n%s", res.Text)
	}
}

func TestDetailsDefaultVehicle(t *testing.T) {
	res := Details("dame detalles")
	if !strings.Contains(res.Text, "BMW X3") {
		t.Errorf("unrecognized query should show the default vehicle:\n%s", res.Text)
	}
}
