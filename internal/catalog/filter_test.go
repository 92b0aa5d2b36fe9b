package catalog

import (
	"strings"
	"testing"
)

func TestSearchByBrand(t *testing.T) {
	res := Search("busco un bmw")
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 BMWs, got %d", len(res.Matches))
	}
	for _, v := range res.Matches {
		if v.Brand != "BMW" {
			t.Errorf("unexpected brand %q in results", v.Brand)
		}
	}
	if len(res.Applied) != 1 || res.Applied[0].Dimension != "marca" {
		t.Errorf("applied filters = %+v, want single brand filter", res.Applied)
	}
}

func TestSearchUnstockedFuelShortCircuits(t *testing.T) {
	res := Search("¿tienen coches eléctricos?")
	if len(res.Matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(res.Matches))
	}
	if !strings.Contains(res.Text, "no tenemos vehículos de tipo eléctrico") {
		t.Errorf("unexpected empty-fuel message: %q", res.Text)
	}
	if len(res.Applied) != 1 || res.Applied[0].Dimension != "combustible" {
		t.Errorf("applied filters = %+v, want single fuel filter", res.Applied)
	}
}

func TestSearchByColor(t *testing.T) {
	res := Search("quiero un coche azul")
	if len(res.Matches) != 3 {
		t.Fatalf("expected 3 blue vehicles, got %d", len(res.Matches))
	}
	if res.Applied[0].Value != "azul" {
		t.Errorf("applied filters = %+v", res.Applied)
	}
	if !strings.Contains(res.Text, "BMW X3") {
		t.Errorf("listing should include the BMW X3: %q", res.Text)
	}
}

func TestSearchCombinesFilters(t *testing.T) {
	res := Search("busco un bmw azul")
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 blue BMWs, got %d", len(res.Matches))
	}
	if len(res.Applied) != 2 {
		t.Fatalf("applied filters = %+v, want color then brand", res.Applied)
	}
	if res.Applied[0].Dimension != "color" || res.Applied[1].Dimension != "marca" {
		t.Errorf("filters applied out of order: %+v", res.Applied)
	}
}

func TestSearchImpossibleCombinationNamesFilters(t *testing.T) {
	res := Search("busco un ford azul")
	if len(res.Matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(res.Matches))
	}
	if !strings.Contains(res.Text, "color: azul") || !strings.Contains(res.Text, "marca: ford") {
		t.Errorf("empty message should name every applied filter: %q", res.Text)
	}
}

func TestSearchCheapestFirst(t *testing.T) {
	res := Search("¿cuál es el coche más barato?")
	if len(res.Matches) == 0 {
		t.Fatal("expected full catalog ordered by price")
	}
	if res.Matches[0].ID != "SEAT_LEON_2023_BLU" {
		t.Errorf("cheapest first = %s", res.Matches[0].ID)
	}
	if !strings.Contains(res.Text, "ordenados por precio") {
		t.Errorf("heading should mention the price ordering: %q", res.Text)
	}
}

func TestSearchMostExpensiveFirst(t *testing.T) {
	res := Search("enséñame los coches más caros")
	if res.Matches[0].ID != "FORD_MUSTANG_2023_ROJ" {
		t.Errorf("most expensive first = %s", res.Matches[0].ID)
	}
}

func TestSearchListingTruncates(t *testing.T) {
	res := Search("¿qué coches tienen?")
	if len(res.Matches) != 7 {
		t.Fatalf("expected full catalog, got %d", len(res.Matches))
	}
	if !strings.Contains(res.Text, "y 4 vehículos más disponibles") {
		t.Errorf("listing should mention the remainder: %q", res.Text)
	}
	if !strings.Contains(res.Text, "prueba de manejo") {
		t.Errorf("listing should close with the test drive offer: %q", res.Text)
	}
}

func TestSearchStockedFuelDoesNotNarrow(t *testing.T) {
	res := Search("coches de gasolina")
	if len(res.Matches) != 7 {
		t.Fatalf("expected full catalog, got %d", len(res.Matches))
	}
	if len(res.Applied) != 0 {
		t.Errorf("a pass that removes nothing should not be recorded: %+v", res.Applied)
	}
}
