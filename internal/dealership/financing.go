package dealership

import "math"

// FinancingOption is one of the dealership's credit products.
type FinancingOption struct {
	ID            string
	Name          string
	AnnualRatePct float64
	TermMonths    int
	Description   string
}

var financingOptions = []FinancingOption{
	{
		ID:            "standard-financing",
		Name:          "Financiamiento estándar",
		AnnualRatePct: 4.9,
		TermMonths:    60,
		Description:   "Sin entrada obligatoria, aprobación en 24 horas",
	},
	{
		ID:            "lease-option",
		Name:          "Leasing",
		AnnualRatePct: 2.9,
		TermMonths:    36,
		Description:   "Cuotas reducidas con opción de compra al final",
	},
	{
		ID:            "first-time-buyer",
		Name:          "Primer comprador",
		AnnualRatePct: 6.9,
		TermMonths:    72,
		Description:   "Pensado para quien financia un coche por primera vez",
	},
}

// FinancingOptions returns the available credit products.
func FinancingOptions() []FinancingOption {
	out := make([]FinancingOption, len(financingOptions))
	copy(out, financingOptions)
	return out
}

// MonthlyPayment computes the amortized monthly installment for a principal
// at an annual percentage rate over a number of months.
func MonthlyPayment(principal float64, annualRatePct float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	if r == 0 {
		return principal / float64(months)
	}
	factor := math.Pow(1+r, float64(months))
	return principal * r * factor / (factor - 1)
}
