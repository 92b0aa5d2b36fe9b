package model

type FuelType string

const (
	FuelGasoline FuelType = "gasolina"
	FuelHybrid   FuelType = "híbrido"
	FuelElectric FuelType = "eléctrico"
	FuelDiesel   FuelType = "diésel"
)

type BodyType string

const (
	BodySUV       BodyType = "SUV"
	BodySedan     BodyType = "sedán"
	BodyHatchback BodyType = "hatchback"
	BodySports    BodyType = "deportivo"
)

// Vehicle is one catalog entry. Records are immutable at runtime; the
// identifier is unique and stable across every component that consults
// the catalog.
type Vehicle struct {
	ID           string
	Brand        string
	Model        string
	Year         int
	PriceEUR     int
	Color        string
	Body         BodyType
	Fuel         FuelType
	Engine       string
	Transmission string
	Power        string
	Drivetrain   string
	MileageKM    int
	LengthMM     int
	WidthMM      int
	HeightMM     int
	TrunkLiters  int
	Features     []string
	ImageRef     string
}
