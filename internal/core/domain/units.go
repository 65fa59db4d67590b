package domain

const (
	metersPerInch            = 0.0254
	squareFeetPerSquareMeter = 10.763910416709722
)

// InchesToMeters converts a length in inches to meters.
func InchesToMeters(inches float64) float64 {
	return inches * metersPerInch
}

// MetersToInches converts a length in meters to inches.
func MetersToInches(meters float64) float64 {
	return meters / metersPerInch
}

// SquareMetersToSquareFeet converts an area in square meters to square feet.
func SquareMetersToSquareFeet(area float64) float64 {
	return area * squareFeetPerSquareMeter
}
