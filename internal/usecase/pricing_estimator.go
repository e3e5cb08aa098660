package usecase

import (
	"fmt"
	"math"
	"unicode/utf8"

	"woodcraft/internal/domain/entities"
	"woodcraft/internal/usecase/interfaces"
)

const (
	basePrice                = 2500.0
	complexityReferenceChars = 150.0
	maxComplexityScore       = 100.0
	defaultMaterialFactor    = 1.0
	minProductionDays        = 5
	maxProductionDaysAsDays  = 14
)

var materialFactors = map[entities.Material]float64{
	entities.MaterialOak:      1.5,
	entities.MaterialMaple:    1.8,
	entities.MaterialPine:     0.7,
	entities.MaterialMahogany: 1.2,
	entities.MaterialWalnut:   2.0,
}

// PricingEstimator derives price, complexity and production time from a design
// description. It is pure: the same input always yields the same result.
type PricingEstimator struct{}

var _ interfaces.IPriceEstimator = PricingEstimator{}

func NewPricingEstimator() PricingEstimator {
	return PricingEstimator{}
}

func (PricingEstimator) Estimate(description string, material entities.Material, dims entities.Dimensions) entities.PricingResult {
	complexity := math.Min(maxComplexityScore, (float64(utf8.RuneCountInString(description))/complexityReferenceChars)*100)
	size := SizeFactor(dims)

	price := basePrice * (complexity / 100) * MaterialFactor(material) * math.Max(1, size)

	days := int(complexity/10+size*2) + minProductionDays

	return entities.PricingResult{
		EstimatedPrice:  price,
		ComplexityScore: complexity,
		ProductionTime:  FormatProductionTime(days),
	}
}

// SizeFactor is the normalized volume of the design. Zero dimensions yield 0.
func SizeFactor(dims entities.Dimensions) float64 {
	return (dims.Width * dims.Height * dims.Thickness) / 1000
}

// MaterialFactor looks up the exact material key; unknown materials price at 1.0.
func MaterialFactor(material entities.Material) float64 {
	if f, ok := materialFactors[material]; ok {
		return f
	}
	return defaultMaterialFactor
}

// FormatProductionTime renders days, switching to whole weeks (rounded up) past two weeks.
func FormatProductionTime(days int) string {
	if days > maxProductionDaysAsDays {
		return fmt.Sprintf("%d weeks", (days+6)/7)
	}
	return fmt.Sprintf("%d days", days)
}
