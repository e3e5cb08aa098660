package interfaces

import "woodcraft/internal/domain/entities"

// IPriceEstimator computes the customer-facing estimate for a design.
type IPriceEstimator interface {
	Estimate(description string, material entities.Material, dims entities.Dimensions) entities.PricingResult
}
