package entities

// PricingResult is derived from a design request and attached to a CustomerDesign.
type PricingResult struct {
	EstimatedPrice  float64 `json:"estimated_price"`
	ComplexityScore float64 `json:"complexity_score"`
	ProductionTime  string  `json:"production_time"`
}

// DesignRequest is the customer input of the design workflow.
type DesignRequest struct {
	Description    string
	DecorationType string
	Material       Material
	Dimensions     Dimensions
}
