package entities

import "time"

// DesignStatus represents the lifecycle of a customer design.
//
// Domain notes:
//   - Generation drives pending -> generating -> generated.
//   - Staff actions drive approval/rejection and production.
//   - An approved design must carry a FinalPrice before it can be paid for.
type DesignStatus string

const (
	DesignStatusPending    DesignStatus = "pending"
	DesignStatusGenerating DesignStatus = "generating"
	DesignStatusGenerated  DesignStatus = "generated"
	DesignStatusApproved   DesignStatus = "approved"
	DesignStatusInProgress DesignStatus = "in_progress"
	DesignStatusCompleted  DesignStatus = "completed"
	DesignStatusRejected   DesignStatus = "rejected"
)

var designTransitions = map[DesignStatus][]DesignStatus{
	DesignStatusPending:    {DesignStatusGenerating, DesignStatusGenerated, DesignStatusApproved, DesignStatusRejected},
	DesignStatusGenerating: {DesignStatusGenerated, DesignStatusRejected},
	DesignStatusGenerated:  {DesignStatusApproved, DesignStatusRejected},
	DesignStatusApproved:   {DesignStatusInProgress},
	DesignStatusInProgress: {DesignStatusCompleted},
}

// CanTransitionTo reports whether a design in status s may move to next.
func (s DesignStatus) CanTransitionTo(next DesignStatus) bool {
	for _, allowed := range designTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition leaves s.
func (s DesignStatus) IsTerminal() bool {
	return len(designTransitions[s]) == 0
}

// Dimensions are expressed in inches. Missing values default to 0.
type Dimensions struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Thickness float64 `json:"thickness"`
}

// CustomerDesign is a customer-described product persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Monetary representation:
//   - EstimatedPrice is computed by the pricing estimator when the design is created.
//   - FinalPrice is set by staff on approval and is the amount charged.
type CustomerDesign struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Description     string       `json:"description"`
	DecorationType  string       `json:"decoration_type"`
	Material        Material     `json:"material"`
	Dimensions      Dimensions   `json:"dimensions"`
	TaskID          string       `json:"task_id,omitempty"`
	ModelURL        string       `json:"model_url,omitempty"`
	ModelImageURL   string       `json:"model_image_url,omitempty"`
	EstimatedPrice  float64      `json:"estimated_price"`
	ComplexityScore float64      `json:"complexity_score"`
	ProductionTime  string       `json:"production_time"`
	FinalPrice      *float64     `json:"final_price,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	Status          DesignStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// DesignChange describes a guarded status transition plus the fields it sets.
// Nil pointers leave the stored value untouched.
type DesignChange struct {
	Status        DesignStatus
	ModelURL      *string
	ModelImageURL *string
	FinalPrice    *float64
	Notes         *string
}
