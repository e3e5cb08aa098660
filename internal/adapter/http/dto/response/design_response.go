package response

import (
	"time"

	"woodcraft/internal/domain/entities"
)

// DesignQuoteResponse answers the design generation endpoints. Pricing
// fields are only present on success.
type DesignQuoteResponse struct {
	Success         bool     `json:"success"`
	EstimatedPrice  *float64 `json:"estimated_price,omitempty"`
	ComplexityScore *float64 `json:"complexity_score,omitempty"`
	ProductionTime  string   `json:"production_time,omitempty"`
	TaskID          string   `json:"task_id,omitempty"`
	Message         string   `json:"message"`
}

func FromDesignQuote(q entities.DesignQuote) DesignQuoteResponse {
	res := DesignQuoteResponse{Success: q.Success, Message: q.Message}
	if !q.Success {
		return res
	}
	res.TaskID = q.TaskID
	if q.Pricing != nil {
		price, score := q.Pricing.EstimatedPrice, q.Pricing.ComplexityScore
		res.EstimatedPrice = &price
		res.ComplexityScore = &score
		res.ProductionTime = q.Pricing.ProductionTime
	}
	return res
}

type TaskStatusResponse struct {
	Success    bool                     `json:"success"`
	TaskID     string                   `json:"task_id,omitempty"`
	TaskStatus string                   `json:"task_status,omitempty"`
	Message    string                   `json:"message"`
	Data       *entities.GenerationTask `json:"data,omitempty"`
}

func FromTaskStatusReport(r entities.TaskStatusReport) TaskStatusResponse {
	return TaskStatusResponse{
		Success:    r.Success,
		TaskID:     r.TaskID,
		TaskStatus: string(r.State),
		Message:    r.Message,
		Data:       r.Task,
	}
}

type CustomerDesignResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	DesignDescription string              `json:"design_description"`
	DecorationType    string              `json:"decoration_type,omitempty"`
	Material          string              `json:"material"`
	Dimensions        entities.Dimensions `json:"dimensions"`
	TaskID            string              `json:"task_id,omitempty"`
	ModelURL          string              `json:"model_url,omitempty"`
	ModelImageURL     string              `json:"model_image,omitempty"`
	EstimatedPrice    float64             `json:"estimated_price"`
	ComplexityScore   float64             `json:"complexity_score"`
	ProductionTime    string              `json:"production_time"`
	FinalPrice        *float64            `json:"final_price,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	Status            string              `json:"status"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

func FromCustomerDesign(d entities.CustomerDesign) CustomerDesignResponse {
	return CustomerDesignResponse{
		ID:                d.ID,
		UserID:            d.UserID,
		DesignDescription: d.Description,
		DecorationType:    d.DecorationType,
		Material:          string(d.Material),
		Dimensions:        d.Dimensions,
		TaskID:            d.TaskID,
		ModelURL:          d.ModelURL,
		ModelImageURL:     d.ModelImageURL,
		EstimatedPrice:    d.EstimatedPrice,
		ComplexityScore:   d.ComplexityScore,
		ProductionTime:    d.ProductionTime,
		FinalPrice:        d.FinalPrice,
		Notes:             d.Notes,
		Status:            string(d.Status),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func FromCustomerDesigns(items []entities.CustomerDesign) []CustomerDesignResponse {
	out := make([]CustomerDesignResponse, 0, len(items))
	for _, d := range items {
		out = append(out, FromCustomerDesign(d))
	}
	return out
}
