package request

import (
	"strings"

	"woodcraft/internal/domain/entities"
)

// CreateCustomerDesignRequest stores a design the customer decided to keep.
// Pricing is always recomputed server side.
type CreateCustomerDesignRequest struct {
	UserID            string  `json:"user_id" binding:"required"`
	DesignDescription string  `json:"design_description" binding:"required,max=500"`
	DecorationType    string  `json:"decoration_type"`
	Material          string  `json:"material" binding:"required"`
	Height            float64 `json:"height" binding:"gte=0"`
	Width             float64 `json:"width" binding:"gte=0"`
	Thickness         float64 `json:"thickness" binding:"gte=0"`
	TaskID            string  `json:"task_id"`
	ModelURL          string  `json:"model_url"`
	ModelImageURL     string  `json:"model_image"`
}

func (r CreateCustomerDesignRequest) Dimensions() entities.Dimensions {
	return entities.Dimensions{Width: r.Width, Height: r.Height, Thickness: r.Thickness}
}

func (r CreateCustomerDesignRequest) ResolveMaterial() entities.Material {
	return entities.Material(strings.TrimSpace(r.Material))
}

type ApproveDesignRequest struct {
	FinalPrice float64 `json:"final_price" binding:"required,gt=0"`
}

type RejectDesignRequest struct {
	Message string `json:"message" binding:"required"`
}
