package request

import (
	"strings"

	"woodcraft/internal/domain/entities"
)

// DesignRequest is the payload of the design generation endpoints.
// Missing dimensions default to 0.
type DesignRequest struct {
	DesignDescription string  `json:"design_description" binding:"required,max=500"`
	DecorationType    string  `json:"decoration_type"`
	Material          string  `json:"material" binding:"required"`
	Height            float64 `json:"height" binding:"gte=0"`
	Width             float64 `json:"width" binding:"gte=0"`
	Thickness         float64 `json:"thickness" binding:"gte=0"`
}

func (r DesignRequest) ToEntity() entities.DesignRequest {
	return entities.DesignRequest{
		Description:    r.DesignDescription,
		DecorationType: strings.TrimSpace(r.DecorationType),
		Material:       entities.Material(strings.TrimSpace(r.Material)),
		Dimensions: entities.Dimensions{
			Width:     r.Width,
			Height:    r.Height,
			Thickness: r.Thickness,
		},
	}
}
