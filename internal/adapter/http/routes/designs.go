package routes

import (
	"woodcraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDesigns = "/designs"
)

// addDesignRoutes registers the generation endpoints behind the per-IP limiter.
func addDesignRoutes(rg *gin.RouterGroup, designHandler *handlers.DesignHandler, limit gin.HandlerFunc) {
	generation := rg.Group("", limit)
	{
		generation.POST("/initiate_task_id", designHandler.RequestDesign)
		generation.POST("/generate_3d_model", designHandler.RequestDesign)
		generation.GET("/get_task_status/:task_id", designHandler.GetTaskStatus)
	}
}

func addCustomerDesignRoutes(rg *gin.RouterGroup, h *handlers.CustomerDesignHandler) {
	designs := rg.Group(PathDesigns)
	{
		designs.POST("", h.CreateDesign)
		designs.GET("", h.ListDesigns)
		designs.GET("/:id", h.GetDesign)
		designs.POST("/:id/refresh", h.RefreshGeneration)
		designs.PUT("/:id/approve", h.ApproveDesign)
		designs.PUT("/:id/reject", h.RejectDesign)
		designs.PATCH("/:id/start", h.StartProduction)
		designs.PATCH("/:id/complete", h.CompleteDesign)
	}
}
