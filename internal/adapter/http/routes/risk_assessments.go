package routes

import (
	"consultoria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathRiskAssessments = "/risk-assessments"

func addRiskAssessmentRoutes(rg *gin.RouterGroup, handler *handlers.RiskAssessmentHandler) {
	assessments := rg.Group(PathRiskAssessments)
	{
		assessments.POST("", handler.CreateRiskAssessment)
		assessments.GET("", handler.ListRiskAssessments)
		assessments.GET("/score", handler.RiskScore)
		assessments.GET("/:id", handler.GetRiskAssessment)
		assessments.PATCH("/:id", handler.UpdateRiskAssessment)
		assessments.DELETE("/:id", handler.DeleteRiskAssessment)
	}
}
