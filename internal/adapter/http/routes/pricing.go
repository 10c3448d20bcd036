package routes

import (
	"consultoria_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPricing = "/pricing"

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler, paramsHandler *handlers.PricingParametersHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/technical-hour", pricingHandler.TechnicalHour)
		pricing.POST("/item-value", pricingHandler.ItemValue)

		pricing.POST("/parameters", paramsHandler.CreateParameters)
		pricing.GET("/parameters", paramsHandler.ListParameters)
		pricing.GET("/parameters/current", paramsHandler.GetCurrentParameters)
	}
}
