package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "consultoria_xpto/internal/adapter/http/dto/request"
	response "consultoria_xpto/internal/adapter/http/dto/response"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/domain/pricing"
	"consultoria_xpto/internal/usecase"
	"consultoria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// PricingHandler exposes the read-only pricing computations. Nothing here
// writes to storage.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// TechnicalHour answers "what does my hour cost" for the tenant under the
// tax regime passed as the tax_regime query parameter.
func (h *PricingHandler) TechnicalHour(c *gin.Context) {
	regime := entities.TaxRegime(strings.TrimSpace(c.Query("tax_regime")))

	result, err := h.usecase.CalculateTechnicalHour(c.Request.Context(), tenantID(c), regime)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnicalHourResult(result))
}

func (h *PricingHandler) ItemValue(c *gin.Context) {
	var payload request.ItemValueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.CalculateItemValue(c.Request.Context(), payload.ToInput(tenantID(c)))
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItemQuote(quote))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingParametersNotFound):
		return pkg.NewDomainErrorSimple("PRICING_PARAMETERS_NOT_CONFIGURED", "Pricing parameters not configured for tenant", http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrNonPositiveProductiveHours):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCTIVE_HOURS", "Productive hours must be greater than zero", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
