package handlers

import (
	"errors"
	"net/http"

	request "consultoria_xpto/internal/adapter/http/dto/request"
	response "consultoria_xpto/internal/adapter/http/dto/response"
	"consultoria_xpto/internal/usecase"
	"consultoria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidParametersPayload = pkg.NewDomainErrorSimple("INVALID_PARAMETERS_INPUT", "Invalid pricing parameters payload", http.StatusBadRequest)

// PricingParametersHandler handles the versioned tenant configuration.

type PricingParametersHandler struct {
	usecase usecase.IPricingParametersUseCase
}

func NewPricingParametersHandler(uc usecase.IPricingParametersUseCase) *PricingParametersHandler {
	return &PricingParametersHandler{usecase: uc}
}

// CreateParameters appends a new parameter version; existing versions are
// never mutated.
func (h *PricingParametersHandler) CreateParameters(c *gin.Context) {
	var payload request.CreateParametersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidParametersPayload.HTTPStatus, errInvalidParametersPayload.ToHTTPError())
		return
	}

	params, err := h.usecase.Create(c.Request.Context(), payload.ToInput(tenantID(c)))
	if err != nil {
		appErr := mapParametersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPricingParameters(params))
}

// GetCurrentParameters returns the version in force right now.
func (h *PricingParametersHandler) GetCurrentParameters(c *gin.Context) {
	params, err := h.usecase.GetCurrent(c.Request.Context(), tenantID(c))
	if err != nil {
		appErr := mapParametersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingParameters(params))
}

func (h *PricingParametersHandler) ListParameters(c *gin.Context) {
	versions, err := h.usecase.ListByTenantID(c.Request.Context(), tenantID(c))
	if err != nil {
		appErr := mapParametersError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingParametersList(versions))
}

func mapParametersError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductiveHours):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCTIVE_HOURS", "Productive hours must be greater than zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPricingParametersNotFound):
		return pkg.NewDomainErrorSimple("PRICING_PARAMETERS_NOT_CONFIGURED", "Pricing parameters not configured for tenant", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
