package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "consultoria_xpto/internal/adapter/http/dto/request"
	response "consultoria_xpto/internal/adapter/http/dto/response"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"
	"consultoria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRiskAssessmentPayload = pkg.NewDomainErrorSimple("INVALID_RISK_ASSESSMENT_INPUT", "Invalid risk assessment payload", http.StatusBadRequest)

// RiskAssessmentHandler handles HTTP requests for the NR-01 risk registry.

type RiskAssessmentHandler struct {
	usecase usecase.IRiskAssessmentUseCase
}

func NewRiskAssessmentHandler(uc usecase.IRiskAssessmentUseCase) *RiskAssessmentHandler {
	return &RiskAssessmentHandler{usecase: uc}
}

func (h *RiskAssessmentHandler) CreateRiskAssessment(c *gin.Context) {
	var payload request.CreateRiskAssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRiskAssessmentPayload.HTTPStatus, errInvalidRiskAssessmentPayload.ToHTTPError())
		return
	}

	assessment, err := h.usecase.Create(c.Request.Context(), payload.ToInput(tenantID(c)))
	if err != nil {
		appErr := mapRiskAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRiskAssessment(assessment))
}

func (h *RiskAssessmentHandler) GetRiskAssessment(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRiskAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRiskAssessmentWithClient(detail))
}

// ListRiskAssessments lists the tenant's assessments; a client_id query
// param narrows the listing to one client.
func (h *RiskAssessmentHandler) ListRiskAssessments(c *gin.Context) {
	var (
		assessments []entities.RiskAssessment
		err         error
	)
	if clientID := c.Query("client_id"); clientID != "" {
		assessments, err = h.usecase.ListByClientID(c.Request.Context(), clientID)
	} else {
		assessments, err = h.usecase.ListByTenantID(c.Request.Context(), tenantID(c))
	}
	if err != nil {
		appErr := mapRiskAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRiskAssessments(assessments))
}

func (h *RiskAssessmentHandler) UpdateRiskAssessment(c *gin.Context) {
	var payload request.UpdateRiskAssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRiskAssessmentPayload.HTTPStatus, errInvalidRiskAssessmentPayload.ToHTTPError())
		return
	}

	assessment, err := h.usecase.Update(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		appErr := mapRiskAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRiskAssessment(assessment))
}

func (h *RiskAssessmentHandler) DeleteRiskAssessment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRiskAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// RiskScore computes the score for a level without persisting anything.
// Query params: risk_level, has_psychosocial_factors (bool).
func (h *RiskAssessmentHandler) RiskScore(c *gin.Context) {
	hasFactors, _ := strconv.ParseBool(c.Query("has_psychosocial_factors"))

	result, err := h.usecase.Score(entities.RiskLevel(c.Query("risk_level")), hasFactors)
	if err != nil {
		appErr := mapRiskAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRiskScoreResult(result))
}

func mapRiskAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidRiskAssessmentID),
		errors.Is(err, usecase.ErrInvalidSector),
		errors.Is(err, usecase.ErrInvalidRiskLevel):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRiskAssessmentNotFound):
		return pkg.NewDomainErrorSimple("RISK_ASSESSMENT_NOT_FOUND", "Risk assessment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
