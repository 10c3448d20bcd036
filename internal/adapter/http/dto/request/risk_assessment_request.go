package request

import (
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"
)

type CreateRiskAssessmentRequest struct {
	ClientID            string `json:"client_id" binding:"required"`
	Sector              string `json:"sector" binding:"required"`
	RiskLevel           string `json:"risk_level" binding:"required"`
	PsychosocialFactors string `json:"psychosocial_factors"`
	Recommendations     string `json:"recommendations"`
}

func (r CreateRiskAssessmentRequest) ToInput(tenantID string) usecase.CreateRiskAssessmentInput {
	return usecase.CreateRiskAssessmentInput{
		TenantID:            tenantID,
		ClientID:            r.ClientID,
		Sector:              r.Sector,
		RiskLevel:           entities.RiskLevel(r.RiskLevel),
		PsychosocialFactors: r.PsychosocialFactors,
		Recommendations:     r.Recommendations,
	}
}

// UpdateRiskAssessmentRequest is a partial update: absent fields stay untouched.
type UpdateRiskAssessmentRequest struct {
	Sector              *string `json:"sector"`
	RiskLevel           *string `json:"risk_level"`
	PsychosocialFactors *string `json:"psychosocial_factors"`
	Recommendations     *string `json:"recommendations"`
}

func (r UpdateRiskAssessmentRequest) ToInput(id string) usecase.UpdateRiskAssessmentInput {
	in := usecase.UpdateRiskAssessmentInput{
		ID:                  id,
		Sector:              r.Sector,
		PsychosocialFactors: r.PsychosocialFactors,
		Recommendations:     r.Recommendations,
	}
	if r.RiskLevel != nil {
		level := entities.RiskLevel(*r.RiskLevel)
		in.RiskLevel = &level
	}
	return in
}
