package response

import (
	"time"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"

	"github.com/shopspring/decimal"
)

type RiskAssessmentResponse struct {
	ID                  string `json:"id"`
	TenantID            string `json:"tenant_id"`
	ClientID            string `json:"client_id"`
	Sector              string `json:"sector"`
	RiskLevel           string `json:"risk_level"`
	PsychosocialFactors string `json:"psychosocial_factors,omitempty"`
	Recommendations     string `json:"recommendations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRiskAssessment(a entities.RiskAssessment) RiskAssessmentResponse {
	return RiskAssessmentResponse{
		ID:                  a.ID,
		TenantID:            a.TenantID,
		ClientID:            a.ClientID,
		Sector:              a.Sector,
		RiskLevel:           string(a.RiskLevel),
		PsychosocialFactors: a.PsychosocialFactors,
		Recommendations:     a.Recommendations,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func FromRiskAssessments(as []entities.RiskAssessment) []RiskAssessmentResponse {
	out := make([]RiskAssessmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromRiskAssessment(a))
	}
	return out
}

type RiskAssessmentDetailResponse struct {
	RiskAssessmentResponse
	Client ClientResponse `json:"client"`
}

func FromRiskAssessmentWithClient(d usecase.RiskAssessmentWithClient) RiskAssessmentDetailResponse {
	return RiskAssessmentDetailResponse{
		RiskAssessmentResponse: FromRiskAssessment(d.Assessment),
		Client:                 FromClient(d.Client),
	}
}

type RiskScoreResponse struct {
	Score          decimal.Decimal `json:"score"`
	RiskLevel      string          `json:"risk_level"`
	Recommendation string          `json:"recommendation"`
}

func FromRiskScoreResult(r usecase.RiskScoreResult) RiskScoreResponse {
	return RiskScoreResponse{
		Score:          r.Score,
		RiskLevel:      string(r.RiskLevel),
		Recommendation: r.Recommendation,
	}
}
