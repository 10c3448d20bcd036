package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskLevel is the closed set of NR-01 risk classifications an assessment
// can assign to a client's sector.

type RiskLevel string

const (
	RiskLevelBaixo     RiskLevel = "baixo"
	RiskLevelMedio     RiskLevel = "médio"
	RiskLevelAlto      RiskLevel = "alto"
	RiskLevelMuitoAlto RiskLevel = "muito_alto"
)

// IsValid reports whether l is one of the four enumerated levels.
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelBaixo, RiskLevelMedio, RiskLevelAlto, RiskLevelMuitoAlto:
		return true
	}
	return false
}

// BaseScore maps the level to its numeric weight (1 to 4). Unknown levels
// score zero.
func (l RiskLevel) BaseScore() decimal.Decimal {
	switch l {
	case RiskLevelBaixo:
		return decimal.NewFromInt(1)
	case RiskLevelMedio:
		return decimal.NewFromInt(2)
	case RiskLevelAlto:
		return decimal.NewFromInt(3)
	case RiskLevelMuitoAlto:
		return decimal.NewFromInt(4)
	}
	return decimal.Zero
}

var psychosocialBump = decimal.RequireFromString("0.5")

// RiskScore combines the level weight with the psychosocial-factors bump.
func RiskScore(level RiskLevel, hasPsychosocialFactors bool) decimal.Decimal {
	score := level.BaseScore()
	if hasPsychosocialFactors {
		score = score.Add(psychosocialBump)
	}
	return score
}

// RecommendationForScore returns the standard guidance text for a score.
func RecommendationForScore(score decimal.Decimal) string {
	switch {
	case score.LessThanOrEqual(decimal.RequireFromString("1.5")):
		return "Manutenção das medidas preventivas atuais e monitoramento periódico."
	case score.LessThanOrEqual(decimal.RequireFromString("2.5")):
		return "Implementar medidas de controle adicionais e aumentar a frequência de monitoramento."
	case score.LessThanOrEqual(decimal.RequireFromString("3.5")):
		return "Ações corretivas imediatas necessárias. Desenvolver plano de ação detalhado."
	}
	return "Intervenção urgente necessária. Suspender atividades até implementação de controles adequados."
}

// RiskAssessment records an NR-01 questionnaire for a client's sector. The
// assessed level backs the risk-adjustment percent a consultant applies when
// pricing items for that client; the engine itself never reads it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//   - GSI2 (client_id-index): client_id

type RiskAssessment struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	ClientID string `json:"client_id"`

	Sector              string    `json:"sector"`
	RiskLevel           RiskLevel `json:"risk_level"`
	PsychosocialFactors string    `json:"psychosocial_factors"`
	Recommendations     string    `json:"recommendations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
