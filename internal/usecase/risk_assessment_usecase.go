package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidRiskAssessmentID = errors.New("invalid risk assessment id")
	ErrInvalidSector           = errors.New("invalid sector")
	ErrInvalidRiskLevel        = errors.New("invalid risk level")
	ErrRiskAssessmentNotFound  = errors.New("risk assessment not found")
)

type CreateRiskAssessmentInput struct {
	TenantID            string
	ClientID            string
	Sector              string
	RiskLevel           entities.RiskLevel
	PsychosocialFactors string
	Recommendations     string
}

// UpdateRiskAssessmentInput is a partial update; nil fields are left untouched.
type UpdateRiskAssessmentInput struct {
	ID string

	Sector              *string
	RiskLevel           *entities.RiskLevel
	PsychosocialFactors *string
	Recommendations     *string
}

// RiskAssessmentWithClient is the detail view of an assessment.
type RiskAssessmentWithClient struct {
	Assessment entities.RiskAssessment
	Client     entities.Client
}

// RiskScoreResult is the outcome of a score calculation. Nothing is
// persisted; the consultant reads the score and decides the risk-adjustment
// percent to use on proposal items.
type RiskScoreResult struct {
	Score          decimal.Decimal
	RiskLevel      entities.RiskLevel
	Recommendation string
}

// IRiskAssessmentUseCase exposes the NR-01 risk questionnaire registry.

type IRiskAssessmentUseCase interface {
	Create(ctx context.Context, in CreateRiskAssessmentInput) (entities.RiskAssessment, error)
	GetByID(ctx context.Context, id string) (RiskAssessmentWithClient, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.RiskAssessment, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.RiskAssessment, error)
	Update(ctx context.Context, in UpdateRiskAssessmentInput) (entities.RiskAssessment, error)
	Delete(ctx context.Context, id string) error
	Score(level entities.RiskLevel, hasPsychosocialFactors bool) (RiskScoreResult, error)
}

type RiskAssessmentUseCase struct {
	repo       interfaces.IRiskAssessmentRepository
	clientRepo interfaces.IClientRepository
}

var _ IRiskAssessmentUseCase = (*RiskAssessmentUseCase)(nil)

func NewRiskAssessmentUseCase(repo interfaces.IRiskAssessmentRepository, clientRepo interfaces.IClientRepository) *RiskAssessmentUseCase {
	return &RiskAssessmentUseCase{repo: repo, clientRepo: clientRepo}
}

func (u *RiskAssessmentUseCase) Create(ctx context.Context, in CreateRiskAssessmentInput) (entities.RiskAssessment, error) {
	in.TenantID = strings.TrimSpace(in.TenantID)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.Sector = strings.TrimSpace(in.Sector)
	if in.TenantID == "" {
		return entities.RiskAssessment{}, ErrInvalidTenantID
	}
	if in.ClientID == "" {
		return entities.RiskAssessment{}, ErrInvalidClientID
	}
	if in.Sector == "" {
		return entities.RiskAssessment{}, ErrInvalidSector
	}
	if !in.RiskLevel.IsValid() {
		return entities.RiskAssessment{}, ErrInvalidRiskLevel
	}

	client, err := u.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.RiskAssessment{}, err
	}
	if client.ID == "" {
		return entities.RiskAssessment{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	a := entities.RiskAssessment{
		ID:                  uuid.NewString(),
		TenantID:            in.TenantID,
		ClientID:            in.ClientID,
		Sector:              in.Sector,
		RiskLevel:           in.RiskLevel,
		PsychosocialFactors: in.PsychosocialFactors,
		Recommendations:     in.Recommendations,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return u.repo.Create(ctx, a)
}

func (u *RiskAssessmentUseCase) GetByID(ctx context.Context, id string) (RiskAssessmentWithClient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RiskAssessmentWithClient{}, ErrInvalidRiskAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return RiskAssessmentWithClient{}, err
	}
	if a.ID == "" {
		return RiskAssessmentWithClient{}, ErrRiskAssessmentNotFound
	}

	client, err := u.clientRepo.GetByID(ctx, a.ClientID)
	if err != nil {
		return RiskAssessmentWithClient{}, err
	}

	return RiskAssessmentWithClient{Assessment: a, Client: client}, nil
}

func (u *RiskAssessmentUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.RiskAssessment, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func (u *RiskAssessmentUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.RiskAssessment, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *RiskAssessmentUseCase) Update(ctx context.Context, in UpdateRiskAssessmentInput) (entities.RiskAssessment, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.RiskAssessment{}, ErrInvalidRiskAssessmentID
	}

	a, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		return entities.RiskAssessment{}, err
	}
	if a.ID == "" {
		return entities.RiskAssessment{}, ErrRiskAssessmentNotFound
	}

	if in.Sector != nil {
		sector := strings.TrimSpace(*in.Sector)
		if sector == "" {
			return entities.RiskAssessment{}, ErrInvalidSector
		}
		a.Sector = sector
	}
	if in.RiskLevel != nil {
		if !in.RiskLevel.IsValid() {
			return entities.RiskAssessment{}, ErrInvalidRiskLevel
		}
		a.RiskLevel = *in.RiskLevel
	}
	if in.PsychosocialFactors != nil {
		a.PsychosocialFactors = *in.PsychosocialFactors
	}
	if in.Recommendations != nil {
		a.Recommendations = *in.Recommendations
	}
	a.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, a)
}

func (u *RiskAssessmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRiskAssessmentID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.ID == "" {
		return ErrRiskAssessmentNotFound
	}
	return u.repo.DeleteByID(ctx, id)
}

// Score is a pure calculation over the closed level set; it touches no
// repository.
func (u *RiskAssessmentUseCase) Score(level entities.RiskLevel, hasPsychosocialFactors bool) (RiskScoreResult, error) {
	if !level.IsValid() {
		return RiskScoreResult{}, ErrInvalidRiskLevel
	}

	score := entities.RiskScore(level, hasPsychosocialFactors)
	return RiskScoreResult{
		Score:          score,
		RiskLevel:      level,
		Recommendation: entities.RecommendationForScore(score),
	}, nil
}
