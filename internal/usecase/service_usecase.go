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

var ErrInvalidServiceName = errors.New("invalid service name")

type CreateServiceInput struct {
	TenantID    string
	Category    string
	Name        string
	Description string
	Unit        string

	BasePrice      decimal.Decimal
	EstimatedHours decimal.Decimal
	MinValue       decimal.Decimal
	MaxValue       decimal.Decimal
}

// UpdateServiceInput is a partial update; nil fields are left untouched.
type UpdateServiceInput struct {
	ID string

	Category       *string
	Name           *string
	Description    *string
	Unit           *string
	BasePrice      *decimal.Decimal
	EstimatedHours *decimal.Decimal
	MinValue       *decimal.Decimal
	MaxValue       *decimal.Decimal
	IsActive       *bool
}

// IServiceUseCase exposes catalog maintenance operations.

type IServiceUseCase interface {
	Create(ctx context.Context, in CreateServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Service, error)
	Update(ctx context.Context, in UpdateServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, in CreateServiceInput) (entities.Service, error) {
	in.TenantID = strings.TrimSpace(in.TenantID)
	in.Name = strings.TrimSpace(in.Name)
	if in.TenantID == "" {
		return entities.Service{}, ErrInvalidTenantID
	}
	if in.Name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:             uuid.NewString(),
		TenantID:       in.TenantID,
		Category:       in.Category,
		Name:           in.Name,
		Description:    in.Description,
		Unit:           in.Unit,
		BasePrice:      in.BasePrice,
		EstimatedHours: in.EstimatedHours,
		MinValue:       in.MinValue,
		MaxValue:       in.MaxValue,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Service, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func (u *ServiceUseCase) Update(ctx context.Context, in UpdateServiceInput) (entities.Service, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	if in.Category != nil {
		s.Category = *in.Category
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Service{}, ErrInvalidServiceName
		}
		s.Name = name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Unit != nil {
		s.Unit = *in.Unit
	}
	if in.BasePrice != nil {
		s.BasePrice = *in.BasePrice
	}
	if in.EstimatedHours != nil {
		s.EstimatedHours = *in.EstimatedHours
	}
	if in.MinValue != nil {
		s.MinValue = *in.MinValue
	}
	if in.MaxValue != nil {
		s.MaxValue = *in.MaxValue
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}
	s.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, s)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if s.ID == "" {
		return ErrServiceNotFound
	}
	return u.repo.DeleteByID(ctx, id)
}
