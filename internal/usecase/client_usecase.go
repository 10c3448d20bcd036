package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidClientName = errors.New("invalid client name")
	ErrInvalidTaxRegime  = errors.New("invalid tax regime")
)

type CreateClientInput struct {
	TenantID     string
	Name         string
	Email        string
	Phone        string
	CNPJ         string
	TaxRegime    entities.TaxRegime
	ContactName  string
	ContactEmail string
}

// UpdateClientInput is a partial update; nil fields are left untouched.
type UpdateClientInput struct {
	ID string

	Name         *string
	Email        *string
	Phone        *string
	CNPJ         *string
	TaxRegime    *entities.TaxRegime
	ContactName  *string
	ContactEmail *string
}

// IClientUseCase exposes client registry operations.

type IClientUseCase interface {
	Create(ctx context.Context, in CreateClientInput) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Client, error)
	Update(ctx context.Context, in UpdateClientInput) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, in CreateClientInput) (entities.Client, error) {
	in.TenantID = strings.TrimSpace(in.TenantID)
	in.Name = strings.TrimSpace(in.Name)
	if in.TenantID == "" {
		return entities.Client{}, ErrInvalidTenantID
	}
	if in.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	if !in.TaxRegime.IsValid() {
		return entities.Client{}, ErrInvalidTaxRegime
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:           uuid.NewString(),
		TenantID:     in.TenantID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		CNPJ:         in.CNPJ,
		TaxRegime:    in.TaxRegime,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Client, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenantID(ctx, tenantID)
}

func (u *ClientUseCase) Update(ctx context.Context, in UpdateClientInput) (entities.Client, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, in.ID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.Client{}, ErrInvalidClientName
		}
		c.Name = name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Phone != nil {
		c.Phone = *in.Phone
	}
	if in.CNPJ != nil {
		c.CNPJ = *in.CNPJ
	}
	if in.TaxRegime != nil {
		if !in.TaxRegime.IsValid() {
			return entities.Client{}, ErrInvalidTaxRegime
		}
		c.TaxRegime = *in.TaxRegime
	}
	if in.ContactName != nil {
		c.ContactName = *in.ContactName
	}
	if in.ContactEmail != nil {
		c.ContactEmail = *in.ContactEmail
	}
	c.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrClientNotFound
	}
	return u.repo.DeleteByID(ctx, id)
}
