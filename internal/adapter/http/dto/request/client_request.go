package request

import (
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"
)

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	CNPJ         string `json:"cnpj"`
	TaxRegime    string `json:"tax_regime" binding:"required"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
}

func (r CreateClientRequest) ToInput(tenantID string) usecase.CreateClientInput {
	return usecase.CreateClientInput{
		TenantID:     tenantID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		CNPJ:         r.CNPJ,
		TaxRegime:    entities.TaxRegime(r.TaxRegime),
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
	}
}

type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	CNPJ         *string `json:"cnpj"`
	TaxRegime    *string `json:"tax_regime"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
}

func (r UpdateClientRequest) ToInput(id string) usecase.UpdateClientInput {
	in := usecase.UpdateClientInput{
		ID:           id,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		CNPJ:         r.CNPJ,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
	}
	if r.TaxRegime != nil {
		regime := entities.TaxRegime(*r.TaxRegime)
		in.TaxRegime = &regime
	}
	return in
}
