package entities

import "time"

// Client is a company the consultancy sells to.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// TaxRegime decides which tax percentage loads the technical hour when a
// proposal for this client is priced.

type Client struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`

	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CNPJ         string    `json:"cnpj"`
	TaxRegime    TaxRegime `json:"tax_regime"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
