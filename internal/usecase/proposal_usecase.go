package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/domain/pricing"
	"consultoria_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrInvalidProposalItemID = errors.New("invalid proposal item id")
	ErrInvalidClientID       = errors.New("invalid client_id")
	ErrInvalidProposalTitle  = errors.New("invalid proposal title")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrProposalItemNotFound  = errors.New("proposal item not found")
	ErrClientNotFound        = errors.New("client not found")
)

type CreateProposalInput struct {
	TenantID     string
	ClientID     string
	Title        string
	Description  string
	ValidityDays int
	Notes        string

	DiscountGeneral decimal.Decimal
	DisplacementFee decimal.Decimal
}

// UpdateProposalInput is a partial update; nil fields are left untouched.
type UpdateProposalInput struct {
	ID string

	Title           *string
	Description     *string
	Status          *entities.ProposalStatus
	ValidityDays    *int
	Notes           *string
	DiscountGeneral *decimal.Decimal
	DisplacementFee *decimal.Decimal
}

type AddItemInput struct {
	ProposalID string
	ServiceID  string
	Quantity   int

	// EstimatedHours <= 0 means "use the catalog estimate of the service".
	EstimatedHours            decimal.Decimal
	AdjustmentPersonalization decimal.Decimal
	AdjustmentRisk            decimal.Decimal
	AdjustmentSeniority       decimal.Decimal
}

// UpdateItemInput is a partial update of an existing item. The unit price
// and the volume discount stay locked to their creation-time snapshots;
// only the effort and adjustment inputs can change.
type UpdateItemInput struct {
	ProposalID string
	ItemID     string

	Quantity                  *int
	EstimatedHours            *decimal.Decimal
	AdjustmentPersonalization *decimal.Decimal
	AdjustmentRisk            *decimal.Decimal
	AdjustmentSeniority       *decimal.Decimal
}

// ProposalWithItems is the detail view of a proposal.
type ProposalWithItems struct {
	Proposal entities.Proposal
	Items    []entities.ProposalItem
	Client   entities.Client
}

// IProposalUseCase exposes proposal and proposal-item operations.
//
// Invariant maintained here: after every successful item mutation the
// stored proposal total equals the sum of the stored item totals after the
// general discount and the displacement fee. RecalculateTotal runs
// synchronously as the last step of AddItem, UpdateItem and RemoveItem; a
// mutation is only reported as successful once the total is rewritten.

type IProposalUseCase interface {
	Create(ctx context.Context, in CreateProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (ProposalWithItems, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Proposal, error)
	Update(ctx context.Context, in UpdateProposalInput) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, in AddItemInput) (entities.ProposalItem, error)
	UpdateItem(ctx context.Context, in UpdateItemInput) (entities.ProposalItem, error)
	RemoveItem(ctx context.Context, proposalID, itemID string) error
	RecalculateTotal(ctx context.Context, proposalID string) error
}

type ProposalUseCase struct {
	proposalRepo interfaces.IProposalRepository
	itemRepo     interfaces.IProposalItemRepository
	clientRepo   interfaces.IClientRepository
	serviceRepo  interfaces.IServiceRepository
	paramsRepo   interfaces.IPricingParametersRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	proposalRepo interfaces.IProposalRepository,
	itemRepo interfaces.IProposalItemRepository,
	clientRepo interfaces.IClientRepository,
	serviceRepo interfaces.IServiceRepository,
	paramsRepo interfaces.IPricingParametersRepository,
) *ProposalUseCase {
	return &ProposalUseCase{
		proposalRepo: proposalRepo,
		itemRepo:     itemRepo,
		clientRepo:   clientRepo,
		serviceRepo:  serviceRepo,
		paramsRepo:   paramsRepo,
	}
}

func (u *ProposalUseCase) Create(ctx context.Context, in CreateProposalInput) (entities.Proposal, error) {
	in.TenantID = strings.TrimSpace(in.TenantID)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.Title = strings.TrimSpace(in.Title)
	if in.TenantID == "" {
		return entities.Proposal{}, ErrInvalidTenantID
	}
	if in.ClientID == "" {
		return entities.Proposal{}, ErrInvalidClientID
	}
	if in.Title == "" {
		return entities.Proposal{}, ErrInvalidProposalTitle
	}

	client, err := u.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if client.ID == "" {
		return entities.Proposal{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:              uuid.NewString(),
		TenantID:        in.TenantID,
		ClientID:        in.ClientID,
		Title:           in.Title,
		Description:     in.Description,
		Status:          entities.ProposalStatusDraft,
		ValidityDays:    in.ValidityDays,
		Notes:           in.Notes,
		DiscountGeneral: in.DiscountGeneral,
		DisplacementFee: in.DisplacementFee,
		TotalValue:      decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.proposalRepo.Create(ctx, p)
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (ProposalWithItems, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProposalWithItems{}, ErrInvalidProposalID
	}

	p, err := u.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return ProposalWithItems{}, err
	}
	if p.ID == "" {
		return ProposalWithItems{}, ErrProposalNotFound
	}

	items, err := u.itemRepo.ListByProposalID(ctx, id)
	if err != nil {
		return ProposalWithItems{}, err
	}

	client, err := u.clientRepo.GetByID(ctx, p.ClientID)
	if err != nil {
		return ProposalWithItems{}, err
	}

	return ProposalWithItems{Proposal: p, Items: items, Client: client}, nil
}

func (u *ProposalUseCase) ListByTenantID(ctx context.Context, tenantID string) ([]entities.Proposal, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.proposalRepo.ListByTenantID(ctx, tenantID)
}

func (u *ProposalUseCase) Update(ctx context.Context, in UpdateProposalInput) (entities.Proposal, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ID == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.proposalRepo.GetByID(ctx, in.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}

	totalsAffected := false
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return entities.Proposal{}, ErrInvalidProposalTitle
		}
		p.Title = title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Status != nil {
		if !in.Status.IsValid() {
			return entities.Proposal{}, ErrInvalidProposalStatus
		}
		p.Status = *in.Status
	}
	if in.ValidityDays != nil {
		p.ValidityDays = *in.ValidityDays
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if in.DiscountGeneral != nil {
		p.DiscountGeneral = *in.DiscountGeneral
		totalsAffected = true
	}
	if in.DisplacementFee != nil {
		p.DisplacementFee = *in.DisplacementFee
		totalsAffected = true
	}
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.proposalRepo.Update(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}

	// Discount and fee feed the derived total, so a change to either one
	// triggers the same recalculation an item mutation would.
	if totalsAffected {
		if err := u.RecalculateTotal(ctx, p.ID); err != nil {
			return entities.Proposal{}, err
		}
		return u.proposalRepo.GetByID(ctx, p.ID)
	}
	return updated, nil
}

// Delete removes a proposal and cascades to its items. Items go first so a
// failed run never leaves orphan items behind a missing proposal.
func (u *ProposalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProposalID
	}

	p, err := u.proposalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProposalNotFound
	}

	if err := u.itemRepo.DeleteByProposalID(ctx, id); err != nil {
		return err
	}
	return u.proposalRepo.DeleteByID(ctx, id)
}

func (u *ProposalUseCase) AddItem(ctx context.Context, in AddItemInput) (entities.ProposalItem, error) {
	in.ProposalID = strings.TrimSpace(in.ProposalID)
	in.ServiceID = strings.TrimSpace(in.ServiceID)
	if in.ProposalID == "" {
		return entities.ProposalItem{}, ErrInvalidProposalID
	}
	if in.ServiceID == "" {
		return entities.ProposalItem{}, ErrInvalidServiceID
	}
	if in.Quantity <= 0 {
		return entities.ProposalItem{}, ErrInvalidQuantity
	}

	p, err := u.proposalRepo.GetByID(ctx, in.ProposalID)
	if err != nil {
		return entities.ProposalItem{}, err
	}
	if p.ID == "" {
		return entities.ProposalItem{}, ErrProposalNotFound
	}

	service, err := u.serviceRepo.GetByID(ctx, in.ServiceID)
	if err != nil {
		return entities.ProposalItem{}, err
	}
	if service.ID == "" {
		return entities.ProposalItem{}, ErrServiceNotFound
	}

	client, err := u.clientRepo.GetByID(ctx, p.ClientID)
	if err != nil {
		return entities.ProposalItem{}, err
	}
	if client.ID == "" {
		return entities.ProposalItem{}, ErrClientNotFound
	}

	params, err := u.paramsRepo.GetCurrentByTenantID(ctx, p.TenantID, time.Now().UTC())
	if err != nil {
		return entities.ProposalItem{}, err
	}
	if params.ID == "" {
		return entities.ProposalItem{}, ErrPricingParametersNotFound
	}

	taxRate := pricing.TaxRateForRegime(client.TaxRegime, params)
	unitPrice, err := loadedTechnicalHour(params, taxRate)
	if err != nil {
		return entities.ProposalItem{}, err
	}

	hours := in.EstimatedHours
	if hours.Sign() <= 0 {
		hours = service.EstimatedHours
	}

	// Snapshots: the technical hour and the tier percent are resolved once,
	// here, and never refreshed when parameters change later.
	volumeDiscount := pricing.VolumeDiscountPercent(in.Quantity, params)

	total := pricing.ItemTotal(pricing.ItemInput{
		BasePrice:              unitPrice,
		EstimatedHours:         hours,
		Quantity:               in.Quantity,
		PersonalizationPercent: in.AdjustmentPersonalization,
		RiskPercent:            in.AdjustmentRisk,
		SeniorityPercent:       in.AdjustmentSeniority,
		VolumeDiscountPercent:  volumeDiscount,
	}).Round(2)
	if total.Sign() < 0 {
		log.Printf("[proposal][usecase] warning: negative item total proposal_id=%s service_id=%s total=%s", in.ProposalID, in.ServiceID, total)
	}

	item := entities.ProposalItem{
		ID:                        uuid.NewString(),
		ProposalID:                in.ProposalID,
		ServiceID:                 in.ServiceID,
		Quantity:                  in.Quantity,
		UnitPrice:                 unitPrice,
		EstimatedHours:            hours,
		AdjustmentPersonalization: in.AdjustmentPersonalization,
		AdjustmentRisk:            in.AdjustmentRisk,
		AdjustmentSeniority:       in.AdjustmentSeniority,
		VolumeDiscount:            volumeDiscount,
		TotalValue:                total,
		CreatedAt:                 time.Now().UTC(),
	}

	created, err := u.itemRepo.Create(ctx, item)
	if err != nil {
		return entities.ProposalItem{}, err
	}

	if err := u.RecalculateTotal(ctx, in.ProposalID); err != nil {
		return entities.ProposalItem{}, err
	}
	return created, nil
}

func (u *ProposalUseCase) UpdateItem(ctx context.Context, in UpdateItemInput) (entities.ProposalItem, error) {
	in.ProposalID = strings.TrimSpace(in.ProposalID)
	in.ItemID = strings.TrimSpace(in.ItemID)
	if in.ProposalID == "" {
		return entities.ProposalItem{}, ErrInvalidProposalID
	}
	if in.ItemID == "" {
		return entities.ProposalItem{}, ErrInvalidProposalItemID
	}

	item, err := u.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return entities.ProposalItem{}, err
	}
	if item.ID == "" || item.ProposalID != in.ProposalID {
		return entities.ProposalItem{}, ErrProposalItemNotFound
	}

	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return entities.ProposalItem{}, ErrInvalidQuantity
		}
		item.Quantity = *in.Quantity
	}
	if in.EstimatedHours != nil {
		item.EstimatedHours = *in.EstimatedHours
	}
	if in.AdjustmentPersonalization != nil {
		item.AdjustmentPersonalization = *in.AdjustmentPersonalization
	}
	if in.AdjustmentRisk != nil {
		item.AdjustmentRisk = *in.AdjustmentRisk
	}
	if in.AdjustmentSeniority != nil {
		item.AdjustmentSeniority = *in.AdjustmentSeniority
	}

	// The unit price and the volume discount stay locked to the quoting-time
	// snapshots; only the multiplication is redone.
	item.TotalValue = pricing.ItemTotal(pricing.ItemInput{
		BasePrice:              item.UnitPrice,
		EstimatedHours:         item.EstimatedHours,
		Quantity:               item.Quantity,
		PersonalizationPercent: item.AdjustmentPersonalization,
		RiskPercent:            item.AdjustmentRisk,
		SeniorityPercent:       item.AdjustmentSeniority,
		VolumeDiscountPercent:  item.VolumeDiscount,
	}).Round(2)
	if item.TotalValue.Sign() < 0 {
		log.Printf("[proposal][usecase] warning: negative item total proposal_id=%s item_id=%s total=%s", in.ProposalID, in.ItemID, item.TotalValue)
	}

	updated, err := u.itemRepo.Update(ctx, item)
	if err != nil {
		return entities.ProposalItem{}, err
	}

	if err := u.RecalculateTotal(ctx, in.ProposalID); err != nil {
		return entities.ProposalItem{}, err
	}
	return updated, nil
}

func (u *ProposalUseCase) RemoveItem(ctx context.Context, proposalID, itemID string) error {
	proposalID = strings.TrimSpace(proposalID)
	itemID = strings.TrimSpace(itemID)
	if proposalID == "" {
		return ErrInvalidProposalID
	}
	if itemID == "" {
		return ErrInvalidProposalItemID
	}

	item, err := u.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ID == "" || item.ProposalID != proposalID {
		return ErrProposalItemNotFound
	}

	if err := u.itemRepo.DeleteByID(ctx, itemID); err != nil {
		return err
	}
	return u.RecalculateTotal(ctx, proposalID)
}

// RecalculateTotal rereads the proposal's items, sums their stored totals
// (item totals are snapshots, they are not recomputed here) and rewrites
// the proposal total.
//
// A missing proposal is a no-op: during a cascade delete the trailing
// recalculation legitimately finds nothing to update. On any read failure
// nothing is written, so the previously stored total survives intact.
func (u *ProposalUseCase) RecalculateTotal(ctx context.Context, proposalID string) error {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return ErrInvalidProposalID
	}

	p, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return nil
	}

	items, err := u.itemRepo.ListByProposalID(ctx, proposalID)
	if err != nil {
		return err
	}

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalValue)
	}

	total := pricing.ProposalTotal(sum, p.DiscountGeneral, p.DisplacementFee).Round(2)
	if _, err := u.proposalRepo.SetTotalByID(ctx, proposalID, total); err != nil {
		return err
	}
	return nil
}
