package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"consultoria_xpto/internal/domain/entities"
	mock_interfaces "consultoria_xpto/internal/usecase/interfaces/mocks"
)

type proposalMocks struct {
	proposalRepo *mock_interfaces.MockIProposalRepository
	itemRepo     *mock_interfaces.MockIProposalItemRepository
	clientRepo   *mock_interfaces.MockIClientRepository
	serviceRepo  *mock_interfaces.MockIServiceRepository
	paramsRepo   *mock_interfaces.MockIPricingParametersRepository
}

func newProposalUseCaseWithMocks(ctrl *gomock.Controller) (*ProposalUseCase, proposalMocks) {
	m := proposalMocks{
		proposalRepo: mock_interfaces.NewMockIProposalRepository(ctrl),
		itemRepo:     mock_interfaces.NewMockIProposalItemRepository(ctrl),
		clientRepo:   mock_interfaces.NewMockIClientRepository(ctrl),
		serviceRepo:  mock_interfaces.NewMockIServiceRepository(ctrl),
		paramsRepo:   mock_interfaces.NewMockIPricingParametersRepository(ctrl),
	}
	uc := NewProposalUseCase(m.proposalRepo, m.itemRepo, m.clientRepo, m.serviceRepo, m.paramsRepo)
	return uc, m
}

func referenceParams() entities.PricingParameters {
	return entities.PricingParameters{
		ID:                          "params-1",
		TenantID:                    "tenant-1",
		MonthlyFixedCosts:           dec("5000"),
		MonthlyProLabore:            dec("7000"),
		ProductiveHoursPerMonth:     dec("160"),
		TaxSimplesNacionalPercent:   dec("14.5"),
		VolumeDiscount6To15Percent:  dec("5"),
		VolumeDiscount16To30Percent: dec("10"),
		VolumeDiscount30PlusPercent: dec("15"),
	}
}

func TestProposalUseCase_RecalculateTotal(t *testing.T) {
	t.Run("aggregation scenario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		p := entities.Proposal{
			ID:              "prop-1",
			DiscountGeneral: dec("10"),
			DisplacementFee: dec("200.00"),
		}
		items := []entities.ProposalItem{
			{ID: "item-1", ProposalID: "prop-1", TotalValue: dec("1000.00")},
			{ID: "item-2", ProposalID: "prop-1", TotalValue: dec("2500.00")},
		}

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		m.itemRepo.EXPECT().ListByProposalID(gomock.Any(), "prop-1").Return(items, nil)
		m.proposalRepo.EXPECT().SetTotalByID(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, total decimal.Decimal) (entities.Proposal, error) {
				if !total.Equal(dec("3350.00")) {
					t.Fatalf("expected total 3350.00, got %s", total)
				}
				return p, nil
			},
		)

		if err := uc.RecalculateTotal(context.Background(), "prop-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("idempotent without intervening mutations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		p := entities.Proposal{ID: "prop-1", DiscountGeneral: dec("10"), DisplacementFee: dec("200.00")}
		items := []entities.ProposalItem{{ID: "item-1", ProposalID: "prop-1", TotalValue: dec("3500.00")}}

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil).Times(2)
		m.itemRepo.EXPECT().ListByProposalID(gomock.Any(), "prop-1").Return(items, nil).Times(2)

		var written []decimal.Decimal
		m.proposalRepo.EXPECT().SetTotalByID(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, total decimal.Decimal) (entities.Proposal, error) {
				written = append(written, total)
				return p, nil
			},
		).Times(2)

		for i := 0; i < 2; i++ {
			if err := uc.RecalculateTotal(context.Background(), "prop-1"); err != nil {
				t.Fatalf("run %d: unexpected error: %v", i, err)
			}
		}
		if len(written) != 2 || !written[0].Equal(written[1]) {
			t.Fatalf("expected identical totals, got %v", written)
		}
		if !written[0].Equal(dec("3350.00")) {
			t.Fatalf("expected 3350.00, got %s", written[0])
		}
	})

	t.Run("missing proposal is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Proposal{}, nil)

		if err := uc.RecalculateTotal(context.Background(), "gone"); err != nil {
			t.Fatalf("expected no-op, got %v", err)
		}
	})

	t.Run("item read failure writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		m.itemRepo.EXPECT().ListByProposalID(gomock.Any(), "prop-1").Return(nil, errors.New("db"))

		err := uc.RecalculateTotal(context.Background(), "prop-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProposalUseCase_AddItem(t *testing.T) {
	t.Run("invalid inputs", func(t *testing.T) {
		uc, _ := newProposalUseCaseWithMocks(gomock.NewController(t))

		_, err := uc.AddItem(context.Background(), AddItemInput{ServiceID: "svc-1", Quantity: 1})
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
		_, err = uc.AddItem(context.Background(), AddItemInput{ProposalID: "prop-1", Quantity: 1})
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
		_, err = uc.AddItem(context.Background(), AddItemInput{ProposalID: "prop-1", ServiceID: "svc-1", Quantity: 0})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, err := uc.AddItem(context.Background(), AddItemInput{ProposalID: "prop-1", ServiceID: "svc-1", Quantity: 1})
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("missing parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(
			entities.Proposal{ID: "prop-1", TenantID: "tenant-1", ClientID: "client-1"}, nil)
		m.serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1"}, nil)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(
			entities.Client{ID: "client-1", TaxRegime: entities.TaxRegimeSimplesNacional}, nil)
		m.paramsRepo.EXPECT().GetCurrentByTenantID(gomock.Any(), "tenant-1", gomock.Any()).Return(entities.PricingParameters{}, nil)

		_, err := uc.AddItem(context.Background(), AddItemInput{ProposalID: "prop-1", ServiceID: "svc-1", Quantity: 1})
		if !errors.Is(err, ErrPricingParametersNotFound) {
			t.Fatalf("expected ErrPricingParametersNotFound, got %v", err)
		}
	})

	t.Run("end to end pricing chain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		proposal := entities.Proposal{ID: "prop-1", TenantID: "tenant-1", ClientID: "client-1"}
		service := entities.Service{ID: "svc-1", TenantID: "tenant-1", Name: "Treinamento Lean", EstimatedHours: dec("10")}
		client := entities.Client{ID: "client-1", TaxRegime: entities.TaxRegimeSimplesNacional}

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(proposal, nil).Times(2)
		m.serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(service, nil)
		m.clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.paramsRepo.EXPECT().GetCurrentByTenantID(gomock.Any(), "tenant-1", gomock.Any()).Return(referenceParams(), nil)

		var created entities.ProposalItem
		m.itemRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ProposalItem{})).DoAndReturn(
			func(_ context.Context, it entities.ProposalItem) (entities.ProposalItem, error) {
				// Technical hour 75 * 1.145 = 85.875; 85.875*10h*20 = 17175;
				// +10% +15% +30% then -10% volume => 25411.58.
				if it.ID == "" || it.ProposalID != "prop-1" || it.ServiceID != "svc-1" {
					t.Fatalf("unexpected item identity: %+v", it)
				}
				if !it.UnitPrice.Equal(dec("85.875")) {
					t.Fatalf("expected unit price 85.875, got %s", it.UnitPrice)
				}
				if !it.VolumeDiscount.Equal(dec("10")) {
					t.Fatalf("expected volume discount 10, got %s", it.VolumeDiscount)
				}
				if !it.TotalValue.Equal(dec("25411.58")) {
					t.Fatalf("expected total 25411.58, got %s", it.TotalValue)
				}
				created = it
				return it, nil
			},
		)
		m.itemRepo.EXPECT().ListByProposalID(gomock.Any(), "prop-1").DoAndReturn(
			func(_ context.Context, _ string) ([]entities.ProposalItem, error) {
				return []entities.ProposalItem{created}, nil
			},
		)
		m.proposalRepo.EXPECT().SetTotalByID(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, total decimal.Decimal) (entities.Proposal, error) {
				if !total.Equal(dec("25411.58")) {
					t.Fatalf("expected proposal total 25411.58, got %s", total)
				}
				return proposal, nil
			},
		)

		got, err := uc.AddItem(context.Background(), AddItemInput{
			ProposalID:                "prop-1",
			ServiceID:                 "svc-1",
			Quantity:                  20,
			AdjustmentPersonalization: dec("10"),
			AdjustmentRisk:            dec("15"),
			AdjustmentSeniority:       dec("30"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatalf("expected generated item id")
		}
	})
}

func TestProposalUseCase_RemoveItem(t *testing.T) {
	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.ProposalItem{}, nil)

		err := uc.RemoveItem(context.Background(), "prop-1", "item-1")
		if !errors.Is(err, ErrProposalItemNotFound) {
			t.Fatalf("expected ErrProposalItemNotFound, got %v", err)
		}
	})

	t.Run("item from another proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(
			entities.ProposalItem{ID: "item-1", ProposalID: "other"}, nil)

		err := uc.RemoveItem(context.Background(), "prop-1", "item-1")
		if !errors.Is(err, ErrProposalItemNotFound) {
			t.Fatalf("expected ErrProposalItemNotFound, got %v", err)
		}
	})

	t.Run("removing last item leaves displacement fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		p := entities.Proposal{ID: "prop-1", DiscountGeneral: dec("10"), DisplacementFee: dec("200.00")}

		m.itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(
			entities.ProposalItem{ID: "item-1", ProposalID: "prop-1", TotalValue: dec("1000.00")}, nil)
		m.itemRepo.EXPECT().DeleteByID(gomock.Any(), "item-1").Return(nil)
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		m.itemRepo.EXPECT().ListByProposalID(gomock.Any(), "prop-1").Return([]entities.ProposalItem{}, nil)
		m.proposalRepo.EXPECT().SetTotalByID(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, total decimal.Decimal) (entities.Proposal, error) {
				if !total.Equal(dec("200.00")) {
					t.Fatalf("expected 200.00, got %s", total)
				}
				return p, nil
			},
		)

		if err := uc.RemoveItem(context.Background(), "prop-1", "item-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_UpdateItem(t *testing.T) {
	t.Run("keeps snapshots and recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		stored := entities.ProposalItem{
			ID:             "item-1",
			ProposalID:     "prop-1",
			ServiceID:      "svc-1",
			Quantity:       20,
			UnitPrice:      dec("85.875"),
			EstimatedHours: dec("10"),
			VolumeDiscount: dec("10"),
			TotalValue:     dec("15457.50"),
		}
		p := entities.Proposal{ID: "prop-1"}

		m.itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(stored, nil)

		var updated entities.ProposalItem
		m.itemRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.ProposalItem{})).DoAndReturn(
			func(_ context.Context, it entities.ProposalItem) (entities.ProposalItem, error) {
				// 85.875 * 10 * 10 = 8587.50, minus the locked 10% volume
				// discount = 7728.75. The tier for quantity 10 would be 5%,
				// but the snapshot must win.
				if it.Quantity != 10 {
					t.Fatalf("expected quantity 10, got %d", it.Quantity)
				}
				if !it.VolumeDiscount.Equal(dec("10")) {
					t.Fatalf("volume discount snapshot changed: %s", it.VolumeDiscount)
				}
				if !it.UnitPrice.Equal(dec("85.875")) {
					t.Fatalf("unit price snapshot changed: %s", it.UnitPrice)
				}
				if !it.TotalValue.Equal(dec("7728.75")) {
					t.Fatalf("expected total 7728.75, got %s", it.TotalValue)
				}
				updated = it
				return it, nil
			},
		)
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		m.itemRepo.EXPECT().ListByProposalID(gomock.Any(), "prop-1").DoAndReturn(
			func(_ context.Context, _ string) ([]entities.ProposalItem, error) {
				return []entities.ProposalItem{updated}, nil
			},
		)
		m.proposalRepo.EXPECT().SetTotalByID(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, total decimal.Decimal) (entities.Proposal, error) {
				if !total.Equal(dec("7728.75")) {
					t.Fatalf("expected proposal total 7728.75, got %s", total)
				}
				return p, nil
			},
		)

		qty := 10
		got, err := uc.UpdateItem(context.Background(), UpdateItemInput{
			ProposalID: "prop-1",
			ItemID:     "item-1",
			Quantity:   &qty,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Quantity != 10 {
			t.Fatalf("expected quantity 10, got %d", got.Quantity)
		}
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.itemRepo.EXPECT().GetByID(gomock.Any(), "item-1").Return(
			entities.ProposalItem{ID: "item-1", ProposalID: "prop-1"}, nil)

		qty := 0
		_, err := uc.UpdateItem(context.Background(), UpdateItemInput{ProposalID: "prop-1", ItemID: "item-1", Quantity: &qty})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestProposalUseCase_Delete(t *testing.T) {
	t.Run("cascades items first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		gomock.InOrder(
			m.itemRepo.EXPECT().DeleteByProposalID(gomock.Any(), "prop-1").Return(nil),
			m.proposalRepo.EXPECT().DeleteByID(gomock.Any(), "prop-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), "prop-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Proposal{}, nil)

		if err := uc.Delete(context.Background(), "gone"); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_Update(t *testing.T) {
	t.Run("discount change triggers recalculation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		stored := entities.Proposal{ID: "prop-1", Title: "Proposta", DisplacementFee: dec("200.00")}

		first := m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(stored, nil)

		var saved entities.Proposal
		m.proposalRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if !p.DiscountGeneral.Equal(dec("10")) {
					t.Fatalf("expected discount 10, got %s", p.DiscountGeneral)
				}
				saved = p
				return p, nil
			},
		)
		// Recalculation pass.
		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").DoAndReturn(
			func(_ context.Context, _ string) (entities.Proposal, error) { return saved, nil },
		).Times(2).After(first)
		m.itemRepo.EXPECT().ListByProposalID(gomock.Any(), "prop-1").Return(
			[]entities.ProposalItem{{ID: "item-1", TotalValue: dec("3500.00")}}, nil)
		m.proposalRepo.EXPECT().SetTotalByID(gomock.Any(), "prop-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, total decimal.Decimal) (entities.Proposal, error) {
				if !total.Equal(dec("3350.00")) {
					t.Fatalf("expected 3350.00, got %s", total)
				}
				return saved, nil
			},
		)

		discount := dec("10")
		_, err := uc.Update(context.Background(), UpdateProposalInput{ID: "prop-1", DiscountGeneral: &discount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newProposalUseCaseWithMocks(ctrl)

		m.proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1", Title: "x"}, nil)

		bad := entities.ProposalStatus("wip")
		_, err := uc.Update(context.Background(), UpdateProposalInput{ID: "prop-1", Status: &bad})
		if !errors.Is(err, ErrInvalidProposalStatus) {
			t.Fatalf("expected ErrInvalidProposalStatus, got %v", err)
		}
	})
}
