package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"consultoria_xpto/internal/domain/entities"
	mock_interfaces "consultoria_xpto/internal/usecase/interfaces/mocks"
)

func TestClientUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewClientUseCase(nil)

		_, err := uc.Create(context.Background(), CreateClientInput{Name: "ACME", TaxRegime: entities.TaxRegimeMEI})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
		_, err = uc.Create(context.Background(), CreateClientInput{TenantID: "tenant-1", TaxRegime: entities.TaxRegimeMEI})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
		_, err = uc.Create(context.Background(), CreateClientInput{TenantID: "tenant-1", Name: "ACME", TaxRegime: "Cooperativa"})
		if !errors.Is(err, ErrInvalidTaxRegime) {
			t.Fatalf("expected ErrInvalidTaxRegime, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.TenantID != "tenant-1" || c.Name != "ACME" || c.TaxRegime != entities.TaxRegimeLucroPresumido {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		c, err := uc.Create(context.Background(), CreateClientInput{
			TenantID:  "tenant-1",
			Name:      " ACME ",
			TaxRegime: entities.TaxRegimeLucroPresumido,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("regime change validated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(
			entities.Client{ID: "client-1", Name: "ACME", TaxRegime: entities.TaxRegimeMEI}, nil)

		bad := entities.TaxRegime("Cooperativa")
		_, err := uc.Update(context.Background(), UpdateClientInput{ID: "client-1", TaxRegime: &bad})
		if !errors.Is(err, ErrInvalidTaxRegime) {
			t.Fatalf("expected ErrInvalidTaxRegime, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), UpdateClientInput{ID: "gone"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewClientUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
	repo.EXPECT().DeleteByID(gomock.Any(), "client-1").Return(nil)

	if err := uc.Delete(context.Background(), "client-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
