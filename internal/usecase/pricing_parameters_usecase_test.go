package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"consultoria_xpto/internal/domain/entities"
	mock_interfaces "consultoria_xpto/internal/usecase/interfaces/mocks"
)

func TestPricingParametersUseCase_Create(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewPricingParametersUseCase(nil)
		_, err := uc.Create(context.Background(), CreateParametersInput{})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("non positive productive hours rejected", func(t *testing.T) {
		uc := NewPricingParametersUseCase(nil)
		_, err := uc.Create(context.Background(), CreateParametersInput{
			TenantID:                "tenant-1",
			ProductiveHoursPerMonth: dec("0"),
		})
		if !errors.Is(err, ErrInvalidProductiveHours) {
			t.Fatalf("expected ErrInvalidProductiveHours, got %v", err)
		}
	})

	t.Run("new version with default effective date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingParametersRepository(ctrl)
		uc := NewPricingParametersUseCase(repo)

		before := time.Now().UTC()
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PricingParameters{})).DoAndReturn(
			func(_ context.Context, p entities.PricingParameters) (entities.PricingParameters, error) {
				if p.ID == "" || p.TenantID != "tenant-1" {
					t.Fatalf("unexpected parameters: %+v", p)
				}
				if p.EffectiveDate.Before(before) {
					t.Fatalf("expected effective date defaulted to now, got %s", p.EffectiveDate)
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateParametersInput{
			TenantID:                "tenant-1",
			MonthlyFixedCosts:       dec("5000"),
			MonthlyProLabore:        dec("7000"),
			ProductiveHoursPerMonth: dec("160"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("future effective date preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingParametersRepository(ctrl)
		uc := NewPricingParametersUseCase(repo)

		future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PricingParameters{})).DoAndReturn(
			func(_ context.Context, p entities.PricingParameters) (entities.PricingParameters, error) {
				if !p.EffectiveDate.Equal(future) {
					t.Fatalf("expected %s, got %s", future, p.EffectiveDate)
				}
				return p, nil
			},
		)

		_, err := uc.Create(context.Background(), CreateParametersInput{
			TenantID:                "tenant-1",
			ProductiveHoursPerMonth: dec("160"),
			EffectiveDate:           future,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPricingParametersUseCase_GetCurrent(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingParametersRepository(ctrl)
		uc := NewPricingParametersUseCase(repo)

		repo.EXPECT().GetCurrentByTenantID(gomock.Any(), "tenant-1", gomock.Any()).Return(entities.PricingParameters{}, nil)

		_, err := uc.GetCurrent(context.Background(), "tenant-1")
		if !errors.Is(err, ErrPricingParametersNotFound) {
			t.Fatalf("expected ErrPricingParametersNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPricingParametersRepository(ctrl)
		uc := NewPricingParametersUseCase(repo)

		repo.EXPECT().GetCurrentByTenantID(gomock.Any(), "tenant-1", gomock.Any()).Return(referenceParams(), nil)

		p, err := uc.GetCurrent(context.Background(), "tenant-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "params-1" {
			t.Fatalf("unexpected parameters: %+v", p)
		}
	})
}
