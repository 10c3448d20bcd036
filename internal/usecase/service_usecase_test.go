package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"consultoria_xpto/internal/domain/entities"
	mock_interfaces "consultoria_xpto/internal/usecase/interfaces/mocks"
)

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewServiceUseCase(nil)

		_, err := uc.Create(context.Background(), CreateServiceInput{Name: "Treinamento"})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
		_, err = uc.Create(context.Background(), CreateServiceInput{TenantID: "tenant-1", Name: "  "})
		if !errors.Is(err, ErrInvalidServiceName) {
			t.Fatalf("expected ErrInvalidServiceName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Name != "Treinamento Lean" || !s.IsActive {
					t.Fatalf("unexpected service: %+v", s)
				}
				if !s.EstimatedHours.Equal(dec("16")) {
					t.Fatalf("expected estimated hours 16, got %s", s.EstimatedHours)
				}
				return s, nil
			},
		)

		s, err := uc.Create(context.Background(), CreateServiceInput{
			TenantID:       "tenant-1",
			Category:       "Treinamento",
			Name:           "Treinamento Lean",
			Unit:           "Pessoa",
			EstimatedHours: dec("16"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.Service{}, nil)

		_, err := uc.Update(context.Background(), UpdateServiceInput{ID: "gone"})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("deactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(
			entities.Service{ID: "svc-1", Name: "Diagnóstico", IsActive: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.IsActive {
					t.Fatalf("expected service deactivated")
				}
				return s, nil
			},
		)

		inactive := false
		_, err := uc.Update(context.Background(), UpdateServiceInput{ID: "svc-1", IsActive: &inactive})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
