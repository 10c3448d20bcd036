package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"consultoria_xpto/internal/adapter/http/handlers/mocks"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/domain/pricing"
	"consultoria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPricingHandler_TechnicalHour(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/technical-hour", h.TechnicalHour)

		uc.EXPECT().CalculateTechnicalHour(gomock.Any(), "tenant-1", entities.TaxRegimeSimplesNacional).Return(usecase.TechnicalHourResult{
			TechnicalHour: decimal.RequireFromString("85.88"),
			TaxRate:       decimal.RequireFromString("14.5"),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/technical-hour?tax_regime=Simples+Nacional", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			TechnicalHour json.Number `json:"technical_hour"`
			TaxRate       json.Number `json:"tax_rate"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.TechnicalHour.String() != "85.88" || body.TaxRate.String() != "14.5" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("parameters not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/technical-hour", h.TechnicalHour)

		uc.EXPECT().CalculateTechnicalHour(gomock.Any(), "tenant-1", gomock.Any()).Return(usecase.TechnicalHourResult{}, usecase.ErrPricingParametersNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/technical-hour?tax_regime=MEI", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestPricingHandler_ItemValue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/item-value", h.ItemValue)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/item-value", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/item-value", h.ItemValue)

		uc.EXPECT().CalculateItemValue(gomock.Any(), gomock.Any()).Return(usecase.ItemQuote{
			ServiceID:      "svc-1",
			ServiceName:    "Diagnóstico",
			UnitPrice:      decimal.RequireFromString("858.75"),
			VolumeDiscount: decimal.RequireFromString("10"),
			TotalValue:     decimal.RequireFromString("25411.58"),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/item-value", bytes.NewBufferString(`{"service_id":"svc-1","quantity":20,"tax_regime":"Simples Nacional"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			TotalValue json.Number `json:"total_value"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.TotalValue.String() != "25411.58" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		h := NewPricingHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/item-value", h.ItemValue)

		uc.EXPECT().CalculateItemValue(gomock.Any(), gomock.Any()).Return(usecase.ItemQuote{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/item-value", bytes.NewBufferString(`{"service_id":"gone","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapPricingError(t *testing.T) {
	if got := mapPricingError(usecase.ErrInvalidQuantity); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPricingError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPricingError(usecase.ErrPricingParametersNotFound); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapPricingError(pricing.ErrNonPositiveProductiveHours); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapPricingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
