package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"consultoria_xpto/internal/adapter/http/handlers/mocks"
	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPricingParametersHandler_CreateParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingParametersUseCase(ctrl)
		h := NewPricingParametersHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/parameters", h.CreateParameters)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/parameters", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non positive productive hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingParametersUseCase(ctrl)
		h := NewPricingParametersHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/parameters", h.CreateParameters)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PricingParameters{}, usecase.ErrInvalidProductiveHours)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/parameters", bytes.NewBufferString(`{"productive_hours_per_month":-1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingParametersUseCase(ctrl)
		h := NewPricingParametersHandler(uc)

		r := gin.New()
		r.POST("/v1/pricing/parameters", h.CreateParameters)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PricingParameters{
			ID:                      "params-1",
			TenantID:                "tenant-1",
			ProductiveHoursPerMonth: decimal.RequireFromString("160"),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/pricing/parameters", bytes.NewBufferString(`{"monthly_fixed_costs":5000,"monthly_pro_labore":7000,"productive_hours_per_month":160}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "params-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPricingParametersHandler_GetCurrentParameters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingParametersUseCase(ctrl)
		h := NewPricingParametersHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/parameters/current", h.GetCurrentParameters)

		uc.EXPECT().GetCurrent(gomock.Any(), "tenant-1").Return(entities.PricingParameters{}, usecase.ErrPricingParametersNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/parameters/current", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("version history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingParametersUseCase(ctrl)
		h := NewPricingParametersHandler(uc)

		r := gin.New()
		r.GET("/v1/pricing/parameters", h.ListParameters)

		uc.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.PricingParameters{
			{ID: "params-2", TenantID: "tenant-1"},
			{ID: "params-1", TenantID: "tenant-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pricing/parameters", nil)
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 || body[0]["id"] != "params-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
