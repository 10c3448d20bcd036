package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing tenant header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, usecase.ErrInvalidTenantID)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client_id":"client-1","title":"Proposta Lean"}`))
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
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateProposalInput) (entities.Proposal, error) {
				if in.TenantID != "tenant-1" || in.ClientID != "client-1" || in.Title != "Proposta Lean" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Proposal{ID: "prop-1", TenantID: in.TenantID, ClientID: in.ClientID, Title: in.Title, Status: entities.ProposalStatusDraft}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals", bytes.NewBufferString(`{"client_id":"client-1","title":"Proposta Lean"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(TenantHeader, "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "prop-1" || body["status"] != "draft" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_GetProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		uc.EXPECT().GetByID(gomock.Any(), "gone").Return(usecase.ProposalWithItems{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/gone", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("detail includes items and client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		detail := usecase.ProposalWithItems{
			Proposal: entities.Proposal{ID: "prop-1", Title: "Proposta Lean", Status: entities.ProposalStatusDraft, TotalValue: decimal.RequireFromString("3350")},
			Items: []entities.ProposalItem{
				{ID: "item-1", ProposalID: "prop-1", Quantity: 2, TotalValue: decimal.RequireFromString("1000")},
			},
			Client: entities.Client{ID: "client-1", Name: "ACME", TaxRegime: entities.TaxRegimeSimplesNacional},
		}
		uc.EXPECT().GetByID(gomock.Any(), "prop-1").Return(detail, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/proposals/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			ID     string `json:"id"`
			Client struct {
				Name string `json:"name"`
			} `json:"client"`
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
			TotalValue json.Number `json:"total_value"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.ID != "prop-1" || body.Client.Name != "ACME" || len(body.Items) != 1 || body.TotalValue.String() != "3350" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add item success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.AddItemInput) (entities.ProposalItem, error) {
				if in.ProposalID != "prop-1" || in.ServiceID != "svc-1" || in.Quantity != 20 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ProposalItem{ID: "item-1", ProposalID: in.ProposalID, ServiceID: in.ServiceID, Quantity: in.Quantity}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/items", bytes.NewBufferString(`{"service_id":"svc-1","quantity":20}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("add item without pricing parameters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.POST("/v1/proposals/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(entities.ProposalItem{}, usecase.ErrPricingParametersNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/items", bytes.NewBufferString(`{"service_id":"svc-1","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("remove item success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.DELETE("/v1/proposals/:id/items/:item_id", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "prop-1", "item-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/proposals/prop-1/items/item-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("update item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/items/:item_id", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).Return(entities.ProposalItem{}, usecase.ErrProposalItemNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/proposals/prop-1/items/gone", bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProposalHandler_RecalculateTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc)

	r := gin.New()
	r.POST("/v1/proposals/:id/recalculate", h.RecalculateTotal)

	uc.EXPECT().RecalculateTotal(gomock.Any(), "prop-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/proposals/prop-1/recalculate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapProposalError(t *testing.T) {
	if got := mapProposalError(usecase.ErrInvalidProposalTitle); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapProposalError(usecase.ErrProposalNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProposalError(usecase.ErrProposalItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProposalError(usecase.ErrClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapProposalError(usecase.ErrPricingParametersNotFound); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapProposalError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
