package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/domain/billing"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBillingHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/payments", h.RecordPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/payments", bytes.NewBufferString(`{"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "JO-9999", 500.0, "cash", "", gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, usecase.ErrJobOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-9999/payments", bytes.NewBufferString(`{"amount":500,"method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/payments", h.RecordPayment)

		now := time.Now().UTC()
		uc.EXPECT().RecordPayment(gomock.Any(), "JO-1001", 500.0, "pix", "", gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{ID: "pay-1", JobOrderID: "jo-1", Amount: 500, Method: "pix", PaidAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/payments", bytes.NewBufferString(`{"amount":500,"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "pay-1" {
			t.Fatalf("expected payment id pay-1, got %v", resp["id"])
		}
	})
}

func TestBillingHandler_SetDiscount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing discount field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/discount", h.SetDiscount)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/discount", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ceiling exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/discount", h.SetDiscount)

		uc.EXPECT().SetDiscount(gomock.Any(), "JO-1001", 400.0, gomock.Any()).Return(entities.JobOrder{}, billing.ErrDiscountExceedsCeiling)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/discount", bytes.NewBufferString(`{"discount":400}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("role propagated from auth context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/discount", func(c *gin.Context) {
			c.Set(middleware.ContextUserRole, "manager")
			h.SetDiscount(c)
		})

		uc.EXPECT().SetDiscount(gomock.Any(), "JO-1001", 100.0, "manager").Return(entities.JobOrder{OrderNumber: "JO-1001", Discount: 100}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/discount", bytes.NewBufferString(`{"discount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBillingHandler_Refund(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not eligible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/refund", h.Refund)

		uc.EXPECT().Refund(gomock.Any(), "JO-1001", 500.0, gomock.Any()).Return(entities.JobOrder{}, usecase.ErrRefundNotEligible)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/refund", bytes.NewBufferString(`{"amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("exceeds collected total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/refund", h.Refund)

		uc.EXPECT().Refund(gomock.Any(), "JO-1001", 9000.0, gomock.Any()).Return(entities.JobOrder{}, billing.ErrRefundExceedsPayments)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/refund", bytes.NewBufferString(`{"amount":9000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("partial application reported as internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/refund", h.Refund)

		uc.EXPECT().Refund(gomock.Any(), "JO-1001", 700.0, gomock.Any()).Return(entities.JobOrder{}, usecase.ErrRefundPartiallyApplied)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/refund", bytes.NewBufferString(`{"amount":700}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["code"] != "REFUND_PARTIALLY_APPLIED" {
			t.Fatalf("expected code REFUND_PARTIALLY_APPLIED, got %v", resp["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/refund", h.Refund)

		uc.EXPECT().Refund(gomock.Any(), "JO-1001", 500.0, gomock.Any()).Return(entities.JobOrder{OrderNumber: "JO-1001", PaymentStatusLabel: "Fully Refunded"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/refund", bytes.NewBufferString(`{"amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillingHandler_AdjustAndDeletePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("adjust unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.PATCH("/v1/payments/:payment_id", h.AdjustPayment)

		uc.EXPECT().AdjustPayment(gomock.Any(), "pay-404", 300.0).Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/payments/pay-404", bytes.NewBufferString(`{"amount":300}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingUseCase(ctrl)
		h := NewBillingHandler(uc)

		r := gin.New()
		r.DELETE("/v1/payments/:payment_id", h.DeletePayment)

		uc.EXPECT().DeletePayment(gomock.Any(), "pay-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestBillingHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingUseCase(ctrl)
	h := NewBillingHandler(uc)

	r := gin.New()
	r.GET("/v1/job-orders/:order_number/payments", h.ListPayments)

	uc.EXPECT().ListPayments(gomock.Any(), "JO-1001").Return([]entities.PaymentRecord{
		{ID: "pay-1", Amount: 500, Method: "pix"},
		{ID: "pay-2", Amount: 900, Method: "cash"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/job-orders/JO-1001/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(resp))
	}
}
