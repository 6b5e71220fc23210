package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/roadmap"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobOrderHandler_UpsertJobOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders", h.UpsertJobOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing services rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders", h.UpsertJobOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders", bytes.NewBufferString(`{"order_number":"JO-1001"}`))
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
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders", h.UpsertJobOrder)

		uc.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(entities.JobOrder{
			ID:          "jo-1",
			OrderNumber: "JO-1001",
			WorkStatus:  entities.WorkStatusOpen,
			TotalAmount: 450,
		}, nil)

		body := `{"order_number":"JO-1001","plate_number":"ABC-1234","services":[{"name":"Brake Pads","price":450}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["order_number"] != "JO-1001" {
			t.Fatalf("expected order_number JO-1001, got %v", resp["order_number"])
		}
	})
}

func TestJobOrderHandler_GetJobOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/job-orders/:order_number", h.GetJobOrder)

		uc.EXPECT().GetByOrderNumber(gomock.Any(), "JO-9999").Return(entities.JobOrder{}, usecase.ErrJobOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/job-orders/JO-9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with actor names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/job-orders/:order_number", h.GetJobOrder)

		o := entities.JobOrder{
			ID:          "jo-1",
			OrderNumber: "JO-1001",
			WorkStatus:  entities.WorkStatusOpen,
			Services: []entities.ServiceLineItem{
				{ID: "brake-pads-0", Name: "Brake Pads", Price: 450, AssignedTo: "tech-1"},
			},
		}
		uc.EXPECT().GetByOrderNumber(gomock.Any(), "JO-1001").Return(o, nil)
		uc.EXPECT().ActorNames(gomock.Any(), gomock.Any()).Return(map[string]string{"tech-1": "Carlos Souza"})

		req := httptest.NewRequest(http.MethodGet, "/v1/job-orders/JO-1001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestJobOrderHandler_ListJobOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("requires a filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/job-orders", h.ListJobOrders)

		req := httptest.NewRequest(http.MethodGet, "/v1/job-orders", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/job-orders", h.ListJobOrders)

		uc.EXPECT().ListByPlateNumber(gomock.Any(), "ABC-1234", 5).Return([]entities.JobOrder{{OrderNumber: "JO-1001"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/job-orders?plate=ABC-1234&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by status class", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/job-orders", h.ListJobOrders)

		uc.EXPECT().ListByStatusClass(gomock.Any(), "active", 0).Return([]entities.JobOrder{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/job-orders?status=active", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobOrderHandler_AdvanceStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), "JO-1001", "Ready", "attendant-1").Return(entities.JobOrder{}, roadmap.ErrInvalidTransition)

		body := `{"stage":"Ready","actor":"attendant-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/advance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), "JO-1001", "Teleport", gomock.Any()).Return(entities.JobOrder{}, roadmap.ErrUnknownStage)

		body := `{"stage":"Teleport"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/advance", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/advance", h.AdvanceStage)

		uc.EXPECT().AdvanceStage(gomock.Any(), "JO-1001", "Service Operation", "attendant-1").Return(entities.JobOrder{OrderNumber: "JO-1001", WorkStatus: entities.WorkStatusOpen}, nil)

		body := `{"stage":"Service Operation","actor":"attendant-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/advance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestJobOrderHandler_QualityDecision(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing approve flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/quality-decision", h.QualityDecision)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/quality-decision", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reject sends work back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/quality-decision", h.QualityDecision)

		uc.EXPECT().QualityDecision(gomock.Any(), "JO-1001", false, "qc-1").Return(entities.JobOrder{OrderNumber: "JO-1001"}, nil)

		body := `{"approve":false,"actor":"qc-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/quality-decision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobOrderHandler_CancelJobOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/cancel", h.CancelJobOrder)

		uc.EXPECT().Cancel(gomock.Any(), "JO-1001", gomock.Any()).Return(entities.JobOrder{}, usecase.ErrOrderAlreadyTerminal)

		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/cancel", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobOrderUseCase(ctrl)
		h := NewJobOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/job-orders/:order_number/cancel", h.CancelJobOrder)

		uc.EXPECT().Cancel(gomock.Any(), "JO-1001", "attendant-1").Return(entities.JobOrder{OrderNumber: "JO-1001", WorkStatus: entities.WorkStatusCancelled}, nil)

		body := `{"actor":"attendant-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/job-orders/JO-1001/cancel", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
