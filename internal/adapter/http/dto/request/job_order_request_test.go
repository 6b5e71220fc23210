package request

import (
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func TestJobOrderUpsertRequest_ToEntity(t *testing.T) {
	started := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	r := JobOrderUpsertRequest{
		ID:              " id-1 ",
		OrderNumber:     "JO-3001",
		OrderType:       " repair ",
		PlateNumber:     " ABC-1234 ",
		WorkStatus:      " Open ",
		WorkStatusLabel: " Inprogress ",
		Billing: &BillingRequest{
			TotalAmount:   500,
			Discount:      50,
			PaymentMethod: " pix ",
			BillID:        " bill-9 ",
		},
		Services: []ServiceLineRequest{
			{Name: "Brake Pads", Price: 500, Status: " Completed "},
		},
		Roadmap: []RoadmapStepRequest{
			{Stage: " New Request ", Status: " Completed ", StartedAt: &started},
			{Stage: "Inspection", Status: "ACTIVE", ResponsibleActor: " inspector "},
		},
	}

	o := r.ToEntity()
	if o.ID != "id-1" || o.OrderType != "repair" || o.PlateNumber != "ABC-1234" {
		t.Fatalf("identity fields not trimmed: %+v", o)
	}
	if o.WorkStatus != entities.WorkStatusOpen {
		t.Fatalf("work status not lowercased: %q", o.WorkStatus)
	}
	if o.WorkStatusLabel != "Inprogress" {
		t.Fatalf("label lost: %q", o.WorkStatusLabel)
	}
	if o.Services[0].Status != entities.ServiceLineStatusCompleted {
		t.Fatalf("line status not normalized: %q", o.Services[0].Status)
	}

	t.Run("nested billing wins over flattened fields", func(t *testing.T) {
		if o.TotalAmount != 500 || o.Discount != 50 {
			t.Fatalf("billing amounts not taken from the block: %.2f/%.2f", o.TotalAmount, o.Discount)
		}
		if o.PaymentMethod != "pix" {
			t.Fatalf("payment method not trimmed: %q", o.PaymentMethod)
		}
		if o.BillID != "bill-9" {
			t.Fatalf("bill id dropped: %q", o.BillID)
		}
	})

	t.Run("roadmap carried through", func(t *testing.T) {
		if len(o.Roadmap) != 2 {
			t.Fatalf("expected 2 steps, got %d", len(o.Roadmap))
		}
		if o.Roadmap[0].Stage != "New Request" || o.Roadmap[0].Status != entities.StepStatusCompleted {
			t.Fatalf("first step mangled: %+v", o.Roadmap[0])
		}
		if o.Roadmap[0].StartedAt == nil || !o.Roadmap[0].StartedAt.Equal(started) {
			t.Fatalf("start time lost: %+v", o.Roadmap[0])
		}
		if o.Roadmap[1].Status != entities.StepStatusActive || o.Roadmap[1].ResponsibleActor != "inspector" {
			t.Fatalf("second step mangled: %+v", o.Roadmap[1])
		}
	})
}

func TestJobOrderUpsertRequest_ToEntityFlattenedMoney(t *testing.T) {
	r := JobOrderUpsertRequest{
		OrderNumber:   "JO-3002",
		TotalAmount:   200,
		Discount:      20,
		PaymentMethod: "cash",
		Services:      []ServiceLineRequest{{Name: "Oil Change", Price: 200}},
	}
	o := r.ToEntity()
	if o.TotalAmount != 200 || o.Discount != 20 || o.PaymentMethod != "cash" {
		t.Fatalf("flattened money fields not applied: %+v", o)
	}
	if o.BillID != "" {
		t.Fatalf("bill id should be empty without a billing block, got %q", o.BillID)
	}
}
