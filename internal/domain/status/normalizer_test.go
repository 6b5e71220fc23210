package status

import (
	"math/rand"
	"testing"

	"oficina_xpto/internal/domain/entities"
)

func TestDeriveWorkStatus(t *testing.T) {
	t.Run("label wins over enum", func(t *testing.T) {
		got := DeriveWorkStatus(entities.WorkStatusOpen, "  Waiting Parts ")
		if got != "Waiting Parts" {
			t.Fatalf("expected label to win, got %q", got)
		}
	})

	t.Run("enum table", func(t *testing.T) {
		cases := map[entities.WorkStatus]string{
			entities.WorkStatusOpen:       WorkNewRequest,
			entities.WorkStatusInProgress: WorkInprogress,
			entities.WorkStatusReady:      WorkReady,
			entities.WorkStatusCompleted:  WorkCompleted,
			entities.WorkStatusCancelled:  WorkCancelled,
			entities.WorkStatusDraft:      WorkDraft,
		}
		for enum, want := range cases {
			if got := DeriveWorkStatus(enum, ""); got != want {
				t.Fatalf("enum %q: expected %q, got %q", enum, want, got)
			}
		}
	})

	t.Run("unknown enum defaults to Inprogress", func(t *testing.T) {
		if got := DeriveWorkStatus("banana", ""); got != WorkInprogress {
			t.Fatalf("expected %q, got %q", WorkInprogress, got)
		}
		if got := DeriveWorkStatus("", ""); got != WorkInprogress {
			t.Fatalf("expected %q, got %q", WorkInprogress, got)
		}
	})
}

func TestWorkStatusFromDisplay(t *testing.T) {
	cases := map[string]entities.WorkStatus{
		"New Request": entities.WorkStatusOpen,
		"inprogress":  entities.WorkStatusInProgress,
		"READY":       entities.WorkStatusReady,
		"Completed":   entities.WorkStatusCompleted,
		"Cancelled":   entities.WorkStatusCancelled,
		"Draft":       entities.WorkStatusDraft,
		"whatever":    entities.WorkStatusInProgress,
	}
	for display, want := range cases {
		if got := WorkStatusFromDisplay(display); got != want {
			t.Fatalf("display %q: expected %q, got %q", display, want, got)
		}
	}
}

func TestDerivePaymentStatus(t *testing.T) {
	t.Run("refund label beats everything", func(t *testing.T) {
		got := DerivePaymentStatus(entities.PaymentStatusPaid, "Fully Refunded", Totals{Total: 100, Paid: 100})
		if got != PaymentFullyRefunded {
			t.Fatalf("expected %q, got %q", PaymentFullyRefunded, got)
		}
	})

	t.Run("known enum maps directly", func(t *testing.T) {
		cases := map[entities.PaymentStatus]string{
			entities.PaymentStatusPaid:    PaymentFullyPaid,
			entities.PaymentStatusPartial: PaymentPartiallyPaid,
			entities.PaymentStatusUnpaid:  PaymentUnpaid,
		}
		for enum, want := range cases {
			if got := DerivePaymentStatus(enum, "", Totals{}); got != want {
				t.Fatalf("enum %q: expected %q, got %q", enum, want, got)
			}
		}
	})

	t.Run("amounts decide when enum unknown", func(t *testing.T) {
		if got := DerivePaymentStatus("", "", Totals{Total: 100, Paid: 100, Balance: 0}); got != PaymentFullyPaid {
			t.Fatalf("expected %q, got %q", PaymentFullyPaid, got)
		}
		if got := DerivePaymentStatus("", "", Totals{Total: 100, Paid: 99.995, Balance: 0.005}); got != PaymentFullyPaid {
			t.Fatalf("epsilon: expected %q, got %q", PaymentFullyPaid, got)
		}
		if got := DerivePaymentStatus("", "", Totals{Total: 100, Paid: 40, Balance: 60}); got != PaymentPartiallyPaid {
			t.Fatalf("expected %q, got %q", PaymentPartiallyPaid, got)
		}
		if got := DerivePaymentStatus("", "", Totals{Total: 100, Paid: 0, Balance: 100}); got != PaymentUnpaid {
			t.Fatalf("expected %q, got %q", PaymentUnpaid, got)
		}
	})

	t.Run("fallback to label then Unpaid", func(t *testing.T) {
		if got := DerivePaymentStatus("", "Awaiting Insurance", Totals{}); got != "Awaiting Insurance" {
			t.Fatalf("expected label fallback, got %q", got)
		}
		if got := DerivePaymentStatus("", "", Totals{}); got != PaymentUnpaid {
			t.Fatalf("expected %q, got %q", PaymentUnpaid, got)
		}
	})
}

// Whenever the balance is within the currency epsilon the derivation must
// report Fully Paid, regardless of how total/paid were populated.
func TestDerivePaymentStatus_FullyPaidWhenBalanceSettled(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		total := rng.Float64() * 10000
		if total < 1 {
			total += 1
		}
		balance := rng.Float64() * EpsilonCurrency
		paid := total - balance
		got := DerivePaymentStatus("", "", Totals{Total: total, Paid: paid, Balance: balance})
		if got != PaymentFullyPaid {
			t.Fatalf("total=%.4f paid=%.4f balance=%.4f: expected %q, got %q", total, paid, balance, PaymentFullyPaid, got)
		}
	}
}

func TestRawRecordNormalize(t *testing.T) {
	name := " Oil Change "
	st := "completed"
	onum := "JO-1001"

	raw := RawRecord{
		OrderNumber: &onum,
		Services: []RawServiceLine{
			{Name: &name, Status: &st},
			{},
		},
		Roadmap: []RawRoadmapStep{{}},
	}
	o := raw.Normalize()

	if o.OrderNumber != "JO-1001" {
		t.Fatalf("expected trimmed order number, got %q", o.OrderNumber)
	}
	if o.WorkStatus != entities.WorkStatusInProgress {
		t.Fatalf("missing enum should default through inverse table, got %q", o.WorkStatus)
	}
	if o.Services[0].Name != "Oil Change" || o.Services[0].Status != entities.ServiceLineStatusCompleted {
		t.Fatalf("unexpected first line: %+v", o.Services[0])
	}
	if o.Services[1].Status != entities.ServiceLineStatusPending {
		t.Fatalf("missing line status should default to pending, got %q", o.Services[1].Status)
	}
	if o.Services[1].DisplayOrder != 1 {
		t.Fatalf("missing display order should fall back to position, got %d", o.Services[1].DisplayOrder)
	}
	if o.Roadmap[0].Status != entities.StepStatusUpcoming {
		t.Fatalf("missing step status should default to upcoming, got %q", o.Roadmap[0].Status)
	}
}
