package eligibility

import "testing"

func TestExitPermitEligible(t *testing.T) {
	cases := []struct {
		name           string
		workStatus     string
		paymentStatus  string
		alreadyCreated bool
		want           bool
	}{
		{"ready and fully paid", "Ready", "Fully Paid", false, true},
		{"permit already issued", "Ready", "Fully Paid", true, false},
		{"cancelled unpaid", "Cancelled", "Unpaid", false, true},
		{"cancelled fully refunded", "Cancelled", "Fully Refunded", false, true},
		{"cancelled but partially paid", "Cancelled", "Partially Paid", false, false},
		{"still in progress", "Inprogress", "Fully Paid", false, false},
		{"ready but unpaid", "Ready", "Unpaid", false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitPermitEligible(tc.workStatus, tc.paymentStatus, tc.alreadyCreated); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRefundEligible(t *testing.T) {
	if !RefundEligible("Cancelled", 1400) {
		t.Fatal("cancelled order with payments must be refundable")
	}
	if RefundEligible("Cancelled", 0) {
		t.Fatal("no payments, nothing to refund")
	}
	if RefundEligible("Ready", 1400) {
		t.Fatal("only cancelled orders are refundable")
	}
}

func TestCancelEligible(t *testing.T) {
	for _, ws := range []string{"New Request", "Inprogress", "Ready", "Draft"} {
		if !CancelEligible(ws) {
			t.Fatalf("%q should be cancellable", ws)
		}
	}
	for _, ws := range []string{"Completed", "cancelled"} {
		if CancelEligible(ws) {
			t.Fatalf("%q is terminal, cancel must be refused", ws)
		}
	}
}
