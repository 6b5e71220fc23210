package documents

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
)

func TestBuildExitPermitSlip(t *testing.T) {
	next := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	o := entities.JobOrder{
		OrderNumber: "JO-4001",
		PlateNumber: "ABC-1234",
		NetAmount:   800,
		AmountPaid:  800,
		ExitPermit: &entities.ExitPermit{
			PermitID:        "permit-1",
			CollectedByName: "Maria Lima",
			NextServiceDate: &next,
			IssuedBy:        "gatekeeper",
			CreatedAt:       time.Date(2026, 8, 1, 16, 30, 0, 0, time.UTC),
		},
	}

	pdf, filename, err := BuildExitPermitSlip(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}
	if filename != "EXIT_PERMIT_JO-4001_permit-1.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestBuildExitPermitSlipWithoutPermit(t *testing.T) {
	_, _, err := BuildExitPermitSlip(entities.JobOrder{OrderNumber: "JO-4001"})
	if !errors.Is(err, ErrNoExitPermit) {
		t.Fatalf("expected ErrNoExitPermit, got %v", err)
	}
}
