package documents

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"

	"github.com/phpdave11/gofpdf"
)

var ErrNoExitPermit = errors.New("job order has no exit permit")

// BuildExitPermitSlip renders the gate slip handed to whoever collects the
// vehicle. The slip carries the permit id, the collector, the plate and the
// settled amounts so the gate never needs system access to verify a release.
func BuildExitPermitSlip(o entities.JobOrder) ([]byte, string, error) {
	if o.ExitPermit == nil {
		return nil, "", ErrNoExitPermit
	}
	p := o.ExitPermit

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Exit Permit", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VEHICLE EXIT PERMIT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Permit ID      : %s", safe(p.PermitID, "-")),
		fmt.Sprintf("Job Order      : %s", safe(o.OrderNumber, "-")),
		fmt.Sprintf("Plate Number   : %s", safe(o.PlateNumber, "-")),
		fmt.Sprintf("Collected By   : %s", safe(p.CollectedByName, "-")),
		fmt.Sprintf("Mobile         : %s", safe(p.CollectedByMobile, "-")),
		fmt.Sprintf("Issued By      : %s", safe(p.IssuedBy, "-")),
		fmt.Sprintf("Issued At      : %s", p.CreatedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Next Service   : %s", formatDate(p.NextServiceDate)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Settlement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	amounts := []string{
		fmt.Sprintf("Net Amount     : %.2f", o.NetAmount),
		fmt.Sprintf("Amount Paid    : %.2f", o.AmountPaid),
		fmt.Sprintf("Balance Due    : %.2f", o.BalanceDue),
	}
	for _, s := range amounts {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This permit authorizes a single vehicle release. Present it at the gate together with an identity document.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("EXIT_PERMIT_%s_%s.pdf", safeFilenamePart(o.OrderNumber), safeFilenamePart(p.PermitID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
