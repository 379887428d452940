package bill

import (
	"fmt"
	"time"
)

// DisplayBill is a bill prepared for rendering: the raw record plus
// its display date and status label. DateFallback is set when the raw
// date could not be parsed and DateDisplay carries it unformatted.
type DisplayBill struct {
	Bill
	DateDisplay  string
	StatusLabel  string
	DateFallback bool
}

// Capitalized 3-letter French month abbreviations, January first.
var frenchMonths = [12]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai.", "Jui.",
	"Jui.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

// FormatDate renders a wire date as the short French form "4 Avr. 04".
func FormatDate(raw string) (string, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", raw, err)
	}
	return fmt.Sprintf("%d %s %02d", t.Day(), frenchMonths[t.Month()-1], t.Year()%100), nil
}

// FormatStatus renders a raw status as its canonical French label.
// Unrecognized values render as "Inconnu" rather than failing.
func FormatStatus(s Status) string {
	switch s {
	case StatusPending:
		return "En attente"
	case StatusAccepted:
		return "Accepté"
	case StatusRefused:
		return "Refusé"
	default:
		return "Inconnu"
	}
}

// FormatRecord normalizes one raw record for display. It is total: a
// record whose date cannot be parsed keeps the raw date string and is
// flagged with DateFallback so the caller can log it, but it is never
// dropped and the status is still formatted.
func FormatRecord(raw Bill) DisplayBill {
	d := DisplayBill{
		Bill:        raw,
		StatusLabel: FormatStatus(raw.Status),
	}
	formatted, err := FormatDate(raw.Date)
	if err != nil {
		d.DateDisplay = raw.Date
		d.DateFallback = true
		return d
	}
	d.DateDisplay = formatted
	return d
}
