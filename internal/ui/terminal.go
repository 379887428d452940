package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/djibh/billed/internal/bill"
)

// Terminal renders the employee views as plain text on a writer.
type Terminal struct {
	w io.Writer
}

// NewTerminal creates a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

// RenderBills paints the bill table.
func (t *Terminal) RenderBills(bills []bill.DisplayBill) {
	fmt.Fprintln(t.w, "Mes notes de frais")
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Type\tNom\tDate\tMontant\tStatut")
	for _, b := range bills {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s €\t%s\n", b.Type, b.Name, b.DateDisplay, b.Amount.String(), b.StatusLabel)
	}
	tw.Flush()
}

// RenderError paints the full-page error state.
func (t *Terminal) RenderError(message string) {
	fmt.Fprintf(t.w, "%s\n", message)
}

// ModalWidth is the preview modal's width in character cells.
func (t *Terminal) ModalWidth() int {
	return 80
}

// ShowModal opens the receipt preview. An empty URL renders an empty
// frame rather than failing.
func (t *Terminal) ShowModal(imageURL string, imgWidth int) {
	fmt.Fprintf(t.w, "Justificatif [largeur=%d] %s\n", imgWidth, imageURL)
}

// Alert surfaces a blocking message.
func (t *Terminal) Alert(message string) {
	fmt.Fprintf(t.w, "!! %s\n", message)
}
