// Package ui defines the presentation-side collaborators the
// controllers drive: route navigation and the rendering surface.
package ui

import "github.com/djibh/billed/internal/bill"

// Route identifiers understood by the Navigator.
const (
	RouteBills   = "#employee/bills"
	RouteNewBill = "#employee/bill/new"
)

// Navigator swaps the active view for the given route.
type Navigator interface {
	OnNavigate(route string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(route string)

func (f NavigatorFunc) OnNavigate(route string) {
	f(route)
}

// View is the rendering surface the controllers issue commands to.
type View interface {
	// RenderBills paints the bill table, newest first
	RenderBills(bills []bill.DisplayBill)

	// RenderError paints the full-page error state with the given
	// message embedded verbatim
	RenderError(message string)

	// ModalWidth is the receipt preview modal's width in display units
	ModalWidth() int

	// ShowModal opens the receipt preview with the image at imgWidth
	ShowModal(imageURL string, imgWidth int)

	// Alert surfaces a blocking user-facing message
	Alert(message string)
}
