// Package bills implements the bill list controller: it fetches the
// employee's bills from the record store, normalizes them for display
// and mediates the list page's interactions.
package bills

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"github.com/djibh/billed/internal/bill"
	"github.com/djibh/billed/internal/store"
	"github.com/djibh/billed/internal/ui"
)

// ErrStale is returned by LoadBills when a newer load has started
// before this one's response arrived; the caller should discard the
// result and repaint nothing.
var ErrStale = errors.New("bill list response superseded by a newer request")

// Controller drives the bill list page.
type Controller struct {
	store      store.Store
	navigator  ui.Navigator
	view       ui.View
	generation atomic.Uint64
}

// NewController creates a list controller over its collaborators.
func NewController(st store.Store, nav ui.Navigator, view ui.View) *Controller {
	return &Controller{store: st, navigator: nav, view: view}
}

// LoadBills fetches the current user's bills and prepares them for
// display, newest first. Records with a corrupted date are kept with
// the raw date string; only a failed store read is an error.
func (c *Controller) LoadBills(ctx context.Context) ([]bill.DisplayBill, error) {
	gen := c.generation.Add(1)

	records, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	if c.generation.Load() != gen {
		return nil, ErrStale
	}

	out := make([]bill.DisplayBill, 0, len(records))
	for _, r := range records {
		d := bill.FormatRecord(r)
		if d.DateFallback {
			slog.Error("Failed to format bill date",
				"bill_id", r.ID,
				"date", r.Date,
			)
		}
		out = append(out, d)
	}

	// descending by raw date, store order breaks ties
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

// Show loads the bills and paints either the table or the full-page
// error state with the store error's text embedded verbatim.
func (c *Controller) Show(ctx context.Context) error {
	bills, err := c.LoadBills(ctx)
	if err != nil {
		if errors.Is(err, ErrStale) {
			return nil
		}
		var statusErr *store.StatusError
		if errors.As(err, &statusErr) {
			c.view.RenderError(statusErr.Error())
		} else {
			c.view.RenderError(err.Error())
		}
		return err
	}
	c.view.RenderBills(bills)
	return nil
}

// HandleClickNewBill switches to the new bill form.
func (c *Controller) HandleClickNewBill() {
	c.navigator.OnNavigate(ui.RouteNewBill)
}

// HandleClickIconEye opens the receipt preview modal with the image
// at half the modal's width. An empty URL still opens the modal.
func (c *Controller) HandleClickIconEye(billURL string) {
	imgWidth := c.view.ModalWidth() / 2
	c.view.ShowModal(billURL, imgWidth)
}
