// Package newbill implements the new bill form controller: receipt
// file validation and upload, then the two-phase bill submission.
package newbill

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/djibh/billed/internal/bill"
	"github.com/djibh/billed/internal/session"
	"github.com/djibh/billed/internal/store"
	"github.com/djibh/billed/internal/ui"
)

// InvalidFileAlert is the blocking message shown when the chosen
// receipt file is not an accepted image format.
const InvalidFileAlert = "Seuls les fichiers aux formats .jpg/.jpeg/.png/.gif sont acceptés"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// FileSelection is the receipt file the user chose on the form.
type FileSelection struct {
	Name string
	Data []byte
}

// Form is the new bill form's state at submission time.
type Form struct {
	Type       string
	Name       string
	Amount     decimal.Decimal
	Date       string
	VAT        decimal.Decimal
	Pct        int
	Commentary string
}

// Controller drives the new bill form.
type Controller struct {
	store     store.Store
	navigator ui.Navigator
	view      ui.View
	session   session.Session

	billID   string
	fileURL  string
	fileName string
}

// NewController creates a form controller over its collaborators. The
// store may be nil, in which case submission skips persistence.
func NewController(st store.Store, nav ui.Navigator, view ui.View, sess session.Session) *Controller {
	return &Controller{store: st, navigator: nav, view: view, session: sess}
}

// HandleChangeFile validates the chosen file's extension and, when
// accepted, uploads it right away on behalf of the session user. A
// rejected file clears the selection and raises a blocking alert; an
// upload failure is logged and leaves the file reference unset. Only
// the most recent accepted file's reference is retained.
func (c *Controller) HandleChangeFile(ctx context.Context, sel FileSelection) {
	ext := strings.ToLower(filepath.Ext(sel.Name))
	if !allowedExtensions[ext] {
		c.billID = ""
		c.fileURL = ""
		c.fileName = ""
		c.view.Alert(InvalidFileAlert)
		return
	}

	if c.store == nil {
		return
	}

	user, err := c.session.CurrentUser()
	if err != nil {
		slog.Error("Failed to read session user", "error", err)
		return
	}

	ref, err := c.store.CreateFile(ctx, sel.Name, sel.Data, user.Email)
	if err != nil {
		slog.Error("Failed to upload receipt file",
			"filename", sel.Name,
			"error", err,
		)
		return
	}

	c.billID = ref.Key
	c.fileURL = ref.FileURL
	c.fileName = sel.Name
}

// HandleSubmit builds the complete bill payload from the form and the
// previously captured file reference, persists it, then navigates
// back to the bill list. Submitting without a file is allowed; the
// file fields simply stay unset.
func (c *Controller) HandleSubmit(ctx context.Context, form Form) {
	var email string
	user, err := c.session.CurrentUser()
	if err != nil {
		slog.Error("Failed to read session user", "error", err)
	} else {
		email = user.Email
	}

	pct := form.Pct
	if pct == 0 {
		pct = 20
	}

	c.updateBill(ctx, bill.Bill{
		Email:      email,
		Type:       form.Type,
		Name:       form.Name,
		Amount:     form.Amount,
		Date:       form.Date,
		VAT:        form.VAT,
		Pct:        pct,
		Commentary: form.Commentary,
		FileURL:    c.fileURL,
		FileName:   c.fileName,
		Status:     bill.StatusPending,
	})
	c.navigator.OnNavigate(ui.RouteBills)
}

// updateBill persists the bill when a store is configured. Write
// failures are logged, never surfaced to the form.
func (c *Controller) updateBill(ctx context.Context, b bill.Bill) {
	if c.store == nil {
		return
	}
	if _, err := c.store.Update(ctx, c.billID, b); err != nil {
		slog.Error("Failed to update bill",
			"bill_id", c.billID,
			"error", err,
		)
	}
}
