package bill

import "github.com/shopspring/decimal"

// Status is a bill's position in the review workflow. Employees only
// ever create pending bills; transitions are owned by the admin flow.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRefused  Status = "refused"
)

// ExpenseTypes is the fixed set of categories offered on the new bill form.
var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

// Bill represents one expense-report submission as stored by the
// record store. Date stays in its raw wire form ("2006-01-02");
// display formatting happens in FormatRecord.
type Bill struct {
	ID         string          `json:"id,omitempty"`
	Email      string          `json:"email"`
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	VAT        decimal.Decimal `json:"vat"`
	Pct        int             `json:"pct"`
	Commentary string          `json:"commentary"`
	FileURL    string          `json:"fileUrl,omitempty"`
	FileName   string          `json:"fileName,omitempty"`
	Status     Status          `json:"status"`
}
