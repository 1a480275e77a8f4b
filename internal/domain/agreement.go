package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"toolrental-pos/internal/calendar"
)

// AgreementState tags how far an agreement has progressed through checkout.
// The checkout service advances the state one step per validated mutation;
// which fields are guaranteed populated follows from the state.
type AgreementState string

const (
	StateEmpty            AgreementState = "EMPTY"
	StateToolAssigned     AgreementState = "TOOL_ASSIGNED"
	StateDaysAssigned     AgreementState = "DAYS_ASSIGNED"
	StateDateAssigned     AgreementState = "DATE_ASSIGNED"
	StateDueDateComputed  AgreementState = "DUE_DATE_COMPUTED"
	StateChargesComputed  AgreementState = "CHARGES_COMPUTED"
	StateSubtotalComputed AgreementState = "SUBTOTAL_COMPUTED"
	StateDiscountAssigned AgreementState = "DISCOUNT_ASSIGNED"
	StateDiscountComputed AgreementState = "DISCOUNT_COMPUTED"
	StateTotaled          AgreementState = "TOTALED"
	StateComplete         AgreementState = "COMPLETE"
)

// RentalAgreement accumulates all data needed to produce a final rental bill.
// Optional fields are pointers so "not yet populated" is explicit; they are
// filled in strict dependency order by the checkout service and never mutated
// once the agreement reaches StateComplete.
type RentalAgreement struct {
	ID              uuid.UUID                         `json:"id"`
	State           AgreementState                    `json:"state"`
	Tool            *ToolSpec                         `json:"tool,omitempty"`
	RentalDays      *int                              `json:"rental_days,omitempty"`
	CheckoutDate    *calendar.Date                    `json:"checkout_date,omitempty"`
	DueDate         *calendar.Date                    `json:"due_date,omitempty"`
	DailyCharges    map[calendar.Date]decimal.Decimal `json:"-"`
	ChargeDays      *int                              `json:"charge_days,omitempty"`
	Subtotal        *decimal.Decimal                  `json:"subtotal,omitempty"`
	DiscountPercent *int                              `json:"discount_percent,omitempty"`
	DiscountAmount  *decimal.Decimal                  `json:"discount_amount,omitempty"`
	Total           *decimal.Decimal                  `json:"total,omitempty"`
	CreatedOn       time.Time                         `json:"created_on"`
}

// NewRentalAgreement creates a blank agreement ready for checkout.
func NewRentalAgreement() *RentalAgreement {
	return &RentalAgreement{
		ID:        uuid.New(),
		State:     StateEmpty,
		CreatedOn: time.Now(),
	}
}

// ChargeDates returns the dates of the daily charge map in calendar order.
func (a *RentalAgreement) ChargeDates() []calendar.Date {
	dates := make([]calendar.Date, 0, len(a.DailyCharges))
	for d := range a.DailyCharges {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// IsComplete reports whether every field of the agreement is populated.
func (a *RentalAgreement) IsComplete() bool {
	return a.Tool != nil &&
		a.RentalDays != nil &&
		a.CheckoutDate != nil &&
		a.DueDate != nil &&
		len(a.DailyCharges) > 0 &&
		a.ChargeDays != nil &&
		a.Subtotal != nil &&
		a.DiscountPercent != nil &&
		a.DiscountAmount != nil &&
		a.Total != nil
}
