// Package validation holds the preconditions for every mutation of a rental
// agreement during checkout. Each check is a pure predicate over the current
// agreement (or a standalone value) and returns a typed ValidationError with
// a fixed message; checks never partially apply a mutation.
package validation

import (
	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/domain"
)

// Fixed precondition messages surfaced at the sales counter.
const (
	MsgAgreementNotStarted  = "Must create a rental agreement."
	MsgToolNotSelected      = "Must select a tool."
	MsgRentalDaysTooFew     = "Must rent tool for at least 1 day."
	MsgCheckoutDateMissing  = "Must select a checkout date."
	MsgCheckoutDateInPast   = "Checkout cannot be prior to current date."
	MsgDueDateInputsMissing = "Must supply checkout date and number of rental days."
	MsgCheckoutDateRequired = "Must supply checkout date."
	MsgRentalDaysRequired   = "Must supply number of rental days."
	MsgChargesNotCalculated = "Must calculate the daily rates before calculating the subtotal."
	MsgDiscountOutOfRange   = "Percent discount must be between 0 and 100."
	MsgSubtotalBeforeDisc   = "Must calculate subtotal before discount can be calculated."
	MsgSubtotalBeforeTotal  = "Must calculate subtotal before total can be calculated."
	MsgDiscountBeforeTotal  = "Must calculate discount before total can be calculated."
	MsgAgreementIncomplete  = "Must complete rental agreement."
)

// AgreementStarted checks that an agreement record exists.
func AgreementStarted(a *domain.RentalAgreement) error {
	if a == nil {
		return domain.NewValidationError(MsgAgreementNotStarted)
	}
	return nil
}

// RentableTool checks that a tool has been resolved from the catalog.
func RentableTool(tool *domain.ToolSpec) error {
	if tool == nil {
		return domain.NewValidationError(MsgToolNotSelected)
	}
	return nil
}

// RentalDays checks that the rental lasts at least one day.
func RentalDays(days int) error {
	if days < 1 {
		return domain.NewValidationError(MsgRentalDaysTooFew)
	}
	return nil
}

// CheckoutDate checks that a checkout date is present and not before today.
// Today is supplied by the caller so the engine never reads the wall clock.
func CheckoutDate(checkoutDate *calendar.Date, today calendar.Date) error {
	if checkoutDate == nil {
		return domain.NewValidationError(MsgCheckoutDateMissing)
	}
	if checkoutDate.Before(today) {
		return domain.NewValidationError(MsgCheckoutDateInPast)
	}
	return nil
}

// DueDate checks that the inputs for the due date calculation are present.
func DueDate(a *domain.RentalAgreement) error {
	switch {
	case a.CheckoutDate == nil && a.RentalDays == nil:
		return domain.NewValidationError(MsgDueDateInputsMissing)
	case a.CheckoutDate == nil:
		return domain.NewValidationError(MsgCheckoutDateRequired)
	case a.RentalDays == nil:
		return domain.NewValidationError(MsgRentalDaysRequired)
	}
	return nil
}

// DailyCharges checks that the agreement carries everything the charge
// engine needs: an assigned tool plus the due date inputs.
func DailyCharges(a *domain.RentalAgreement) error {
	if err := RentableTool(a.Tool); err != nil {
		return err
	}
	return DueDate(a)
}

// SubtotalReady checks that the per-day charge map has been populated.
func SubtotalReady(a *domain.RentalAgreement) error {
	if len(a.DailyCharges) == 0 {
		return domain.NewValidationError(MsgChargesNotCalculated)
	}
	return nil
}

// DiscountPercent checks the percent is a whole number in [0, 100].
func DiscountPercent(percent int) error {
	if percent < 0 || percent > 100 {
		return domain.NewValidationError(MsgDiscountOutOfRange)
	}
	return nil
}

// DiscountReady checks that the subtotal exists so a discount amount can be
// derived from it.
func DiscountReady(a *domain.RentalAgreement) error {
	if a.Subtotal == nil {
		return domain.NewValidationError(MsgSubtotalBeforeDisc)
	}
	return nil
}

// TotalReady checks that both inputs of the total are present.
func TotalReady(a *domain.RentalAgreement) error {
	if a.Subtotal == nil {
		return domain.NewValidationError(MsgSubtotalBeforeTotal)
	}
	if a.DiscountAmount == nil {
		return domain.NewValidationError(MsgDiscountBeforeTotal)
	}
	return nil
}

// AgreementComplete checks that every field of the agreement is populated;
// completeness is the precondition for rendering and archival.
func AgreementComplete(a *domain.RentalAgreement) error {
	if a == nil || !a.IsComplete() {
		return domain.NewValidationError(MsgAgreementIncomplete)
	}
	return nil
}
