// Package render produces the printed rental agreement handed to the
// customer. The field order and formatting are fixed; downstream receipt
// printers depend on the exact layout.
package render

import (
	"fmt"
	"strings"

	"toolrental-pos/internal/domain"
	"toolrental-pos/internal/validation"
)

// Agreement renders a completed rental agreement as the fixed-field text
// report. It fails if any field of the agreement is still unpopulated.
func Agreement(a *domain.RentalAgreement) (string, error) {
	if err := validation.AgreementComplete(a); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tool code: %s\n", a.Tool.Code)
	fmt.Fprintf(&b, "Tool type: %s\n", a.Tool.Type)
	fmt.Fprintf(&b, "Tool brand: %s\n", a.Tool.Brand)
	fmt.Fprintf(&b, "Rental days: %d\n", *a.RentalDays)
	fmt.Fprintf(&b, "Checkout date: %s\n", a.CheckoutDate.FormatMMDDYY())
	fmt.Fprintf(&b, "Due date: %s\n", a.DueDate.FormatMMDDYY())
	fmt.Fprintf(&b, "Daily rental charge: $%s\n", a.Tool.DailyCharge.StringFixed(2))
	fmt.Fprintf(&b, "Charge days: %d\n", *a.ChargeDays)
	fmt.Fprintf(&b, "Pre-discount charge: $%s\n", a.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "Discount percent: %d%%\n", *a.DiscountPercent)
	fmt.Fprintf(&b, "Discount amount: $%s\n", a.DiscountAmount.StringFixed(2))
	fmt.Fprintf(&b, "Final charge: $%s\n", a.Total.StringFixed(2))
	return b.String(), nil
}
