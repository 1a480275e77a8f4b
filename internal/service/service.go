package service

import (
	"context"

	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/domain"
)

// AgreementService manages the stepwise construction of a rental agreement.
// Every mutation first runs its validation precondition; on failure the
// agreement is left unchanged and the typed validation error is returned.
type AgreementService interface {
	CreateRentalAgreement() *domain.RentalAgreement
	FindTool(code domain.ToolCode) (*domain.ToolSpec, error)
	AssignTool(a *domain.RentalAgreement, tool *domain.ToolSpec) error
	AssignRentalDays(a *domain.RentalAgreement, days int) error
	AssignCheckoutDate(a *domain.RentalAgreement, checkoutDate *calendar.Date) error
	CalculateDueDate(a *domain.RentalAgreement) error
	CalculateDailyCharges(a *domain.RentalAgreement) error
	CalculateSubtotal(a *domain.RentalAgreement) error
	AssignDiscountPercent(a *domain.RentalAgreement, percent int) error
	CalculateDiscountAmount(a *domain.RentalAgreement) error
	CalculateTotal(a *domain.RentalAgreement) error
	Finalize(a *domain.RentalAgreement) error
}

// CheckoutRequest carries the four inputs of a checkout transaction.
type CheckoutRequest struct {
	ToolCode        domain.ToolCode
	RentalDays      int
	CheckoutDate    *calendar.Date
	DiscountPercent int
}

// CheckoutService drives an agreement through every construction step. Any
// failure aborts the whole checkout; there is no partial commit.
type CheckoutService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*domain.RentalAgreement, error)
}
