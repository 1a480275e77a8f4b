package service

import (
	"toolrental-pos/internal/calculator"
	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/catalog"
	"toolrental-pos/internal/domain"
	"toolrental-pos/internal/validation"
)

type agreementService struct {
	now func() calendar.Date
}

// NewAgreementService creates the stepwise agreement service. The now
// function supplies "today" for the checkout-date check; pass nil to use the
// wall clock.
func NewAgreementService(now func() calendar.Date) AgreementService {
	if now == nil {
		now = calendar.Today
	}
	return &agreementService{now: now}
}

func (s *agreementService) CreateRentalAgreement() *domain.RentalAgreement {
	return domain.NewRentalAgreement()
}

func (s *agreementService) FindTool(code domain.ToolCode) (*domain.ToolSpec, error) {
	spec, err := catalog.Lookup(code)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *agreementService) AssignTool(a *domain.RentalAgreement, tool *domain.ToolSpec) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.RentableTool(tool); err != nil {
		return err
	}
	a.Tool = tool
	a.State = domain.StateToolAssigned
	return nil
}

func (s *agreementService) AssignRentalDays(a *domain.RentalAgreement, days int) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.RentalDays(days); err != nil {
		return err
	}
	a.RentalDays = &days
	a.State = domain.StateDaysAssigned
	return nil
}

func (s *agreementService) AssignCheckoutDate(a *domain.RentalAgreement, checkoutDate *calendar.Date) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.CheckoutDate(checkoutDate, s.now()); err != nil {
		return err
	}
	a.CheckoutDate = checkoutDate
	a.State = domain.StateDateAssigned
	return nil
}

func (s *agreementService) CalculateDueDate(a *domain.RentalAgreement) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.DueDate(a); err != nil {
		return err
	}
	due := a.CheckoutDate.AddDays(*a.RentalDays)
	a.DueDate = &due
	a.State = domain.StateDueDateComputed
	return nil
}

func (s *agreementService) CalculateDailyCharges(a *domain.RentalAgreement) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.DailyCharges(a); err != nil {
		return err
	}
	charges, chargeDays := calculator.DailyCharges(*a.Tool, *a.CheckoutDate, *a.RentalDays)
	a.DailyCharges = charges
	a.ChargeDays = &chargeDays
	a.State = domain.StateChargesComputed
	return nil
}

func (s *agreementService) CalculateSubtotal(a *domain.RentalAgreement) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.SubtotalReady(a); err != nil {
		return err
	}
	subtotal := calculator.Subtotal(a.DailyCharges)
	a.Subtotal = &subtotal
	a.State = domain.StateSubtotalComputed
	return nil
}

func (s *agreementService) AssignDiscountPercent(a *domain.RentalAgreement, percent int) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.DiscountPercent(percent); err != nil {
		return err
	}
	a.DiscountPercent = &percent
	a.State = domain.StateDiscountAssigned
	return nil
}

func (s *agreementService) CalculateDiscountAmount(a *domain.RentalAgreement) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.DiscountReady(a); err != nil {
		return err
	}
	percent := 0
	if a.DiscountPercent != nil {
		percent = *a.DiscountPercent
	}
	discount := calculator.Discount(*a.Subtotal, percent)
	a.DiscountAmount = &discount
	a.State = domain.StateDiscountComputed
	return nil
}

func (s *agreementService) CalculateTotal(a *domain.RentalAgreement) error {
	if err := validation.AgreementStarted(a); err != nil {
		return err
	}
	if err := validation.TotalReady(a); err != nil {
		return err
	}
	total := calculator.Total(*a.Subtotal, *a.DiscountAmount)
	a.Total = &total
	a.State = domain.StateTotaled
	return nil
}

func (s *agreementService) Finalize(a *domain.RentalAgreement) error {
	if err := validation.AgreementComplete(a); err != nil {
		return err
	}
	a.State = domain.StateComplete
	return nil
}
