package service

import (
	"context"
	"fmt"

	"toolrental-pos/internal/domain"
	"toolrental-pos/internal/logger"
	"toolrental-pos/internal/repository"
)

type checkoutService struct {
	agreements AgreementService
	archive    repository.AgreementRepository
}

// NewCheckoutService creates the checkout orchestrator. The archive may be
// nil, in which case completed agreements are not persisted.
func NewCheckoutService(agreements AgreementService, archive repository.AgreementRepository) CheckoutService {
	return &checkoutService{
		agreements: agreements,
		archive:    archive,
	}
}

// Checkout sequences a fresh agreement through every construction step. The
// first failing precondition aborts the transaction and the in-progress
// agreement is discarded.
func (s *checkoutService) Checkout(ctx context.Context, req CheckoutRequest) (*domain.RentalAgreement, error) {
	a := s.agreements.CreateRentalAgreement()

	tool, err := s.agreements.FindTool(req.ToolCode)
	if err != nil {
		logger.Warn("Checkout rejected", "tool_code", req.ToolCode, "error", err)
		return nil, err
	}

	steps := []func() error{
		func() error { return s.agreements.AssignTool(a, tool) },
		func() error { return s.agreements.AssignRentalDays(a, req.RentalDays) },
		func() error { return s.agreements.AssignCheckoutDate(a, req.CheckoutDate) },
		func() error { return s.agreements.CalculateDueDate(a) },
		func() error { return s.agreements.CalculateDailyCharges(a) },
		func() error { return s.agreements.CalculateSubtotal(a) },
		func() error { return s.agreements.AssignDiscountPercent(a, req.DiscountPercent) },
		func() error { return s.agreements.CalculateDiscountAmount(a) },
		func() error { return s.agreements.CalculateTotal(a) },
		func() error { return s.agreements.Finalize(a) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			logger.Warn("Checkout rejected",
				"agreement_id", a.ID,
				"tool_code", req.ToolCode,
				"state", a.State,
				"error", err)
			return nil, err
		}
	}

	if s.archive != nil {
		if err := s.archive.Save(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to archive agreement %s: %w", a.ID, err)
		}
	}

	logger.Info("Checkout completed",
		"agreement_id", a.ID,
		"tool_code", a.Tool.Code,
		"rental_days", *a.RentalDays,
		"charge_days", *a.ChargeDays,
		"total", a.Total.StringFixed(2))
	return a, nil
}
