package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"toolrental-pos/internal/domain"
)

// AgreementRepository archives completed rental agreements. The checkout
// engine itself never reads the archive; agreements are written only after
// they reach the complete state.
type AgreementRepository interface {
	Save(ctx context.Context, a *domain.RentalAgreement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RentalAgreement, error)
	ListRecent(ctx context.Context, limit int32) ([]domain.RentalAgreement, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
