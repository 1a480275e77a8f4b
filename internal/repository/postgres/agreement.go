package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/domain"
	"toolrental-pos/internal/repository"
)

type agreementRepository struct {
	db *sql.DB
}

func NewAgreementRepository(db *sql.DB) repository.AgreementRepository {
	return &agreementRepository{db: db}
}

const agreementColumns = `id, tool_code, tool_type, tool_brand, daily_charge,
	weekday_billable, weekend_billable, holiday_billable,
	rental_days, checkout_date, due_date, daily_charges, charge_days,
	subtotal, discount_percent, discount_amount, total, created_on`

func (r *agreementRepository) Save(ctx context.Context, a *domain.RentalAgreement) error {
	chargesJSON, err := marshalCharges(a.DailyCharges)
	if err != nil {
		return fmt.Errorf("failed to encode daily charges: %w", err)
	}

	query := `INSERT INTO rental_agreements (` + agreementColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID, a.Tool.Code, a.Tool.Type, a.Tool.Brand, a.Tool.DailyCharge.StringFixed(2),
		a.Tool.WeekdayBillable, a.Tool.WeekendBillable, a.Tool.HolidayBillable,
		*a.RentalDays, a.CheckoutDate.String(), a.DueDate.String(), chargesJSON, *a.ChargeDays,
		a.Subtotal.StringFixed(2), *a.DiscountPercent, a.DiscountAmount.StringFixed(2),
		a.Total.StringFixed(2), a.CreatedOn)
	return err
}

func (r *agreementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RentalAgreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM rental_agreements WHERE id = $1`
	return scanAgreement(r.db.QueryRowContext(ctx, query, id))
}

func (r *agreementRepository) ListRecent(ctx context.Context, limit int32) ([]domain.RentalAgreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM rental_agreements ORDER BY created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agreements []domain.RentalAgreement
	for rows.Next() {
		a, err := scanAgreement(rows)
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, *a)
	}
	return agreements, rows.Err()
}

func (r *agreementRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := `SELECT count(*) FROM rental_agreements WHERE created_on >= $1`
	err := r.db.QueryRowContext(ctx, query, since).Scan(&count)
	return count, err
}

func (r *agreementRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM rental_agreements WHERE created_on < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAgreement(row rowScanner) (*domain.RentalAgreement, error) {
	var (
		a            domain.RentalAgreement
		tool         domain.ToolSpec
		dailyCharge  string
		rentalDays   int
		checkoutDate string
		dueDate      string
		chargesJSON  []byte
		chargeDays   int
		subtotal     string
		discountPct  int
		discountAmt  string
		total        string
	)

	err := row.Scan(&a.ID, &tool.Code, &tool.Type, &tool.Brand, &dailyCharge,
		&tool.WeekdayBillable, &tool.WeekendBillable, &tool.HolidayBillable,
		&rentalDays, &checkoutDate, &dueDate, &chargesJSON, &chargeDays,
		&subtotal, &discountPct, &discountAmt, &total, &a.CreatedOn)
	if err != nil {
		return nil, err
	}

	if tool.DailyCharge, err = decimal.NewFromString(dailyCharge); err != nil {
		return nil, fmt.Errorf("invalid daily charge %q: %w", dailyCharge, err)
	}
	a.Tool = &tool
	a.RentalDays = &rentalDays
	a.ChargeDays = &chargeDays
	a.DiscountPercent = &discountPct

	checkout, err := calendar.ParseDate(checkoutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkout date %q: %w", checkoutDate, err)
	}
	a.CheckoutDate = &checkout
	due, err := calendar.ParseDate(dueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}
	a.DueDate = &due

	if a.DailyCharges, err = unmarshalCharges(chargesJSON); err != nil {
		return nil, fmt.Errorf("invalid daily charges: %w", err)
	}

	if a.Subtotal, err = parseMoney(subtotal); err != nil {
		return nil, err
	}
	if a.DiscountAmount, err = parseMoney(discountAmt); err != nil {
		return nil, err
	}
	if a.Total, err = parseMoney(total); err != nil {
		return nil, err
	}

	a.State = domain.StateComplete
	return &a, nil
}

func parseMoney(s string) (*decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return &v, nil
}

// marshalCharges encodes the per-day charge map as a JSON object keyed by
// yyyy-mm-dd date strings.
func marshalCharges(charges map[calendar.Date]decimal.Decimal) ([]byte, error) {
	byDate := make(map[string]string, len(charges))
	for d, amount := range charges {
		byDate[d.String()] = amount.StringFixed(2)
	}
	return json.Marshal(byDate)
}

func unmarshalCharges(data []byte) (map[calendar.Date]decimal.Decimal, error) {
	var byDate map[string]string
	if err := json.Unmarshal(data, &byDate); err != nil {
		return nil, err
	}

	charges := make(map[calendar.Date]decimal.Decimal, len(byDate))
	for dateStr, amountStr := range byDate {
		d, err := calendar.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, err
		}
		charges[d] = amount
	}
	return charges, nil
}
