package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/domain"
	"toolrental-pos/internal/service"
)

func completedAgreement(t *testing.T) *domain.RentalAgreement {
	t.Helper()
	now := func() calendar.Date { return calendar.NewDate(2024, 1, 1) }
	svc := service.NewCheckoutService(service.NewAgreementService(now), nil)

	checkout := calendar.NewDate(2024, 1, 18)
	a, err := svc.Checkout(context.Background(), service.CheckoutRequest{
		ToolCode:        domain.ToolCodeJAKD,
		RentalDays:      7,
		CheckoutDate:    &checkout,
		DiscountPercent: 10,
	})
	assert.NoError(t, err)
	return a
}

func TestAgreementRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAgreementRepository(db)
	a := completedAgreement(t)

	mock.ExpectExec("INSERT INTO rental_agreements").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgreementRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAgreementRepository(db)
	a := completedAgreement(t)

	chargesJSON, err := marshalCharges(a.DailyCharges)
	assert.NoError(t, err)

	columns := []string{"id", "tool_code", "tool_type", "tool_brand", "daily_charge",
		"weekday_billable", "weekend_billable", "holiday_billable",
		"rental_days", "checkout_date", "due_date", "daily_charges", "charge_days",
		"subtotal", "discount_percent", "discount_amount", "total", "created_on"}

	rows := sqlmock.NewRows(columns).AddRow(
		a.ID, "JAKD", "Jackhammer", "DeWalt", "2.99",
		true, false, false,
		7, "2024-01-18", "2024-01-25", chargesJSON, 5,
		"14.95", 10, "1.50", "13.45", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rental_agreements WHERE id = \\$1").
		WithArgs(a.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), a.ID)
	assert.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, domain.StateComplete, got.State)
	assert.Equal(t, domain.ToolCodeJAKD, got.Tool.Code)
	assert.Equal(t, 7, *got.RentalDays)
	assert.Equal(t, calendar.NewDate(2024, 1, 18), *got.CheckoutDate)
	assert.Equal(t, calendar.NewDate(2024, 1, 25), *got.DueDate)
	assert.Len(t, got.DailyCharges, 7)
	assert.Equal(t, 5, *got.ChargeDays)
	assert.Equal(t, "14.95", got.Subtotal.StringFixed(2))
	assert.Equal(t, "1.50", got.DiscountAmount.StringFixed(2))
	assert.Equal(t, "13.45", got.Total.StringFixed(2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgreementRepository_CountCreatedSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAgreementRepository(db)
	since := time.Now().Add(-24 * time.Hour)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM rental_agreements").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountCreatedSince(context.Background(), since)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestAgreementRepository_PurgeOlderThan(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewAgreementRepository(db)
	cutoff := time.Now().AddDate(-1, 0, 0)

	mock.ExpectExec("DELETE FROM rental_agreements WHERE created_on < \\$1").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.PurgeOlderThan(context.Background(), cutoff)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}

func TestChargesRoundTrip(t *testing.T) {
	a := completedAgreement(t)

	data, err := marshalCharges(a.DailyCharges)
	assert.NoError(t, err)

	got, err := unmarshalCharges(data)
	assert.NoError(t, err)
	assert.Len(t, got, len(a.DailyCharges))
	for d, amount := range a.DailyCharges {
		assert.True(t, got[d].Equal(amount), "charge for %s", d)
	}
}
