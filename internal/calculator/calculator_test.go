package calculator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/catalog"
	"toolrental-pos/internal/domain"
)

func mustLookup(t *testing.T, code domain.ToolCode) domain.ToolSpec {
	t.Helper()
	spec, err := catalog.Lookup(code)
	assert.NoError(t, err)
	return spec
}

func TestDailyCharges_WeekdayOnlyToolOverFullWeekend(t *testing.T) {
	// Jackhammer bills weekdays only. Thursday checkout, 7 days spanning one
	// full weekend: Thu Fri Sat Sun Mon Tue Wed.
	tool := mustLookup(t, domain.ToolCodeJAKD)
	checkout := calendar.NewDate(2024, 1, 18)
	assert.Equal(t, time.Thursday, checkout.Weekday())

	charges, chargeDays := DailyCharges(tool, checkout, 7)

	assert.Len(t, charges, 7)
	assert.Equal(t, 5, chargeDays)
	assert.Equal(t, "14.95", Subtotal(charges).StringFixed(2)) // 5 * 2.99

	// weekend entries present but zero
	assert.True(t, charges[calendar.NewDate(2024, 1, 20)].IsZero())
	assert.True(t, charges[calendar.NewDate(2024, 1, 21)].IsZero())
	assert.Equal(t, "2.99", charges[checkout].StringFixed(2))
}

func TestDailyCharges_HolidayBillableToolOnLaborDay(t *testing.T) {
	// Chainsaw bills holidays, so Labor Day (a Monday) is billed at the
	// weekday rate; the exemption never applies.
	tool := mustLookup(t, domain.ToolCodeCHNS)
	laborDay := calendar.LaborDay(2024)
	assert.Equal(t, calendar.NewDate(2024, 9, 2), laborDay)

	charges, chargeDays := DailyCharges(tool, laborDay, 1)

	assert.Len(t, charges, 1)
	assert.Equal(t, 1, chargeDays)
	assert.Equal(t, "1.49", Subtotal(charges).StringFixed(2))
}

func TestDailyCharges_HolidayExemption(t *testing.T) {
	// Ladder bills weekdays and weekends but not holidays. July 4, 2024 is a
	// Thursday; it must be charged zero and excluded from the charge days.
	tool := mustLookup(t, domain.ToolCodeLADW)
	checkout := calendar.NewDate(2024, 7, 3)

	charges, chargeDays := DailyCharges(tool, checkout, 7)

	assert.Len(t, charges, 7)
	assert.Equal(t, 6, chargeDays)
	assert.True(t, charges[calendar.NewDate(2024, 7, 4)].IsZero())
	assert.Equal(t, "11.94", Subtotal(charges).StringFixed(2)) // 6 * 1.99
}

func TestDailyCharges_HolidayOnWeekendBilledByWeekendFlag(t *testing.T) {
	// July 4, 2026 falls on a Saturday. The chainsaw is holiday-billable, so
	// the exemption does not apply and the day is classified as a weekend,
	// which the chainsaw does not bill.
	tool := mustLookup(t, domain.ToolCodeCHNS)
	independenceDay := calendar.NewDate(2026, 7, 4)
	assert.Equal(t, time.Saturday, independenceDay.Weekday())

	charges, chargeDays := DailyCharges(tool, independenceDay, 1)

	assert.Len(t, charges, 1)
	assert.Equal(t, 0, chargeDays)
	assert.True(t, charges[independenceDay].IsZero())
}

func TestDailyCharges_ExemptHolidayWeekdayNotCounted(t *testing.T) {
	// Jackhammer bills weekdays, but July 4, 2024 (Thursday) is holiday
	// exempt: zero charge and no charge-day increment.
	tool := mustLookup(t, domain.ToolCodeJAKR)
	independenceDay := calendar.NewDate(2024, 7, 4)

	charges, chargeDays := DailyCharges(tool, independenceDay, 1)

	assert.Equal(t, 0, chargeDays)
	assert.True(t, charges[independenceDay].IsZero())
}

func TestDailyCharges_WindowAlwaysHasOneEntryPerDay(t *testing.T) {
	tool := mustLookup(t, domain.ToolCodeJAKD)
	checkout := calendar.NewDate(2024, 12, 28)

	for _, days := range []int{1, 3, 14, 31, 90} {
		charges, _ := DailyCharges(tool, checkout, days)
		assert.Len(t, charges, days)
	}
}

func TestSubtotal_SumsAllEntries(t *testing.T) {
	tool := mustLookup(t, domain.ToolCodeLADW)
	charges, _ := DailyCharges(tool, calendar.NewDate(2024, 3, 1), 10)

	expected := decimal.Zero
	for _, c := range charges {
		expected = expected.Add(c)
	}
	assert.True(t, Subtotal(charges).Equal(expected))
}

func TestDiscount(t *testing.T) {
	t.Run("Ten percent of 100", func(t *testing.T) {
		subtotal := decimal.RequireFromString("100.00")
		discount := Discount(subtotal, 10)
		assert.Equal(t, "10.00", discount.StringFixed(2))
		assert.Equal(t, "90.00", Total(subtotal, discount).StringFixed(2))
	})

	t.Run("Zero percent", func(t *testing.T) {
		subtotal := decimal.RequireFromString("14.95")
		discount := Discount(subtotal, 0)
		assert.True(t, discount.IsZero())
		assert.Equal(t, "14.95", Total(subtotal, discount).StringFixed(2))
	})

	t.Run("Rounds half up", func(t *testing.T) {
		// 3.75 * 10% = 0.375, which rounds up to 0.38
		discount := Discount(decimal.RequireFromString("3.75"), 10)
		assert.Equal(t, "0.38", discount.StringFixed(2))
	})

	t.Run("Full discount", func(t *testing.T) {
		subtotal := decimal.RequireFromString("8.97")
		discount := Discount(subtotal, 100)
		assert.Equal(t, "8.97", discount.StringFixed(2))
		assert.True(t, Total(subtotal, discount).IsZero())
	})
}
