// Package calculator implements the per-day charge engine for a rental
// window. All functions are pure; they never mutate their inputs.
package calculator

import (
	"github.com/shopspring/decimal"

	"toolrental-pos/internal/calendar"
	"toolrental-pos/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// DailyCharges determines the charge for every day of the rental window and
// the number of days actually billed. The window starts at checkoutDate and
// spans rentalDays consecutive calendar days; every day gets a map entry,
// zero-charge days included.
//
// A holiday for a tool that is not holiday-billable is exempt: it is charged
// zero and never counted, even if the tool would bill that weekday or
// weekend. Otherwise the day is billed by its weekday/weekend class; there
// is no separate holiday rate, only the exemption.
func DailyCharges(tool domain.ToolSpec, checkoutDate calendar.Date, rentalDays int) (map[calendar.Date]decimal.Decimal, int) {
	charges := make(map[calendar.Date]decimal.Decimal, rentalDays)
	chargeDays := 0

	day := checkoutDate
	for i := 0; i < rentalDays; i++ {
		switch {
		case calendar.IsHoliday(day) && !tool.HolidayBillable:
			charges[day] = decimal.Zero
		case calendar.IsWeekend(day):
			if tool.WeekendBillable {
				charges[day] = tool.DailyCharge
				chargeDays++
			} else {
				charges[day] = decimal.Zero
			}
		default:
			if tool.WeekdayBillable {
				charges[day] = tool.DailyCharge
				chargeDays++
			} else {
				charges[day] = decimal.Zero
			}
		}
		day = day.AddDays(1)
	}

	return charges, chargeDays
}

// Subtotal sums every daily charge in the window.
func Subtotal(charges map[calendar.Date]decimal.Decimal) decimal.Decimal {
	subtotal := decimal.Zero
	for _, charge := range charges {
		subtotal = subtotal.Add(charge)
	}
	return subtotal
}

// Discount computes the discount amount for a whole-number percent, rounded
// half-up to two decimal places. Range checking of the percent happens in the
// validator, not here.
func Discount(subtotal decimal.Decimal, discountPercent int) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(int64(discountPercent))).Div(oneHundred).Round(2)
}

// Total is the subtotal less the discount amount.
func Total(subtotal, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount)
}
