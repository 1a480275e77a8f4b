package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a calendar date with no time-of-day component. Holiday and
// weekend classification operates on Date values only, so billing results
// never shift across time zone boundaries.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date from its parts. The parts are normalized the same way
// time.Date normalizes them, so out-of-range days roll over.
func NewDate(year, month, day int) Date {
	return FromTime(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}

// FromTime strips the time-of-day component from t.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Today returns the current calendar date in the process-local zone.
func Today() Date {
	return FromTime(time.Now())
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date.
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("invalid year: %v", err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("invalid month: %v", err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("invalid day: %v", err)
	}

	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12")
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d is out of range for %04d-%02d", day, year, month)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// DaysInMonth returns the number of days in a given month.
func DaysInMonth(year, month int) int {
	if month == 2 {
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// Time converts the Date to a time.Time at midnight UTC. UTC is used so that
// day arithmetic is never affected by daylight saving transitions.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n calendar days after d, rolling over month and
// year boundaries.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String formats the date as yyyy-mm-dd.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FormatMMDDYY formats the date as mm/dd/yy for the rental agreement report.
func (d Date) FormatMMDDYY() string {
	return fmt.Sprintf("%02d/%02d/%02d", d.Month, d.Day, d.Year%100)
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether d is an observed holiday. The observed holidays
// are Independence Day and Labor Day.
func IsHoliday(d Date) bool {
	return IsIndependenceDay(d) || IsLaborDay(d)
}

// IsIndependenceDay reports whether d is July 4.
func IsIndependenceDay(d Date) bool {
	return d.Month == 7 && d.Day == 4
}

// IsLaborDay reports whether d is Labor Day, the first Monday of September.
func IsLaborDay(d Date) bool {
	if d.Month != 9 {
		return false
	}
	return LaborDay(d.Year).Day == d.Day
}

// LaborDay returns Labor Day for the supplied year by scanning forward from
// September 1 until the weekday is a Monday.
func LaborDay(year int) Date {
	d := Date{Year: year, Month: 9, Day: 1}
	for d.Weekday() != time.Monday {
		d = d.AddDays(1)
	}
	return d
}
