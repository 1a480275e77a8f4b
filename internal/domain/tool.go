package domain

import "github.com/shopspring/decimal"

type ToolCode string

const (
	ToolCodeCHNS ToolCode = "CHNS"
	ToolCodeLADW ToolCode = "LADW"
	ToolCodeJAKD ToolCode = "JAKD"
	ToolCodeJAKR ToolCode = "JAKR"
)

type ToolType string

const (
	ToolTypeChainsaw   ToolType = "Chainsaw"
	ToolTypeLadder     ToolType = "Ladder"
	ToolTypeJackhammer ToolType = "Jackhammer"
)

type Brand string

const (
	BrandStihl  Brand = "Stihl"
	BrandWerner Brand = "Werner"
	BrandDeWalt Brand = "DeWalt"
	BrandRidgid Brand = "Ridgid"
)

// ToolSpec is the immutable billing specification for a rentable tool. The
// three billing flags independently control whether weekdays, weekends, and
// holidays within a rental window are charged. When HolidayBillable is false,
// a holiday in the window is billed at zero regardless of the other flags.
type ToolSpec struct {
	Code            ToolCode        `json:"code"`
	Type            ToolType        `json:"type"`
	Brand           Brand           `json:"brand"`
	DailyCharge     decimal.Decimal `json:"daily_charge"`
	WeekdayBillable bool            `json:"weekday_billable"`
	WeekendBillable bool            `json:"weekend_billable"`
	HolidayBillable bool            `json:"holiday_billable"`
}
