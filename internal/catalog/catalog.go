// Package catalog holds the fixed table of rentable tools. The catalog is
// process-wide and read-only, so unsynchronized concurrent lookups are safe.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"toolrental-pos/internal/domain"
)

var tools = map[domain.ToolCode]domain.ToolSpec{
	domain.ToolCodeCHNS: {
		Code:            domain.ToolCodeCHNS,
		Type:            domain.ToolTypeChainsaw,
		Brand:           domain.BrandStihl,
		DailyCharge:     decimal.RequireFromString("1.49"),
		WeekdayBillable: true,
		WeekendBillable: false,
		HolidayBillable: true,
	},
	domain.ToolCodeLADW: {
		Code:            domain.ToolCodeLADW,
		Type:            domain.ToolTypeLadder,
		Brand:           domain.BrandWerner,
		DailyCharge:     decimal.RequireFromString("1.99"),
		WeekdayBillable: true,
		WeekendBillable: true,
		HolidayBillable: false,
	},
	domain.ToolCodeJAKD: {
		Code:            domain.ToolCodeJAKD,
		Type:            domain.ToolTypeJackhammer,
		Brand:           domain.BrandDeWalt,
		DailyCharge:     decimal.RequireFromString("2.99"),
		WeekdayBillable: true,
		WeekendBillable: false,
		HolidayBillable: false,
	},
	domain.ToolCodeJAKR: {
		Code:            domain.ToolCodeJAKR,
		Type:            domain.ToolTypeJackhammer,
		Brand:           domain.BrandRidgid,
		DailyCharge:     decimal.RequireFromString("2.99"),
		WeekdayBillable: true,
		WeekendBillable: false,
		HolidayBillable: false,
	},
}

// Lookup returns the specification for a tool code.
func Lookup(code domain.ToolCode) (domain.ToolSpec, error) {
	spec, ok := tools[code]
	if !ok {
		return domain.ToolSpec{}, &domain.UnknownToolError{Code: code}
	}
	return spec, nil
}

// List returns every tool in the catalog ordered by code.
func List() []domain.ToolSpec {
	specs := make([]domain.ToolSpec, 0, len(tools))
	for _, spec := range tools {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Code < specs[j].Code })
	return specs
}
