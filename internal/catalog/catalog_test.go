package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"toolrental-pos/internal/domain"
)

func TestLookup(t *testing.T) {
	t.Run("Chainsaw", func(t *testing.T) {
		spec, err := Lookup(domain.ToolCodeCHNS)
		assert.NoError(t, err)
		assert.Equal(t, domain.ToolTypeChainsaw, spec.Type)
		assert.Equal(t, domain.BrandStihl, spec.Brand)
		assert.Equal(t, "1.49", spec.DailyCharge.StringFixed(2))
		assert.True(t, spec.WeekdayBillable)
		assert.False(t, spec.WeekendBillable)
		assert.True(t, spec.HolidayBillable)
	})

	t.Run("Ladder bills weekends but not holidays", func(t *testing.T) {
		spec, err := Lookup(domain.ToolCodeLADW)
		assert.NoError(t, err)
		assert.Equal(t, domain.BrandWerner, spec.Brand)
		assert.Equal(t, "1.99", spec.DailyCharge.StringFixed(2))
		assert.True(t, spec.WeekendBillable)
		assert.False(t, spec.HolidayBillable)
	})

	t.Run("Jackhammers bill weekdays only", func(t *testing.T) {
		for _, code := range []domain.ToolCode{domain.ToolCodeJAKD, domain.ToolCodeJAKR} {
			spec, err := Lookup(code)
			assert.NoError(t, err)
			assert.Equal(t, domain.ToolTypeJackhammer, spec.Type)
			assert.Equal(t, "2.99", spec.DailyCharge.StringFixed(2))
			assert.True(t, spec.WeekdayBillable)
			assert.False(t, spec.WeekendBillable)
			assert.False(t, spec.HolidayBillable)
		}
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, err := Lookup("BULL")
		assert.Error(t, err)
		assert.True(t, domain.IsUnknownToolError(err))
		assert.Contains(t, err.Error(), "BULL")
	})
}

func TestList(t *testing.T) {
	specs := List()
	assert.Len(t, specs, 4)
	// ordered by code
	assert.Equal(t, domain.ToolCodeCHNS, specs[0].Code)
	assert.Equal(t, domain.ToolCodeJAKD, specs[1].Code)
	assert.Equal(t, domain.ToolCodeJAKR, specs[2].Code)
	assert.Equal(t, domain.ToolCodeLADW, specs[3].Code)
}
