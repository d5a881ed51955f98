// Package billing combines projected usage with tariff intervals into a
// cost estimate.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"power-cost/core/calendar"
	"power-cost/core/tariff"
	"power-cost/core/types"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// AverageDailyPrices computes the VAT-inclusive average daily unit price
// (ct/kWh) and average daily base price over the window [start, end).
//
// The base price is a monthly charge prorated to daily granularity with
// the actual number of days in each day's calendar month (28-31,
// leap-year aware). A day not covered by any interval, which can only
// happen when the window opens before the first recorded tariff, is a
// TARIFF_ERROR.
func AverageDailyPrices(start, end time.Time, intervals []types.TariffInterval) (unit, base decimal.Decimal, err error) {
	start = calendar.Normalize(start)
	end = calendar.Normalize(end)
	days := calendar.DaysBetween(start, end)
	if days <= 0 {
		return decimal.Zero, decimal.Zero, nil
	}

	unitSum := decimal.Zero
	baseSum := decimal.Zero
	for d := start; d.Before(end); d = calendar.AddDays(d, 1) {
		iv, err := tariff.IntervalAt(intervals, d)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		gross := one.Add(iv.VATPercent.Div(hundred))
		monthDays := decimal.NewFromInt(int64(calendar.DaysInMonth(d.Year(), d.Month())))
		unitSum = unitSum.Add(iv.UnitPrice.Mul(gross))
		baseSum = baseSum.Add(iv.BasePrice.Div(monthDays).Mul(gross))
	}

	n := decimal.NewFromInt(int64(days))
	return unitSum.Div(n), baseSum.Div(n), nil
}

// Costs combines a projected usage delta with the averaged daily prices.
// The unit price is in ct/kWh, so the energy cost divides by 100 to land
// in the major currency unit; the base cost is the daily base price over
// the full window length.
func Costs(usageDelta float64, windowDays int, unit, base decimal.Decimal) (energy, baseCost decimal.Decimal) {
	energy = decimal.NewFromFloat(usageDelta).Mul(unit).Div(hundred)
	baseCost = decimal.NewFromInt(int64(windowDays)).Mul(base)
	return energy, baseCost
}
