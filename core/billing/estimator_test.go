package billing

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"power-cost/core/calendar"
	"power-cost/core/types"
	"power-cost/internal/errors"
)

func interval(from, to time.Time, unit, base, vat string) types.TariffInterval {
	return types.TariffInterval{
		ValidFrom:  from,
		ValidTo:    to,
		UnitPrice:  decimal.RequireFromString(unit),
		BasePrice:  decimal.RequireFromString(base),
		VATPercent: decimal.RequireFromString(vat),
	}
}

func TestAverageDailyPricesSingleTariff(t *testing.T) {
	intervals := []types.TariffInterval{
		interval(calendar.Date(2024, time.January, 1), calendar.Sentinel(), "30", "10", "19"),
	}

	unit, base, err := AverageDailyPrices(
		calendar.Date(2024, time.January, 1), calendar.Date(2024, time.February, 1), intervals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 30 ct/kWh * 1.19
	if !unit.Equal(decimal.RequireFromString("35.7")) {
		t.Errorf("unit = %s, want 35.7", unit)
	}
	// 10/month over January (31 days) * 1.19
	wantBase := 10.0 / 31 * 1.19
	if math.Abs(base.InexactFloat64()-wantBase) > 1e-9 {
		t.Errorf("base = %s, want %v", base, wantBase)
	}
}

func TestAverageDailyPricesLeapFebruaryProration(t *testing.T) {
	intervals := []types.TariffInterval{
		interval(calendar.Date(2024, time.January, 1), calendar.Sentinel(), "30", "10", "19"),
	}

	_, base, err := AverageDailyPrices(
		calendar.Date(2024, time.February, 1), calendar.Date(2024, time.March, 1), intervals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// february 2024 has 29 days
	wantBase := 10.0 / 29 * 1.19
	if math.Abs(base.InexactFloat64()-wantBase) > 1e-9 {
		t.Errorf("base = %s, want %v", base, wantBase)
	}
}

func TestAverageDailyPricesAcrossPriceChange(t *testing.T) {
	intervals := []types.TariffInterval{
		interval(calendar.Date(2024, time.January, 1), calendar.Date(2024, time.January, 10), "20", "10", "0"),
		interval(calendar.Date(2024, time.January, 11), calendar.Sentinel(), "40", "10", "0"),
	}

	// 10 days at 20 plus 10 days at 40, zero VAT
	unit, _, err := AverageDailyPrices(
		calendar.Date(2024, time.January, 1), calendar.Date(2024, time.January, 21), intervals)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !unit.Equal(decimal.RequireFromString("30")) {
		t.Errorf("unit = %s, want 30", unit)
	}
}

func TestAverageDailyPricesUncoveredDay(t *testing.T) {
	intervals := []types.TariffInterval{
		interval(calendar.Date(2024, time.June, 1), calendar.Sentinel(), "30", "10", "19"),
	}
	_, _, err := AverageDailyPrices(
		calendar.Date(2024, time.May, 30), calendar.Date(2024, time.June, 3), intervals)
	if !errors.IsType(err, errors.TypeTariff) {
		t.Errorf("expected tariff error, got %v", err)
	}
}

func TestCosts(t *testing.T) {
	unit := decimal.RequireFromString("35.7")  // ct/kWh gross
	base := decimal.RequireFromString("0.397") // per day gross

	energy, baseCost := Costs(1000, 365, unit, base)

	// 1000 kWh * 35.7 ct / 100 = 357.00
	if !energy.Equal(decimal.RequireFromString("357")) {
		t.Errorf("energy = %s, want 357", energy)
	}
	// 365 days * 0.397
	if !baseCost.Equal(decimal.RequireFromString("144.905")) {
		t.Errorf("base = %s, want 144.905", baseCost)
	}
}
