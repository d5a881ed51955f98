package tariff

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"power-cost/core/calendar"
	"power-cost/core/identity"
	"power-cost/core/types"
	"power-cost/internal/errors"
)

func testResolver(t *testing.T) *identity.Resolver {
	t.Helper()
	r, err := identity.NewResolver([]types.MeterAssignment{
		{Account: "garage", Meter: "M1"},
		{Account: "apartment", Meter: "M3"},
	})
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	return r
}

func record(y int, m time.Month, d int, meter types.MeterNumber, unit string) types.TariffRecord {
	return types.TariffRecord{
		Date:       calendar.Date(y, m, d),
		Meter:      meter,
		UnitPrice:  decimal.RequireFromString(unit),
		BasePrice:  decimal.RequireFromString("10.0"),
		VATPercent: decimal.RequireFromString("19"),
	}
}

func TestSegment(t *testing.T) {
	records := []types.TariffRecord{
		record(2024, time.July, 1, "M1", "0.35"),
		record(2024, time.January, 1, "M1", "0.30"),
	}

	intervals, err := Segment(testResolver(t), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq := intervals["garage"]
	if len(seq) != 2 {
		t.Fatalf("got %d intervals, want 2", len(seq))
	}

	if !seq[0].ValidFrom.Equal(calendar.Date(2024, time.January, 1)) {
		t.Errorf("first ValidFrom = %s", seq[0].ValidFrom.Format("2006-01-02"))
	}
	if !seq[0].ValidTo.Equal(calendar.Date(2024, time.June, 30)) {
		t.Errorf("first ValidTo = %s, want 2024-06-30", seq[0].ValidTo.Format("2006-01-02"))
	}
	if !seq[1].ValidFrom.Equal(calendar.Date(2024, time.July, 1)) {
		t.Errorf("second ValidFrom = %s", seq[1].ValidFrom.Format("2006-01-02"))
	}
	if !seq[1].ValidTo.Equal(calendar.Sentinel()) {
		t.Errorf("last ValidTo = %s, want sentinel", seq[1].ValidTo.Format("2006-01-02"))
	}
	if !seq[0].UnitPrice.Equal(decimal.RequireFromString("0.30")) {
		t.Errorf("first UnitPrice = %s", seq[0].UnitPrice)
	}
}

// Consecutive intervals must join without gap or overlap.
func TestSegmentGapFree(t *testing.T) {
	records := []types.TariffRecord{
		record(2022, time.January, 1, "M1", "0.28"),
		record(2023, time.March, 15, "M1", "0.42"),
		record(2024, time.July, 1, "M1", "0.35"),
	}
	intervals, err := Segment(testResolver(t), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := intervals["garage"]
	for i := 1; i < len(seq); i++ {
		expected := calendar.AddDays(seq[i-1].ValidTo, 1)
		if !seq[i].ValidFrom.Equal(expected) {
			t.Errorf("interval %d starts %s, want %s", i,
				seq[i].ValidFrom.Format("2006-01-02"), expected.Format("2006-01-02"))
		}
	}
}

func TestSegmentUnknownMeterAborts(t *testing.T) {
	records := []types.TariffRecord{record(2024, time.January, 1, "UNKNOWN", "0.30")}
	if _, err := Segment(testResolver(t), records); !errors.IsType(err, errors.TypeUnknownMeter) {
		t.Errorf("expected unknown meter error, got %v", err)
	}
}

func TestIntervalAt(t *testing.T) {
	records := []types.TariffRecord{
		record(2024, time.January, 1, "M1", "0.30"),
		record(2024, time.July, 1, "M1", "0.35"),
	}
	intervals, err := Segment(testResolver(t), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq := intervals["garage"]

	tests := []struct {
		day  time.Time
		unit string
	}{
		{calendar.Date(2024, time.January, 1), "0.30"},
		{calendar.Date(2024, time.June, 30), "0.30"},
		{calendar.Date(2024, time.July, 1), "0.35"},
		{calendar.Date(2099, time.December, 31), "0.35"},
	}
	for _, tt := range tests {
		iv, err := IntervalAt(seq, tt.day)
		if err != nil {
			t.Fatalf("IntervalAt(%s): %v", tt.day.Format("2006-01-02"), err)
		}
		if !iv.UnitPrice.Equal(decimal.RequireFromString(tt.unit)) {
			t.Errorf("IntervalAt(%s).UnitPrice = %s, want %s",
				tt.day.Format("2006-01-02"), iv.UnitPrice, tt.unit)
		}
	}

	if _, err := IntervalAt(seq, calendar.Date(2023, time.December, 31)); !errors.IsType(err, errors.TypeTariff) {
		t.Errorf("expected tariff error before first interval, got %v", err)
	}
}
