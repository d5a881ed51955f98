// Package types - projection and warning types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarningKind classifies non-fatal conditions surfaced to the caller
type WarningKind string

const (
	// WarnCalendarOverflow indicates a month shift produced an invalid
	// day-of-month and was clamped to 28
	WarnCalendarOverflow WarningKind = "CALENDAR_OVERFLOW"

	// WarnNonMonotonicReading indicates a reading sequence that decreases,
	// typically a meter swap recorded without a compensating offset
	WarnNonMonotonicReading WarningKind = "NON_MONOTONIC_READING"
)

// Warning is a non-fatal condition that must reach the caller rather
// than being swallowed
type Warning struct {
	// Kind classifies the warning
	Kind WarningKind `json:"kind"`

	// Account is the affected account, if any
	Account AccountLabel `json:"account,omitempty"`

	// Meter is the affected meter, if any
	Meter MeterNumber `json:"meter,omitempty"`

	// Date is the affected date, if any
	Date time.Time `json:"date,omitempty"`

	// Detail is a human-readable description
	Detail string `json:"detail"`
}

// AccountProjection is the complete projection result for one account
// over one billing window
type AccountProjection struct {
	// Account is the account label
	Account AccountLabel `json:"account"`

	// PeriodStart is the first day of the billing window (inclusive)
	PeriodStart time.Time `json:"period_start"`

	// PeriodEnd is the end of the billing window (exclusive)
	PeriodEnd time.Time `json:"period_end"`

	// NextInvoice is the next occurring invoice anniversary
	NextInvoice time.Time `json:"next_invoice"`

	// UsageKWh is the projected net consumption over the window
	UsageKWh float64 `json:"usage_kwh"`

	// EnergyCost is the projected VAT-inclusive energy cost
	EnergyCost decimal.Decimal `json:"energy_cost"`

	// BaseCost is the projected VAT-inclusive base cost
	BaseCost decimal.Decimal `json:"base_cost"`

	// TotalCost is EnergyCost + BaseCost
	TotalCost decimal.Decimal `json:"total_cost"`

	// EstimatedDayRatio is the fraction of window days that had to be
	// extrapolated past the measured range, in [0,1]
	EstimatedDayRatio float64 `json:"estimated_day_ratio"`

	// Series is the day-by-day cumulative estimate for the window
	Series []DailyUsagePoint `json:"series,omitempty"`
}
