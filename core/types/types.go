// Package types defines the domain entities and input record types
// shared across the estimation core.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountLabel identifies a logical consumption account. One account may
// have owned several physical meters over time (meter replacement).
type AccountLabel string

// String returns the string representation
func (a AccountLabel) String() string {
	return string(a)
}

// MeterNumber identifies a physical meter
type MeterNumber string

// String returns the string representation
func (m MeterNumber) String() string {
	return string(m)
}

// MeterAssignment binds a physical meter to an account, with a static
// calibration offset added to every raw reading from that meter
type MeterAssignment struct {
	// Account is the owning account label
	Account AccountLabel `json:"account"`

	// Meter is the physical meter number
	Meter MeterNumber `json:"meter"`

	// Offset is added to every raw reading value from this meter
	Offset float64 `json:"offset"`
}

// ReadingRecord is a raw manual meter reading as loaded from the data files
type ReadingRecord struct {
	// Date is the civil date of the reading
	Date time.Time `json:"date"`

	// Meter is the physical meter number
	Meter MeterNumber `json:"meter"`

	// Value is the raw cumulative meter value in kWh, before offset
	Value float64 `json:"value"`
}

// TariffRecord is a raw point-in-time price change as loaded from the
// data files. It becomes effective on Date and stays effective until the
// next record for the same account.
type TariffRecord struct {
	// Date is the effective date of this price change
	Date time.Time `json:"date"`

	// Meter is the physical meter number the change was recorded against
	Meter MeterNumber `json:"meter"`

	// UnitPrice is the net energy price in ct/kWh
	UnitPrice decimal.Decimal `json:"unit_price"`

	// BasePrice is the net monthly base price
	BasePrice decimal.Decimal `json:"base_price"`

	// VATPercent is the value-added tax rate, e.g. 19
	VATPercent decimal.Decimal `json:"vat_percent"`
}

// InvoiceSeed is a historical invoice date for an account. The annual
// billing window is anchored on its month and day.
type InvoiceSeed struct {
	// Account is the account label
	Account AccountLabel `json:"account"`

	// Date is a past invoice date
	Date time.Time `json:"date"`
}

// Reading is a normalized, offset-corrected reading within an account's
// chronological sequence
type Reading struct {
	// Date is the civil date of the reading
	Date time.Time `json:"date"`

	// Meter is the physical meter the value came from
	Meter MeterNumber `json:"meter"`

	// Value is the offset-corrected cumulative meter value in kWh
	Value float64 `json:"value"`

	// Rate is the forward-looking average daily consumption between this
	// reading and the next one, in kWh/day. Nil on the final reading of a
	// sequence.
	Rate *float64 `json:"rate,omitempty"`
}

// TariffInterval is a validity range over which one tariff applies.
// ValidFrom and ValidTo are both inclusive. Within one account the
// intervals are contiguous, non-overlapping and ordered by ValidFrom,
// and the last interval ends at the year-3000 sentinel.
type TariffInterval struct {
	// ValidFrom is the first day the tariff applies
	ValidFrom time.Time `json:"valid_from"`

	// ValidTo is the last day the tariff applies
	ValidTo time.Time `json:"valid_to"`

	// UnitPrice is the net energy price in ct/kWh
	UnitPrice decimal.Decimal `json:"unit_price"`

	// BasePrice is the net monthly base price
	BasePrice decimal.Decimal `json:"base_price"`

	// VATPercent is the value-added tax rate
	VATPercent decimal.Decimal `json:"vat_percent"`
}

// Contains reports whether day falls inside the interval
func (t TariffInterval) Contains(day time.Time) bool {
	return !day.Before(t.ValidFrom) && !day.After(t.ValidTo)
}

// DailyUsagePoint is the best-estimate cumulative meter value for one day
// of a projection window. Produced transiently, never persisted.
type DailyUsagePoint struct {
	// Date is the day
	Date time.Time `json:"date"`

	// Estimate is the cumulative meter estimate in kWh
	Estimate float64 `json:"estimate"`

	// Measured is true when the estimate is derived from real readings
	// (exact match or interpolation between two readings), false when it
	// was extrapolated past the measured range
	Measured bool `json:"measured"`
}
