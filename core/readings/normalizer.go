// Package readings turns raw per-meter readings into per-account
// chronological sequences with derived daily usage rates.
package readings

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"power-cost/core/calendar"
	"power-cost/core/identity"
	"power-cost/core/types"
	"power-cost/internal/logging"
)

// Normalize groups raw readings by resolved account, sorts them by date,
// applies each meter's calibration offset and derives the forward-looking
// daily usage rate between consecutive readings.
//
// Two readings with the same date would make the rate undefined; the
// earlier point of a zero-day gap is dropped. A decreasing sequence
// (meter swap without a compensating offset) is preserved as-is and
// surfaced as a NonMonotonicReading warning, never corrected.
func Normalize(resolver *identity.Resolver, records []types.ReadingRecord) (map[types.AccountLabel][]types.Reading, []types.Warning, error) {
	grouped := make(map[types.AccountLabel][]types.Reading)
	for _, rec := range records {
		account, err := resolver.Resolve(rec.Meter)
		if err != nil {
			return nil, nil, err
		}
		offset, err := resolver.Offset(rec.Meter)
		if err != nil {
			return nil, nil, err
		}
		grouped[account] = append(grouped[account], types.Reading{
			Date:  calendar.Normalize(rec.Date),
			Meter: rec.Meter,
			Value: rec.Value + offset,
		})
	}

	var warnings []types.Warning
	out := make(map[types.AccountLabel][]types.Reading, len(grouped))
	for account, seq := range grouped {
		sort.SliceStable(seq, func(i, j int) bool { return seq[i].Date.Before(seq[j].Date) })
		normalized, w := deriveRates(account, seq)
		out[account] = normalized
		warnings = append(warnings, w...)
	}
	return out, warnings, nil
}

// deriveRates drops zero-gap predecessors and attaches the per-segment
// daily rate to every reading except the last
func deriveRates(account types.AccountLabel, seq []types.Reading) ([]types.Reading, []types.Warning) {
	var warnings []types.Warning
	out := make([]types.Reading, 0, len(seq))

	for i := range seq {
		if i+1 < len(seq) {
			days := calendar.DaysBetween(seq[i].Date, seq[i+1].Date)
			if days == 0 {
				// same-day duplicate, rate undefined
				continue
			}
			rate := (seq[i+1].Value - seq[i].Value) / float64(days)
			seq[i].Rate = &rate
			if rate < 0 {
				warnings = append(warnings, types.Warning{
					Kind:    types.WarnNonMonotonicReading,
					Account: account,
					Meter:   seq[i+1].Meter,
					Date:    seq[i+1].Date,
					Detail: fmt.Sprintf("reading drops from %.2f to %.2f, check meter offsets",
						seq[i].Value, seq[i+1].Value),
				})
				logging.Warn("non-monotonic reading sequence",
					zap.String("account", account.String()),
					zap.String("meter", seq[i+1].Meter.String()),
					zap.Time("date", seq[i+1].Date))
			}
		}
		out = append(out, seq[i])
	}
	return out, warnings
}
