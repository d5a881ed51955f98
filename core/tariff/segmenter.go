// Package tariff converts point-in-time price change records into
// per-account, gap-free tariff validity intervals.
package tariff

import (
	"sort"
	"time"

	"power-cost/core/calendar"
	"power-cost/core/identity"
	"power-cost/core/types"
	"power-cost/internal/errors"
)

// Segment groups tariff records by resolved account, sorts them by
// effective date and converts them into contiguous validity intervals.
// Each interval ends the day before the next record becomes effective;
// the last interval extends to the year-3000 sentinel so that every
// future date resolves to exactly one interval.
func Segment(resolver *identity.Resolver, records []types.TariffRecord) (map[types.AccountLabel][]types.TariffInterval, error) {
	grouped := make(map[types.AccountLabel][]types.TariffRecord)
	for _, rec := range records {
		account, err := resolver.Resolve(rec.Meter)
		if err != nil {
			return nil, err
		}
		rec.Date = calendar.Normalize(rec.Date)
		grouped[account] = append(grouped[account], rec)
	}

	out := make(map[types.AccountLabel][]types.TariffInterval, len(grouped))
	for account, recs := range grouped {
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })

		intervals := make([]types.TariffInterval, len(recs))
		for i, rec := range recs {
			validTo := calendar.Sentinel()
			if i+1 < len(recs) {
				validTo = calendar.AddDays(recs[i+1].Date, -1)
			}
			intervals[i] = types.TariffInterval{
				ValidFrom:  rec.Date,
				ValidTo:    validTo,
				UnitPrice:  rec.UnitPrice,
				BasePrice:  rec.BasePrice,
				VATPercent: rec.VATPercent,
			}
		}
		out[account] = intervals
	}
	return out, nil
}

// IntervalAt finds the interval covering the given day. The intervals
// are gap-free and non-overlapping, so a linear first-match scan is
// well-defined; at the data scale here (a handful of price changes per
// account) it is also fast enough.
func IntervalAt(intervals []types.TariffInterval, day time.Time) (types.TariffInterval, error) {
	for _, iv := range intervals {
		if iv.Contains(day) {
			return iv, nil
		}
	}
	return types.TariffInterval{}, errors.Newf(errors.TypeTariff,
		"no tariff interval covers %s", day.Format("2006-01-02"))
}
