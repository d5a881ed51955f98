// Package projection reconstructs a best-estimate cumulative meter value
// for every day of a date window from a sparse reading sequence.
//
// Days inside the measured range use the containing segment's derived
// rate, which preserves real seasonal variation. Days past the last
// reading fall into the extrapolation regime and advance by the mean of
// all historical segment rates; the mean is computed lazily the first
// time it is needed and is local to one account's sequence.
package projection

import (
	"time"

	"power-cost/core/calendar"
	"power-cost/core/types"
	"power-cost/internal/errors"
)

// Result is the projection outcome for one window
type Result struct {
	// Series is the day-by-day cumulative estimate, contiguous over
	// [start, end)
	Series []types.DailyUsagePoint

	// UsageDelta is estimate(end-1) - estimate(start), the net usage
	// over the window
	UsageDelta float64

	// EstimatedDayRatio is the fraction of days that were extrapolated,
	// in [0,1]
	EstimatedDayRatio float64
}

// Project computes the daily cumulative estimate for every day in
// [start, end). The reading sequence must be chronological with derived
// rates as produced by the readings package; fewer than two readings
// make interpolation and extrapolation impossible and fail with an
// INSUFFICIENT_DATA error.
func Project(start, end time.Time, seq []types.Reading) (*Result, error) {
	start = calendar.Normalize(start)
	end = calendar.Normalize(end)
	if !end.After(start) {
		return nil, errors.Newf(errors.TypeInput, "empty projection window [%s, %s)",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if len(seq) < 2 {
		return nil, errors.Newf(errors.TypeInsufficientData,
			"projection needs at least 2 readings, have %d", len(seq))
	}

	days := calendar.DaysBetween(start, end)
	series := make([]types.DailyUsagePoint, 0, days)

	var mean meanRate
	cursor := 0
	extrapolated := 0

	for d, i := start, 0; i < days; d, i = calendar.AddDays(d, 1), i+1 {
		// The cursor only ever moves forward: both the day sequence and
		// the reading sequence are sorted.
		for cursor+1 < len(seq) && !d.Before(seq[cursor+1].Date) {
			cursor++
		}

		var prev *float64
		if len(series) > 0 {
			prev = &series[len(series)-1].Estimate
		}
		point, err := estimateDay(d, prev, cursor, seq, &mean)
		if err != nil {
			return nil, err
		}
		if !point.Measured {
			extrapolated++
		}
		series = append(series, point)
	}

	return &Result{
		Series:            series,
		UsageDelta:        series[len(series)-1].Estimate - series[0].Estimate,
		EstimatedDayRatio: float64(extrapolated) / float64(days),
	}, nil
}

// estimateDay computes the estimate for a single day. The previous day's
// computed value is passed explicitly; the extrapolation recurrence never
// reaches into hidden mutable state.
func estimateDay(d time.Time, prev *float64, cursor int, seq []types.Reading, mean *meanRate) (types.DailyUsagePoint, error) {
	anchor := seq[cursor]

	// Exact reading date, including the final reading of the sequence.
	if d.Equal(anchor.Date) {
		return types.DailyUsagePoint{Date: d, Estimate: anchor.Value, Measured: true}, nil
	}

	// Before the first reading: extrapolate backward from the first
	// point using the mean rate.
	if d.Before(seq[0].Date) {
		rate, err := mean.of(seq)
		if err != nil {
			return types.DailyUsagePoint{}, err
		}
		gap := calendar.DaysBetween(d, seq[0].Date)
		return types.DailyUsagePoint{Date: d, Estimate: seq[0].Value - rate*float64(gap)}, nil
	}

	// Inside a measured segment [anchor, next): interpolate linearly
	// with the segment's own rate.
	if cursor+1 < len(seq) && anchor.Rate != nil {
		gap := calendar.DaysBetween(anchor.Date, d)
		return types.DailyUsagePoint{
			Date:     d,
			Estimate: anchor.Value + float64(gap)*(*anchor.Rate),
			Measured: true,
		}, nil
	}

	// Past the last reading: advance yesterday's estimate by the mean
	// rate, seeding from the last reading when the window opens already
	// inside the extrapolation regime.
	rate, err := mean.of(seq)
	if err != nil {
		return types.DailyUsagePoint{}, err
	}
	if prev != nil {
		return types.DailyUsagePoint{Date: d, Estimate: *prev + rate}, nil
	}
	last := seq[len(seq)-1]
	gap := calendar.DaysBetween(last.Date, d)
	return types.DailyUsagePoint{Date: d, Estimate: last.Value + rate*float64(gap)}, nil
}

// meanRate lazily computes the arithmetic mean of all per-segment daily
// rates of a reading sequence
type meanRate struct {
	value    float64
	computed bool
}

func (m *meanRate) of(seq []types.Reading) (float64, error) {
	if m.computed {
		return m.value, nil
	}
	var sum float64
	var n int
	for _, r := range seq {
		if r.Rate != nil {
			sum += *r.Rate
			n++
		}
	}
	if n == 0 {
		return 0, errors.New(errors.TypeInsufficientData,
			"reading sequence has no derived rates, cannot extrapolate")
	}
	m.value = sum / float64(n)
	m.computed = true
	return m.value, nil
}
