// Package engine orchestrates the per-account estimation batch.
//
// Errors scoped to a single account (too few readings, no covering
// tariff) skip that account and leave the batch running; identity table
// violations abort the whole run. Accounts are processed one after the
// other and share no mutable state.
package engine

import (
	"time"

	"go.uber.org/zap"

	"power-cost/core/billing"
	"power-cost/core/calendar"
	"power-cost/core/identity"
	"power-cost/core/projection"
	"power-cost/core/readings"
	"power-cost/core/tariff"
	"power-cost/core/types"
	"power-cost/internal/errors"
	"power-cost/internal/logging"
)

// Input is the fully materialized data set for one run
type Input struct {
	// Assignments is the meter identity table
	Assignments []types.MeterAssignment

	// Readings are the raw meter readings
	Readings []types.ReadingRecord

	// Tariffs are the raw price change records
	Tariffs []types.TariffRecord

	// Invoices are the historical invoice dates per account
	Invoices []types.InvoiceSeed
}

// SkippedAccount records an account excluded from a batch result
type SkippedAccount struct {
	// Account is the skipped account
	Account types.AccountLabel `json:"account"`

	// Reason is the human-readable cause
	Reason string `json:"reason"`
}

// BatchResult is the outcome of one estimation run
type BatchResult struct {
	// AsOf is the reference moment of the run
	AsOf time.Time `json:"as_of"`

	// Accounts are the successful per-account projections, in sorted
	// account order
	Accounts []*types.AccountProjection `json:"accounts"`

	// Skipped are accounts that could not be projected
	Skipped []SkippedAccount `json:"skipped,omitempty"`

	// Warnings are the non-fatal conditions raised during the run
	Warnings []types.Warning `json:"warnings,omitempty"`
}

// Engine runs estimation batches
type Engine struct{}

// New creates an engine
func New() *Engine {
	return &Engine{}
}

// prepared is the fully normalized per-run state
type prepared struct {
	resolver *identity.Resolver
	readings map[types.AccountLabel][]types.Reading
	tariffs  map[types.AccountLabel][]types.TariffInterval
	invoices map[types.AccountLabel]time.Time
	warnings []types.Warning
}

func (e *Engine) prepare(input *Input) (*prepared, error) {
	resolver, err := identity.NewResolver(input.Assignments)
	if err != nil {
		return nil, err
	}

	seqs, warnings, err := readings.Normalize(resolver, input.Readings)
	if err != nil {
		return nil, err
	}

	intervals, err := tariff.Segment(resolver, input.Tariffs)
	if err != nil {
		return nil, err
	}

	invoices := make(map[types.AccountLabel]time.Time, len(input.Invoices))
	for _, seed := range input.Invoices {
		invoices[seed.Account] = calendar.Normalize(seed.Date)
	}

	return &prepared{
		resolver: resolver,
		readings: seqs,
		tariffs:  intervals,
		invoices: invoices,
		warnings: warnings,
	}, nil
}

// Run projects every account's current billing year, delimited by the
// next invoice anniversary after now. Per-account failures are recorded
// in Skipped; the rest of the batch continues.
func (e *Engine) Run(input *Input, now time.Time) (*BatchResult, error) {
	p, err := e.prepare(input)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{AsOf: calendar.Normalize(now), Warnings: p.warnings}
	for _, account := range p.resolver.Accounts() {
		seed, ok := p.invoices[account]
		if !ok {
			result.Skipped = append(result.Skipped, SkippedAccount{
				Account: account,
				Reason:  "no historical invoice date on record",
			})
			continue
		}

		next, clamped := calendar.NextAnniversary(seed, now)
		if clamped {
			result.Warnings = append(result.Warnings, overflowWarning(account, next))
		}
		start, clamped, err := calendar.ShiftMonths(next, -12)
		if err != nil {
			return nil, err
		}
		if clamped {
			result.Warnings = append(result.Warnings, overflowWarning(account, start))
		}

		proj, err := e.projectAccount(p, account, start, next, next)
		if err != nil {
			if errors.IsType(err, errors.TypeInsufficientData) || errors.IsType(err, errors.TypeTariff) {
				logging.Warn("skipping account",
					zap.String("account", account.String()),
					zap.Error(err))
				result.Skipped = append(result.Skipped, SkippedAccount{
					Account: account,
					Reason:  err.Error(),
				})
				continue
			}
			return nil, err
		}
		result.Accounts = append(result.Accounts, proj)
	}
	return result, nil
}

// ProjectWindow projects one account over an explicit window [start, end)
func (e *Engine) ProjectWindow(input *Input, account types.AccountLabel, start, end time.Time) (*types.AccountProjection, error) {
	p, err := e.prepare(input)
	if err != nil {
		return nil, err
	}
	if _, ok := p.readings[account]; !ok {
		return nil, errors.Newf(errors.TypeInput, "unknown account %q", account)
	}
	return e.projectAccount(p, account, calendar.Normalize(start), calendar.Normalize(end), time.Time{})
}

func (e *Engine) projectAccount(p *prepared, account types.AccountLabel, start, end, nextInvoice time.Time) (*types.AccountProjection, error) {
	seq := p.readings[account]
	res, err := projection.Project(start, end, seq)
	if err != nil {
		return nil, err
	}

	unit, base, err := billing.AverageDailyPrices(start, end, p.tariffs[account])
	if err != nil {
		return nil, err
	}
	days := calendar.DaysBetween(start, end)
	energy, baseCost := billing.Costs(res.UsageDelta, days, unit, base)

	return &types.AccountProjection{
		Account:           account,
		PeriodStart:       start,
		PeriodEnd:         end,
		NextInvoice:       nextInvoice,
		UsageKWh:          res.UsageDelta,
		EnergyCost:        energy,
		BaseCost:          baseCost,
		TotalCost:         energy.Add(baseCost),
		EstimatedDayRatio: res.EstimatedDayRatio,
		Series:            res.Series,
	}, nil
}

func overflowWarning(account types.AccountLabel, date time.Time) types.Warning {
	logging.Warn("calendar overflow clamped to day 28",
		zap.String("account", account.String()),
		zap.Time("date", date))
	return types.Warning{
		Kind:    types.WarnCalendarOverflow,
		Account: account,
		Date:    date,
		Detail:  "day-of-month clamped to 28 during month arithmetic",
	}
}
