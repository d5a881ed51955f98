// Package identity maps physical meter numbers to logical accounts.
//
// One account may have owned several meters over time; the resolver is a
// pure lookup table built once at startup and immutable thereafter.
package identity

import (
	"sort"

	"power-cost/core/types"
	"power-cost/internal/errors"
)

// Resolver resolves meter numbers to account labels and calibration offsets
type Resolver struct {
	accounts map[types.MeterNumber]types.AccountLabel
	offsets  map[types.MeterNumber]float64
	labels   []types.AccountLabel
}

// NewResolver builds a resolver from the meter assignment table. A meter
// number claimed by more than one account fails construction.
func NewResolver(assignments []types.MeterAssignment) (*Resolver, error) {
	r := &Resolver{
		accounts: make(map[types.MeterNumber]types.AccountLabel, len(assignments)),
		offsets:  make(map[types.MeterNumber]float64, len(assignments)),
	}

	seen := make(map[types.AccountLabel]bool)
	for _, a := range assignments {
		if prev, ok := r.accounts[a.Meter]; ok && prev != a.Account {
			return nil, errors.DuplicateMeter(a.Meter.String(), prev.String(), a.Account.String())
		}
		r.accounts[a.Meter] = a.Account
		r.offsets[a.Meter] = a.Offset
		if !seen[a.Account] {
			seen[a.Account] = true
			r.labels = append(r.labels, a.Account)
		}
	}

	sort.Slice(r.labels, func(i, j int) bool { return r.labels[i] < r.labels[j] })
	return r, nil
}

// Resolve returns the account owning the given meter
func (r *Resolver) Resolve(meter types.MeterNumber) (types.AccountLabel, error) {
	account, ok := r.accounts[meter]
	if !ok {
		return "", errors.UnknownMeter(meter.String())
	}
	return account, nil
}

// Offset returns the calibration offset for the given meter
func (r *Resolver) Offset(meter types.MeterNumber) (float64, error) {
	offset, ok := r.offsets[meter]
	if !ok {
		return 0, errors.UnknownMeter(meter.String())
	}
	return offset, nil
}

// Accounts returns all known account labels in sorted order
func (r *Resolver) Accounts() []types.AccountLabel {
	out := make([]types.AccountLabel, len(r.labels))
	copy(out, r.labels)
	return out
}
