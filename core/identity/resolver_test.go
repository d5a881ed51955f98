package identity

import (
	"testing"

	"power-cost/core/types"
	"power-cost/internal/errors"
)

func testAssignments() []types.MeterAssignment {
	return []types.MeterAssignment{
		{Account: "garage", Meter: "1ESY1161979087", Offset: 0},
		{Account: "garage", Meter: "1EMH0009124731", Offset: 14308.5},
		{Account: "apartment", Meter: "1LOG0065282712", Offset: 0},
	}
}

func TestResolve(t *testing.T) {
	r, err := NewResolver(testAssignments())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		meter   types.MeterNumber
		account types.AccountLabel
		offset  float64
	}{
		{"1ESY1161979087", "garage", 0},
		{"1EMH0009124731", "garage", 14308.5},
		{"1LOG0065282712", "apartment", 0},
	}
	for _, tt := range tests {
		account, err := r.Resolve(tt.meter)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.meter, err)
		}
		if account != tt.account {
			t.Errorf("Resolve(%s) = %s, want %s", tt.meter, account, tt.account)
		}
		offset, err := r.Offset(tt.meter)
		if err != nil {
			t.Fatalf("Offset(%s): %v", tt.meter, err)
		}
		if offset != tt.offset {
			t.Errorf("Offset(%s) = %v, want %v", tt.meter, offset, tt.offset)
		}
	}
}

func TestResolveUnknownMeter(t *testing.T) {
	r, err := NewResolver(testAssignments())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Resolve("0XXX0000000000"); !errors.IsType(err, errors.TypeUnknownMeter) {
		t.Errorf("expected unknown meter error, got %v", err)
	}
	if _, err := r.Offset("0XXX0000000000"); !errors.IsType(err, errors.TypeUnknownMeter) {
		t.Errorf("expected unknown meter error, got %v", err)
	}
}

func TestDuplicateMeterFailsConstruction(t *testing.T) {
	assignments := append(testAssignments(), types.MeterAssignment{
		Account: "apartment",
		Meter:   "1ESY1161979087",
	})
	if _, err := NewResolver(assignments); !errors.IsType(err, errors.TypeDuplicateMeter) {
		t.Errorf("expected duplicate meter error, got %v", err)
	}
}

func TestAccountsSorted(t *testing.T) {
	r, err := NewResolver(testAssignments())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	accounts := r.Accounts()
	want := []types.AccountLabel{"apartment", "garage"}
	if len(accounts) != len(want) {
		t.Fatalf("got %d accounts, want %d", len(accounts), len(want))
	}
	for i := range want {
		if accounts[i] != want[i] {
			t.Errorf("accounts[%d] = %s, want %s", i, accounts[i], want[i])
		}
	}
}
