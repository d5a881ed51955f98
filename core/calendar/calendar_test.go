package calendar

import (
	"testing"
	"time"

	"power-cost/internal/errors"
)

func TestShiftMonths(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		n       int
		want    time.Time
		clamped bool
	}{
		{
			name: "forward within year",
			date: Date(2024, time.March, 15),
			n:    3,
			want: Date(2024, time.June, 15),
		},
		{
			name: "forward with year carry",
			date: Date(2024, time.November, 10),
			n:    4,
			want: Date(2025, time.March, 10),
		},
		{
			name: "backward with year carry",
			date: Date(2024, time.February, 10),
			n:    -5,
			want: Date(2023, time.September, 10),
		},
		{
			name: "full year back",
			date: Date(2025, time.March, 15),
			n:    -12,
			want: Date(2024, time.March, 15),
		},
		{
			name:    "day 31 lands on shorter month",
			date:    Date(2024, time.January, 31),
			n:       1,
			want:    Date(2024, time.February, 28),
			clamped: true,
		},
		{
			name:    "day 29 lands on non-leap february",
			date:    Date(2023, time.January, 29),
			n:       1,
			want:    Date(2023, time.February, 28),
			clamped: true,
		},
		{
			name: "day 29 lands on leap february",
			date: Date(2024, time.January, 29),
			n:    1,
			want: Date(2024, time.February, 29),
		},
		{
			name: "zero shift",
			date: Date(2024, time.May, 1),
			n:    0,
			want: Date(2024, time.May, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped, err := ShiftMonths(tt.date, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
			if clamped != tt.clamped {
				t.Errorf("clamped = %v, want %v", clamped, tt.clamped)
			}
		})
	}
}

func TestShiftMonthsOutOfRange(t *testing.T) {
	for _, n := range []int{13, -13, 24} {
		_, _, err := ShiftMonths(Date(2024, time.January, 1), n)
		if !errors.IsType(err, errors.TypeCalendar) {
			t.Errorf("ShiftMonths(n=%d): expected calendar error, got %v", n, err)
		}
	}
}

// Shifting by n and back by -n returns the original date unless clamping
// occurred on the way out.
func TestShiftMonthsRoundTrip(t *testing.T) {
	dates := []time.Time{
		Date(2024, time.March, 15),
		Date(2024, time.July, 1),
		Date(2023, time.December, 28),
	}
	for _, d := range dates {
		for n := -12; n <= 12; n++ {
			shifted, clamped, err := ShiftMonths(d, n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if clamped {
				continue
			}
			back, clamped, err := ShiftMonths(shifted, -n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if clamped {
				continue
			}
			if !back.Equal(d) {
				t.Errorf("round trip %s by %d: got %s", d.Format("2006-01-02"), n, back.Format("2006-01-02"))
			}
		}
	}
}

func TestNextAnniversary(t *testing.T) {
	tests := []struct {
		name       string
		historical time.Time
		now        time.Time
		want       time.Time
		clamped    bool
	}{
		{
			name:       "candidate still ahead this year",
			historical: Date(2021, time.March, 15),
			now:        Date(2025, time.January, 10),
			want:       Date(2025, time.March, 15),
		},
		{
			name:       "candidate already passed",
			historical: Date(2021, time.March, 15),
			now:        Date(2025, time.June, 1),
			want:       Date(2026, time.March, 15),
		},
		{
			name:       "candidate equal to now rolls over",
			historical: Date(2021, time.March, 15),
			now:        Date(2025, time.March, 15),
			want:       Date(2026, time.March, 15),
		},
		{
			name:       "leap day anniversary on non-leap year",
			historical: Date(2020, time.February, 29),
			now:        Date(2025, time.January, 1),
			want:       Date(2025, time.February, 28),
			clamped:    true,
		},
		{
			name:       "leap day anniversary on leap year",
			historical: Date(2020, time.February, 29),
			now:        Date(2024, time.January, 1),
			want:       Date(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := NextAnniversary(tt.historical, tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
			if clamped != tt.clamped {
				t.Errorf("clamped = %v, want %v", clamped, tt.clamped)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2024, time.January, 31},
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(Date(2024, time.January, 1), Date(2024, time.February, 1)); got != 31 {
		t.Errorf("got %d, want 31", got)
	}
	if got := DaysBetween(Date(2024, time.February, 1), Date(2024, time.January, 1)); got != -31 {
		t.Errorf("got %d, want -31", got)
	}
	if got := DaysBetween(Date(2024, time.February, 28), Date(2024, time.March, 1)); got != 2 {
		t.Errorf("leap february: got %d, want 2", got)
	}
}

func TestSentinel(t *testing.T) {
	if !Sentinel().Equal(Date(3000, time.December, 31)) {
		t.Errorf("sentinel = %s", Sentinel().Format("2006-01-02"))
	}
}
