package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestValidateUTC(t *testing.T) {
	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := ValidateUTC(utc); err != nil {
		t.Errorf("UTC time should validate, got %v", err)
	}

	local := time.Date(2024, 1, 1, 0, 0, 0, 0, time.FixedZone("X", 3600))
	if err := ValidateUTC(local); !errors.Is(err, ErrNotUTC) {
		t.Errorf("expected ErrNotUTC, got %v", err)
	}
}

func TestAddMinutes(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := AddMinutes(now, 10)
	want := now.Add(10 * time.Minute)
	if !got.Equal(want) {
		t.Errorf("AddMinutes = %v, want %v", got, want)
	}
}

func TestAddDays(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := AddDays(now, 7)
	want := now.Add(7 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("AddDays = %v, want %v", got, want)
	}
}

func TestWholeDayDiff(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		b    time.Time
		want int
	}{
		{"exact 4 days forward", a.Add(4 * 24 * time.Hour), 4},
		{"exact 4 days backward", a.Add(-4 * 24 * time.Hour), 4},
		{"sub-day forward truncates to 0", a.Add(10 * time.Hour), 0},
		{"just under a day truncates to 0", a.Add(23*time.Hour + 59*time.Minute), 0},
		{"same instant", a, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeDayDiff(a, tt.b); got != tt.want {
				t.Errorf("WholeDayDiff = %d, want %d", got, tt.want)
			}
		})
	}
}
