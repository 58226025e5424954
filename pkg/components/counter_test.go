package components

import (
	"testing"
	"time"
)

func TestCounterIncrement(t *testing.T) {
	tests := []struct {
		target int
		want   int
	}{
		{0, 1},
		{12, 1},
		{80, 1},
		{81, 2},
		{2500, 32},
	}
	for _, tt := range tests {
		if got := CounterIncrement(tt.target); got != tt.want {
			t.Errorf("CounterIncrement(%d) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0+"},
		{999, "999+"},
		{2500, "2,500+"},
		{1234567, "1,234,567+"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCounters_CountUp(t *testing.T) {
	page, clock, sched := newSite(t)
	if _, err := MountCounters(page, sched, ""); err != nil {
		t.Fatalf("MountCounters() error: %v", err)
	}
	if page.Observed() != 2 {
		t.Errorf("Observed() = %d, want 2 (non-numeric target skipped)", page.Observed())
	}
	homes, cities := page.ByID("homes"), page.ByID("cities")

	page.Intersect(0.3, homes, cities)
	clock.Advance(time.Second)
	if homes.Text() != "0" {
		t.Fatalf("counter started below the threshold: %q", homes.Text())
	}

	page.Intersect(0.5, homes, cities)
	clock.Advance(CounterTick)
	if homes.Text() != "32" || cities.Text() != "1" {
		t.Errorf("after one tick: homes=%q cities=%q", homes.Text(), cities.Text())
	}

	clock.Advance(2 * time.Second)
	if homes.Text() != "2,500+" {
		t.Errorf("homes = %q, want 2,500+", homes.Text())
	}
	if cities.Text() != "12+" {
		t.Errorf("cities = %q, want 12+", cities.Text())
	}
	if page.ByID("broken").Text() != "0" {
		t.Error("non-numeric target should stay untouched")
	}
	if sched.TaskCount() != 0 {
		t.Errorf("TaskCount() = %d after finishing", sched.TaskCount())
	}

	// a second intersection must not restart a finished counter
	page.Intersect(1, homes)
	clock.Advance(CounterTick)
	if homes.Text() != "2,500+" {
		t.Errorf("counter restarted: %q", homes.Text())
	}
}
