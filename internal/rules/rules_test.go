package rules

import (
	"testing"
	"time"

	"github.com/immortalfoodie/Ecosphere/internal/model"
)

func TestClampPoints(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{"positive", 120, 120},
		{"negative floors to zero", -30, 0},
		{"rounds half up", 10.5, 11},
		{"rounds down", 10.4, 10},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPoints(tt.input); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestComputeLevel(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   int
	}{
		{"zero points is level 1", 0, 1},
		{"just below boundary", 249, 1},
		{"boundary", 250, 2},
		{"seed user", 2450, 10},
		{"high", 10000, 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeLevel(tt.points); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestScanPoints(t *testing.T) {
	tests := []struct {
		name     string
		ecoScore int
		want     int
	}{
		{"top tier", 92, 12},
		{"top tier boundary", 80, 12},
		{"mid tier", 65, 8},
		{"mid tier boundary", 60, 8},
		{"low tier", 23, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScanPoints(tt.ecoScore); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestTrackerPoints(t *testing.T) {
	tests := []struct {
		name        string
		totalCarbon float64
		want        int
	}{
		{"low footprint", 15, 30},
		{"low boundary", 20, 30},
		{"mid footprint", 35, 20},
		{"mid boundary", 40, 20},
		{"high footprint", 60, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrackerPoints(tt.totalCarbon); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestTotalCarbon(t *testing.T) {
	c := model.CarbonData{Electricity: 5, Transport: 4, Food: 3, Waste: 3}
	if got := TotalCarbon(c); got != 15 {
		t.Fatalf("got=%v want=15", got)
	}
}

func TestCarbonSaved(t *testing.T) {
	if got := CarbonSaved(15); got != 25 {
		t.Fatalf("got=%v want=25", got)
	}
	if got := CarbonSaved(55); got != 0 {
		t.Fatalf("got=%v want=0", got)
	}
}

func TestDayDiff(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		last time.Time
		now  time.Time
		want int
	}{
		{"same instant", base, base, 0},
		{"same day later", base, base.Add(6 * time.Hour), 0},
		{"exactly one day", base, base.Add(24 * time.Hour), 1},
		{"just under two days", base, base.Add(47 * time.Hour), 1},
		{"two days", base, base.Add(48 * time.Hour), 2},
		{"future last floors negative", base.Add(2 * time.Hour), base, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayDiff(tt.last, tt.now); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name    string
		dayDiff int
		current int
		want    int
	}{
		{"consecutive day extends", 1, 5, 6},
		{"same day unchanged", 0, 5, 5},
		{"gap resets", 3, 5, 1},
		{"negative diff resets", -1, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.dayDiff, tt.current); got != tt.want {
				t.Fatalf("got=%d want=%d", got, tt.want)
			}
		})
	}
}
