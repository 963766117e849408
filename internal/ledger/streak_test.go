package ledger

import (
	"testing"
	"time"
)

func day(offset int) *time.Time {
	d := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	return &d
}

var testNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestIsStreakActive(t *testing.T) {
	tests := []struct {
		name       string
		lastActive *time.Time
		want       bool
	}{
		{"never active", nil, false},
		{"active today", day(0), true},
		{"active yesterday", day(-1), true},
		{"two days ago", day(-2), false},
		{"a week ago", day(-7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStreakActive(tt.lastActive, testNow); got != tt.want {
				t.Errorf("IsStreakActive(%v) = %v, want %v", tt.lastActive, got, tt.want)
			}
		})
	}
}

func TestShouldUpdateStreak(t *testing.T) {
	tests := []struct {
		name       string
		lastActive *time.Time
		want       bool
	}{
		{"never active", nil, true},
		{"already counted today", day(0), false},
		{"last counted yesterday", day(-1), true},
		{"last counted last week", day(-7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldUpdateStreak(tt.lastActive, testNow); got != tt.want {
				t.Errorf("ShouldUpdateStreak(%v) = %v, want %v", tt.lastActive, got, tt.want)
			}
		})
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		lastActive *time.Time
		want       int
	}{
		{"first ever activity", 0, nil, 1},
		{"same day is a no-op", 5, day(0), 5},
		{"consecutive day increments", 5, day(-1), 6},
		{"gap resets to one", 12, day(-3), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.lastActive, testNow); got != tt.want {
				t.Errorf("NextStreak(%d, %v) = %d, want %d", tt.current, tt.lastActive, got, tt.want)
			}
		})
	}
}

func TestIsStreakActive_TimeOfDayIgnored(t *testing.T) {
	// Activity late yesterday evening still counts as yesterday.
	lastActive := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
	if !IsStreakActive(&lastActive, testNow) {
		t.Error("expected streak active for activity late yesterday")
	}
}
