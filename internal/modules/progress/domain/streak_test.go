package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSameDayIsNoop(t *testing.T) {
	s := StreakState{Count: 4, LastActiveDay: "2025-01-02"}
	next, shift := s.Evaluate("2025-01-02")
	assert.Equal(t, s, next)
	assert.False(t, shift)

	again, shift := next.Evaluate("2025-01-02")
	assert.Equal(t, s, again)
	assert.False(t, shift)
}

func TestEvaluateConsecutiveDayIncrementsByOne(t *testing.T) {
	s := StreakState{Count: 2, LastActiveDay: "2025-01-01"}
	next, shift := s.Evaluate("2025-01-02")
	assert.Equal(t, StreakState{Count: 3, LastActiveDay: "2025-01-02"}, next)
	assert.True(t, shift)
}

func TestEvaluateRestartsAtOne(t *testing.T) {
	cases := map[string]StreakState{
		"first run":     {},
		"two day gap":   {Count: 5, LastActiveDay: "2025-01-01"},
		"clock behind":  {Count: 5, LastActiveDay: "2025-01-10"},
		"garbled day":   {Count: 5, LastActiveDay: "Wed Jan 01 2025"},
		"after a reset": StreakState{}.Reset(),
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			now := DayKey("2025-01-03")
			if name == "clock behind" {
				now = "2025-01-09"
			}
			next, shift := s.Evaluate(now)
			assert.Equal(t, StreakState{Count: 1, LastActiveDay: now}, next)
			assert.True(t, shift)
		})
	}
}

func TestResetClearsDay(t *testing.T) {
	s := StreakState{Count: 9, LastActiveDay: "2025-01-01"}.Reset()
	assert.Equal(t, 0, s.Count)
	assert.True(t, s.LastActiveDay.IsZero())
	assert.True(t, s.Validate())
}

func TestStreakValidate(t *testing.T) {
	assert.True(t, StreakState{Count: 3, LastActiveDay: "2025-01-01"}.Validate())
	assert.False(t, StreakState{Count: -1}.Validate())
	assert.False(t, StreakState{Count: 2}.Validate())
	assert.False(t, StreakState{Count: 2, LastActiveDay: "yesterday"}.Validate())
	assert.False(t, StreakState{Count: 0, LastActiveDay: "2025-01-02"}.Validate())
}

func TestStepReportsBranch(t *testing.T) {
	next, change := StreakState{Count: 1, LastActiveDay: "2025-01-01"}.Step("2025-01-02")
	assert.Equal(t, StreakState{Count: 2, LastActiveDay: "2025-01-02"}, next)
	assert.Equal(t, StreakAdvanced, change)

	_, change = next.Step("2025-01-02")
	assert.Equal(t, StreakUnchanged, change)

	_, change = StreakState{Count: 2, LastActiveDay: "2025-01-01"}.Step("2025-01-05")
	assert.Equal(t, StreakRestarted, change)

	_, change = StreakState{}.Step("2025-01-05")
	assert.Equal(t, StreakRestarted, change)
}

func TestBadges(t *testing.T) {
	assert.Empty(t, StreakState{Count: 2}.Badges())
	assert.Equal(t, []Badge{BadgeBronze}, StreakState{Count: 3}.Badges())
	assert.Equal(t, []Badge{BadgeBronze, BadgeGold}, StreakState{Count: 7}.Badges())
}
