package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftDropsOldestAndOpensToday(t *testing.T) {
	w := DailySaveWindow{Slots: [WindowSize]int{1, 2, 3, 4, 5, 6, 7}, Anchor: "2025-01-01"}
	w.Shift("2025-01-02")
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 0}, w.Values())
	assert.Equal(t, DayKey("2025-01-02"), w.Anchor)
}

func TestShiftAllZeroStaysAllZero(t *testing.T) {
	w := DailySaveWindow{}
	w.Shift("2025-01-02")
	assert.Len(t, w.Values(), WindowSize)
	assert.Equal(t, 0, w.Total())
}

func TestRecordSaveCountsToday(t *testing.T) {
	w := DailySaveWindow{}
	for i := 0; i < 12; i++ {
		w.RecordSave()
	}
	assert.Equal(t, 12, w.Today())
	assert.Equal(t, 12, w.Total())
}

func TestNeedsShiftGate(t *testing.T) {
	anchored := DailySaveWindow{Anchor: "2025-01-02"}
	assert.False(t, anchored.NeedsShift("2025-01-02", true), "same anchor never shifts twice")
	assert.True(t, anchored.NeedsShift("2025-01-03", false), "stale anchor recovers a missed shift")

	legacy := DailySaveWindow{}
	assert.True(t, legacy.NeedsShift("2025-01-02", true))
	assert.False(t, legacy.NeedsShift("2025-01-02", false))
}

func TestWindowValidate(t *testing.T) {
	assert.True(t, DailySaveWindow{}.Validate())
	assert.False(t, DailySaveWindow{Slots: [WindowSize]int{0, -1}}.Validate())
	assert.False(t, DailySaveWindow{Anchor: "nope"}.Validate())
}
