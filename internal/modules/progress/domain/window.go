package domain

const WindowSize = 7

// DailySaveWindow holds per-day save counts for the last WindowSize tracked
// days. Slots[0] is the oldest, Slots[WindowSize-1] is today. Anchor is the
// day the last slot belongs to; it is empty for windows persisted before
// anchors existed.
type DailySaveWindow struct {
	Slots  [WindowSize]int
	Anchor DayKey
}

// NeedsShift gates Shift so it runs at most once per calendar day. A window
// already anchored at today never shifts again, which keeps a same-day streak
// reset or a re-run after a partial write from dropping today's count.
func (w DailySaveWindow) NeedsShift(today DayKey, requested bool) bool {
	if w.Anchor == today {
		return false
	}
	if w.Anchor.IsZero() {
		return requested
	}
	return true
}

// Shift drops the oldest slot and opens an empty slot for anchor.
func (w *DailySaveWindow) Shift(anchor DayKey) {
	copy(w.Slots[:], w.Slots[1:])
	w.Slots[WindowSize-1] = 0
	w.Anchor = anchor
}

func (w *DailySaveWindow) RecordSave() {
	w.Slots[WindowSize-1]++
}

func (w DailySaveWindow) Today() int {
	return w.Slots[WindowSize-1]
}

func (w DailySaveWindow) Total() int {
	total := 0
	for _, v := range w.Slots {
		total += v
	}
	return total
}

func (w DailySaveWindow) Values() []int {
	out := make([]int, WindowSize)
	copy(out, w.Slots[:])
	return out
}

func (w DailySaveWindow) Validate() bool {
	for _, v := range w.Slots {
		if v < 0 {
			return false
		}
	}
	return w.Anchor.IsZero() || w.Anchor.Valid()
}
