package domain

type Badge string

const (
	BadgeBronze Badge = "bronze"
	BadgeGold   Badge = "gold"

	BronzeStreakDays = 3
	GoldStreakDays   = 7
)

// StreakChange names the branch Evaluate took.
type StreakChange int

const (
	StreakUnchanged StreakChange = iota
	StreakAdvanced
	StreakRestarted
)

// StreakState counts consecutive calendar days on which the app was opened.
type StreakState struct {
	Count         int
	LastActiveDay DayKey
}

// Evaluate applies the day-boundary rule for now and reports whether the
// rolling window has to move forward. Same-day calls are no-ops. Anything
// other than the exact next day (first run, a gap, a clock that went
// backwards, a garbled stored day) restarts the streak at 1.
func (s StreakState) Evaluate(now DayKey) (StreakState, bool) {
	next, change := s.Step(now)
	return next, change != StreakUnchanged
}

// Step is Evaluate with the branch spelled out.
func (s StreakState) Step(now DayKey) (StreakState, StreakChange) {
	if !s.LastActiveDay.IsZero() && now == s.LastActiveDay {
		return s, StreakUnchanged
	}
	if now.IsNextAfter(s.LastActiveDay) {
		return StreakState{Count: s.Count + 1, LastActiveDay: now}, StreakAdvanced
	}
	return StreakState{Count: 1, LastActiveDay: now}, StreakRestarted
}

// Reset is the user-initiated streak reset.
func (StreakState) Reset() StreakState {
	return StreakState{}
}

func (s StreakState) Validate() bool {
	if s.Count < 0 {
		return false
	}
	if s.LastActiveDay.IsZero() {
		return s.Count == 0
	}
	return s.Count > 0 && s.LastActiveDay.Valid()
}

func (s StreakState) Badges() []Badge {
	var out []Badge
	if s.Count >= BronzeStreakDays {
		out = append(out, BadgeBronze)
	}
	if s.Count >= GoldStreakDays {
		out = append(out, BadgeGold)
	}
	return out
}
