package dto

type StartOutput struct {
	Today           string
	Streak          int
	PreviousStreak  int
	StreakAdvanced  bool
	StreakRestarted bool
	WindowShifted   bool
	Repaired        []string
	Durable         bool
}

type AcceptInput struct {
	ItemID     string
	Title      string
	SourceName string
	URL        string
	Category   string
}

type AcceptOutput struct {
	ItemID     string
	Label      string
	ColorTag   string
	Slot       int
	Placed     bool
	GridFull   bool
	TodaySaves int
	Occupied   int
	Durable    bool
}

type RejectInput struct {
	ItemID string
	Title  string
}

type StreakOutput struct {
	Count         int
	LastActiveDay string
	Durable       bool
}

type CellOutput struct {
	Index    int
	Label    string
	ColorTag string
	ItemID   string
	Empty    bool
}

type SnapshotOutput struct {
	Today         string
	Streak        int
	LastActiveDay string
	Badges        []string
	Window        []int
	WindowAnchor  string
	WindowTotal   int
	Cells         []CellOutput
	Occupied      int
	Capacity      int
}
