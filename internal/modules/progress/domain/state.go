package domain

// ProgressState is everything the engine persists.
type ProgressState struct {
	Streak StreakState
	Window DailySaveWindow
	Grid   PlacementGrid
}

func DefaultState() ProgressState {
	return ProgressState{}
}
