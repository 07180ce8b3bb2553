package service

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"swipescoop/internal/modules/progress/domain"
	progressout "swipescoop/internal/modules/progress/port/out"
)

// StateService moves ProgressState between memory and the store, one key
// per structure.
type StateService struct {
	store  progressout.PersistentStore
	logger hclog.Logger
}

func NewStateService(store progressout.PersistentStore, logger hclog.Logger) *StateService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &StateService{store: store, logger: logger}
}

// Load reads all three structures. Absent keys yield defaults. Malformed
// values are replaced by defaults and their keys returned in repaired;
// only store failures are errors.
func (s *StateService) Load(ctx context.Context) (domain.ProgressState, []string, error) {
	state := domain.DefaultState()
	var repaired []string

	raw, ok, err := s.store.Get(ctx, progressout.KeyStreak)
	if err != nil {
		return domain.ProgressState{}, nil, err
	}
	if ok {
		streak, err := decodeStreak(raw)
		if err != nil {
			s.logger.Warn("repairing malformed state", "key", progressout.KeyStreak, "error", err)
			repaired = append(repaired, progressout.KeyStreak)
		} else {
			state.Streak = streak
		}
	}

	raw, ok, err = s.store.Get(ctx, progressout.KeyDailySaveWindow)
	if err != nil {
		return domain.ProgressState{}, nil, err
	}
	if ok {
		window, err := decodeWindow(raw)
		if err != nil {
			s.logger.Warn("repairing malformed state", "key", progressout.KeyDailySaveWindow, "error", err)
			repaired = append(repaired, progressout.KeyDailySaveWindow)
		} else {
			state.Window = window
		}
	}

	raw, ok, err = s.store.Get(ctx, progressout.KeyPlacementGrid)
	if err != nil {
		return domain.ProgressState{}, nil, err
	}
	if ok {
		grid, err := decodeGrid(raw)
		if err != nil {
			s.logger.Warn("repairing malformed state", "key", progressout.KeyPlacementGrid, "error", err)
			repaired = append(repaired, progressout.KeyPlacementGrid)
		} else {
			state.Grid = grid
		}
	}
	return state, repaired, nil
}

func (s *StateService) SaveStreak(ctx context.Context, streak domain.StreakState) error {
	raw, err := encodeStreak(streak)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, progressout.KeyStreak, raw)
}

func (s *StateService) SaveWindow(ctx context.Context, window domain.DailySaveWindow) error {
	raw, err := encodeWindow(window)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, progressout.KeyDailySaveWindow, raw)
}

func (s *StateService) SaveGrid(ctx context.Context, grid domain.PlacementGrid) error {
	raw, err := encodeGrid(grid)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, progressout.KeyPlacementGrid, raw)
}

// SaveAll writes window, grid, then streak. Re-evaluating after a crash
// between these writes converges because the window gate is anchored.
func (s *StateService) SaveAll(ctx context.Context, state domain.ProgressState) error {
	if err := s.SaveWindow(ctx, state.Window); err != nil {
		return err
	}
	if err := s.SaveGrid(ctx, state.Grid); err != nil {
		return err
	}
	return s.SaveStreak(ctx, state.Streak)
}

func (s *StateService) ClearAll(ctx context.Context) error {
	for _, key := range progressout.Keys {
		if err := s.store.Clear(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
