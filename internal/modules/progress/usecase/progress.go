package usecase

import (
	"context"
	"sync"

	"github.com/hashicorp/go-hclog"

	"swipescoop/internal/modules/progress/domain"
	"swipescoop/internal/modules/progress/dto"
	progressin "swipescoop/internal/modules/progress/port/in"
	"swipescoop/internal/modules/progress/service"
	apperrors "swipescoop/internal/platform/errors"
	"swipescoop/internal/platform/id"
	"swipescoop/internal/platform/tx"
)

// Interactor is the progress engine. Events are applied one at a time to the
// in-memory state, which stays authoritative for the session even when a
// write-through fails.
type Interactor struct {
	mu     sync.Mutex
	state  *service.StateService
	days   *service.DayClock
	tx     tx.Manager
	ids    id.Generator
	logger hclog.Logger

	started bool
	today   domain.DayKey
	current domain.ProgressState
}

func NewInteractor(state *service.StateService, days *service.DayClock, txm tx.Manager, ids id.Generator, logger hclog.Logger) progressin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Interactor{state: state, days: days, tx: txm, ids: ids, logger: logger}
}

func (i *Interactor) OnAppStart(ctx context.Context) (dto.StartOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	loaded, repaired, err := i.state.Load(ctx)
	if err != nil {
		return dto.StartOutput{}, err
	}
	today := i.days.Today()

	prev := loaded.Streak
	streak, change := prev.Step(today)
	shiftRequested := change != domain.StreakUnchanged
	window := loaded.Window
	shifted := window.NeedsShift(today, shiftRequested)
	if shifted {
		window.Shift(today)
	}

	i.current = domain.ProgressState{Streak: streak, Window: window, Grid: loaded.Grid}
	i.today = today
	i.started = true

	out := dto.StartOutput{
		Today:           today.String(),
		Streak:          streak.Count,
		PreviousStreak:  prev.Count,
		StreakAdvanced:  change == domain.StreakAdvanced,
		StreakRestarted: change == domain.StreakRestarted,
		WindowShifted:   shifted,
		Repaired:        repaired,
		Durable:         true,
	}
	i.logger.Debug("day evaluated", "today", today, "streak", streak.Count, "shifted", shifted)

	if streak == prev && !shifted && len(repaired) == 0 {
		return out, nil
	}
	state := i.current
	if err := i.tx.Within(ctx, func(ctx context.Context) error {
		return i.state.SaveAll(ctx, state)
	}); err != nil {
		i.logger.Error("persist start-up evaluation", "error", err)
		out.Durable = false
		return out, err
	}
	return out, nil
}

// OnItemAccepted records an accepted item. A full grid is reported through
// GridFull with a nil error and nothing is written. A failed write returns
// the error together with an output whose Durable field is false; the
// mutation still stands in memory.
func (i *Interactor) OnItemAccepted(ctx context.Context, input dto.AcceptInput) (dto.AcceptOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.started {
		return dto.AcceptOutput{}, apperrors.ErrNotStarted
	}
	item := domain.AcceptedItem{
		ID:         input.ItemID,
		Title:      input.Title,
		SourceName: input.SourceName,
		URL:        input.URL,
		Category:   domain.NormalizeCategory(input.Category),
	}
	if item.ID == "" && i.ids != nil {
		item.ID = i.ids.New()
	}
	cell := item.Cell()

	grid := i.current.Grid
	slot, placed := grid.Place(cell)
	if !placed {
		i.logger.Info("placement grid full, item not recorded", "item", item.ID)
		return dto.AcceptOutput{
			ItemID:     item.ID,
			Label:      cell.Label,
			ColorTag:   string(cell.ColorTag),
			Slot:       -1,
			GridFull:   true,
			TodaySaves: i.current.Window.Today(),
			Occupied:   grid.Occupied(),
			Durable:    true,
		}, nil
	}
	window := i.current.Window
	window.RecordSave()
	i.current.Grid = grid
	i.current.Window = window

	out := dto.AcceptOutput{
		ItemID:     item.ID,
		Label:      cell.Label,
		ColorTag:   string(cell.ColorTag),
		Slot:       slot,
		Placed:     true,
		TodaySaves: window.Today(),
		Occupied:   grid.Occupied(),
		Durable:    true,
	}
	if err := i.tx.Within(ctx, func(ctx context.Context) error {
		if err := i.state.SaveGrid(ctx, grid); err != nil {
			return err
		}
		return i.state.SaveWindow(ctx, window)
	}); err != nil {
		i.logger.Error("persist accepted item", "item", item.ID, "error", err)
		out.Durable = false
		return out, err
	}
	return out, nil
}

// OnItemRejected exists so skips flow through the same port; it never
// mutates state.
func (i *Interactor) OnItemRejected(_ context.Context, input dto.RejectInput) error {
	i.logger.Trace("item skipped", "item", input.ItemID)
	return nil
}

// ResetStreak clears the streak only. Grid and window are left as they are.
func (i *Interactor) ResetStreak(ctx context.Context) (dto.StreakOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	streak := i.current.Streak.Reset()
	i.current.Streak = streak
	out := dto.StreakOutput{Count: streak.Count, LastActiveDay: streak.LastActiveDay.String(), Durable: true}
	if err := i.state.SaveStreak(ctx, streak); err != nil {
		i.logger.Error("persist streak reset", "error", err)
		out.Durable = false
		return out, err
	}
	return out, nil
}

// ResetAll is the explicit full reset: every key is cleared and defaults are
// written back. A started engine keeps its window anchored at today so the
// next start on the same day does not shift again.
func (i *Interactor) ResetAll(ctx context.Context) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	fresh := domain.DefaultState()
	if i.started {
		fresh.Window.Anchor = i.today
	}
	i.current = fresh

	err := i.tx.Within(ctx, func(ctx context.Context) error {
		if err := i.state.ClearAll(ctx); err != nil {
			return err
		}
		if !i.started {
			return nil
		}
		return i.state.SaveAll(ctx, fresh)
	})
	if err != nil {
		i.logger.Error("persist full reset", "error", err)
	}
	return i.snapshot(), err
}

func (i *Interactor) Snapshot(_ context.Context) (dto.SnapshotOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.started {
		return dto.SnapshotOutput{}, apperrors.ErrNotStarted
	}
	return i.snapshot(), nil
}

func (i *Interactor) snapshot() dto.SnapshotOutput {
	s := i.current
	badges := make([]string, 0, 2)
	for _, b := range s.Streak.Badges() {
		badges = append(badges, string(b))
	}
	cells := make([]dto.CellOutput, 0, domain.GridCapacity)
	for idx, c := range s.Grid.Cells() {
		cells = append(cells, dto.CellOutput{
			Index:    idx,
			Label:    c.Label,
			ColorTag: string(c.ColorTag),
			ItemID:   c.ItemID,
			Empty:    c.Empty(),
		})
	}
	return dto.SnapshotOutput{
		Today:         i.today.String(),
		Streak:        s.Streak.Count,
		LastActiveDay: s.Streak.LastActiveDay.String(),
		Badges:        badges,
		Window:        s.Window.Values(),
		WindowAnchor:  s.Window.Anchor.String(),
		WindowTotal:   s.Window.Total(),
		Cells:         cells,
		Occupied:      s.Grid.Occupied(),
		Capacity:      domain.GridCapacity,
	}
}
