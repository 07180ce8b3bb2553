package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"swipescoop/internal/modules/progress/domain"
)

type streakRecord struct {
	Count         int    `json:"count"`
	LastActiveDay string `json:"lastActiveDay,omitempty"`
}

type windowRecord struct {
	Slots  []int  `json:"slots"`
	Anchor string `json:"anchor,omitempty"`
}

type cellRecord struct {
	Label    string `json:"label"`
	ColorTag string `json:"colorTag"`
	ItemID   string `json:"itemId,omitempty"`
}

func encodeStreak(s domain.StreakState) ([]byte, error) {
	return json.Marshal(streakRecord{Count: s.Count, LastActiveDay: s.LastActiveDay.String()})
}

func decodeStreak(raw []byte) (domain.StreakState, error) {
	rec := streakRecord{}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.StreakState{}, fmt.Errorf("decode streak: %w", err)
	}
	day, err := domain.ParseDayKey(rec.LastActiveDay)
	if err != nil {
		return domain.StreakState{}, fmt.Errorf("decode streak: %w", err)
	}
	s := domain.StreakState{Count: rec.Count, LastActiveDay: day}
	if !s.Validate() {
		return domain.StreakState{}, fmt.Errorf("decode streak: inconsistent state %+v", rec)
	}
	return s, nil
}

func encodeWindow(w domain.DailySaveWindow) ([]byte, error) {
	return json.Marshal(windowRecord{Slots: w.Values(), Anchor: w.Anchor.String()})
}

// decodeWindow also accepts a bare array of counts, the layout used before
// windows carried an anchor day.
func decodeWindow(raw []byte) (domain.DailySaveWindow, error) {
	rec := windowRecord{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &rec.Slots); err != nil {
			return domain.DailySaveWindow{}, fmt.Errorf("decode window: %w", err)
		}
	} else if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.DailySaveWindow{}, fmt.Errorf("decode window: %w", err)
	}
	if len(rec.Slots) != domain.WindowSize {
		return domain.DailySaveWindow{}, fmt.Errorf("decode window: %d slots, want %d", len(rec.Slots), domain.WindowSize)
	}
	anchor, err := domain.ParseDayKey(rec.Anchor)
	if err != nil {
		return domain.DailySaveWindow{}, fmt.Errorf("decode window: %w", err)
	}
	w := domain.DailySaveWindow{Anchor: anchor}
	copy(w.Slots[:], rec.Slots)
	if !w.Validate() {
		return domain.DailySaveWindow{}, fmt.Errorf("decode window: negative count in %v", rec.Slots)
	}
	return w, nil
}

func encodeGrid(g domain.PlacementGrid) ([]byte, error) {
	recs := make([]*cellRecord, 0, domain.GridCapacity)
	for _, c := range g.Cells() {
		if c.Empty() {
			recs = append(recs, nil)
			continue
		}
		recs = append(recs, &cellRecord{Label: c.Label, ColorTag: string(c.ColorTag), ItemID: c.ItemID})
	}
	return json.Marshal(recs)
}

// decodeGrid rejects a size mismatch. Individual cells missing a label or tag
// are kept as occupied and filled with defaults.
func decodeGrid(raw []byte) (domain.PlacementGrid, error) {
	var recs []*cellRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return domain.PlacementGrid{}, fmt.Errorf("decode grid: %w", err)
	}
	cells := make([]domain.Cell, len(recs))
	for i, rec := range recs {
		if rec == nil {
			continue
		}
		item := domain.AcceptedItem{ID: rec.ItemID, Title: rec.Label, Category: domain.Category(rec.ColorTag)}
		cells[i] = item.Cell()
	}
	g, err := domain.GridFromCells(cells)
	if err != nil {
		return domain.PlacementGrid{}, fmt.Errorf("decode grid: %w", err)
	}
	return g, nil
}
