package domain

import "fmt"

const GridCapacity = 100

type ColorTag string

const ColorTagGeneral ColorTag = "general"

// Cell is one grid slot. The zero Cell is an empty slot.
type Cell struct {
	Label    string
	ColorTag ColorTag
	ItemID   string
}

func (c Cell) Empty() bool { return c == Cell{} }

// PlacementGrid records accepted items in GridCapacity slots. Slots are only
// ever filled, lowest free index first, until an explicit Clear.
type PlacementGrid struct {
	cells [GridCapacity]Cell
}

// GridFromCells rebuilds a persisted grid. The slice must hold exactly
// GridCapacity entries.
func GridFromCells(cells []Cell) (PlacementGrid, error) {
	if len(cells) != GridCapacity {
		return PlacementGrid{}, fmt.Errorf("grid has %d cells, want %d", len(cells), GridCapacity)
	}
	g := PlacementGrid{}
	copy(g.cells[:], cells)
	return g, nil
}

// Place occupies the first empty slot. A full grid is left untouched and
// reports placed=false; that is the expected steady state, not an error.
func (g *PlacementGrid) Place(cell Cell) (int, bool) {
	if cell.Empty() {
		return -1, false
	}
	for i := range g.cells {
		if g.cells[i].Empty() {
			g.cells[i] = cell
			return i, true
		}
	}
	return -1, false
}

func (g *PlacementGrid) Clear() {
	g.cells = [GridCapacity]Cell{}
}

func (g PlacementGrid) Cells() []Cell {
	out := make([]Cell, GridCapacity)
	copy(out, g.cells[:])
	return out
}

func (g PlacementGrid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

func (g PlacementGrid) Full() bool { return g.Occupied() == GridCapacity }
