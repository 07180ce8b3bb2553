package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceIsFirstFitAndMonotonic(t *testing.T) {
	g := PlacementGrid{}
	for i := 0; i < GridCapacity; i++ {
		idx, placed := g.Place(Cell{Label: fmt.Sprintf("item-%d", i), ColorTag: "technology"})
		require.True(t, placed)
		require.Equal(t, i, idx)
		require.Equal(t, i+1, g.Occupied())
	}
	assert.True(t, g.Full())

	before := g.Cells()
	idx, placed := g.Place(Cell{Label: "overflow", ColorTag: "sports"})
	assert.False(t, placed)
	assert.Equal(t, -1, idx)
	assert.Equal(t, before, g.Cells())
}

func TestPlaceFillsScatteredGapsLowestFirst(t *testing.T) {
	cells := make([]Cell, GridCapacity)
	cells[0] = Cell{Label: "a", ColorTag: "general"}
	cells[2] = Cell{Label: "c", ColorTag: "general"}
	g, err := GridFromCells(cells)
	require.NoError(t, err)

	idx, placed := g.Place(Cell{Label: "b", ColorTag: "general"})
	require.True(t, placed)
	assert.Equal(t, 1, idx)
	idx, _ = g.Place(Cell{Label: "d", ColorTag: "general"})
	assert.Equal(t, 3, idx)
}

func TestPlaceRejectsEmptyCell(t *testing.T) {
	g := PlacementGrid{}
	_, placed := g.Place(Cell{})
	assert.False(t, placed)
	assert.Equal(t, 0, g.Occupied())
}

func TestGridFromCellsRejectsWrongSize(t *testing.T) {
	_, err := GridFromCells(make([]Cell, 99))
	assert.Error(t, err)
}

func TestClearEmptiesEverySlot(t *testing.T) {
	g := PlacementGrid{}
	g.Place(Cell{Label: "x", ColorTag: "general"})
	g.Clear()
	assert.Equal(t, 0, g.Occupied())
}

func TestGridCopiesAreIndependent(t *testing.T) {
	g := PlacementGrid{}
	next := g
	next.Place(Cell{Label: "x", ColorTag: "general"})
	assert.Equal(t, 0, g.Occupied())
	assert.Equal(t, 1, next.Occupied())
}

func TestAcceptedItemLabelAndTag(t *testing.T) {
	item := AcceptedItem{ID: "1", Title: "  Go   1.25 released \n", Category: NormalizeCategory(" Technology ")}
	assert.Equal(t, Cell{Label: "Go 1.25 released", ColorTag: "technology", ItemID: "1"}, item.Cell())

	blank := AcceptedItem{Category: NormalizeCategory("")}
	assert.Equal(t, "untitled", blank.Label())
	assert.Equal(t, ColorTagGeneral, blank.Category.ColorTag())
	assert.Equal(t, ColorTagGeneral, Category("").ColorTag())
}
