package domain_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"swipescoop/internal/modules/report/domain"
)

func gridOf(occupied, capacity int) []domain.Cell {
	cells := make([]domain.Cell, capacity)
	for i := range cells {
		cells[i] = domain.Cell{Empty: i >= occupied}
		if i < occupied {
			cells[i].Label = "headline"
			cells[i].ColorTag = "technology"
		}
	}
	return cells
}

func TestRenderWindowChart(t *testing.T) {
	t.Parallel()
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "window_small", []byte(domain.RenderWindowChart([]int{0, 0, 0, 0, 0, 1, 2})))
	g.Assert(t, "window_scaled", []byte(domain.RenderWindowChart([]int{40, 0, 10, 0, 0, 3, 20})))
}

func TestRenderGrid(t *testing.T) {
	t.Parallel()
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "grid_partial", []byte(domain.RenderGrid(gridOf(12, 100))))
}

func TestReportBody(t *testing.T) {
	t.Parallel()
	r := domain.Report{
		Day:      "2025-01-02",
		Streak:   3,
		Badges:   []string{"bronze"},
		Window:   []int{0, 0, 0, 0, 0, 1, 2},
		Occupied: 2,
		Capacity: 100,
		Cells:    gridOf(2, 100),
	}
	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "report_body", []byte(r.Body()))
	assert.Equal(t, 3, r.WeekTotal())
}

func TestStreakLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0 day streak", domain.StreakLine(0, nil))
	assert.Equal(t, "8 day streak (bronze, gold)", domain.StreakLine(8, []string{"bronze", "gold"}))
}

func TestWindowLabels(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"day 1", "day 2", "today"}, domain.WindowLabels(3))
	assert.Empty(t, domain.WindowLabels(0))
}
