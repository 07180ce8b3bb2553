package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SchemaVersion = 1

	chartWidth  = 20
	gridColumns = 10
)

type Cell struct {
	Label    string
	ColorTag string
	Empty    bool
}

// Report is a point-in-time rendering of progress read-state.
type Report struct {
	Day      string
	Streak   int
	Badges   []string
	Window   []int
	Occupied int
	Capacity int
	Cells    []Cell
}

func (r Report) WeekTotal() int {
	total := 0
	for _, v := range r.Window {
		total += v
	}
	return total
}

// WindowLabels names window slots oldest first. Slots are tracked days, not
// calendar days, so they are numbered rather than dated.
func WindowLabels(n int) []string {
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = "day " + strconv.Itoa(i+1)
	}
	if n > 0 {
		labels[n-1] = "today"
	}
	return labels
}

// RenderWindowChart draws one horizontal bar per slot. Bars are scaled down
// when the largest count exceeds the chart width; any non-zero count keeps at
// least one mark.
func RenderWindowChart(values []int) string {
	peak := 0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("Articles saved, last %d tracked days\n", len(values)))
	for i, label := range WindowLabels(len(values)) {
		v := values[i]
		width := v
		if peak > chartWidth {
			width = (v*chartWidth + peak - 1) / peak
		}
		b.WriteString(label)
		b.WriteString(" | ")
		if width > 0 {
			b.WriteString(strings.Repeat("#", width))
			b.WriteString(" ")
		}
		b.WriteString(strconv.Itoa(v))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderGrid draws cells row by row, '#' for occupied and '.' for empty.
func RenderGrid(cells []Cell) string {
	b := strings.Builder{}
	for i, c := range cells {
		if c.Empty {
			b.WriteByte('.')
		} else {
			b.WriteByte('#')
		}
		if (i+1)%gridColumns == 0 || i == len(cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func StreakLine(streak int, badges []string) string {
	line := fmt.Sprintf("%d day streak", streak)
	if len(badges) > 0 {
		line += " (" + strings.Join(badges, ", ") + ")"
	}
	return line
}

// Body is the generated part of the progress note.
func (r Report) Body() string {
	b := strings.Builder{}
	b.WriteString("## Streak\n\n")
	b.WriteString(StreakLine(r.Streak, r.Badges))
	b.WriteString("\n\n## Reading trends\n\n```text\n")
	b.WriteString(RenderWindowChart(r.Window))
	b.WriteString("```\n\n## Reading grid\n\n```text\n")
	b.WriteString(RenderGrid(r.Cells))
	b.WriteString("```\n\n")
	b.WriteString(fmt.Sprintf("%d/%d cells filled\n", r.Occupied, r.Capacity))
	return b.String()
}
