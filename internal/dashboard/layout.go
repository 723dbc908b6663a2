package dashboard

import "math"

// Width breakpoints.
const (
	// BreakpointMobile is the width below which every widget gets its own row.
	BreakpointMobile = 80
	// BreakpointWide widens the gaps between widgets.
	BreakpointWide = 160
)

// Placed is an entry with its final width.
type Placed struct {
	Entry Entry
	Width int
}

// Gap returns the column gap for a terminal width.
func Gap(width int) int {
	switch {
	case width < BreakpointMobile:
		return 0
	case width >= BreakpointWide:
		return 2
	default:
		return 1
	}
}

// Arrange wraps entries into rows like a CSS "flex-flow: row wrap"
// container. Each entry's MinWidth is its basis; a row takes entries while
// their bases plus gaps fit in width, and leftover width is split by Grow.
// Rounding leftovers go to the last growing entry so every row that grows
// fills width exactly. Below BreakpointMobile each entry fills its own row.
func Arrange(entries []Entry, width, gap int) [][]Placed {
	if len(entries) == 0 || width <= 0 {
		return nil
	}
	if gap < 0 {
		gap = 0
	}

	if width < BreakpointMobile {
		rows := make([][]Placed, len(entries))
		for i, e := range entries {
			rows[i] = []Placed{{Entry: e, Width: width}}
		}
		return rows
	}

	var rows [][]Placed
	var row []Placed
	used := 0
	for _, e := range entries {
		basis := clampBasis(e.MinWidth, width)
		if len(row) > 0 && used+gap+basis > width {
			rows = append(rows, grow(row, width, gap))
			row, used = nil, 0
		}
		if len(row) > 0 {
			used += gap
		}
		row = append(row, Placed{Entry: e, Width: basis})
		used += basis
	}
	if len(row) > 0 {
		rows = append(rows, grow(row, width, gap))
	}
	return rows
}

func clampBasis(minWidth, width int) int {
	if minWidth < 1 {
		return 1
	}
	if minWidth > width {
		return width
	}
	return minWidth
}

// grow distributes the row's free space by Grow weight.
func grow(row []Placed, width, gap int) []Placed {
	used := gap * (len(row) - 1)
	totalGrow := 0.0
	last := -1
	for i, p := range row {
		used += p.Width
		if p.Entry.Grow > 0 {
			totalGrow += p.Entry.Grow
			last = i
		}
	}

	free := width - used
	if free <= 0 || totalGrow <= 0 {
		return row
	}

	given := 0
	for i := range row {
		g := row[i].Entry.Grow
		if g <= 0 {
			continue
		}
		share := int(math.Floor(float64(free) * g / totalGrow))
		row[i].Width += share
		given += share
	}
	row[last].Width += free - given
	return row
}
