package board

import "slices"

// MinRun is the shortest line of identical gems that counts as a match
const MinRun = 3

// MatchSet is the set of unique cells produced by one detection pass
// The zero value is an empty set
type MatchSet struct {
	cells map[Coord]struct{}
}

// Add inserts a cell, duplicates are absorbed
func (m *MatchSet) Add(c Coord) {
	if m.cells == nil {
		m.cells = make(map[Coord]struct{})
	}
	m.cells[c] = struct{}{}
}

// Len returns the number of unique cells
func (m MatchSet) Len() int {
	return len(m.cells)
}

// Contains reports set membership
func (m MatchSet) Contains(c Coord) bool {
	_, ok := m.cells[c]
	return ok
}

// Cells returns the members in column-major order
func (m MatchSet) Cells() []Coord {
	out := make([]Coord, 0, len(m.cells))
	for c := range m.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if a.Col != b.Col {
			return a.Col - b.Col
		}
		return a.Row - b.Row
	})
	return out
}

// Matches scans every row and column for runs of at least MinRun identical occupied kinds
// All cells of every qualifying run are included; crossings contribute once
func (b *Board) Matches() MatchSet {
	var set MatchSet

	// Horizontal runs
	for r := 0; r < b.rows; r++ {
		start := 0
		for c := 1; c <= b.cols; c++ {
			if c < b.cols && b.grid[c][r].Kind == b.grid[start][r].Kind {
				continue
			}
			if c-start >= MinRun && !b.grid[start][r].Kind.IsEmpty() {
				for i := start; i < c; i++ {
					set.Add(Coord{Col: i, Row: r})
				}
			}
			start = c
		}
	}

	// Vertical runs
	for c := 0; c < b.cols; c++ {
		col := b.grid[c]
		start := 0
		for r := 1; r <= b.rows; r++ {
			if r < b.rows && col[r].Kind == col[start].Kind {
				continue
			}
			if r-start >= MinRun && !col[start].Kind.IsEmpty() {
				for i := start; i < r; i++ {
					set.Add(Coord{Col: c, Row: i})
				}
			}
			start = r
		}
	}

	return set
}

// FindMove returns the first adjacent swap that would produce a match
// Board kinds are restored before returning
func (b *Board) FindMove() (Coord, Coord, bool) {
	for c := 0; c < b.cols; c++ {
		for r := 0; r < b.rows; r++ {
			a := Coord{Col: c, Row: r}
			for _, n := range [2]Coord{{Col: c + 1, Row: r}, {Col: c, Row: r + 1}} {
				if !b.InBounds(n) {
					continue
				}
				b.swapKinds(a, n)
				found := b.Matches().Len() > 0
				b.swapKinds(a, n)
				if found {
					return a, n, true
				}
			}
		}
	}
	return Coord{}, Coord{}, false
}
