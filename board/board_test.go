package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeometry = Geometry{Cols: 8, Rows: 8, CellSize: 64}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newPatternBoard returns a board whose kinds follow (col + 2*row) % 4, which holds no runs
// Types 4 and 5 stay free for planting matches
func newPatternBoard(t *testing.T) *Board {
	t.Helper()
	b, err := New(testGeometry, 6, newRand(1))
	require.NoError(t, err)
	for c := 0; c < b.Cols(); c++ {
		for r := 0; r < b.Rows(); r++ {
			b.SetKind(Coord{Col: c, Row: r}, Occupied((c+2*r)%4))
		}
	}
	require.Zero(t, b.Matches().Len(), "base pattern must be matchless")
	return b
}

func TestNew_InitialBoardIsMatchless(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		b, err := New(testGeometry, 6, newRand(seed))
		require.NoError(t, err)
		assert.Zero(t, b.Matches().Len(), "seed %d left a starting match", seed)
		assert.Equal(t, b.Size(), b.OccupiedCount())
		assert.True(t, b.Settled())
	}
}

func TestNew_SmallPaletteStillResolves(t *testing.T) {
	b, err := New(testGeometry, 3, newRand(7))
	require.NoError(t, err)
	assert.Zero(t, b.Matches().Len())
}

func TestNew_TwoTypesOnLargeBoards(t *testing.T) {
	for _, side := range []int{16, 32, 64} {
		geo := Geometry{Cols: side, Rows: side, CellSize: 8}
		for seed := uint64(0); seed < 10; seed++ {
			b, err := New(geo, 2, newRand(seed))
			require.NoError(t, err, "%dx%d seed %d", side, side, seed)
			assert.Zero(t, b.Matches().Len())
		}
	}
}

func TestClosesRun(t *testing.T) {
	b := newPatternBoard(t)
	// Row 0 reads 0 1 2 3 0 1 2 3, column 0 reads 0 2 0 2 0 2 0 2
	tests := []struct {
		name string
		c    Coord
		k    Kind
		want bool
	}{
		{"single neighbor alike", Coord{Col: 1, Row: 0}, Occupied(0), false},
		{"fresh type", Coord{Col: 4, Row: 0}, Occupied(5), false},
		{"fills vertical gap", Coord{Col: 0, Row: 1}, Occupied(0), true},
		{"own type in place", Coord{Col: 3, Row: 3}, b.Kind(Coord{Col: 3, Row: 3}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.closesRun(tt.c, tt.k))
		})
	}

	b.SetKind(Coord{Col: 1, Row: 0}, Occupied(0))
	assert.True(t, b.closesRun(Coord{Col: 2, Row: 0}, Occupied(0)), "extends a horizontal pair")
}

func TestNew_RejectsTinyPalette(t *testing.T) {
	_, err := New(testGeometry, 1, newRand(1))
	assert.ErrorIs(t, err, ErrPaletteTooSmall)

	_, err = New(testGeometry, 0, newRand(1))
	assert.ErrorIs(t, err, ErrPaletteTooSmall)
}

func TestNew_RejectsBadGeometry(t *testing.T) {
	_, err := New(Geometry{Cols: 0, Rows: 8, CellSize: 64}, 6, newRand(1))
	assert.ErrorIs(t, err, ErrGeometry)

	_, err = New(Geometry{Cols: 8, Rows: 8, CellSize: 0}, 6, newRand(1))
	assert.ErrorIs(t, err, ErrGeometry)
}

func TestNew_NonSquareGrid(t *testing.T) {
	b, err := New(Geometry{Cols: 10, Rows: 5, CellSize: 8}, 5, newRand(3))
	require.NoError(t, err)
	assert.Equal(t, 10, b.Cols())
	assert.Equal(t, 5, b.Rows())
	assert.Equal(t, 50, b.OccupiedCount())
	assert.Equal(t, 72.0, b.CellOrigin(Coord{Col: 9, Row: 4}).X)
	assert.Equal(t, 36.0, b.CellCenter(Coord{Col: 4, Row: 4}).X)
}

func TestCoordAdjacent(t *testing.T) {
	a := Coord{Col: 3, Row: 3}
	tests := []struct {
		name string
		b    Coord
		want bool
	}{
		{"right", Coord{Col: 4, Row: 3}, true},
		{"left", Coord{Col: 2, Row: 3}, true},
		{"up", Coord{Col: 3, Row: 2}, true},
		{"down", Coord{Col: 3, Row: 4}, true},
		{"identical", a, false},
		{"diagonal", Coord{Col: 4, Row: 4}, false},
		{"two apart", Coord{Col: 5, Row: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Adjacent(tt.b))
			assert.Equal(t, tt.want, tt.b.Adjacent(a))
		})
	}
}

func TestKind(t *testing.T) {
	typ, ok := Occupied(4).Type()
	assert.Equal(t, 4, typ)
	assert.True(t, ok)

	_, ok = Empty.Type()
	assert.False(t, ok)
	assert.True(t, Kind{}.IsEmpty())
	assert.NotEqual(t, Empty, Occupied(0))
	assert.Equal(t, "gem4", Occupied(4).String())
	assert.Equal(t, "empty", Empty.String())
}

func TestSwap_ExchangesKindsAndVisuals(t *testing.T) {
	b := newPatternBoard(t)
	x, y := Coord{Col: 0, Row: 0}, Coord{Col: 1, Row: 0}
	kx, ky := b.Kind(x), b.Kind(y)

	b.Swap(x, y)

	assert.Equal(t, ky, b.Kind(x))
	assert.Equal(t, kx, b.Kind(y))
	// Each gem starts from where it was drawn and slides to its new cell
	assert.Equal(t, b.CellOrigin(y), b.Token(x).Pos)
	assert.Equal(t, b.CellOrigin(x), b.Token(x).Target)
	assert.False(t, b.Settled())
}

func TestTokensIteratesColumnMajor(t *testing.T) {
	b := newPatternBoard(t)
	var seen []Coord
	for tok := range b.Tokens() {
		seen = append(seen, tok.Coord())
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []Coord{{0, 0}, {0, 1}, {0, 2}}, seen)
}
