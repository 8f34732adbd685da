package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/terminal"
)

func newTestGame(t *testing.T) (*game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 40)

	cfg := config.Default()
	cfg.Board.CellSize = float64(cfg.Display.TerminalCellSize)
	logger, _ := test.NewNullLogger()

	g, err := newGame(cfg, 5, logger, nil, terminal.Wrap(screen, terminal.ColorModeTrueColor))
	require.NoError(t, err)
	return g, screen
}

func TestGameLayout(t *testing.T) {
	g, _ := newTestGame(t)

	assert.Equal(t, 64, g.layout.W)
	assert.Equal(t, 64, g.layout.H)
	assert.Equal(t, 8, g.layout.X)
	assert.Equal(t, board.Coord{Col: 4, Row: 4}, g.cursor)
}

func TestGameCursorMovesAndClamps(t *testing.T) {
	g, _ := newTestGame(t)

	_, err := g.handle(terminal.Intent{Action: terminal.ActionMove, DX: 1})
	require.NoError(t, err)
	assert.Equal(t, board.Coord{Col: 5, Row: 4}, g.cursor)

	for range 20 {
		g.handle(terminal.Intent{Action: terminal.ActionMove, DX: -1, DY: 0})
		g.handle(terminal.Intent{Action: terminal.ActionMove, DY: 1})
	}
	assert.Equal(t, board.Coord{Col: 0, Row: 7}, g.cursor)
}

func TestGameSelectAndClick(t *testing.T) {
	g, _ := newTestGame(t)

	g.handle(terminal.Intent{Action: terminal.ActionSelect})
	sel, ok := g.session.Selection()
	require.True(t, ok)
	assert.Equal(t, g.cursor, sel)

	// Pixel (17, 26) is column 2, row 3 at 8px cells
	x, y := g.layout.X+17, g.layout.Y+13
	g.handle(terminal.Intent{Action: terminal.ActionClick, X: x, Y: y})
	sel, ok = g.session.Selection()
	require.True(t, ok)
	assert.Equal(t, board.Coord{Col: 2, Row: 3}, sel)
	assert.Equal(t, sel, g.cursor)

	// Outside the picture
	g.handle(terminal.Intent{Action: terminal.ActionClick, X: 0, Y: 0})
	sel, _ = g.session.Selection()
	assert.Equal(t, board.Coord{Col: 2, Row: 3}, sel)
}

func TestGameHintSelects(t *testing.T) {
	g, _ := newTestGame(t)

	a, b, ok := g.session.Hint()
	require.True(t, ok)

	g.handle(terminal.Intent{Action: terminal.ActionHint})
	sel, selected := g.session.Selection()
	require.True(t, selected)
	assert.Equal(t, a, sel)
	assert.Equal(t, b, g.cursor)
}

func TestGameQuitAndRestart(t *testing.T) {
	g, _ := newTestGame(t)

	first := g.session.ID()
	done, err := g.handle(terminal.Intent{Action: terminal.ActionRestart})
	require.NoError(t, err)
	assert.False(t, done)
	assert.NotEqual(t, first, g.session.ID())

	done, err = g.handle(terminal.Intent{Action: terminal.ActionQuit})
	require.NoError(t, err)
	assert.True(t, done)
}

func TestGameDrawStatusAndBoard(t *testing.T) {
	g, screen := newTestGame(t)

	require.NoError(t, g.session.Tick())
	g.draw()

	mainc, _, _, _ := screen.GetContent(g.layout.X, g.layout.Y-1)
	assert.Equal(t, 'S', mainc)
	mainc, _, _, _ = screen.GetContent(g.layout.X+4, g.layout.Y+2)
	assert.Equal(t, terminal.HalfBlock, mainc)
}

func TestGameDrawTooSmall(t *testing.T) {
	g, screen := newTestGame(t)
	screen.SetSize(30, 10)
	g.handle(terminal.Intent{Action: terminal.ActionResize})
	g.draw()

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.NotEqual(t, terminal.HalfBlock, mainc)
}
