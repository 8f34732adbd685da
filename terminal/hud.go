package terminal

import (
	"fmt"

	"github.com/lixenwraith/vi-match/core"
	"github.com/lixenwraith/vi-match/engine"
	"github.com/lixenwraith/vi-match/render"
)

// HUD draws the text around and over the board picture
type HUD struct {
	Text       core.RGB
	Dim        core.RGB
	Background core.RGB
	Panel      core.RGB // tint behind game-over text, matching the composed panel
}

// HelpLine lists the keys
const HelpLine = "hjkl/arrows move  space select  ? hint  m mute  r restart  q quit"

// DrawStatus writes score and time above the picture and the help line below
func (h HUD) DrawStatus(s *Screen, l Layout, st engine.SessionState, muted bool) {
	style := s.Style(h.Text, h.Background)
	status := fmt.Sprintf("SCORE %d", st.Score)
	timer := fmt.Sprintf("TIME %2d", st.SecondsLeft)
	if muted {
		timer = "MUTED  " + timer
	}
	s.DrawText(l.X, l.Y-1, status, style)
	s.DrawText(l.X+l.W-len(timer), l.Y-1, timer, style)
	s.DrawCentered(l.X, l.W, l.Y+l.Rows(), HelpLine, s.Style(h.Dim, h.Background))
}

// DrawGameOver centers the result on the panel rows of the picture
func (h HUD) DrawGameOver(s *Screen, l Layout, panel render.Rect, st engine.SessionState) {
	style := s.Style(h.Text, h.Panel)
	mid := l.Row(int(panel.Y + panel.H/2))
	s.DrawCentered(l.X, l.W, mid-1, "TIME UP", style)
	s.DrawCentered(l.X, l.W, mid, fmt.Sprintf("Final score %d", st.Score), style)
	s.DrawCentered(l.X, l.W, mid+1, fmt.Sprintf("%d moves  %d cascades", st.Moves, st.Cascades), style)
}
