package terminal

import "github.com/gdamore/tcell/v2"

// Action is what a terminal event asks the game to do
type Action uint8

const (
	ActionNone Action = iota
	ActionMove        // cursor by DX, DY
	ActionSelect      // tap the cursor cell
	ActionClick       // tap the cell under X, Y
	ActionHint
	ActionMute
	ActionRestart
	ActionQuit
	ActionResize
)

var actionNames = [...]string{"none", "move", "select", "click", "hint", "mute", "restart", "quit", "resize"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Intent is a decoded event
type Intent struct {
	Action Action
	DX, DY int
	X, Y   int // terminal cell of a click
}

// Translator decodes tcell events; it tracks buttons so a held button clicks once
type Translator struct {
	buttons tcell.ButtonMask
}

// Translate maps one event to an intent, ActionNone when irrelevant
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)

	case *tcell.EventMouse:
		prev := t.buttons
		t.buttons = ev.Buttons()
		if t.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
			x, y := ev.Position()
			return Intent{Action: ActionClick, X: x, Y: y}
		}

	case *tcell.EventResize:
		return Intent{Action: ActionResize}
	}
	return Intent{}
}

func translateKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Action: ActionQuit}
	case tcell.KeyEnter:
		return Intent{Action: ActionSelect}
	case tcell.KeyLeft:
		return Intent{Action: ActionMove, DX: -1}
	case tcell.KeyRight:
		return Intent{Action: ActionMove, DX: 1}
	case tcell.KeyUp:
		return Intent{Action: ActionMove, DY: -1}
	case tcell.KeyDown:
		return Intent{Action: ActionMove, DY: 1}
	case tcell.KeyRune:
	default:
		return Intent{}
	}

	switch ev.Rune() {
	case 'h':
		return Intent{Action: ActionMove, DX: -1}
	case 'l':
		return Intent{Action: ActionMove, DX: 1}
	case 'k':
		return Intent{Action: ActionMove, DY: -1}
	case 'j':
		return Intent{Action: ActionMove, DY: 1}
	case ' ':
		return Intent{Action: ActionSelect}
	case '?':
		return Intent{Action: ActionHint}
	case 'm':
		return Intent{Action: ActionMute}
	case 'r':
		return Intent{Action: ActionRestart}
	case 'q':
		return Intent{Action: ActionQuit}
	}
	return Intent{}
}
