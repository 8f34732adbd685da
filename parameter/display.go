package parameter

// GemPalette is the base color of each procedural gem type
var GemPalette = []string{"#FF4136", "#2ECC40", "#0074D9", "#FFDC00", "#B10DC9", "#FF851B"}

// Board Visuals
const (
	// BackgroundColor fills the surface before the checkerboard
	BackgroundColor = "#1A1A2E"
	// CheckerLightAlpha and CheckerDarkAlpha are the white overlay strengths of alternating cells
	CheckerLightAlpha = 0.05
	CheckerDarkAlpha  = 0.10
	// SelectionInsetRatio is the highlight inset as a fraction of cell size (5px of 64px)
	SelectionInsetRatio = 5.0 / 64.0
	// SelectionStrokeRatio is the highlight stroke width as a fraction of cell size (3px of 64px)
	SelectionStrokeRatio = 3.0 / 64.0
	// OverlayPanelRatio is the game-over panel height as a fraction of surface height (140px of 512px)
	OverlayPanelRatio = 140.0 / 512.0
	// OverlayAlpha is the opacity of the game-over panel
	OverlayAlpha = 0.7
)

// Sound
const (
	// MasterVolume is the default output volume, 0..1
	MasterVolume = 0.6
	// SampleRate is the audio output sample rate
	SampleRate = 44100
)

// CursorColor outlines the keyboard cursor cell
const CursorColor = "#00BFFF"
