package parameter

// Board Geometry
const (
	// BoardCols is the default grid width in cells
	BoardCols = 8
	// BoardRows is the default grid height in cells
	BoardRows = 8
	// CellSize is the pixel size of one cell in the window frontend (512px board)
	CellSize = 64
	// TerminalCellSize is the pixel size of one cell when rasterized for half-block terminal output
	TerminalCellSize = 8
	// MaxBoardSide bounds either grid dimension
	MaxBoardSide = 64
)

// Gems and Scoring
const (
	// GemTypes is the number of distinct gem types
	GemTypes = 6
	// MinGemTypes is the smallest palette that can avoid forced starting matches
	MinGemTypes = 2
	// PointsPerGem is the score awarded for every cleared cell
	PointsPerGem = 10
)
