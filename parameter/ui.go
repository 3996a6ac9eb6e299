package parameter

// Layout & Margins
const (
	// BottomMargin reserves the status bar row
	BottomMargin = 1

	// TopMargin reserves the title row
	TopMargin = 1

	// CellAspect is the default terminal cell height/width ratio
	CellAspect = 2.0
)

// Glyphs
const (
	ArcChar        = '•'
	ArcHeadChar    = '●'
	CornerTopLeft  = '┌'
	CornerTopRight = '┐'
	CornerBotLeft  = '└'
	CornerBotRight = '┘'
	EdgeHorizontal = '─'
	EdgeVertical   = '│'
)

// Status Bar
const (
	StatusPlaying  = " PLAY "
	StatusPaused   = " PAUSE "
	StatusComplete = " DONE "

	// AudioStr marks the status bar while the chime is enabled
	AudioStr = "♫ "

	HelpText = "space play/pause  r reset  +/- squares  </> speed  ←/→ scrub  q quit"
)

// ArcSamplesPerCell controls rasterization density along arcs
const ArcSamplesPerCell = 2.0
