// Package render draws composed spiral frames onto a tcell screen.
//
// Each arc is rasterized from its own StartAngle on its own circle, exactly as
// the arc chain describes it. The chain's walker positions sit opposite the
// drawn arc starts, so consecutive quarter-arcs are not joined end to end and
// some sweep outside their square; the gaps are deliberate, not a drawing bug.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/golden-spiral/arc"
	"github.com/lixenwraith/golden-spiral/parameter"
	"github.com/lixenwraith/golden-spiral/scene"
	"github.com/lixenwraith/golden-spiral/sequence"
	"github.com/lixenwraith/golden-spiral/viewport"
	"github.com/lixenwraith/golden-spiral/vmath"
)

// Status carries the non-geometry parts of the status bar
type Status struct {
	Audio   bool
	Message string // Transient message, e.g. a rejected square count
}

// TerminalRenderer draws composed frames onto a tcell screen
// Viewport units are cell columns horizontally and column-equivalents vertically,
// so squares stay square on cells that are cellAspect times taller than wide
type TerminalRenderer struct {
	screen     tcell.Screen
	cellAspect float64
	width      int
	height     int
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, cellAspect float64) *TerminalRenderer {
	if cellAspect <= 0 {
		cellAspect = parameter.CellAspect
	}
	r := &TerminalRenderer{screen: screen, cellAspect: cellAspect}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Viewport returns the drawing area available to the spiral
func (r *TerminalRenderer) Viewport() viewport.Viewport {
	rows := max(r.height-parameter.TopMargin-parameter.BottomMargin, 1)
	return viewport.Viewport{
		Width:  float64(max(r.width, 1)),
		Height: float64(rows) * r.cellAspect,
	}
}

// RenderFrame renders the entire frame and shows it
func (r *TerminalRenderer) RenderFrame(f scene.Frame, status Status) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	r.drawTitle(f, defaultStyle)
	for _, sq := range f.VisibleSquares() {
		r.drawSquare(f.Layout, sq, defaultStyle)
	}

	arcs := f.VisibleArcs()
	for i, a := range arcs {
		head := i == len(arcs)-1 && f.Reveal.PartialSweep > 0
		r.drawArc(f.Layout, a, head)
	}

	r.drawStatusBar(f, status, defaultStyle)
	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// cell converts a screen-space point to a cell, ok is false outside the drawing area
func (r *TerminalRenderer) cell(p vmath.Vec2) (x, y int, ok bool) {
	x = int(math.Floor(p.X))
	y = parameter.TopMargin + int(math.Floor(p.Y/r.cellAspect))
	if x < 0 || x >= r.width || y < parameter.TopMargin || y >= r.height-parameter.BottomMargin {
		return x, y, false
	}
	return x, y, true
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.width || y < parameter.TopMargin || y >= r.height-parameter.BottomMargin {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// cellRect returns the inclusive cell rectangle covered by a fitted-space box
func (r *TerminalRenderer) cellRect(l *scene.Layout, b vmath.Box) (x0, y0, x1, y1 int) {
	tl := l.ToScreen(vmath.Vec2{X: b.MinX, Y: b.MaxY})
	br := l.ToScreen(vmath.Vec2{X: b.MaxX, Y: b.MinY})

	x0 = int(math.Round(tl.X))
	x1 = int(math.Round(br.X)) - 1
	y0 = parameter.TopMargin + int(math.Round(tl.Y/r.cellAspect))
	y1 = parameter.TopMargin + int(math.Round(br.Y/r.cellAspect)) - 1
	return x0, y0, max(x1, x0), max(y1, y0)
}

func (r *TerminalRenderer) drawSquare(l *scene.Layout, sq scene.Square, defaultStyle tcell.Style) {
	edge, fill := SquareColors(sq.ColorIndex)
	edgeStyle := defaultStyle.Foreground(edge).Background(fill)
	fillStyle := defaultStyle.Background(fill)

	x0, y0, x1, y1 := r.cellRect(l, sq.Box())

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			ch := ' '
			style := fillStyle
			switch {
			case x0 == x1 || y0 == y1:
				// Too small for an outline
			case x == x0 && y == y0:
				ch, style = parameter.CornerTopLeft, edgeStyle
			case x == x1 && y == y0:
				ch, style = parameter.CornerTopRight, edgeStyle
			case x == x0 && y == y1:
				ch, style = parameter.CornerBotLeft, edgeStyle
			case x == x1 && y == y1:
				ch, style = parameter.CornerBotRight, edgeStyle
			case y == y0 || y == y1:
				ch, style = parameter.EdgeHorizontal, edgeStyle
			case x == x0 || x == x1:
				ch, style = parameter.EdgeVertical, edgeStyle
			}
			r.set(x, y, ch, style)
		}
	}

	// Label centered inside the outline when it fits
	inner := x1 - x0 - 1
	if x0 == x1 || y0 == y1 {
		inner = x1 - x0 + 1
	}
	labelWidth := runewidth.StringWidth(sq.Label)
	if labelWidth > inner {
		return
	}
	lx := x0 + (x1-x0+1-labelWidth)/2
	ly := (y0 + y1) / 2
	if ly < parameter.TopMargin || ly >= r.height-parameter.BottomMargin {
		return
	}
	r.drawText(lx, ly, sq.Label, fillStyle.Foreground(RgbLabel).Bold(true))
}

func (r *TerminalRenderer) drawArc(l *scene.Layout, a arc.Arc, head bool) {
	length := a.Radius * vmath.Radians(a.Sweep)
	samples := max(int(math.Ceil(length*parameter.ArcSamplesPerCell)), 2)

	for i := 0; i <= samples; i++ {
		p := l.ToScreen(a.PointAt(a.Sweep * float64(i) / float64(samples)))
		x, y, ok := r.cell(p)
		if !ok {
			continue
		}
		_, _, style, _ := r.screen.GetContent(x, y)
		r.screen.SetContent(x, y, parameter.ArcChar, nil, style.Foreground(RgbArc))
	}

	if head {
		if x, y, ok := r.cell(l.ToScreen(a.End())); ok {
			_, _, style, _ := r.screen.GetContent(x, y)
			r.screen.SetContent(x, y, parameter.ArcHeadChar, nil, style.Foreground(RgbArcHead))
		}
	}
}

func (r *TerminalRenderer) drawTitle(f scene.Frame, defaultStyle tcell.Style) {
	title := fmt.Sprintf(" golden spiral · %d squares · scale %.2f", f.Layout.Count, f.Layout.Scale)
	r.drawText(0, 0, runewidth.Truncate(title, r.width, "…"), defaultStyle.Foreground(RgbTitle))
}

// StatusLine formats the status bar fields shared by the renderer and tests
func StatusLine(f scene.Frame, status Status) string {
	line := fmt.Sprintf(" n=%d  %5.1f%%  speed %.2fx", f.Layout.Count, f.State.Progress*100, f.State.Speed)
	if info, ok := sequence.Info(f.Layout.Magnitudes, f.Layout.Closest); ok {
		line += fmt.Sprintf("  %d/%d=%.6f (Δφ %.1e)", info.Numerator, info.Denominator, info.Ratio, info.Convergence)
	}
	if status.Audio {
		line += "  " + parameter.AudioStr
	}
	return line
}

func (r *TerminalRenderer) drawStatusBar(f scene.Frame, status Status, defaultStyle tcell.Style) {
	y := r.height - 1
	if y < 0 {
		return
	}
	barStyle := defaultStyle.Background(RgbStatusBar).Foreground(RgbLabel)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, barStyle)
	}

	mode, modeBg := parameter.StatusPaused, RgbModePauseBg
	switch {
	case f.State.Complete():
		mode, modeBg = parameter.StatusComplete, RgbModeCompleteBg
	case f.State.Animating:
		mode, modeBg = parameter.StatusPlaying, RgbModePlayBg
	}
	x := r.drawText(0, y, mode, defaultStyle.Background(modeBg).Foreground(RgbStatusText).Bold(true))

	x = r.drawText(x, y, StatusLine(f, status), barStyle)
	if status.Message != "" {
		x = r.drawText(x, y, "  "+status.Message, barStyle.Foreground(RgbMessage))
	}

	// Help right-aligned in whatever room is left
	room := r.width - x - 2
	if room <= 0 {
		return
	}
	help := runewidth.Truncate(parameter.HelpText, room, "…")
	r.drawText(r.width-runewidth.StringWidth(help)-1, y, help, barStyle.Foreground(RgbStatusHelp))
}

// drawText writes s at (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
