package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/runner"
)

// Characters used for world elements.
const (
	PlayerChar    = '█'
	GroundObsChar = '▓'
	AirObsChar    = '▒'
	GroundChar    = '═'
)

// Smallest screen the world can be drawn into.
const (
	minScreenW = 20
	minScreenH = 8
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps world pixels to screen cells. Row 0 holds the HUD,
// the world occupies the rows below it.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(snap runner.Snapshot, dst *core.Screen) viewport {
	top := 1
	return viewport{
		sx:  float64(dst.Width()) / snap.WorldW,
		sy:  float64(dst.Height()-top) / snap.WorldH,
		top: top,
	}
}

// cells returns the cell rectangle covered by a world box.
// Any box with positive size covers at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0+v.top, max(x1-x0, 1), max(y1-y0, 1))
}

// row returns the screen row of a world y coordinate, rounding up so a
// line at an object's bottom edge lands just below it.
func (v viewport) row(y float64) int {
	return int(math.Ceil(y*v.sy)) + v.top
}

// Renderer paints runner snapshots into a character screen.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws the snapshot scaled to fit dst.
func (r *Renderer) Render(dst *core.Screen, snap runner.Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH || snap.WorldW <= 0 || snap.WorldH <= 0 {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	vp := newViewport(snap, dst)

	// Ground, with everything below it shaded
	groundRow := vp.row(snap.GroundLine)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '░', core.ColorGray)
	}

	for _, o := range snap.Obstacles {
		r.drawObstacle(dst, vp, o)
	}

	playerColor := core.ColorCyan
	if snap.State == runner.GameOver {
		playerColor = core.ColorRed
	}
	dst.FillRect(vp.cells(snap.Player), PlayerChar, playerColor)

	r.drawHUD(dst, snap)

	if snap.State == runner.GameOver {
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		if snap.Record {
			subtitle = fmt.Sprintf("New best: %d!  |  Press R to restart", snap.Score)
		}
		r.DrawMessage(dst, "GAME OVER", subtitle)
	}
}

func (r *Renderer) drawObstacle(dst *core.Screen, vp viewport, o runner.Obstacle) {
	fill, color := GroundObsChar, core.ColorGreen
	if o.Kind == runner.KindAir {
		fill, color = AirObsChar, core.ColorOrange
	}
	dst.FillRect(vp.cells(o.Box), fill, color)
}

// drawHUD writes the score line into row 0.
func (r *Renderer) drawHUD(dst *core.Screen, snap runner.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", snap.Score, snap.Best)
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Spd: %.1f  Lv %d ", snap.Speed, snap.Level)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
}

// DrawMessage draws a message box in the center of the screen.
func (r *Renderer) DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
