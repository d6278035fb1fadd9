package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickpong/internal/core"
	"github.com/vovakirdan/brickpong/internal/games/brickpong"
)

// One terminal cell covers CellWidth x CellHeight playfield units.
const (
	CellWidth  = 10
	CellHeight = 20
	hudRows    = 2 // Score line on top, status line at the bottom
)

const (
	brickRune  = '▒'
	paddleRune = '█'
	ballRune   = '●'
)

// colorStyles maps core.Color to lipgloss styles using ANSI 256 codes.
var colorStyles = func() map[core.Color]lipgloss.Style {
	codes := map[core.Color]string{
		core.ColorRed:           "1",
		core.ColorGreen:         "2",
		core.ColorYellow:        "3",
		core.ColorBlue:          "4",
		core.ColorMagenta:       "5",
		core.ColorCyan:          "6",
		core.ColorWhite:         "7",
		core.ColorBrightRed:     "9",
		core.ColorBrightGreen:   "10",
		core.ColorBrightYellow:  "11",
		core.ColorBrightBlue:    "12",
		core.ColorBrightMagenta: "13",
		core.ColorBrightCyan:    "14",
		core.ColorBrightWhite:   "15",
		core.ColorOrange:        "208",
		core.ColorGray:          "245",
	}
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range codes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}()

// paddleColors are the base colors of the human and computer paddles.
// A glowing paddle is drawn in the bright variant.
var paddleColors = [2]core.Color{
	brickpong.Human:    core.ColorCyan,
	brickpong.Computer: core.ColorRed,
}

// PlayfieldSize converts a terminal size into playfield units, leaving room
// for the HUD rows.
func PlayfieldSize(cols, rows int) (width, height float64) {
	return float64(core.Max(cols, 0) * CellWidth), float64(core.Max(rows-hudRows, 0) * CellHeight)
}

// StatusText returns the message shown for a status event, or "" when the
// status is hidden.
func StatusText(ev brickpong.StatusEvent) string {
	if !ev.Visible {
		return ""
	}
	switch ev.Key {
	case brickpong.StatusWin:
		return "You win! Press space for the next round"
	case brickpong.StatusLose:
		return "You lose. Press space for the next round"
	case brickpong.StatusTie:
		return "Tie. Press space for the next round"
	case brickpong.StatusPause:
		return "Paused. Press space to resume"
	default:
		return string(ev.Key)
	}
}

// Rasterize draws a frame into s: the score on the first row, the
// playfield below it and footer on the last row.
func Rasterize(v brickpong.View, s *core.Screen, footer string) {
	s.Clear()
	if s.Height() < 1 {
		return
	}

	for _, br := range v.Bricks {
		fillRect(s, br.Rect, brickRune, br.Color)
	}
	for _, p := range v.Paddles {
		c := paddleColors[p.Side]
		if p.Glowing {
			c = c.Bright()
		}
		fillRect(s, p.Rect, paddleRune, c)
	}
	for _, b := range v.Balls {
		x, y := toCell(b.CX, b.CY)
		if y <= s.Height()-hudRows {
			s.Set(x, y, ballRune, core.ColorBrightYellow)
		}
	}

	if !v.Sized {
		s.DrawTextCentered(s.Height()/2, "Waiting for terminal size...", core.ColorGray)
	}

	s.FillRect(0, 0, s.Width(), 1, ' ', core.ColorDefault)
	s.DrawTextCentered(0, v.Score, core.ColorBrightWhite)

	last := s.Height() - 1
	if last > 0 {
		s.FillRect(0, last, s.Width(), last+1, ' ', core.ColorDefault)
		s.DrawTextCentered(last, footer, core.ColorGray)
	}
}

// toCell maps a playfield point to a screen cell below the score row.
func toCell(x, y float64) (col, row int) {
	return int(math.Floor(x / CellWidth)), 1 + int(math.Floor(y/CellHeight))
}

// fillRect paints every cell the rect touches. Rows that would land on the
// status line are clipped.
func fillRect(s *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0 := toCell(r.Left, r.Top)
	x1 := int(math.Ceil(r.Right / CellWidth))
	y1 := 1 + int(math.Ceil(r.Bottom/CellHeight))
	s.FillRect(x0, y0, x1, core.Min(y1, s.Height()-1), ch, c)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
