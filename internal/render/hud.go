package render

import (
	"fmt"
	"strings"

	"blastradius/internal/grid"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Status is what the HUD shows under the map.
type Status struct {
	HP, MaxHP int
	Cursor    grid.Point
	Variant   string
	Metric    string
	Effects   []string // e.g. "deaf 32"
	Messages  []string
}

const helpLine = "move:hjklyubn  e:explode g:grenade f:flash s:shock r:cascade  o/c/x:blast/cone/line  p/P:push/pull  v:variant  .:wait  q:quit"

// DrawHUD renders the status bar, key help and message log at the bottom
// of the screen.
func (r *Renderer) DrawHUD(s Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - HUDRows

	r.drawHLine(hudY, tcell.ColorGray)

	hp := "HP: -"
	if s.MaxHP > 0 {
		hp = fmt.Sprintf("HP: %d/%d", s.HP, s.MaxHP)
	}
	status := fmt.Sprintf("%s  cursor %v  blast:%s  metric:%s", hp, s.Cursor, s.Variant, s.Metric)
	if len(s.Effects) > 0 {
		status += "  [" + strings.Join(s.Effects, ", ") + "]"
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, helpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))

	// Last three messages.
	start := max(len(s.Messages)-3, 0)
	for i, msg := range s.Messages[start:] {
		r.drawText(0, hudY+3+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, advancing by each rune's display
// width so wide runes do not overlap.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range text {
		if col >= w {
			return
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
