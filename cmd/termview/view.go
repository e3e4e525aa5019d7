package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/sim"
)

var (
	solidStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	platformStyle = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	actorStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

type cell struct {
	x, y int
	r    rune
}

// view maps world units to terminal cells, one cell per tile.
type view struct {
	sim   *sim.Sim
	tile  float64
	cells []cell
}

func newView(s *sim.Sim) *view {
	tile := float64(s.Level().TileSize)
	v := &view{sim: s, tile: tile}
	reg := s.Registry()
	// Solids win over platforms sharing a cell.
	for _, b := range reg.Platforms() {
		v.cells = append(v.cells, v.blockCell(b, '='))
	}
	for _, b := range reg.Solids() {
		v.cells = append(v.cells, v.blockCell(b, '#'))
	}
	return v
}

func (v *view) blockCell(b collision.Block, r rune) cell {
	return cell{x: int(b.Rect.Left() / v.tile), y: int(b.Rect.Top() / v.tile), r: r}
}

// actorCell is the cell under the hitbox centre.
func (v *view) actorCell(st sim.State) (int, int) {
	cx := st.Hitbox.Left() + st.Hitbox.Width/2
	cy := st.Hitbox.Top() + st.Hitbox.Height/2
	return int(math.Floor(cx / v.tile)), int(math.Floor(cy / v.tile))
}

// scroll returns the column offset that keeps ax on a screen width columns
// wide, clamped to the level.
func scroll(ax, width, levelCols int) int {
	if levelCols <= width {
		return 0
	}
	off := ax - width/2
	if off < 0 {
		off = 0
	}
	if off > levelCols-width {
		off = levelCols - width
	}
	return off
}

func (v *view) draw(screen tcell.Screen) {
	st := v.sim.State()
	width, height := screen.Size()
	ax, ay := v.actorCell(st)
	off := scroll(ax, width, v.sim.Level().Columns)

	screen.Clear()
	for _, c := range v.cells {
		style := solidStyle
		if c.r == '=' {
			style = platformStyle
		}
		if x := c.x - off; x >= 0 && x < width && c.y < height-1 {
			screen.SetContent(x, c.y, c.r, nil, style)
		}
	}
	if x := ax - off; x >= 0 && x < width && ay >= 0 && ay < height-1 {
		screen.SetContent(x, ay, '@', nil, actorStyle)
	}

	status := fmt.Sprintf(" frame %d  pos %.1f,%.1f  vel %.1f,%.1f  %s  grounded %v  [a/d move, w jump, q quit] ",
		st.Frame, st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y, st.Clip, st.Contacts.Grounded())
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, statusStyle)
	}
	screen.Show()
}
