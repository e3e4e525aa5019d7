// Package render draws the simulation state with ebiten. Everything here is
// presentation; nothing feeds back into physics.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/sim"
)

const tileImageSize = 16

type Options struct {
	ActorColor      color.Color
	ShowHitbox      bool
	ShowTrackingBox bool
	ShowHUD         bool
}

var (
	solidColor    = colornames.Slategray
	platformColor = colornames.Peru
	hitboxColor   = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	trackingColor = color.RGBA{R: 0, G: 128, B: 255, A: 160}
	backdrop      = colornames.Midnightblue
)

// View converts world coordinates to screen coordinates: translate by the
// camera offset, then scale by zoom.
type View struct {
	Scale float64
	TX    float64
	TY    float64
}

func ViewOf(st sim.State) View {
	zoom := st.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return View{Scale: zoom, TX: st.CameraPosition.X, TY: st.CameraPosition.Y}
}

func (v View) ToScreen(p common.Vec) (float64, float64) {
	return (p.X + v.TX) * v.Scale, (p.Y + v.TY) * v.Scale
}

func (v View) rect(r common.Rect) (x, y, w, h float32) {
	sx, sy := v.ToScreen(r.Pos)
	return float32(sx), float32(sy), float32(r.Width * v.Scale), float32(r.Height * v.Scale)
}

// DrawWorld draws the level blocks, the actor and the optional debug boxes.
func DrawWorld(screen *ebiten.Image, st sim.State, reg *collision.Registry, opts Options) {
	if screen == nil {
		return
	}
	screen.Fill(backdrop)
	view := ViewOf(st)

	drawBlocks(screen, view, reg.Solids(), solidImage("solid", tileImageSize, solidColor))
	drawBlocks(screen, view, reg.Platforms(), solidImage("platform", tileImageSize, platformColor))

	actorColor := opts.ActorColor
	if actorColor == nil {
		actorColor = colornames.Sandybrown
	}
	hx, hy, hw, hh := view.rect(st.Hitbox)
	vector.FillRect(screen, hx, hy, hw, hh, actorColor, false)

	if opts.ShowHitbox {
		x, y, w, h := view.rect(st.Sprite)
		vector.StrokeRect(screen, x, y, w, h, 1, colornames.Lightgrey, false)
		vector.StrokeRect(screen, hx, hy, hw, hh, 1, hitboxColor, false)
	}
	if opts.ShowTrackingBox {
		x, y, w, h := view.rect(st.TrackingBox)
		vector.StrokeRect(screen, x, y, w, h, 1, trackingColor, false)
	}
	if opts.ShowHUD {
		ebitenutil.DebugPrintAt(screen, hudText(st), 8, 8)
	}
}

func drawBlocks(screen *ebiten.Image, view View, blocks []collision.Block, img *ebiten.Image) {
	for _, b := range blocks {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.Rect.Width/tileImageSize, b.Rect.Height/tileImageSize)
		op.GeoM.Translate(b.Rect.Pos.X+view.TX, b.Rect.Pos.Y+view.TY)
		op.GeoM.Scale(view.Scale, view.Scale)
		screen.DrawImage(img, op)
	}
}

func hudText(st sim.State) string {
	return fmt.Sprintf("frame %d  clip %s[%d]\npos %.2f,%.2f  vel %.2f,%.2f\nground %v  platform %v  wall %s  ceiling %v",
		st.Frame, st.Clip, st.ClipFrame,
		st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y,
		st.Contacts.Ground, st.Contacts.Platform, st.Contacts.Wall, st.Contacts.Ceiling)
}
