// Package scene turns a Burger Man snapshot into flat draw lists of filled
// rectangles and text labels for pixel frontends. It holds no graphics
// state, so it can be tested without a window.
package scene

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
)

// Glyph metrics of the debug font used for labels.
const (
	CharWidth  = 6
	LineHeight = 16
)

// Rect is a filled rectangle in world units.
type Rect struct {
	X, Y, W, H float32
	Color      color.RGBA
}

// Label is a line of text anchored at its top-left corner.
type Label struct {
	X, Y int
	Text string
}

// Frame is everything to draw for one snapshot, in draw order.
type Frame struct {
	Rects  []Rect
	Labels []Label
}

// Fixed colours of the pixel renderer.
var (
	colorSky       = RGBA("#171717")
	colorStar      = RGBA("#262626")
	colorGrass     = RGBA("#10b981")
	colorDirt      = RGBA("#3f3f46")
	colorFace      = RGBA("#fca5a5")
	colorPants     = RGBA("#334155")
	colorGun       = RGBA("#333333")
	colorBlack     = RGBA("#000000")
	colorEyeWhite  = RGBA("#ffffff")
	colorSpeedBox  = RGBA("#0ea5e9")
	colorBolt      = RGBA("#facc15")
	colorHPLost    = RGBA(core.ColorRed)
	colorHPLeft    = RGBA(core.ColorGreen)
	colorBoostRing = RGBA(burger.ColorSpeedBox)
	colorWeapon    = RGBA(burger.ColorGround)
	colorHUD       = color.RGBA{0, 0, 0, 128}
	colorPanel     = color.RGBA{0, 0, 0, 192}
)

// RGBA converts a hex colour. The terminal default maps to white and an
// unparsable value to magenta, so mistakes stay visible.
func RGBA(c core.Color) color.RGBA {
	if c.IsDefault() {
		return color.RGBA{255, 255, 255, 255}
	}
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.RGBA{255, 0, 255, 255}
	}
	r, g, b := col.RGB255()
	return color.RGBA{r, g, b, 255}
}

// fade scales a colour by alpha in [0, 1]. color.RGBA is premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := core.ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// builder accumulates one frame.
type builder struct {
	snap  *burger.Snapshot
	frame Frame
}

func (b *builder) rect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	b.frame.Rects = append(b.frame.Rects, Rect{
		X: float32(math.Floor(x)), Y: float32(math.Floor(y)),
		W: float32(math.Ceil(w)), H: float32(math.Ceil(h)),
		Color: c,
	})
}

func (b *builder) label(x, y int, text string) {
	b.frame.Labels = append(b.frame.Labels, Label{X: x, Y: y, Text: asciiText(text)})
}

// Build lays out a snapshot.
// Draw order: background, platforms, items, humans, player, projectiles,
// particles, floating text, HUD, then the state overlay.
func Build(snap *burger.Snapshot) Frame {
	b := &builder{snap: snap}
	if snap.View.Empty() {
		return b.frame
	}

	b.background()

	switch snap.State {
	case burger.StatePlaying, burger.StateGameOver:
		b.world()
		b.hud()
	default:
		b.showcase()
	}

	b.overlay()
	return b.frame
}

// background paints the sky with a few fixed stars.
func (b *builder) background() {
	v := b.snap.View
	b.rect(0, 0, v.W, v.H, colorSky)
	for i := range 10 {
		x := math.Mod(v.W*float64(i)*0.13, v.W)
		y := math.Mod(v.H*float64(i)*0.27, v.H)
		b.rect(x, y, 4, 4, colorStar)
	}
}

// showcase draws a lawn and the burger in its current skin behind menus.
func (b *builder) showcase() {
	v := b.snap.View
	b.rect(0, v.H-40, v.W, 40, colorGrass)

	p := b.snap.Player
	p.X = v.W/2 - p.W/2
	p.Y = v.H / 2
	p.VX, p.VY = 0, 0
	b.burger(p, false)
}

func (b *builder) world() {
	snap := b.snap
	for _, plat := range snap.Platforms {
		b.rect(plat.X, plat.Y, plat.W, 4, colorGrass)
		b.rect(plat.X, plat.Y+4, plat.W, plat.H-4, colorDirt)
	}
	for _, it := range snap.Items {
		b.item(it)
	}
	px, _ := snap.Player.Center()
	for _, hu := range snap.Humans {
		b.human(hu, px)
	}
	b.burger(snap.Player, true)
	for _, pr := range snap.Projectiles {
		b.rect(pr.X, pr.Y, pr.W, pr.H, RGBA(pr.Color))
	}
	for _, pa := range snap.Particles {
		b.rect(pa.X, pa.Y, pa.Size, pa.Size, fade(RGBA(pa.Color), pa.Life))
	}
	for _, ft := range snap.Texts {
		b.label(int(ft.X), int(ft.Y)-LineHeight, ft.Text)
	}
}

func (b *builder) item(it burger.Item) {
	switch it.Kind {
	case burger.ItemWeapon:
		b.rect(it.X, it.Y, it.W, it.H, colorWeapon)
		b.rect(it.X+4, it.Y+4, 4, 4, colorBlack)
	case burger.ItemSpeedBox:
		b.rect(it.X, it.Y, it.W, it.H, colorSpeedBox)
		// Bolt
		b.rect(it.X+it.W/2-1, it.Y+2, 3, it.H/2-2, colorBolt)
		b.rect(it.X+4, it.Y+it.H/2-1, it.W-8, 3, colorBolt)
		b.rect(it.X+it.W/2-2, it.Y+it.H/2, 3, it.H/2-2, colorBolt)
	}
}

// human draws head, shirt, arms and legs. Armed humans aim at the burger.
func (b *builder) human(h burger.Human, playerX float64) {
	shirt := RGBA(h.Color)
	bob := math.Sin(b.snap.Clock*10+h.X) * 2
	x, y := h.X, h.Y+bob

	b.rect(x+4, y, 8, 8, colorFace)
	if h.Panicked() {
		b.rect(x+5, y+2, 1, 1, colorBlack)
		b.rect(x+9, y+2, 1, 1, colorBlack)
		b.rect(x+6, y+5, 4, 2, colorBlack)
	} else {
		b.rect(x+6, y+3, 1, 1, colorBlack)
		b.rect(x+9, y+3, 1, 1, colorBlack)
	}

	b.rect(x+2, y+8, 12, 10, shirt)

	switch {
	case h.HasWeapon:
		cx, _ := h.Center()
		if playerX > cx {
			b.rect(x+10, y+10, 8, 4, colorGun)
			b.rect(x+10, y+9, 4, 2, shirt)
		} else {
			b.rect(x-4, y+10, 8, 4, colorGun)
			b.rect(x, y+9, 4, 2, shirt)
		}
	case h.Panicked():
		// Arms up
		b.rect(x-1, y+6, 3, 8, shirt)
		b.rect(x+14, y+6, 3, 8, shirt)
	default:
		b.rect(x, y+9, 2, 8, shirt)
		b.rect(x+14, y+9, 2, 8, shirt)
	}

	b.rect(x+3, y+18, 4, 6, colorPants)
	b.rect(x+9, y+18, 4, 6, colorPants)
}

// burger draws the layered player. Squash and stretch follow the vertical
// speed; low HP blinks at half alpha while playing.
func (b *builder) burger(p burger.Player, live bool) {
	colors := b.snap.Skin.Colors
	alpha := 1.0
	if live && p.HP < burger.LowHP && int(b.snap.Clock*8)%2 == 1 {
		alpha = 0.5
	}
	paint := func(c core.Color) color.RGBA { return fade(RGBA(c), alpha) }

	var sx, sy float64
	if math.Abs(p.VY) > 1 {
		sy = math.Copysign(2, p.VY)
		sx = -sy
	}
	dw, dh := p.W+sx, p.H+sy
	dx, dy := p.X-sx/2, p.Y-sy

	b.rect(dx, dy, dw, dh*0.35, paint(colors.Bun))
	if p.Frame%20 < 10 {
		for _, off := range [][2]float64{{8, 4}, {20, 6}, {32, 4}} {
			if off[0]+2 <= dw {
				b.rect(dx+off[0], dy+off[1], 2, 2, paint(colors.Seeds))
			}
		}
	}
	b.rect(dx-2, dy+dh*0.35, dw+4, dh*0.15, paint(colors.Lettuce))
	b.rect(dx-1, dy+dh*0.5, dw+2, dh*0.1, paint(colors.Cheese))
	b.rect(dx+6, dy+dh*0.6, 4, 4, paint(colors.Cheese))
	b.rect(dx, dy+dh*0.6, dw, dh*0.25, paint(colors.Patty))
	b.rect(dx+2, dy+dh*0.85, dw-4, dh*0.15, paint(colors.Bun))

	// Eyes face the walking direction
	eyeX := dx + 6
	pupil := eyeX
	if p.FacingRight {
		eyeX = dx + dw - 14
		pupil = eyeX + 4
	}
	b.rect(eyeX, dy+12, 8, 4, fade(colorBlack, alpha))
	b.rect(pupil, dy+13, 2, 2, fade(colorEyeWhite, alpha))
	b.rect(eyeX-1, dy+9, 10, 2, paint(colors.Patty))

	// Legs
	var step float64
	if live && p.Grounded && math.Abs(p.VX) > 0.1 {
		step = math.Sin(b.snap.Clock*1000/60) * 5
	}
	b.rect(dx+8+step, dy+dh, 4, 6, paint(colors.Bun))
	b.rect(dx+dw-12-step, dy+dh, 4, 6, paint(colors.Bun))

	if live && p.Boosted() {
		ring := fade(colorBoostRing, alpha)
		b.rect(dx-5, dy-5, dw+10, 2, ring)
		b.rect(dx-5, dy+dh+3, dw+10, 2, ring)
		b.rect(dx-5, dy-5, 2, dh+10, ring)
		b.rect(dx+dw+3, dy-5, 2, dh+10, ring)
	}
}

// hud draws the top bar: score, clock, round, HP bar and boost countdown.
func (b *builder) hud() {
	snap := b.snap
	w := snap.View.W
	b.rect(0, 0, w, 60, colorHUD)

	b.label(20, 12, fmt.Sprintf("SCORE: %d", snap.Score))
	clock := snap.ClockText()
	b.label(int(w/2)-len(clock)*CharWidth/2, 12, clock)
	round := fmt.Sprintf("ROUND %d/%d", snap.Round, snap.TotalRounds)
	b.label(int(w)-20-len(round)*CharWidth, 12, round)

	hp := 0.0
	if snap.Player.MaxHP > 0 {
		hp = core.ClampF(snap.Player.HP/snap.Player.MaxHP, 0, 1)
	}
	b.rect(20, 42, 200, 10, colorHPLost)
	b.rect(20, 42, 200*hp, 10, colorHPLeft)

	if snap.Player.Boosted() {
		b.label(20, 66, fmt.Sprintf("SPEED: %d", snap.BoostSeconds()))
	}
}

// overlay draws the state panel centred on the view.
func (b *builder) overlay() {
	title, lines, ok := burger.Overlay(b.snap)
	if !ok {
		return
	}

	cols := len([]rune(title))
	for _, l := range lines {
		cols = max(cols, len([]rune(asciiText(l))))
	}
	pw := float64((cols + 6) * CharWidth)
	ph := float64((len(lines) + 3) * LineHeight)
	px := (b.snap.View.W - pw) / 2
	py := (b.snap.View.H - ph) / 2
	b.rect(px, py, pw, ph, colorPanel)

	x0, y0 := int(px), int(py)
	b.label(x0+(int(pw)-len(title)*CharWidth)/2, y0+LineHeight/2, title)
	for i, l := range lines {
		b.label(x0+3*CharWidth, y0+LineHeight*(i+2), l)
	}

	if b.snap.State == burger.StateSkins {
		for i, sk := range b.snap.OwnedSkins {
			y := py + float64(LineHeight*(i+2)) + 4
			c := sk.Colors
			for j, col := range []core.Color{c.Bun, c.Lettuce, c.Cheese, c.Patty, c.Seeds} {
				b.rect(px+float64(6*CharWidth+j*CharWidth), y, CharWidth-1, LineHeight/2, RGBA(col))
			}
		}
	}
}

// asciiReplacer maps the panel arrows onto the debug font's ASCII range.
var asciiReplacer = strings.NewReplacer("←", "<", "→", ">", "↑", "^", "▶", ">")

func asciiText(s string) string {
	return asciiReplacer.Replace(s)
}
