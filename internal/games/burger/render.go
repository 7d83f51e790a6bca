package burger

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/burgerman/internal/core"
)

// Visual characters for rendering
const (
	BackgroundChar = '·'
	GroundChar     = '▀'
	LedgeChar      = '▔'
	BunChar        = '█'
	PattyChar      = '▓'
	LettuceChar    = '≈'
	CheeseChar     = '▄'
	SeedChar       = '∙'
	HumanHeadChar  = 'o'
	PanicHeadChar  = 'O'
	HumanBodyChar  = '█'
	GunChar        = '─'
	WeaponChar     = '╤'
	SpeedBoxChar   = '»'
	BulletChar     = '•'
	SparkChar      = '*'
	EmberChar      = '.'
	HPFullChar     = '█'
	HPEmptyChar    = '░'
)

// Render palette
const (
	ColorBackground core.Color = "#1e293b"
	ColorGround     core.Color = "#4b5563"
	ColorLedge      core.Color = "#6b7280"
	ColorWeapon     core.Color = "#9ca3af"
	ColorSpeedBox   core.Color = "#00ffff"
	ColorTitle      core.Color = "#fbbf24"
)

// LowHP is the hit point level under which the burger blinks.
const LowHP = 30

// hpBarWidth is the HUD health bar length in cells.
const hpBarWidth = 10

// scaler maps world coordinates onto screen cells.
type scaler struct {
	sx, sy float64
}

func newScaler(view core.Viewport, dst *core.Screen) scaler {
	if view.Empty() {
		return scaler{}
	}
	return scaler{
		sx: float64(dst.Width()) / view.W,
		sy: float64(dst.Height()) / view.H,
	}
}

// cell returns the screen cell holding the world point.
func (s scaler) cell(x, y float64) (int, int) {
	return int(math.Floor(x * s.sx)), int(math.Floor(y * s.sy))
}

// rect returns the cells covered by a world box, at least one cell each way.
func (s scaler) rect(b core.Box) core.Rect {
	x0, y0 := s.cell(b.X, b.Y)
	x1 := int(math.Ceil(b.Right() * s.sx))
	y1 := int(math.Ceil(b.Bottom() * s.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws a snapshot into the screen buffer.
// Draw order: background, platforms, items, humans, player, projectiles,
// particles, floating text, HUD, then the state overlay.
func Render(snap *Snapshot, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	sc := newScaler(snap.View, dst)

	drawBackground(dst)

	if snap.State != StateMenu {
		for _, plat := range snap.Platforms {
			drawPlatform(dst, sc, plat)
		}
		for _, it := range snap.Items {
			drawItem(dst, sc, it)
		}
		for _, hu := range snap.Humans {
			drawHuman(dst, sc, hu, snap)
		}
		drawPlayer(dst, sc, snap)
		for _, pr := range snap.Projectiles {
			x, y := sc.cell(pr.Center())
			dst.SetColored(x, y, BulletChar, pr.Color)
		}
		for _, pt := range snap.Particles {
			ch := SparkChar
			if pt.Life < 0.5 {
				ch = EmberChar
			}
			x, y := sc.cell(pt.X, pt.Y)
			dst.SetColored(x, y, ch, pt.Color)
		}
		for _, ft := range snap.Texts {
			x, y := sc.cell(ft.X, ft.Y)
			dst.DrawTextColored(x-len([]rune(ft.Text))/2, y, ft.Text, ft.Color)
		}
		drawHUD(dst, snap)
	}

	drawOverlay(dst, snap)
}

// drawBackground scatters a faint dot grid.
func drawBackground(dst *core.Screen) {
	for y := 1; y < dst.Height(); y += 3 {
		for x := (y / 3 % 2) * 4; x < dst.Width(); x += 8 {
			dst.SetColored(x, y, BackgroundChar, ColorBackground)
		}
	}
}

func drawPlatform(dst *core.Screen, sc scaler, plat Platform) {
	r := sc.rect(plat.Box)
	if plat.Kind == PlatformGround {
		dst.DrawRect(r, GroundChar, ColorGround)
		return
	}
	dst.DrawHLine(r.X, r.Y, r.W, LedgeChar, ColorLedge)
}

func drawItem(dst *core.Screen, sc scaler, it Item) {
	x, y := sc.cell(it.Center())
	switch it.Kind {
	case ItemWeapon:
		dst.SetColored(x, y, WeaponChar, ColorWeapon)
	case ItemSpeedBox:
		dst.SetColored(x, y, SpeedBoxChar, ColorSpeedBox)
	}
}

// drawHuman draws head, body and, when armed, an arm aimed at the burger.
func drawHuman(dst *core.Screen, sc scaler, hu Human, snap *Snapshot) {
	r := sc.rect(hu.Box)
	head := HumanHeadChar
	if hu.Panicked() {
		head = PanicHeadChar
	}
	dst.SetColored(r.X, r.Y, head, hu.Color)
	for y := r.Y + 1; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, HumanBodyChar, hu.Color)
	}

	// Walk cycle
	if r.H > 1 && math.Abs(hu.VX) > 0.1 && (int(snap.Clock*8)+hu.Phase)%2 == 0 {
		dst.SetColored(r.X, r.Bottom()-1, '╨', hu.Color)
	}

	if hu.HasWeapon {
		px, _ := snap.Player.Center()
		hx, _ := hu.Center()
		armY := r.Y + min(1, r.H-1)
		if px < hx {
			dst.SetColored(r.X-1, armY, GunChar, ColorWeapon)
		} else {
			dst.SetColored(r.Right(), armY, GunChar, ColorWeapon)
		}
	}
}

// drawPlayer draws the layered burger in the selected skin's colours.
func drawPlayer(dst *core.Screen, sc scaler, snap *Snapshot) {
	p := snap.Player

	// Low HP blink
	if p.HP < LowHP && int(snap.Clock*8)%2 == 1 {
		return
	}

	r := sc.rect(p.Box)

	// Squash while landing, stretch while rising
	if math.Abs(p.VY) > 1 && r.W > 2 {
		r.X++
		r.W -= 2
		if p.VY < 0 {
			r.Y--
		}
		r.H++
	}

	colors := snap.Skin.Colors
	for row := 0; row < r.H; row++ {
		y := r.Y + row
		ch, c := burgerLayer(row, r.H, colors)
		dst.DrawHLine(r.X, y, r.W, ch, c)
	}

	// Seeds on the top bun blink once per eaten human
	if r.W > 2 && p.Frame%2 == 0 {
		for x := r.X + 1; x < r.Right()-1; x += 2 {
			dst.SetColored(x, r.Y, SeedChar, colors.Seeds)
		}
	}

	// Legs
	if p.Grounded && math.Abs(p.VX) > 0.5 {
		legs := "╱ ╲"
		if int(snap.Clock*10)%2 == 0 {
			legs = "╲ ╱"
		}
		dst.DrawTextColored(r.X+(r.W-3)/2, r.Bottom(), legs, colors.Patty)
	}

	// Eyes face the walking direction
	if r.H > 1 {
		eyeX := r.X + r.W/4
		if p.FacingRight {
			eyeX = r.Right() - 1 - r.W/4
		}
		dst.SetColored(eyeX, r.Y, '•', core.ColorWhite)
	}

	if p.Boosted() {
		trail := r.X - 1
		if !p.FacingRight {
			trail = r.Right()
		}
		dst.SetColored(trail, r.Y+r.H/2, SpeedBoxChar, ColorSpeedBox)
	}
}

// burgerLayer returns the glyph and colour of one burger row, top to bottom:
// bun, lettuce, cheese, patty, bun.
func burgerLayer(row, height int, c SkinColors) (rune, core.Color) {
	switch {
	case height == 1:
		return PattyChar, c.Patty
	case row == 0 || row == height-1:
		return BunChar, c.Bun
	}
	switch (row - 1) % 3 {
	case 0:
		return LettuceChar, c.Lettuce
	case 1:
		return CheeseChar, c.Cheese
	default:
		return PattyChar, c.Patty
	}
}

// drawHUD draws score, clock, round, HP bar and boost countdown.
func drawHUD(dst *core.Screen, snap *Snapshot) {
	w := dst.Width()

	score := fmt.Sprintf(" SCORE: %d ", snap.Score)
	dst.DrawTextColored(1, 0, score, core.ColorWhite)

	dst.DrawTextCentered(0, " "+clock(snap.TimeLeft)+" ", core.ColorWhite)

	round := fmt.Sprintf(" ROUND %d/%d ", snap.Round, snap.TotalRounds)
	dst.DrawTextColored(w-len(round)-1, 0, round, core.ColorWhite)

	hpColor := core.ColorGreen
	if snap.Player.HP < LowHP {
		hpColor = core.ColorRed
	}
	dst.DrawTextColored(1, 1, " HP ", core.ColorWhite)
	dst.DrawTextColored(5, 1, hpBar(snap.Player.HP, snap.Player.MaxHP, hpBarWidth), hpColor)

	if snap.Player.Boosted() {
		dst.DrawTextColored(7+hpBarWidth, 1, fmt.Sprintf("SPEED: %d", snap.BoostSeconds()), ColorSpeedBox)
	}
}

// hpBar renders hp/maxHP as a fixed-width bar.
func hpBar(hp, maxHP float64, width int) string {
	filled := 0
	if maxHP > 0 {
		filled = core.Clamp(int(math.Ceil(hp/maxHP*float64(width))), 0, width)
	}
	return strings.Repeat(string(HPFullChar), filled) + strings.Repeat(string(HPEmptyChar), width-filled)
}

// Overlay returns the panel title and text lines for the snapshot's state.
// PLAYING has no panel.
func Overlay(snap *Snapshot) (title string, lines []string, ok bool) {
	switch snap.State {
	case StateMenu:
		return "BURGER MAN", []string{
			"Eat the humans. Dodge the bullets.",
			fmt.Sprintf("Survive %d rounds.", snap.TotalRounds),
			"",
			"←/→ move   ↑/Space jump   K skins",
			"Enter: start   Q: quit",
		}, true
	case StateShop:
		lines = []string{
			fmt.Sprintf("Round %d cleared", snap.Round),
			fmt.Sprintf("Score: %d", snap.Score),
			"",
		}
		if snap.NextSkin == nil {
			lines = append(lines, "All skins owned")
		} else {
			lines = append(lines, fmt.Sprintf("Next: %s for %d", snap.NextSkin.Name, snap.NextSkinCost))
			if !snap.CanBuy() {
				lines = append(lines, "Not enough points")
			}
		}
		lines = append(lines, "", "B: buy   K: skins   Enter: next round")
		return "SHOP", lines, true
	case StateSkins:
		lines = make([]string, 0, len(snap.Owned)+2)
		for _, sk := range snap.OwnedSkins {
			marker := "  "
			if sk.ID == snap.Skin.ID {
				marker = "▶ "
			}
			lines = append(lines, fmt.Sprintf("%s      %s", marker, sk.Name))
		}
		lines = append(lines, "", "←/→ select   K: back")
		return "SKINS", lines, true
	case StateVictory:
		return "VICTORY!", []string{
			fmt.Sprintf("All %d rounds cleared", snap.TotalRounds),
			fmt.Sprintf("Final score: %d", snap.Score),
			fmt.Sprintf("Skins owned: %d", len(snap.Owned)),
			"",
			"R: play again   Q: quit",
		}, true
	case StateGameOver:
		return "GAME OVER", []string{
			fmt.Sprintf("Score: %d   Round: %d", snap.Score, snap.Round),
			"",
			"Enter: retry round   Q: quit",
		}, true
	}
	return "", nil, false
}

// drawOverlay draws the panel for every state except PLAYING.
func drawOverlay(dst *core.Screen, snap *Snapshot) {
	title, lines, ok := Overlay(snap)
	if !ok {
		return
	}
	box := drawPanel(dst, title, lines)
	if snap.State == StateSkins {
		drawSwatches(dst, box, snap)
	}
}

// drawSwatches puts a colour swatch in front of every owned skin.
func drawSwatches(dst *core.Screen, box core.Rect, snap *Snapshot) {
	for i, sk := range snap.OwnedSkins {
		y := box.Y + 2 + i
		if y >= box.Bottom()-1 {
			break
		}
		x := box.X + 5
		c := sk.Colors
		for j, col := range []core.Color{c.Bun, c.Lettuce, c.Cheese, c.Patty, c.Seeds} {
			dst.SetColored(x+j, y, BunChar, col)
		}
	}
}

// drawPanel draws a bordered panel in the center of the screen and returns its bounds.
func drawPanel(dst *core.Screen, title string, lines []string) core.Rect {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW = min(boxW+6, w)
	boxH := min(len(lines)+4, h)
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)

	titleX := box.X + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, box.Y+1, title, ColorTitle)

	for i, l := range lines {
		y := box.Y + 2 + i
		if y >= box.Bottom()-1 {
			break
		}
		dst.DrawTextColored(box.X+3, y, l, core.ColorWhite)
	}
	return box
}
