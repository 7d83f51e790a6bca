package scene

import (
	"image/color"
	"strings"
	"testing"

	"github.com/vovakirdan/burgerman/internal/config"
	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
)

func newPixelGame(t *testing.T) *burger.Game {
	t.Helper()
	g := burger.New(config.DefaultBurgerConfig())
	g.SetCellSize(1, 1)
	g.Reset(core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 3})
	return g
}

func hasLabel(f Frame, text string) bool {
	for _, l := range f.Labels {
		if strings.Contains(l.Text, text) {
			return true
		}
	}
	return false
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		in   core.Color
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{"#10b981", color.RGBA{0x10, 0xb9, 0x81, 255}},
		{core.ColorDefault, color.RGBA{255, 255, 255, 255}},
		{"not a colour", color.RGBA{255, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := RGBA(tt.in); got != tt.want {
			t.Errorf("RGBA(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFadePremultiplies(t *testing.T) {
	got := fade(color.RGBA{200, 100, 50, 255}, 0.5)
	want := color.RGBA{100, 50, 25, 127}
	if got != want {
		t.Errorf("fade = %v, want %v", got, want)
	}
	if got := fade(color.RGBA{200, 100, 50, 255}, 2); got.A != 255 {
		t.Errorf("alpha above 1 not clamped: %v", got)
	}
}

func TestBuildEmptyView(t *testing.T) {
	snap := burger.Snapshot{}
	f := Build(&snap)
	if len(f.Rects) != 0 || len(f.Labels) != 0 {
		t.Errorf("empty view drew %d rects and %d labels", len(f.Rects), len(f.Labels))
	}
}

func TestBuildMenu(t *testing.T) {
	g := newPixelGame(t)
	snap := g.Snapshot()
	f := Build(&snap)

	sky := f.Rects[0]
	if sky.X != 0 || sky.Y != 0 || sky.W != 800 || sky.H != 600 {
		t.Errorf("first rect = %+v, want the full sky", sky)
	}
	if !hasLabel(f, "BURGER MAN") {
		t.Error("menu panel title missing")
	}
	if hasLabel(f, "SCORE:") {
		t.Error("HUD drawn in the menu")
	}
	for _, l := range f.Labels {
		for _, r := range l.Text {
			if r > 127 {
				t.Fatalf("label %q has non-ASCII rune %q", l.Text, r)
			}
		}
	}
}

func TestBuildPlaying(t *testing.T) {
	g := newPixelGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)

	snap := g.Snapshot()
	f := Build(&snap)
	for _, want := range []string{"SCORE: 0", "ROUND 1/33", snap.ClockText()} {
		if !hasLabel(f, want) {
			t.Errorf("HUD label %q missing", want)
		}
	}
	if hasLabel(f, "SPEED:") {
		t.Error("boost shown without a speed box")
	}

	// The ground platform is drawn as grass over dirt
	grass := RGBA("#10b981")
	found := false
	for _, r := range f.Rects {
		if r.Color == grass && r.W == 800 && r.H == 4 {
			found = true
		}
	}
	if !found {
		t.Error("ground platform not drawn")
	}
}

func TestBuildBoostAndSkins(t *testing.T) {
	g := newPixelGame(t)
	snap := g.Snapshot()
	snap.State = burger.StatePlaying
	snap.Player.SpeedTimer = 4.2
	f := Build(&snap)
	if !hasLabel(f, "SPEED: 5") {
		t.Error("boost countdown missing")
	}

	snap.State = burger.StateSkins
	f = Build(&snap)
	if !hasLabel(f, "SKINS") || !hasLabel(f, snap.Skin.Name) {
		t.Error("wardrobe panel missing")
	}
	bun := RGBA(snap.Skin.Colors.Bun)
	swatch := false
	for _, r := range f.Rects {
		if r.Color == bun && r.W == CharWidth-1 {
			swatch = true
		}
	}
	if !swatch {
		t.Error("skin swatch missing")
	}
}

func TestBuildLowHPBlink(t *testing.T) {
	g := newPixelGame(t)
	snap := g.Snapshot()
	snap.State = burger.StatePlaying
	snap.Player.HP = 10
	snap.Platforms = nil
	snap.Humans = nil
	snap.Items = nil

	bun := RGBA(snap.Skin.Colors.Bun)
	opaque := func(f Frame) bool {
		for _, r := range f.Rects {
			if r.Color == bun {
				return true
			}
		}
		return false
	}

	snap.Clock = 0 // Visible phase
	if !opaque(Build(&snap)) {
		t.Error("burger faded in the visible phase")
	}
	snap.Clock = 0.125 // Blink phase
	if opaque(Build(&snap)) {
		t.Error("burger not faded in the blink phase")
	}
}
