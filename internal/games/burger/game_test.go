package burger

import (
	"strings"
	"testing"

	"github.com/vovakirdan/burgerman/internal/config"
	"github.com/vovakirdan/burgerman/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(quietConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  40,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  100,
		ScreenH:  40,
		TickRate: 60,
		Seed:     12345,
	}

	// Start, then walk back and forth jumping every half second
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%200 < 90:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
		if i%30 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	g1 := New(config.DefaultBurgerConfig())
	g1.Reset(cfg)
	g2 := New(config.DefaultBurgerConfig())
	g2.Reset(cfg)

	for i, in := range inputs {
		r1 := g1.Step(in)
		r2 := g2.Step(in.Clone())
		if r1.State != r2.State {
			t.Fatalf("tick %d: states differ %+v vs %+v", i, r1.State, r2.State)
		}
		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if s1.Hash() != s2.Hash() {
			t.Fatalf("tick %d: snapshot hashes differ", i)
		}
	}
}

func TestGameMenuFlow(t *testing.T) {
	g := newTestGame(1)

	if st := g.State(); st.Phase != string(StateMenu) || !st.Paused {
		t.Errorf("initial state = %+v, want paused MENU", st)
	}

	res := g.Step(press(core.ActionConfirm))
	if res.State.Phase != string(StatePlaying) {
		t.Fatalf("after confirm phase = %s, want PLAYING", res.State.Phase)
	}
	found := false
	for _, ev := range res.Events {
		if ev == string(CueRoundStart) {
			found = true
		}
	}
	if !found {
		t.Errorf("events %v missing round_start", res.Events)
	}

	// Skins overlay freezes the world
	g.Step(press(core.ActionSkins))
	if g.Session().State != StateSkins {
		t.Fatalf("state = %s, want SKINS", g.Session().State)
	}
	tick := g.Snapshot().Tick
	g.Step(press(core.ActionRight))
	if g.Snapshot().Tick != tick {
		t.Error("world advanced under the skins overlay")
	}
	g.Step(press(core.ActionSkins))
	if g.Session().State != StatePlaying {
		t.Errorf("state = %s, want PLAYING after closing skins", g.Session().State)
	}
}

func TestGameShopFlow(t *testing.T) {
	g := newTestGame(2)
	g.Step(press(core.ActionConfirm))

	s := g.Session()
	s.State = StateShop
	s.Score = 1000

	g.Step(press(core.ActionBuy))
	if len(s.Owned) != 1 {
		t.Error("purchase should be rejected below the price")
	}
	if g.notice != "Not enough points" {
		t.Errorf("notice = %q", g.notice)
	}

	s.Score = 1500
	res := g.Step(press(core.ActionBuy))
	if len(s.Owned) != 2 || s.Selected != 1 {
		t.Errorf("owned=%v selected=%d after purchase", s.Owned, s.Selected)
	}
	if res.State.Score != 0 {
		t.Errorf("score = %d after purchase, want 0", res.State.Score)
	}

	g.Step(press(core.ActionConfirm))
	if s.State != StatePlaying || s.Round != 2 {
		t.Errorf("after next round: state=%s round=%d", s.State, s.Round)
	}
}

func TestGameVictoryRestart(t *testing.T) {
	g := newTestGame(3)
	g.Step(press(core.ActionConfirm))
	s := g.Session()
	s.State = StateVictory
	s.Score = 4200

	if st := g.State(); !st.GameOver {
		t.Error("victory should report a finished run")
	}

	g.Step(press(core.ActionRestart))
	if s.State != StateMenu || s.Score != 0 || s.Round != 1 {
		t.Errorf("after restart: %+v", s)
	}
}

func TestGameResize(t *testing.T) {
	g := newTestGame(4)
	g.Step(press(core.ActionConfirm))
	g.Resize(120, 50)

	view := g.Snapshot().View
	if view.W != 120*DefaultCellWidth || view.H != 50*DefaultCellHeight {
		t.Errorf("view after resize = %+v", view)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(5)
	screen := core.NewScreen(100, 40)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "BURGER MAN") {
		t.Error("menu should show the title")
	}

	g.Step(press(core.ActionConfirm))
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"SCORE: ", "ROUND 1/33", "2:59", " HP "} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}

	// Ground row
	if !strings.Contains(screen.Row(39), string(GroundChar)) {
		t.Error("bottom row should show the ground")
	}

	g.Session().State = StateGameOver
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := newTestGame(6)
	g.Render(core.NewScreen(0, 0))
}

func TestHPBar(t *testing.T) {
	tests := []struct {
		hp, max float64
		want    string
	}{
		{100, 100, "██████████"},
		{50, 100, "█████░░░░░"},
		{1, 100, "█░░░░░░░░░"},
		{0, 100, "░░░░░░░░░░"},
		{10, 0, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := hpBar(tt.hp, tt.max, 10); got != tt.want {
			t.Errorf("hpBar(%v, %v) = %q, want %q", tt.hp, tt.max, got, tt.want)
		}
	}
}

func TestBurgerLayers(t *testing.T) {
	c := classicSkin.Colors
	if ch, col := burgerLayer(0, 3, c); ch != BunChar || col != c.Bun {
		t.Errorf("top row = %c %s, want bun", ch, col)
	}
	if ch, col := burgerLayer(1, 3, c); ch != LettuceChar || col != c.Lettuce {
		t.Errorf("middle row = %c %s, want lettuce", ch, col)
	}
	if ch, _ := burgerLayer(2, 3, c); ch != BunChar {
		t.Errorf("bottom row = %c, want bun", ch)
	}
	if ch, _ := burgerLayer(0, 1, c); ch != PattyChar {
		t.Errorf("single row = %c, want patty", ch)
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		state State
		title string
		ok    bool
	}{
		{StateMenu, "BURGER MAN", true},
		{StatePlaying, "", false},
		{StateShop, "SHOP", true},
		{StateSkins, "SKINS", true},
		{StateVictory, "VICTORY!", true},
		{StateGameOver, "GAME OVER", true},
	}

	g := newTestGame(1)
	for _, tt := range tests {
		snap := g.Snapshot()
		snap.State = tt.state
		title, lines, ok := Overlay(&snap)
		if title != tt.title || ok != tt.ok {
			t.Errorf("Overlay(%s) = %q, %v; want %q, %v", tt.state, title, ok, tt.title, tt.ok)
		}
		if ok && len(lines) == 0 {
			t.Errorf("Overlay(%s) has no lines", tt.state)
		}
	}

	// The wardrobe lists skins by name
	snap := g.Snapshot()
	snap.State = StateSkins
	_, lines, _ := Overlay(&snap)
	if !strings.Contains(lines[0], snap.Skin.Name) || !strings.Contains(lines[0], "▶") {
		t.Errorf("first wardrobe line = %q, want selected %q", lines[0], snap.Skin.Name)
	}
}
