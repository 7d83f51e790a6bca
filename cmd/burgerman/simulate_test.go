package main

import (
	"testing"

	"github.com/vovakirdan/burgerman/internal/config"
	"github.com/vovakirdan/burgerman/internal/core"
	"github.com/vovakirdan/burgerman/internal/games/burger"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultBurgerConfig()
	view := core.Viewport{W: 800, H: 600}

	a := simulate(cfg, 7, view, 600, 60, true)
	b := simulate(cfg, 7, view, 600, 60, true)
	if a != b {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}

	c := simulate(cfg, 8, view, 600, 60, true)
	if a.Hash == c.Hash {
		t.Error("different seeds produced the same hash")
	}
}

func TestSimulateIdle(t *testing.T) {
	res := simulate(config.DefaultBurgerConfig(), 3, core.Viewport{W: 800, H: 600}, 60, 60, false)
	if res.Ticks != 60 {
		t.Errorf("Ticks = %d, want 60", res.Ticks)
	}
	if res.State != burger.StatePlaying || res.Round != 1 {
		t.Errorf("idle run = %s round %d, want PLAYING round 1", res.State, res.Round)
	}
}

func TestBotControls(t *testing.T) {
	player := burger.Player{Box: core.NewBox(400, 500, 40, 40), Grounded: true}
	human := func(x, y float64) burger.Human {
		return burger.Human{Box: core.NewBox(x, y, 20, 40)}
	}

	tests := []struct {
		name   string
		humans []burger.Human
		tick   int
		want   core.Controls
	}{
		{"no humans", nil, 1, core.Controls{}},
		{"chase left", []burger.Human{human(100, 500)}, 1, core.Controls{Left: true}},
		{"chase right", []burger.Human{human(700, 500)}, 1, core.Controls{Right: true}},
		{"nearest wins", []burger.Human{human(100, 500), human(500, 500)}, 1, core.Controls{Right: true}},
		{"target above", []burger.Human{human(700, 300)}, 1, core.Controls{Right: true, Jump: true}},
		{"periodic hop", []burger.Human{human(700, 500)}, botJumpEvery, core.Controls{Right: true, Jump: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &burger.World{Player: player, Humans: tt.humans}
			if got := botControls(w, tt.tick); got != tt.want {
				t.Errorf("botControls() = %+v, want %+v", got, tt.want)
			}
		})
	}

	airborne := &burger.World{Player: player, Humans: []burger.Human{human(700, 300)}}
	airborne.Player.Grounded = false
	if got := botControls(airborne, 1); got.Jump {
		t.Error("bot jumped while airborne")
	}
}
