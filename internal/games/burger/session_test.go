package burger

import (
	"errors"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewSession(t *testing.T) {
	s := NewSession()
	if s.State != StateMenu || s.Round != 1 || s.Score != 0 {
		t.Errorf("NewSession = %+v, want menu at round 1 with no score", s)
	}
	if !s.Owns(0) || len(s.Owned) != 1 {
		t.Errorf("Owned = %v, want [0]", s.Owned)
	}
	if s.NextSkinID() != 1 {
		t.Errorf("NextSkinID = %d, want 1", s.NextSkinID())
	}
}

func TestSkinCost(t *testing.T) {
	s := NewSession()
	tests := []struct {
		owned int
		want  int
	}{
		{1, 1500},
		{2, 2000},
		{10, 6000},
	}
	for _, tt := range tests {
		s.Owned = make([]int, tt.owned)
		if got := s.SkinCost(1000, 500); got != tt.want {
			t.Errorf("SkinCost with %d owned = %d, want %d", tt.owned, got, tt.want)
		}
	}
}

func TestSkinsOverlay(t *testing.T) {
	s := NewSession()
	if err := s.OpenSkins(); !errors.Is(err, ErrWrongState) {
		t.Errorf("OpenSkins from MENU: err = %v, want ErrWrongState", err)
	}

	for _, from := range []State{StatePlaying, StateShop} {
		s.State = from
		if err := s.OpenSkins(); err != nil {
			t.Fatalf("OpenSkins from %s: %v", from, err)
		}
		if s.State != StateSkins || s.SkinsReturnState() != from {
			t.Errorf("overlay state=%s returns to %s, want SKINS returning to %s", s.State, s.SkinsReturnState(), from)
		}
		if err := s.CloseSkins(); err != nil {
			t.Fatal(err)
		}
		if s.State != from {
			t.Errorf("closed overlay in %s, want %s", s.State, from)
		}
	}

	if err := s.CloseSkins(); !errors.Is(err, ErrWrongState) {
		t.Errorf("CloseSkins without overlay: err = %v, want ErrWrongState", err)
	}
}

func TestSelectAndCycleSkins(t *testing.T) {
	s := NewSession()
	s.Owned = []int{0, 1, 2}

	if err := s.SelectSkin(5); !errors.Is(err, ErrSkinNotOwned) {
		t.Errorf("SelectSkin(5): err = %v, want ErrSkinNotOwned", err)
	}
	if err := s.SelectSkin(2); err != nil || s.Selected != 2 {
		t.Errorf("SelectSkin(2): err=%v selected=%d", err, s.Selected)
	}

	s.CycleSkin(1)
	if s.Selected != 0 {
		t.Errorf("cycle forward from last = %d, want wrap to 0", s.Selected)
	}
	s.CycleSkin(-1)
	if s.Selected != 2 {
		t.Errorf("cycle back from first = %d, want wrap to 2", s.Selected)
	}
}

func TestGenerateSkins(t *testing.T) {
	skins := GenerateSkins(33)
	if len(skins) != 33 {
		t.Fatalf("skins = %d, want 33", len(skins))
	}
	if skins[0].Name != "Classic" {
		t.Errorf("skin 0 = %q, want Classic", skins[0].Name)
	}

	seen := make(map[string]bool)
	for i, sk := range skins {
		if sk.ID != i {
			t.Errorf("skin %d has id %d", i, sk.ID)
		}
		if i > 0 && !strings.HasPrefix(sk.Name, "Skin #") {
			t.Errorf("skin %d name = %q", i, sk.Name)
		}
		for _, c := range []string{string(sk.Colors.Bun), string(sk.Colors.Patty), string(sk.Colors.Lettuce), string(sk.Colors.Cheese), string(sk.Colors.Seeds)} {
			if _, err := colorful.Hex(c); err != nil {
				t.Errorf("skin %d colour %q is not hex: %v", i, c, err)
			}
		}
		if seen[string(sk.Colors.Bun)] {
			t.Errorf("skin %d repeats bun colour %s", i, sk.Colors.Bun)
		}
		seen[string(sk.Colors.Bun)] = true
	}

	if GenerateSkins(0) != nil {
		t.Error("GenerateSkins(0) should be empty")
	}
}

func TestSkinByIDFallback(t *testing.T) {
	skins := GenerateSkins(3)
	if got := SkinByID(skins, 2); got.ID != 2 {
		t.Errorf("SkinByID(2) = %d", got.ID)
	}
	for _, id := range []int{-1, 3, 99} {
		if got := SkinByID(skins, id); got.Name != "Classic" {
			t.Errorf("SkinByID(%d) = %q, want Classic", id, got.Name)
		}
	}
}

func TestClockFormat(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{180, "3:00"},
		{179.9, "2:59"},
		{61, "1:01"},
		{0.5, "0:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := clock(tt.seconds); got != tt.want {
			t.Errorf("clock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
