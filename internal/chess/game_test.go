package chess

import "testing"

func TestGameTags(t *testing.T) {
	g := NewGame()
	if g.HasTag("Event") {
		t.Error("fresh game should have no tags")
	}

	g.SetTag("Event", "Assessment Match")
	if !g.HasTag("Event") || g.GetTag("Event") != "Assessment Match" {
		t.Errorf("GetTag(Event) = %q", g.GetTag("Event"))
	}
	if g.Event() != "Assessment Match" {
		t.Errorf("Event() = %q", g.Event())
	}

	// SetTag on a zero-value game allocates the map.
	var zero Game
	zero.SetTag("Result", "1-0")
	if zero.GetTag("Result") != "1-0" {
		t.Errorf("GetTag(Result) = %q", zero.GetTag("Result"))
	}
}

func TestGamePlayerDefaults(t *testing.T) {
	g := NewGame()
	if g.White() != "?" || g.Black() != "?" {
		t.Errorf("unknown players = %q, %q, want ?, ?", g.White(), g.Black())
	}
	if g.Result() != "*" {
		t.Errorf("unknown result = %q, want *", g.Result())
	}

	g.SetTag("White", "TeX Chess Engine")
	g.SetTag("Black", "Stockfish")
	g.SetTag("Result", "1-0")
	if g.White() != "TeX Chess Engine" || g.Black() != "Stockfish" || g.Result() != "1-0" {
		t.Errorf("players = %q, %q, %q", g.White(), g.Black(), g.Result())
	}
}

func TestGamePlyCount(t *testing.T) {
	g := NewGame()
	if g.PlyCount() != 0 {
		t.Errorf("PlyCount() = %d, want 0", g.PlyCount())
	}
	g.Moves = []string{"e4", "e5", "Nf3"}
	if g.PlyCount() != 3 {
		t.Errorf("PlyCount() = %d, want 3", g.PlyCount())
	}
}
