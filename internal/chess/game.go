package chess

// Game represents one parsed PGN game: its tag pairs and the cleaned move
// token stream (move numbers, comments, and result markers already removed).
type Game struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// SAN move tokens in playing order.
	Moves []string

	// Line numbers of the start and end of the game in the input file.
	StartLine uint
	EndLine   uint
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// White returns the White player name, "?" if unknown.
func (g *Game) White() string {
	return g.tagOr("White", "?")
}

// Black returns the Black player name, "?" if unknown.
func (g *Game) Black() string {
	return g.tagOr("Black", "?")
}

// Result returns the game result, "*" if unknown.
func (g *Game) Result() string {
	return g.tagOr("Result", "*")
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.GetTag("Event")
}

// PlyCount returns the number of move tokens in the game.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

func (g *Game) tagOr(name, fallback string) string {
	if v := g.Tags[name]; v != "" {
		return v
	}
	return fallback
}
