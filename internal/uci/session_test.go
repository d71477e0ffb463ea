package uci

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator records the move lists it was asked about and replies from a
// fixed script.
type stubGenerator struct {
	replies []string
	err     error
	calls   [][]string
}

func (g *stubGenerator) BestMove(_ context.Context, moves []string) (string, error) {
	g.calls = append(g.calls, append([]string(nil), moves...))
	if g.err != nil {
		return "", g.err
	}
	reply := g.replies[len(g.calls)-1]
	return reply, nil
}

func runSession(t *testing.T, gen MoveGenerator, input string) []string {
	t.Helper()
	var out strings.Builder
	session := NewSession(strings.NewReader(input), &out, gen, nil)
	require.NoError(t, session.Run(context.Background()))
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestSessionHandshake(t *testing.T) {
	lines := runSession(t, &stubGenerator{}, "uci\nisready\nquit\n")
	assert.Equal(t, []string{
		"id name TeX Chess Engine",
		"id author pdfLaTeX",
		"uciok",
		"readyok",
	}, lines)
}

func TestSessionGoReturnsBestMove(t *testing.T) {
	gen := &stubGenerator{replies: []string{"e2e4"}}
	input := "position startpos moves d2d4 g8f6\ngo movetime 1000\nquit\n"

	lines := runSession(t, gen, input)
	assert.Equal(t, []string{"bestmove e2e4"}, lines)

	require.Len(t, gen.calls, 1)
	assert.Equal(t, []string{"d2d4", "g8f6"}, gen.calls[0])
}

func TestSessionStartposWithoutMoves(t *testing.T) {
	gen := &stubGenerator{replies: []string{"e2e4"}}
	lines := runSession(t, gen, "position startpos\ngo\nquit\n")

	assert.Equal(t, []string{"bestmove e2e4"}, lines)
	require.Len(t, gen.calls, 1)
	assert.Empty(t, gen.calls[0])
}

func TestSessionUcinewgameResetsMoves(t *testing.T) {
	gen := &stubGenerator{replies: []string{"e2e4", "e2e4"}}
	input := "position startpos moves d2d4\nucinewgame\ngo\nquit\n"

	runSession(t, gen, input)
	require.Len(t, gen.calls, 1)
	assert.Empty(t, gen.calls[0], "ucinewgame should clear the move list")
}

func TestSessionNullMoveOnGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: context.DeadlineExceeded}
	lines := runSession(t, gen, "position startpos moves e2e4\ngo\nquit\n")

	assert.Equal(t, []string{"bestmove " + NullMove}, lines)
}

func TestSessionEndsAtEOF(t *testing.T) {
	// No quit command; the scanner just runs out of input.
	lines := runSession(t, &stubGenerator{}, "isready\n")
	assert.Equal(t, []string{"readyok"}, lines)
}

func TestSessionIgnoresUnknownCommands(t *testing.T) {
	lines := runSession(t, &stubGenerator{}, "setoption name Hash value 64\nisready\nquit\n")
	assert.Equal(t, []string{"readyok"}, lines)
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"position startpos moves e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"position startpos", nil},
		{"position startpos moves", []string{}},
		{"position fen 8/8/8/8/8/8/8/8 w - - 0 1", nil},
	}
	for _, tt := range tests {
		got := parsePosition(strings.Fields(tt.line))
		assert.Equal(t, tt.want, got, "line %q", tt.line)
	}
}
