// Package uci bridges the UCI protocol to the pdfLaTeX chess engine: it
// answers the cutechess-cli handshake on stdin/stdout and delegates each
// "go" command to a move generator driving the external process.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/texchess/pgn2latex/internal/engine"
)

// NullMove is the UCI reply when no move could be generated.
const NullMove = "0000"

// MoveGenerator produces the engine's next move for a game reached by the
// given coordinate move list from the starting position.
type MoveGenerator interface {
	BestMove(ctx context.Context, moves []string) (string, error)
}

// Session runs one UCI conversation. It keeps the current game's coordinate
// move list and nothing else; position evaluation belongs to the generator.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	gen    MoveGenerator
	logger *slog.Logger

	moves []string
}

// NewSession creates a session reading commands from r and writing responses
// to w. The logger may be nil.
func NewSession(r io.Reader, w io.Writer, gen MoveGenerator, logger *slog.Logger) *Session {
	return &Session{
		in:     bufio.NewScanner(r),
		out:    w,
		gen:    gen,
		logger: logger,
	}
}

// Run processes commands until "quit" or end of input.
func (s *Session) Run(ctx context.Context) error {
	for s.in.Scan() {
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if quit, err := s.handle(ctx, line); quit || err != nil {
			return err
		}
	}
	return s.in.Err()
}

// handle dispatches one command line. It returns true when the session
// should end.
func (s *Session) handle(ctx context.Context, line string) (bool, error) {
	tokens := strings.Fields(line)

	switch tokens[0] {
	case "uci":
		s.send("id name TeX Chess Engine")
		s.send("id author pdfLaTeX")
		s.send("uciok")

	case "isready":
		s.send("readyok")

	case "ucinewgame":
		s.moves = nil

	case "position":
		s.moves = parsePosition(tokens)

	case "go":
		s.send("bestmove " + s.generateMove(ctx))

	case "quit":
		return true, nil
	}

	return false, nil
}

// parsePosition extracts the coordinate move list from a
// "position startpos moves e2e4 ..." command. Only startpos games occur in
// this bridge's matches; anything else resets to an empty move list.
func parsePosition(tokens []string) []string {
	if len(tokens) < 2 || tokens[1] != "startpos" {
		return nil
	}
	for i, token := range tokens {
		if token == "moves" {
			return tokens[i+1:]
		}
	}
	return nil
}

// generateMove asks the generator for a move, falling back to the null move
// on any failure so the match can continue.
func (s *Session) generateMove(ctx context.Context) string {
	if s.logger != nil {
		board := engine.ReplayCoordinateMoves(s.moves)
		s.logger.Debug("generating move",
			"plies", len(s.moves),
			"position", engine.PiecePlacement(board))
	}

	move, err := s.gen.BestMove(ctx, s.moves)
	if err != nil || move == "" {
		if s.logger != nil {
			s.logger.Warn("move generation failed", "error", err)
		}
		return NullMove
	}
	return move
}

func (s *Session) send(msg string) {
	fmt.Fprintln(s.out, msg)
}
