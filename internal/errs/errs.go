// Package errs provides sentinel errors and error types for the pgn2latex
// tool. It defines the common error conditions and a structured wrapper that
// preserves game context while allowing inspection with errors.Is() and
// errors.As().
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrUnresolvableMove indicates a SAN token for which no piece on the
	// board satisfies the type, disambiguation, and reachability constraints.
	// It is the only recoverable failure the replay core raises.
	ErrUnresolvableMove = errors.New("unresolvable move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates a general PGN parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrEngineTimeout indicates the external move generator exceeded its
	// execution time budget.
	ErrEngineTimeout = errors.New("engine time budget exceeded")

	// ErrNoEngineMove indicates the external move generator produced no move.
	ErrNoEngineMove = errors.New("no engine move produced")
)

// GameError wraps errors with game context: 1-based game number, ply number,
// and the offending move text. It supports unwrapping via errors.Is() and
// errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameNum  int    // 1-based game number in the file
	PlyNum   int    // Ply number where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	parts := []string{fmt.Sprintf("game %d", e.GameNum)}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
