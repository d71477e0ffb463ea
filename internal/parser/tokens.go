// Package parser provides PGN lexing and parsing. It produces games whose
// move lists are clean SAN token streams: move numbers, comments, variations,
// annotations, and result markers are recognized and stripped here so the
// replay core never sees them.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	MoveToken
	MoveNumber
	CommentToken
	NAGToken
	RAVStart
	RAVEnd
	TerminatingResult
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	MoveToken:         "MOVE",
	MoveNumber:        "MOVE_NUMBER",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one lexical unit of PGN input.
type Token struct {
	Type TokenType

	// Text is the raw token text (move text, comment body, result, ...).
	Text string

	// Name and Value are set for tag tokens, e.g. [White "Garry"].
	Name  string
	Value string
}

// isResult reports whether s is a PGN game termination marker.
func isResult(s string) bool {
	switch s {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}
