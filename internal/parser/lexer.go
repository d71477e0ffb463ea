package parser

import (
	"bufio"
	"io"
	"strings"
)

// Lexer tokenizes PGN input.
type Lexer struct {
	reader  *bufio.Reader
	lineNum uint
	eof     bool
}

// NewLexer creates a lexer reading PGN text from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader:  bufio.NewReader(r),
		lineNum: 1,
	}
}

// LineNumber returns the current 1-based input line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		c, ok := l.readByte()
		if !ok {
			return &Token{Type: EOFToken}
		}

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c == '[':
			return l.lexTag()
		case c == '{':
			return l.lexComment()
		case c == ';' || c == '%':
			// Rest-of-line comment or escape line.
			l.skipLine()
			continue
		case c == '(':
			return &Token{Type: RAVStart, Text: "("}
		case c == ')':
			return &Token{Type: RAVEnd, Text: ")"}
		case c == '$':
			return &Token{Type: NAGToken, Text: "$" + l.readWhile(isDigit)}
		case c == '*':
			return &Token{Type: TerminatingResult, Text: "*"}
		case c == '.':
			// Stray continuation dots ("...") after a move number.
			continue
		default:
			return l.lexWord(c)
		}
	}
}

// lexTag reads a tag pair after the opening '['. Malformed tags yield an
// error token so the parser can resynchronize.
func (l *Lexer) lexTag() *Token {
	name := l.readWhile(func(c byte) bool {
		return c != ' ' && c != '\t' && c != '"' && c != ']' && c != '\n'
	})
	l.readWhile(func(c byte) bool { return c == ' ' || c == '\t' })

	c, ok := l.readByte()
	if !ok || c != '"' {
		// Tag without a value; consume to the closing bracket.
		if ok && c != ']' {
			l.readWhile(func(c byte) bool { return c != ']' && c != '\n' })
			l.readByte()
		}
		return &Token{Type: ErrorToken, Text: name}
	}

	var value strings.Builder
	for {
		c, ok := l.readByte()
		if !ok || c == '\n' {
			return &Token{Type: ErrorToken, Text: name}
		}
		if c == '\\' {
			if next, ok := l.readByte(); ok {
				value.WriteByte(next)
			}
			continue
		}
		if c == '"' {
			break
		}
		value.WriteByte(c)
	}
	l.readWhile(func(c byte) bool { return c != ']' && c != '\n' })
	l.readByte() // closing ']'

	return &Token{Type: TagToken, Name: name, Value: value.String()}
}

// lexComment reads a brace comment after the opening '{'. PGN brace comments
// do not nest.
func (l *Lexer) lexComment() *Token {
	text := l.readWhile(func(c byte) bool { return c != '}' })
	l.readByte() // closing '}'
	return &Token{Type: CommentToken, Text: text}
}

// lexWord reads a move token, move number, or game result starting with c.
func (l *Lexer) lexWord(first byte) *Token {
	var sb strings.Builder
	sb.WriteByte(first)
	sb.WriteString(l.readWhile(isWordChar))
	word := sb.String()

	switch {
	case isResult(word):
		return &Token{Type: TerminatingResult, Text: word}
	case isMoveNumber(word):
		return &Token{Type: MoveNumber, Text: word}
	default:
		return &Token{Type: MoveToken, Text: word}
	}
}

// readByte reads one byte, tracking line numbers.
func (l *Lexer) readByte() (byte, bool) {
	if l.eof {
		return 0, false
	}
	c, err := l.reader.ReadByte()
	if err != nil {
		l.eof = true
		return 0, false
	}
	if c == '\n' {
		l.lineNum++
	}
	return c, true
}

// unreadByte pushes the last byte back.
func (l *Lexer) unreadByte(c byte) {
	if c == '\n' {
		l.lineNum--
	}
	_ = l.reader.UnreadByte()
}

// readWhile accumulates bytes while pred holds.
func (l *Lexer) readWhile(pred func(byte) bool) string {
	var sb strings.Builder
	for {
		c, ok := l.readByte()
		if !ok {
			break
		}
		if !pred(c) {
			l.unreadByte(c)
			break
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// skipLine consumes the remainder of the current line.
func (l *Lexer) skipLine() {
	l.readWhile(func(c byte) bool { return c != '\n' })
	l.readByte()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWordChar covers everything that may appear inside a move token, move
// number, or result: letters, digits, and SAN punctuation.
func isWordChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '=' || c == '+' || c == '#' || c == '/' || c == 'x':
		return true
	}
	return false
}

// isMoveNumber reports whether word is a bare move number. The trailing dots
// of "1." or "12..." are consumed separately as stray continuation dots.
func isMoveNumber(word string) bool {
	for i := 0; i < len(word); i++ {
		if !isDigit(word[i]) {
			return false
		}
	}
	return len(word) > 0
}
