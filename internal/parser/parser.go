package parser

import (
	"io"
	"regexp"

	"github.com/texchess/pgn2latex/internal/chess"
)

// sanPattern accepts the SAN shapes a cutechess-cli movetext can contain:
// piece moves with optional disambiguation, pawn pushes and captures with
// optional promotion, and both castling spellings.
var sanPattern = regexp.MustCompile(
	`^(?:[KQRBN][a-h]?[1-8]?x?[a-h][1-8]` +
		`|[a-h]x[a-h][1-8](?:=[QRBN])?` +
		`|[a-h][1-8](?:=[QRBN])?` +
		`|O-O-O|O-O|0-0-0|0-0` +
		`)[+#]?$`)

// Parser parses PGN input into Game values.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
}

// NewParser creates a parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

// nextToken advances to the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// It returns nil when no more games are available.
func (p *Parser) ParseGame() (*chess.Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}
	p.skipToNextGame()

	if p.currentToken.Type == EOFToken {
		return nil, nil
	}

	game := chess.NewGame()
	game.StartLine = p.lexer.LineNumber()

	p.parseTagList(game)
	result := p.parseMoveList(game)
	game.EndLine = p.lexer.LineNumber()

	if result != "" {
		if game.GetTag("Result") == "" || game.GetTag("Result") == "?" {
			game.SetTag("Result", result)
		}
	}

	if len(game.Tags) == 0 && len(game.Moves) == 0 {
		return nil, nil
	}
	return game, nil
}

// ParseAllGames parses every game remaining in the input.
func (p *Parser) ParseAllGames() ([]*chess.Game, error) {
	var games []*chess.Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, MoveNumber:
			return
		default:
			p.nextToken()
		}
	}
}

// parseTagList parses zero or more tag pairs.
func (p *Parser) parseTagList(game *chess.Game) {
	for p.currentToken.Type == TagToken {
		game.SetTag(p.currentToken.Name, p.currentToken.Value)
		p.nextToken()
	}
}

// parseMoveList collects the game's SAN move tokens, dropping comments,
// NAGs, move numbers, and recursive variations. It stops at the terminating
// result, at the next game's tag section, or at end of input, and returns
// the result marker if one was seen.
func (p *Parser) parseMoveList(game *chess.Game) string {
	for {
		switch p.currentToken.Type {
		case MoveToken:
			if sanPattern.MatchString(p.currentToken.Text) {
				game.Moves = append(game.Moves, p.currentToken.Text)
			}
			p.nextToken()

		case MoveNumber, CommentToken, NAGToken, ErrorToken:
			p.nextToken()

		case RAVStart:
			p.skipVariation()

		case TerminatingResult:
			result := p.currentToken.Text
			p.nextToken()
			return result

		default:
			// EOF or the tags of the next game.
			return ""
		}
	}
}

// skipVariation consumes a recursive variation, including nested ones.
func (p *Parser) skipVariation() {
	depth := 0
	for {
		switch p.currentToken.Type {
		case RAVStart:
			depth++
		case RAVEnd:
			depth--
			if depth == 0 {
				p.nextToken()
				return
			}
		case EOFToken:
			return
		}
		p.nextToken()
	}
}
