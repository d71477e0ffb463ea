package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/texchess/pgn2latex/internal/errs"
)

// DefaultBudget is the execution time allowed for one pdflatex run.
const DefaultBudget = 30 * time.Second

const (
	movesFileName  = "uci-moves.tex"
	outputFileName = "engine-output.dat"
	outputPrefix   = "ENGINEMOVE:"
)

// TeXGenerator generates moves by compiling the TeX chess engine. Each call
// writes the replay macro file, runs pdflatex in the work directory under a
// time budget, and reads the chosen move from the engine output file.
type TeXGenerator struct {
	// EngineDir holds chess-engine.tex and the driver document.
	EngineDir string

	// WorkDir is where pdflatex runs and the data files live.
	WorkDir string

	// TexFile is the driver document to compile.
	TexFile string

	// Budget bounds one compilation. Zero means DefaultBudget.
	Budget time.Duration
}

// NewTeXGenerator creates a generator for the engine installed in engineDir.
func NewTeXGenerator(engineDir string) *TeXGenerator {
	return &TeXGenerator{
		EngineDir: engineDir,
		WorkDir:   filepath.Join(engineDir, ".tex-uci-work"),
		TexFile:   filepath.Join(engineDir, "chess-uci.tex"),
		Budget:    DefaultBudget,
	}
}

// BestMove implements MoveGenerator. It returns ErrEngineTimeout when the
// budget is exceeded and ErrNoEngineMove when the engine declines to move.
func (g *TeXGenerator) BestMove(ctx context.Context, moves []string) (string, error) {
	if err := os.MkdirAll(g.WorkDir, 0o755); err != nil {
		return "", err
	}
	if err := g.writeMovesFile(moves); err != nil {
		return "", err
	}

	budget := g.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	runCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "pdflatex", "-interaction=nonstopmode", g.TexFile)
	cmd.Dir = g.WorkDir
	cmd.Env = append(os.Environ(), "TEXINPUTS="+g.EngineDir+string(os.PathListSeparator)+os.Getenv("TEXINPUTS"))

	// pdflatex exits non-zero on recoverable typesetting complaints; only
	// the deadline matters here, the output file decides success.
	_ = cmd.Run()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("pdflatex after %v: %w", budget, errs.ErrEngineTimeout)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return g.readEngineMove()
}

// writeMovesFile writes one \replaymove line per prior move.
func (g *TeXGenerator) writeMovesFile(moves []string) error {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString("\\replaymove{" + m + "}\n")
	}
	return os.WriteFile(filepath.Join(g.WorkDir, movesFileName), []byte(sb.String()), 0o644)
}

// readEngineMove scans the engine output file for the ENGINEMOVE line.
func (g *TeXGenerator) readEngineMove() (string, error) {
	f, err := os.Open(filepath.Join(g.WorkDir, outputFileName))
	if err != nil {
		return "", fmt.Errorf("engine output missing: %w", errs.ErrNoEngineMove)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, outputPrefix) {
			continue
		}
		move := strings.TrimPrefix(line, outputPrefix)
		if move == "" || move == "none" {
			return "", errs.ErrNoEngineMove
		}
		return move, nil
	}
	return "", errs.ErrNoEngineMove
}
