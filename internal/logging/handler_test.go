package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/texchess/pgn2latex/internal/testutil"
)

// logLine runs fn against a fresh logger and decodes the single JSON line it
// produced.
func logLine(t *testing.T, level slog.Leveler, fn func(*slog.Logger)) map[string]any {
	t.Helper()
	var sb strings.Builder
	fn(NewLogger(&sb, level))

	var payload map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &payload); err != nil {
		t.Fatalf("output is not one JSON object: %v\n%s", err, sb.String())
	}
	return payload
}

func TestHandlerBasicRecord(t *testing.T) {
	payload := logLine(t, nil, func(l *slog.Logger) {
		l.Warn("skipping unresolvable move", "game", 3, "ply", 17, "move", "Qh9")
	})

	testutil.AssertEqual(t, payload["level"], "WARN")
	testutil.AssertEqual(t, payload["msg"], "skipping unresolvable move")
	testutil.AssertEqual(t, payload["game"], float64(3))
	testutil.AssertEqual(t, payload["ply"], float64(17))
	testutil.AssertEqual(t, payload["move"], "Qh9")
	if _, ok := payload["time"]; !ok {
		t.Error("payload has no time field")
	}
}

func TestHandlerLevelFilter(t *testing.T) {
	var sb strings.Builder
	logger := NewLogger(&sb, slog.LevelWarn)
	logger.Info("below threshold")
	logger.Debug("also below")
	testutil.AssertEqual(t, sb.Len(), 0)

	logger.Error("kept")
	testutil.AssertTrue(t, sb.Len() > 0, "error record should be written")
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	payload := logLine(t, nil, func(l *slog.Logger) {
		l.With("run", "abc").WithGroup("replay").Info("done", "games", 9)
	})

	testutil.AssertEqual(t, payload["run"], "abc")
	testutil.AssertEqual(t, payload["replay.games"], float64(9))
}

func TestHandlerInlineGroupAttr(t *testing.T) {
	payload := logLine(t, nil, func(l *slog.Logger) {
		l.Info("stats", slog.Group("score", slog.Int("wins", 5), slog.Int("draws", 2)))
	})

	testutil.AssertEqual(t, payload["score.wins"], float64(5))
	testutil.AssertEqual(t, payload["score.draws"], float64(2))
}

func TestHandlerOneLinePerRecord(t *testing.T) {
	var sb strings.Builder
	logger := NewLogger(&sb, nil)
	logger.Info("first")
	logger.Info("second")

	lines := 0
	scanner := bufio.NewScanner(strings.NewReader(sb.String()))
	for scanner.Scan() {
		lines++
	}
	testutil.AssertEqual(t, lines, 2)
}
