package errs

import (
	"errors"
	"testing"
)

func TestGameErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *GameError
		want string
	}{
		{
			name: "full context",
			err:  &GameError{Err: ErrUnresolvableMove, GameNum: 3, PlyNum: 17, MoveText: "Qh9"},
			want: `game 3, ply 17, move "Qh9": unresolvable move`,
		},
		{
			name: "game only",
			err:  &GameError{Err: ErrParseFailure, GameNum: 1},
			want: "game 1: parse failure",
		},
		{
			name: "no underlying error",
			err:  &GameError{GameNum: 2, PlyNum: 5},
			want: "game 2, ply 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGameErrorUnwrap(t *testing.T) {
	err := &GameError{Err: ErrUnresolvableMove, GameNum: 1, PlyNum: 4, MoveText: "Nf9"}

	if !errors.Is(err, ErrUnresolvableMove) {
		t.Error("errors.Is should find the sentinel through GameError")
	}

	var gameErr *GameError
	wrapped := Wrap(err, "replaying match")
	if !errors.As(wrapped, &gameErr) {
		t.Fatal("errors.As should find the GameError through Wrap")
	}
	if gameErr.PlyNum != 4 {
		t.Errorf("PlyNum = %d, want 4", gameErr.PlyNum)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

func TestWrapfFormatsContext(t *testing.T) {
	err := Wrapf(ErrInvalidFEN, "reading tag of game %d", 9)
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is should find the sentinel through Wrapf")
	}
	want := "reading tag of game 9: invalid FEN string"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
