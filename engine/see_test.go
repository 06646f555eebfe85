package engine

import (
	"testing"

	dragon "github.com/dylhunn/dragontoothmg"
)

func seeResult(t *testing.T, fen, uci string) Eval {
	t.Helper()
	b := dragon.ParseFen(fen)
	return See(&b, findMove(t, &b, uci))
}

func TestSeeUndefendedPawn(t *testing.T) {
	if got := seeResult(t, "1k6/8/8/3p4/4P3/8/8/1K6 w - - 0 1", "e4d5"); got != 100 {
		t.Errorf("SEE of pawn takes free pawn is %d, expected 100", got)
	}
}

func TestSeeEqualTrade(t *testing.T) {
	// exd5 cxd5: win a pawn, lose a pawn.
	if got := seeResult(t, "1k6/8/2p5/3p4/4P3/8/8/1K6 w - - 0 1", "e4d5"); got != 0 {
		t.Errorf("SEE of pawn trade is %d, expected 0", got)
	}
}

func TestSeeLosingCapture(t *testing.T) {
	// Rxd5 cxd5 loses the rook for a pawn.
	if got := seeResult(t, "1k6/8/2p5/3p4/3R4/8/8/1K6 w - - 0 1", "d4d5"); got != -400 {
		t.Errorf("SEE of rook takes defended pawn is %d, expected -400", got)
	}
}

func TestSeeXRayRecapture(t *testing.T) {
	// Rxd5 cxd5 Rxd5: the doubled rook behind the first one recaptures,
	// netting two pawns for a rook.
	got := seeResult(t, "1k6/8/2p5/3p4/3R4/3R4/8/1K6 w - - 0 1", "d4d5")
	if want := Eval(100 - 500 + 100); got != want {
		t.Errorf("SEE with x-ray recapture is %d, expected %d", got, want)
	}
}

func TestSeeNonCaptureIsFree(t *testing.T) {
	// Moving to an undefended empty square wins nothing and risks nothing.
	if got := seeResult(t, "1k6/8/8/8/3R4/8/8/1K6 w - - 0 1", "d4d5"); got != 0 {
		t.Errorf("SEE of quiet rook move is %d, expected 0", got)
	}
}
