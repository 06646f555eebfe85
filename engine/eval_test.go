package engine

import (
	"testing"

	dragon "github.com/dylhunn/dragontoothmg"
)

func findMove(t *testing.T, b *dragon.Board, uci string) dragon.Move {
	t.Helper()
	for _, m := range b.GenerateLegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not legal in %s", uci, b.ToFen())
	return NoMove
}

func TestEvaluateStartposIsBalanced(t *testing.T) {
	b := dragon.ParseFen(dragon.Startpos)
	if ev := Evaluate(&b); ev != 0 {
		t.Errorf("startpos eval is %d, expected 0", ev)
	}
}

func TestEvaluateSideToMoveRelative(t *testing.T) {
	white := dragon.ParseFen("1k6/8/8/8/8/8/8/QK6 w - - 0 1")
	black := dragon.ParseFen("1k6/8/8/8/8/8/8/QK6 b - - 0 1")

	evWhite := Evaluate(&white)
	evBlack := Evaluate(&black)
	if evWhite <= 0 {
		t.Errorf("eval for the queen-up side is %d, expected > 0", evWhite)
	}
	if evBlack != -evWhite {
		t.Errorf("eval from the other side is %d, expected %d", evBlack, -evWhite)
	}
}

func TestCaptureValue(t *testing.T) {
	b := dragon.ParseFen("1k6/8/2p5/3p4/3R4/8/8/1K6 w - - 0 1")
	m := findMove(t, &b, "d4d5")
	if v := CaptureValue(&b, m); v != 100 {
		t.Errorf("rook takes pawn capture value is %d, expected 100", v)
	}
}

func TestMvvLvaPrefersCheaperAttacker(t *testing.T) {
	// Both a pawn and a rook can take the d5 pawn; the pawn capture must
	// score higher (least valuable attacker wins the tie on victim).
	b := dragon.ParseFen("1k6/8/8/3p2R1/2P5/8/8/1K6 w - - 0 1")
	pawnTakes := MvvLva(&b, findMove(t, &b, "c4d5"))
	rookTakes := MvvLva(&b, findMove(t, &b, "g5d5"))
	if pawnTakes <= rookTakes {
		t.Errorf("pawn capture scores %d, rook capture %d; expected pawn higher", pawnTakes, rookTakes)
	}
	if rookTakes >= 0 {
		t.Errorf("rook takes pawn scores %d, expected negative", rookTakes)
	}
}
