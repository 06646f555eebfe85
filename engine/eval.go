// Static evaluation: material plus piece-square tables, from the side to
// move's perspective.

package engine

import (
	"math/bits"

	dragon "github.com/dylhunn/dragontoothmg"
)

// Piece-square tables from White's point of view, a1 = index 0.
// Stolen from SunFish (tables inverted to reflect dragon pos ordering).
var pawnPosVals = [64]int8{
	0, 0, 0, 0, 0, 0, 0, 0,
	-31, 8, -7, -37, -36, -14, 3, -31,
	-22, 9, 5, -11, -10, -2, 3, -19,
	-26, 3, 10, 9, 6, 1, 0, -23,
	-17, 16, -2, 15, 14, 0, 15, -13,
	7, 29, 21, 44, 40, 31, 44, 7,
	78, 83, 86, 73, 102, 82, 85, 90,
	0, 0, 0, 0, 0, 0, 0, 0}

var knightPosVals = [64]int8{
	-74, -23, -26, -24, -19, -35, -22, -69,
	-23, -15, 2, 0, 2, 0, -23, -20,
	-18, 10, 13, 22, 18, 15, 11, -14,
	-1, 5, 31, 21, 22, 35, 2, 0,
	24, 24, 45, 37, 33, 41, 25, 17,
	10, 67, 1, 74, 73, 27, 62, -2,
	-3, -6, 100, -36, 4, 62, -4, -14,
	-66, -53, -75, -75, -10, -55, -58, -70}

var bishopPosVals = [64]int8{
	-7, 2, -15, -12, -14, -15, -10, -10,
	19, 20, 11, 6, 7, 6, 20, 16,
	14, 25, 24, 15, 8, 25, 20, 15,
	13, 10, 17, 23, 17, 16, 0, 7,
	25, 17, 20, 34, 26, 25, 15, 10,
	-9, 39, -32, 41, 52, -10, 28, -14,
	-11, 20, 35, -42, -39, 31, 2, -22,
	-59, -78, -82, -76, -23, -107, -37, -50}

var rookPosVals = [64]int8{
	-30, -24, -18, 5, -2, -18, -31, -32,
	-53, -38, -31, -26, -29, -43, -44, -53,
	-42, -28, -42, -25, -25, -35, -26, -46,
	-28, -35, -16, -21, -13, -29, -46, -30,
	0, 5, 16, 13, 18, -4, -9, -6,
	19, 35, 28, 33, 45, 27, 25, 15,
	55, 29, 56, 67, 55, 62, 34, 60,
	35, 29, 33, 4, 37, 33, 56, 50}

var queenPosVals = [64]int8{
	-39, -30, -31, -13, -31, -36, -34, -42,
	-36, -18, 0, -19, -15, -15, -21, -38,
	-30, -6, -13, -11, -16, -11, -16, -27,
	-14, -15, -2, -5, -1, -10, -20, -22,
	1, -16, 22, 17, 25, 20, -13, -6,
	-2, 43, 32, 60, 72, 63, 43, 2,
	14, 32, 60, -10, 20, 76, 57, 24,
	6, 1, -8, -104, 69, 24, 88, 26}

var kingPosVals = [64]int8{
	17, 30, -3, -14, 6, -1, 40, 18,
	-4, 3, -14, -50, -57, -18, 13, 4,
	-47, -42, -43, -79, -64, -32, -29, -32,
	-55, -43, -52, -28, -51, -47, -8, -50,
	-55, 50, 11, -4, -19, 13, 0, -49,
	-62, 12, -57, 44, -67, 28, 37, -31,
	-32, 10, 55, 56, 56, 55, 10, 3,
	4, 54, 47, -99, -99, 60, 83, -62}

// Evaluate returns the static score of the position for the side to move.
func Evaluate(b *dragon.Board) Eval {
	score := sideEval(&b.White, false) - sideEval(&b.Black, true)
	if !b.Wtomove {
		score = -score
	}
	return score
}

func sideEval(bbs *dragon.Bitboards, flip bool) Eval {
	var ev Eval
	ev += pieceTypeEval(bbs.Pawns, pieceVals[dragon.Pawn], &pawnPosVals, flip)
	ev += pieceTypeEval(bbs.Knights, pieceVals[dragon.Knight], &knightPosVals, flip)
	ev += pieceTypeEval(bbs.Bishops, pieceVals[dragon.Bishop], &bishopPosVals, flip)
	ev += pieceTypeEval(bbs.Rooks, pieceVals[dragon.Rook], &rookPosVals, flip)
	ev += pieceTypeEval(bbs.Queens, pieceVals[dragon.Queen], &queenPosVals, flip)
	ev += pieceTypeEval(bbs.Kings, pieceVals[dragon.King], &kingPosVals, flip)
	return ev
}

func pieceTypeEval(pieces uint64, val Eval, posVals *[64]int8, flip bool) Eval {
	var ev Eval
	for bb := pieces; bb != 0; bb &= bb - 1 {
		sq := uint8(bits.TrailingZeros64(bb))
		if flip {
			sq ^= 56
		}
		ev += val + Eval(posVals[sq])
	}
	return ev
}

// pieceAt returns the piece type one side has on the square, or Nothing.
func pieceAt(bbs *dragon.Bitboards, sq uint8) dragon.Piece {
	bit := uint64(1) << sq
	switch {
	case bbs.Pawns&bit != 0:
		return dragon.Pawn
	case bbs.Knights&bit != 0:
		return dragon.Knight
	case bbs.Bishops&bit != 0:
		return dragon.Bishop
	case bbs.Rooks&bit != 0:
		return dragon.Rook
	case bbs.Queens&bit != 0:
		return dragon.Queen
	case bbs.Kings&bit != 0:
		return dragon.King
	}
	return dragon.Nothing
}

func sideBitboards(b *dragon.Board) (us, them *dragon.Bitboards) {
	if b.Wtomove {
		return &b.White, &b.Black
	}
	return &b.Black, &b.White
}

// CaptureValue is the material won by the capture itself, before any
// recapture: the victim's value, plus the promotion upgrade if the move
// promotes. An en-passant victim is a pawn even though the target square
// is empty.
func CaptureValue(b *dragon.Board, m dragon.Move) Eval {
	us, them := sideBitboards(b)
	victim := pieceAt(them, m.To())
	val := pieceVals[victim]
	if victim == dragon.Nothing &&
		pieceAt(us, m.From()) == dragon.Pawn && m.From()%8 != m.To()%8 {
		val = pieceVals[dragon.Pawn]
	}
	if promo := m.Promote(); promo != dragon.Nothing {
		val += pieceVals[promo] - pieceVals[dragon.Pawn]
	}
	return val
}

// MvvLva scores a capture for ordering as the capture value minus the
// attacker's value, so among equal victims the cheaper attacker scores
// higher. Negative means the attacker is worth more than its victim,
// which is what triggers the lazy SEE pass.
func MvvLva(b *dragon.Board, m dragon.Move) Eval {
	us, _ := sideBitboards(b)
	return CaptureValue(b, m) - pieceVals[pieceAt(us, m.From())]
}
