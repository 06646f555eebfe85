package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

// Eval is a score in centipawns from the perspective of the side to move.
type Eval int32

// 500000 is comfortably outside any reachable material score, but far from
// the int32 edges so that negation is always safe.
const (
	NegInf Eval = -500000
	PosInf Eval = 500000
)

const NoMove dragon.Move = 0

// Iterative deepening never goes past this, even with no other limits set.
const MaxIDDepth = 128

// UseNullMove toggles the null-move reduction.
var UseNullMove = true

// Piece values in centipawns, indexed by dragon.Piece.
var pieceVals = [7]Eval{
	0,   // Nothing
	100, // Pawn
	300, // Knight
	300, // Bishop
	500, // Rook
	900, // Queen
	0,   // King
}

func moveString(m dragon.Move) string {
	if m == NoMove {
		return "0000"
	}
	return m.String()
}
