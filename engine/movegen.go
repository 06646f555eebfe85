// Thin adapters over the board library's move generation. Generation is
// fully legal, which makes mate/stalemate detection a length check and
// reduces the TT-move legality screen to a membership test.

package engine

import (
	dragon "github.com/dylhunn/dragontoothmg"
)

func genMoves(b *dragon.Board) []dragon.Move {
	return b.GenerateLegalMoves()
}

// genCaptures returns only capturing moves, unscored.
func genCaptures(b *dragon.Board) []ScoredMove {
	var ml []ScoredMove
	for _, m := range b.GenerateLegalMoves() {
		if dragon.IsCapture(m, b) {
			ml = append(ml, ScoredMove{Move: m})
		}
	}
	return ml
}

// genQuiets returns only non-capturing moves. Under check these are the
// quiet evasions.
func genQuiets(b *dragon.Board) []dragon.Move {
	var ml []dragon.Move
	for _, m := range b.GenerateLegalMoves() {
		if !dragon.IsCapture(m, b) {
			ml = append(ml, m)
		}
	}
	return ml
}

func isInCheck(b *dragon.Board) bool {
	return b.OurKingInCheck()
}
