// Static exchange evaluation: the net material outcome of the capture
// sequence on a square, assuming both sides always recapture with their
// least valuable attacker.

package engine

import (
	"math/bits"

	dragon "github.com/dylhunn/dragontoothmg"
)

const (
	fileABB uint64 = 0x0101010101010101
	fileHBB uint64 = 0x8080808080808080
)

// King value for exchange purposes only: a king "capture" ends the
// sequence decisively.
var seeVals = [7]Eval{0, 100, 300, 300, 500, 900, 20000}

var knightMasks [64]uint64
var kingMasks [64]uint64

func init() {
	knightDeltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for _, d := range knightDeltas {
			f, r := file+d[0], rank+d[1]
			if 0 <= f && f < 8 && 0 <= r && r < 8 {
				knightMasks[sq] |= uint64(1) << (r*8 + f)
			}
		}
		for _, d := range kingDeltas {
			f, r := file+d[0], rank+d[1]
			if 0 <= f && f < 8 && 0 <= r && r < 8 {
				kingMasks[sq] |= uint64(1) << (r*8 + f)
			}
		}
	}
}

// pawnAttackersOf returns the squares from which a pawn of the given color
// attacks the target squares.
func pawnAttackersOf(targets uint64, white bool) uint64 {
	if white {
		return ((targets >> 7) &^ fileABB) | ((targets >> 9) &^ fileHBB)
	}
	return ((targets << 7) &^ fileHBB) | ((targets << 9) &^ fileABB)
}

// attackersTo returns all pieces of both colors attacking sq under the
// given occupancy. Recomputing the slider attacks against a shrinking
// occupancy is what exposes x-ray attackers.
func attackersTo(b *dragon.Board, sq uint8, occ uint64) uint64 {
	target := uint64(1) << sq
	att := knightMasks[sq] & (b.White.Knights | b.Black.Knights)
	att |= kingMasks[sq] & (b.White.Kings | b.Black.Kings)
	att |= pawnAttackersOf(target, true) & b.White.Pawns
	att |= pawnAttackersOf(target, false) & b.Black.Pawns
	rookish := dragon.CalculateRookMoveBitboard(sq, occ)
	bishopish := dragon.CalculateBishopMoveBitboard(sq, occ)
	att |= rookish & (b.White.Rooks | b.Black.Rooks | b.White.Queens | b.Black.Queens)
	att |= bishopish & (b.White.Bishops | b.Black.Bishops | b.White.Queens | b.Black.Queens)
	return att & occ
}

func leastValuableIn(b *dragon.Board, att uint64, white bool) (uint8, dragon.Piece) {
	side := &b.Black
	if white {
		side = &b.White
	}
	for pc := dragon.Pawn; pc <= dragon.King; pc++ {
		if pieces := sidePieces(side, pc) & att; pieces != 0 {
			return uint8(bits.TrailingZeros64(pieces)), pc
		}
	}
	return 0, dragon.Nothing
}

func sidePieces(bbs *dragon.Bitboards, pc dragon.Piece) uint64 {
	switch pc {
	case dragon.Pawn:
		return bbs.Pawns
	case dragon.Knight:
		return bbs.Knights
	case dragon.Bishop:
		return bbs.Bishops
	case dragon.Rook:
		return bbs.Rooks
	case dragon.Queen:
		return bbs.Queens
	case dragon.King:
		return bbs.Kings
	}
	return 0
}

// See runs the swap algorithm for the capture m and returns the net gain
// for the side making it.
func See(b *dragon.Board, m dragon.Move) Eval {
	from, to := m.From(), m.To()
	occ := b.White.All | b.Black.All

	var gain [33]Eval
	d := 0
	gain[0] = CaptureValue(b, m)

	us, _ := sideBitboards(b)
	attackerVal := seeVals[pieceAt(us, from)]
	occ &^= uint64(1) << from
	sideWhite := !b.Wtomove

	for d < len(gain)-1 {
		att := attackersTo(b, to, occ)
		if sideWhite {
			att &= b.White.All
		} else {
			att &= b.Black.All
		}
		if att == 0 {
			break
		}
		d++
		gain[d] = attackerVal - gain[d-1]
		// Neither continuing nor stopping can rescue this branch.
		if gain[d] < 0 && -gain[d-1] < 0 {
			break
		}
		sq, pc := leastValuableIn(b, att, sideWhite)
		attackerVal = seeVals[pc]
		occ &^= uint64(1) << sq
		sideWhite = !sideWhite
	}

	// Negamax the swap list: at each depth the side may stand pat.
	for ; d > 0; d-- {
		if gain[d] > -gain[d-1] {
			gain[d-1] = -gain[d]
		}
	}
	return gain[0]
}
