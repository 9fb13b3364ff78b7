package chess

// promotionTypes lists the four pieces a pawn may promote to, in the order
// moves are generated.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func backRankFor(side Color) Rank {
	if side == Black {
		return Rank1
	}
	return Rank8
}

func startRankFor(side Color) Rank {
	if side == Black {
		return Rank7
	}
	return Rank2
}

func pawnPushDelta(side Color) int {
	if side == Black {
		return -8
	}
	return 8
}

// appendPawnMoves appends every pseudo-legal move (including promotions and
// the en-passant capture) for the pawn on from.
func appendPawnMoves(moves []Move, us Color, from Square, occupied, enemyOcc Bitboard, epDestination Square) []Move {
	back := backRankFor(us)
	delta := pawnPushDelta(us)

	appendTo := func(to Square) []Move {
		if to.Rank() == back {
			for _, pt := range promotionTypes {
				moves = append(moves, NewMove(from, to, pt))
			}
		} else {
			moves = append(moves, NewMove(from, to, NoPieceType))
		}
		return moves
	}

	single := Square(int(from) + delta)
	if single >= A1 && single <= H8 && !occupied.Occupied(single) {
		moves = appendTo(single)
		if from.Rank() == startRankFor(us) {
			double := Square(int(from) + 2*delta)
			if !occupied.Occupied(double) {
				moves = append(moves, NewMove(from, double, NoPieceType))
			}
		}
	}

	captures := GetPawnAttacks(us, from) & enemyOcc
	for _, to := range captures.Scan() {
		moves = appendTo(to)
	}

	if epDestination != NoSquare && GetPawnAttacks(us, from).Occupied(epDestination) {
		moves = append(moves, NewMove(from, epDestination, NoPieceType))
	}

	return moves
}

// PseudoLegalMoves returns every move the side to move could play ignoring
// whether it leaves its own king in check, plus every castle whose rights
// are held and path is empty (castle path safety is left to the Legality
// Filter). Ordering is piece-type then origin square, ascending.
func (p *Position) PseudoLegalMoves() []Move {
	us := p.sideToMove
	them := us.Other()
	occupied := p.BBAll()
	ownOcc := p.BBOfSide(us)
	enemyOcc := p.BBOfSide(them)

	moves := make([]Move, 0, 48)

	for _, sq := range p.pieceBB[NewPiece(Pawn, us)].Scan() {
		moves = appendPawnMoves(moves, us, sq, occupied, enemyOcc, p.epDestination)
	}
	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		for _, sq := range p.pieceBB[NewPiece(pt, us)].Scan() {
			targets := AttacksFrom(pt, us, sq, occupied) &^ ownOcc
			for _, to := range targets.Scan() {
				moves = append(moves, NewMove(sq, to, NoPieceType))
			}
		}
	}
	if kingSq := p.KingSquare(us); kingSq != NoSquare {
		targets := GetKingAttacks(kingSq) &^ ownOcc
		for _, to := range targets.Scan() {
			moves = append(moves, NewMove(kingSq, to, NoPieceType))
		}
		idx := sideOrdinal(us)
		if p.CastleRightsFor(us).Has(CastleKingSide) && occupied&p.ctx.KingSide[idx].EmptySquares == EmptyBB {
			moves = append(moves, NewMove(kingSq, p.ctx.KingSide[idx].KingTo, NoPieceType))
		}
		if p.CastleRightsFor(us).Has(CastleQueenSide) && occupied&p.ctx.QueenSide[idx].EmptySquares == EmptyBB {
			moves = append(moves, NewMove(kingSq, p.ctx.QueenSide[idx].KingTo, NoPieceType))
		}
	}

	return moves
}

// PseudoLegalCaptures returns the subset of PseudoLegalMoves that capture an
// enemy piece, including en-passant.
func (p *Position) PseudoLegalCaptures() []Move {
	all := p.PseudoLegalMoves()
	out := make([]Move, 0, len(all))
	for _, m := range all {
		if p.pieceAt[m.To()] != NoPiece {
			out = append(out, m)
			continue
		}
		if p.epDestination != NoSquare && m.To() == p.epDestination && p.pieceAt[m.From()].Type() == Pawn {
			out = append(out, m)
		}
	}
	return out
}

// LegalMoves returns every move the side to move may legally play: every
// pseudo-legal non-castle move that passes the Legality Filter, plus every
// castle that passes IsCastleLegal.
func (p *Position) LegalMoves() []Move {
	us := p.sideToMove
	pseudo := p.PseudoLegalMoves()
	out := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		moving := p.pieceAt[m.From()]
		if moving.Type() == King {
			if isCastle, kingSide := p.castleIntent(us, m.To()); isCastle {
				if p.IsCastleLegal(us, kingSide) {
					out = append(out, m)
				}
				continue
			}
		}
		if p.IsLegal(m) {
			out = append(out, m)
		}
	}
	return out
}

// IsMated reports whether the side to move is in check with no legal move.
func (p *Position) IsMated() bool {
	return p.IsKingAttacked(p.sideToMove) && len(p.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func (p *Position) IsStalemate() bool {
	return !p.IsKingAttacked(p.sideToMove) && len(p.LegalMoves()) == 0
}

// IsInsufficientMaterial reports whether neither side has enough material to
// deliver mate: king-only, king-plus-one-minor, same-color opposite bishops,
// or king-plus-two-knights against a bare king.
func (p *Position) IsInsufficientMaterial() bool {
	heavy := p.pieceBB[WhitePawn] | p.pieceBB[WhiteRook] | p.pieceBB[WhiteQueen] |
		p.pieceBB[BlackPawn] | p.pieceBB[BlackRook] | p.pieceBB[BlackQueen]
	if heavy != EmptyBB {
		return false
	}
	wb, bb := p.pieceBB[WhiteBishop], p.pieceBB[BlackBishop]
	wn, bn := p.pieceBB[WhiteKnight], p.pieceBB[BlackKnight]
	wbc, bbc := wb.PopCount(), bb.PopCount()
	wnc, bnc := wn.PopCount(), bn.PopCount()
	total := wbc + bbc + wnc + bnc

	switch {
	case total == 0:
		return true
	case total == 1:
		return true
	case wbc == 1 && bbc == 1 && wnc == 0 && bnc == 0:
		wsq, _ := wb.LSB()
		bsq, _ := bb.LSB()
		return SquareColor(wsq) == SquareColor(bsq)
	case wnc == 2 && bnc == 0 && wbc == 0 && bbc == 0:
		return true
	case bnc == 2 && wnc == 0 && wbc == 0 && bbc == 0:
		return true
	default:
		return false
	}
}

// IsThreefoldRepetition reports whether the current hash has occurred at
// least three times across recorded history.
func (p *Position) IsThreefoldRepetition() bool {
	count := 0
	for _, h := range p.history {
		if h == p.hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the half-move clock has reached 100
// (fifty full moves without a pawn move or capture).
func (p *Position) IsFiftyMoveDraw() bool {
	return p.halfMoveClock >= 100
}

// IsDraw reports whether the game is drawn by any of stalemate,
// insufficient material, threefold repetition, or the fifty-move rule.
func (p *Position) IsDraw() bool {
	return p.IsStalemate() || p.IsInsufficientMaterial() || p.IsThreefoldRepetition() || p.IsFiftyMoveDraw()
}
