package chess

// isSquareAttacked reports whether sq is attacked by defender's opponent,
// given occupied and the opponent's per-type bitboards.
func isSquareAttacked(sq Square, occupied Bitboard, defender Color, oppPawns, oppKnights, oppBishops, oppRooks, oppQueens, oppKing Bitboard) bool {
	if GetPawnAttacks(defender, sq)&oppPawns != EmptyBB {
		return true
	}
	if GetKnightAttacks(sq)&oppKnights != EmptyBB {
		return true
	}
	if GenerateBishopAttacks(sq, occupied)&(oppBishops|oppQueens) != EmptyBB {
		return true
	}
	if GenerateRookAttacks(sq, occupied)&(oppRooks|oppQueens) != EmptyBB {
		return true
	}
	if GetKingAttacks(sq)&oppKing != EmptyBB {
		return true
	}
	return false
}

// IsSquareAttackedBy reports whether sq is attacked by any of attacker's
// pieces in the current position.
func (p *Position) IsSquareAttackedBy(sq Square, attacker Color) bool {
	defender := attacker.Other()
	return isSquareAttacked(sq, p.BBAll(), defender,
		p.pieceBB[NewPiece(Pawn, attacker)],
		p.pieceBB[NewPiece(Knight, attacker)],
		p.pieceBB[NewPiece(Bishop, attacker)],
		p.pieceBB[NewPiece(Rook, attacker)],
		p.pieceBB[NewPiece(Queen, attacker)],
		p.pieceBB[NewPiece(King, attacker)],
	)
}

// IsKingAttacked reports whether side's king is currently attacked.
func (p *Position) IsKingAttacked(side Color) bool {
	kingSq := p.KingSquare(side)
	if kingSq == NoSquare {
		return false
	}
	return p.IsSquareAttackedBy(kingSq, side.Other())
}

// isEnPassantCapture reports whether m is an en-passant capture in the
// current position (pawn, diagonal move, empty destination, current ep
// matches).
func (p *Position) isEnPassantCapture(m Move) bool {
	moving := p.pieceAt[m.From()]
	if moving.Type() != Pawn {
		return false
	}
	if m.From().File() == m.To().File() {
		return false
	}
	if p.pieceAt[m.To()] != NoPiece {
		return false
	}
	return m.To() == p.epDestination
}

// IsLegal reports whether m, applied to the current side to move, leaves
// that side's own king safe. It does not check "full validation" concerns
// like own-piece capture or promotion-shape; see DoMove.
func (p *Position) IsLegal(m Move) bool {
	us := p.sideToMove
	them := us.Other()
	from, to := m.From(), m.To()
	moving := p.pieceAt[from]
	if moving == NoPiece {
		return false
	}
	isKingMove := moving.Type() == King

	isEP := p.isEnPassantCapture(m)
	capturedSq := to
	if isEP {
		capturedSq = p.epTarget
	}

	occupied := p.BBAll()
	occupied = occupied.Clear(from)
	if isEP {
		occupied = occupied.Clear(capturedSq)
	}
	occupied = occupied.Set(to)

	oppPawns := p.pieceBB[NewPiece(Pawn, them)]
	oppKnights := p.pieceBB[NewPiece(Knight, them)]
	oppBishops := p.pieceBB[NewPiece(Bishop, them)]
	oppRooks := p.pieceBB[NewPiece(Rook, them)]
	oppQueens := p.pieceBB[NewPiece(Queen, them)]
	oppKing := p.pieceBB[NewPiece(King, them)]

	var capturedPiece Piece
	if isEP {
		capturedPiece = NewPiece(Pawn, them)
	} else {
		capturedPiece = p.pieceAt[to]
	}
	switch capturedPiece.Type() {
	case Pawn:
		oppPawns = oppPawns.Clear(capturedSq)
	case Knight:
		oppKnights = oppKnights.Clear(capturedSq)
	case Bishop:
		oppBishops = oppBishops.Clear(capturedSq)
	case Rook:
		oppRooks = oppRooks.Clear(capturedSq)
	case Queen:
		oppQueens = oppQueens.Clear(capturedSq)
	}

	var kingSq Square
	if isKingMove {
		kingSq = to
	} else {
		kingSq = p.KingSquare(us)
	}
	if kingSq == NoSquare {
		return true // no king on the board (raw-placement scenarios); nothing to protect
	}

	if isSquareAttacked(kingSq, occupied, us, oppPawns, oppKnights, oppBishops, oppRooks, oppQueens, oppKing) {
		return false
	}

	if isKingMove {
		// The king must also not move into a square attacked under the
		// current occupancy with the king itself removed, so a slider that
		// was blocked only by the king's old square is correctly seen.
		occWithoutKing := p.BBAll().Clear(from)
		if isSquareAttacked(to, occWithoutKing, us, oppPawns, oppKnights, oppBishops, oppRooks, oppQueens, oppKing) {
			return false
		}
	}

	return true
}

// IsCastleLegal reports whether side currently holds and may exercise the
// requested castling right: the path squares are empty, every square the
// king traverses (including start and end) is unattacked, and the right is
// held.
func (p *Position) IsCastleLegal(side Color, kingSide bool) bool {
	right := CastleQueenSide
	if kingSide {
		right = CastleKingSide
	}
	if !p.CastleRightsFor(side).Has(right) {
		return false
	}
	var path CastlePath
	if kingSide {
		path = p.ctx.KingSide[sideOrdinal(side)]
	} else {
		path = p.ctx.QueenSide[sideOrdinal(side)]
	}
	if p.BBAll()&path.EmptySquares != EmptyBB {
		return false
	}
	for _, sq := range path.SafeSquares.Scan() {
		if p.IsSquareAttackedBy(sq, side.Other()) {
			return false
		}
	}
	return true
}

// epPinSafe reports whether, after hypothetically removing pushedPawnSq and
// enemyPawnSq, pushingSide's king remains unattacked along a rank or
// diagonal by rook/queen or bishop/queen — spec section 4.6's en-passant
// double-pin check performed at push time.
func (p *Position) epPinSafe(pushingSide Color, pushedPawnSq, enemyPawnSq Square) bool {
	kingSq := p.KingSquare(pushingSide)
	if kingSq == NoSquare {
		return true
	}
	them := pushingSide.Other()
	occupied := p.BBAll().Clear(pushedPawnSq).Clear(enemyPawnSq)
	oppRooks := p.pieceBB[NewPiece(Rook, them)]
	oppBishops := p.pieceBB[NewPiece(Bishop, them)]
	oppQueens := p.pieceBB[NewPiece(Queen, them)]
	if GenerateRookAttacks(kingSq, occupied)&(oppRooks|oppQueens) != EmptyBB {
		return false
	}
	if GenerateBishopAttacks(kingSq, occupied)&(oppBishops|oppQueens) != EmptyBB {
		return false
	}
	return true
}
