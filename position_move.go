package chess

// setCastleRights installs newRight for side, keeping the incremental hash
// consistent with recomputeHash's convention that CastleNone contributes
// nothing to the hash.
func (p *Position) setCastleRights(side Color, newRight CastleRight) {
	idx := sideOrdinal(side)
	old := p.castleRights[idx]
	if old != CastleNone {
		p.hash ^= zobristCastleRight(side, old)
	}
	p.castleRights[idx] = newRight
	if newRight != CastleNone {
		p.hash ^= zobristCastleRight(side, newRight)
	}
}

// setEnPassant installs the ep destination/target pair, keeping the
// incremental hash consistent with recomputeHash's convention that a
// NoSquare target contributes nothing to the hash.
func (p *Position) setEnPassant(destination, target Square) {
	if p.epTarget != NoSquare {
		p.hash ^= zobristEPTarget(p.epTarget)
	}
	p.epDestination = destination
	p.epTarget = target
	if p.epTarget != NoSquare {
		p.hash ^= zobristEPTarget(p.epTarget)
	}
}

// flipSideToMove toggles the side to move, updating the incremental hash.
func (p *Position) flipSideToMove() {
	p.hash ^= zobristSideToMove(p.sideToMove)
	p.sideToMove = p.sideToMove.Other()
	p.hash ^= zobristSideToMove(p.sideToMove)
}

// castleIntent reports whether a king move from us's king-home square to to
// matches one of the context's two castling destinations.
func (p *Position) castleIntent(us Color, to Square) (isCastle, kingSide bool) {
	idx := sideOrdinal(us)
	if to == p.ctx.KingSide[idx].KingTo {
		return true, true
	}
	if to == p.ctx.QueenSide[idx].KingTo {
		return true, false
	}
	return false, false
}

// DoMove applies m to the position if it is legal, returning false and
// leaving the position untouched otherwise. When fullValidation is true,
// DoMove additionally rejects moves that don't originate from a
// side-to-move piece, land on a friendly piece (outside castling), or carry
// a promotion inconsistent with the move's destination rank.
func (p *Position) DoMove(m Move, fullValidation bool) bool {
	if m.IsNull() {
		return false
	}
	from, to := m.From(), m.To()
	if from < A1 || from > H8 || to < A1 || to > H8 {
		return false
	}
	moving := p.pieceAt[from]
	if moving == NoPiece {
		return false
	}
	us := p.sideToMove
	them := us.Other()

	isCastle, kingSide := false, false
	if moving.Type() == King {
		isCastle, kingSide = p.castleIntent(us, to)
	}

	if isCastle {
		if !p.IsCastleLegal(us, kingSide) {
			return false
		}
	} else if !p.IsLegal(m) {
		return false
	}

	if fullValidation {
		if moving.Color() != us {
			return false
		}
		if !isCastle {
			if target := p.pieceAt[to]; target != NoPiece && target.Color() == us {
				return false
			}
		}
		if moving.Type() == Pawn {
			backRank := Rank8
			if us == Black {
				backRank = Rank1
			}
			if to.Rank() == backRank && m.Promotion() == NoPieceType {
				return false
			}
			if to.Rank() != backRank && m.Promotion() != NoPieceType {
				return false
			}
		} else if m.Promotion() != NoPieceType {
			return false
		}
	}

	entry := UndoEntry{
		move:           m,
		captured:       NoPiece,
		capturedSquare: NoSquare,
		castleRights:   p.castleRights,
		epDestination:  p.epDestination,
		epTarget:       p.epTarget,
		halfMoveClock:  p.halfMoveClock,
		fullMoveNumber: p.fullMoveNumber,
		hash:           p.hash,
	}

	isEP := !isCastle && p.isEnPassantCapture(m)
	capturedSq := to
	captured := p.pieceAt[to]
	if isEP {
		capturedSq = p.epTarget
		captured = p.pieceAt[capturedSq]
	}
	if isCastle {
		captured = NoPiece
	}
	entry.captured = captured
	entry.capturedSquare = capturedSq

	if captured != NoPiece {
		p.unsetPieceRaw(capturedSq, captured)
	}

	switch {
	case isCastle:
		idx := sideOrdinal(us)
		var path CastlePath
		if kingSide {
			path = p.ctx.KingSide[idx]
		} else {
			path = p.ctx.QueenSide[idx]
		}
		p.movePieceRaw(from, to, moving)
		p.movePieceRaw(path.RookFrom, path.RookTo, NewPiece(Rook, us))
	case m.Promotion() != NoPieceType:
		p.unsetPieceRaw(from, moving)
		p.setPieceRaw(to, NewPiece(m.Promotion(), us))
	default:
		p.movePieceRaw(from, to, moving)
	}

	newRights := p.castleRights
	if moving.Type() == King {
		newRights[sideOrdinal(us)] = CastleNone
	}
	if moving.Type() == Rook {
		idx := sideOrdinal(us)
		if from == p.ctx.KingSide[idx].RookFrom {
			newRights[idx] = newRights[idx].Without(CastleKingSide)
		}
		if from == p.ctx.QueenSide[idx].RookFrom {
			newRights[idx] = newRights[idx].Without(CastleQueenSide)
		}
	}
	if captured != NoPiece && captured.Type() == Rook {
		idx := sideOrdinal(them)
		if capturedSq == p.ctx.KingSide[idx].RookFrom {
			newRights[idx] = newRights[idx].Without(CastleKingSide)
		}
		if capturedSq == p.ctx.QueenSide[idx].RookFrom {
			newRights[idx] = newRights[idx].Without(CastleQueenSide)
		}
	}
	if newRights[0] != p.castleRights[0] {
		p.setCastleRights(White, newRights[0])
	}
	if newRights[1] != p.castleRights[1] {
		p.setCastleRights(Black, newRights[1])
	}

	if moving.Type() == Pawn || captured != NoPiece {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}
	if us == Black {
		p.fullMoveNumber++
	}

	newEPDest, newEPTarget := NoSquare, NoSquare
	if moving.Type() == Pawn && abs(int(to)-int(from)) == 16 {
		crossed := Square((int(from) + int(to)) / 2)
		for _, df := range [2]int{-1, 1} {
			f := int(to.File()) + df
			if f < int(FileA) || f > int(FileH) {
				continue
			}
			adjSq := NewSquare(File(f), to.Rank())
			adjPiece := p.pieceAt[adjSq]
			if adjPiece != NoPiece && adjPiece.Type() == Pawn && adjPiece.Color() == them {
				if p.epPinSafe(us, to, adjSq) {
					newEPDest, newEPTarget = crossed, to
					break
				}
			}
		}
	}
	p.setEnPassant(newEPDest, newEPTarget)

	p.flipSideToMove()

	p.undoStack = append(p.undoStack, entry)
	p.history = append(p.history, p.hash)

	p.notify(Event{Kind: EventMove, Move: m})
	return true
}

// UndoMove reverses the most recent DoMove or DoNullMove call, restoring the
// exact prior state from the undo stack. Reports false if there is nothing
// to undo.
func (p *Position) UndoMove() bool {
	if len(p.undoStack) == 0 {
		return false
	}
	entry := p.undoStack[len(p.undoStack)-1]
	p.undoStack = p.undoStack[:len(p.undoStack)-1]
	p.history = p.history[:len(p.history)-1]

	m := entry.move
	us := p.sideToMove.Other()

	if !m.IsNull() {
		from, to := m.From(), m.To()
		moving := p.pieceAt[to]
		isCastle, kingSide := false, false
		if moving.Type() == King {
			isCastle, kingSide = p.castleIntent(us, to)
		}

		switch {
		case isCastle:
			idx := sideOrdinal(us)
			var path CastlePath
			if kingSide {
				path = p.ctx.KingSide[idx]
			} else {
				path = p.ctx.QueenSide[idx]
			}
			p.movePieceRaw(path.RookTo, path.RookFrom, NewPiece(Rook, us))
			p.movePieceRaw(to, from, moving)
		case m.Promotion() != NoPieceType:
			p.unsetPieceRaw(to, moving)
			p.setPieceRaw(from, NewPiece(Pawn, us))
		default:
			p.movePieceRaw(to, from, moving)
		}

		if entry.captured != NoPiece {
			p.setPieceRaw(entry.capturedSquare, entry.captured)
		}
	}

	p.castleRights = entry.castleRights
	p.epDestination = entry.epDestination
	p.epTarget = entry.epTarget
	p.halfMoveClock = entry.halfMoveClock
	p.fullMoveNumber = entry.fullMoveNumber
	p.sideToMove = us
	p.hash = entry.hash

	p.notify(Event{Kind: EventUndo, Move: m})
	return true
}

// DoNullMove passes the turn without moving a piece: it clears any
// en-passant opportunity and flips the side to move, leaving the halfmove
// clock and fullmove number untouched. It is always legal to call (the side
// to move need not be in check), per spec section 4.5's Non-goal-adjacent
// utility for search-style consumers probing king safety.
func (p *Position) DoNullMove() {
	entry := UndoEntry{
		move:           NullMove,
		captured:       NoPiece,
		capturedSquare: NoSquare,
		castleRights:   p.castleRights,
		epDestination:  p.epDestination,
		epTarget:       p.epTarget,
		halfMoveClock:  p.halfMoveClock,
		fullMoveNumber: p.fullMoveNumber,
		hash:           p.hash,
	}

	p.setEnPassant(NoSquare, NoSquare)
	p.flipSideToMove()

	p.undoStack = append(p.undoStack, entry)
	p.history = append(p.history, p.hash)

	p.notify(Event{Kind: EventNullMove, Move: NullMove})
}
