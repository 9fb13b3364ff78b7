package chess

import "strings"

// UndoEntry snapshots everything needed to reverse one DoMove call.
type UndoEntry struct {
	move           Move
	captured       Piece
	capturedSquare Square // differs from move.To() on en-passant
	castleRights   [2]CastleRight
	epDestination  Square
	epTarget       Square
	halfMoveClock  int
	fullMoveNumber int
	hash           uint64
}

// EventKind identifies the mutation an observer is notified about.
type EventKind int

const (
	EventMove EventKind = iota
	EventUndo
	EventNullMove
	EventLoadFEN
)

// Event is the payload delivered to a Position observer after a mutation
// settles. There is no ordering guarantee beyond "after the state settles".
type Event struct {
	Kind EventKind
	Move Move // valid for EventMove/EventUndo/EventNullMove
}

// Position is a mutable chess board plus everything needed to make and undo
// moves and detect draws. A Position is not safe for concurrent use; two
// distinct Positions may be used concurrently since they share only the
// read-only geometry and Zobrist tables.
type Position struct {
	pieceBB [12]Bitboard // indexed by Piece ordinal
	pieceAt [64]Piece
	sideBB  [2]Bitboard // indexed by sideOrdinal

	sideToMove   Color
	castleRights [2]CastleRight // indexed by sideOrdinal

	epDestination Square // square a capturing pawn would land on
	epTarget      Square // square of the pawn that just double-pushed

	halfMoveClock  int
	fullMoveNumber int

	hash    uint64
	history []uint64

	undoStack []UndoEntry

	ctx *GameContext

	observers []func(Event)
}

// NewPosition returns an empty position with the default (orthodox) game
// context and White to move.
func NewPosition() *Position {
	p := &Position{ctx: DefaultContext()}
	p.Clear()
	return p
}

// Clear resets the position to an empty board, White to move, no castling
// rights, no en-passant, and default counters (half=0, full=1).
func (p *Position) Clear() {
	for i := range p.pieceBB {
		p.pieceBB[i] = EmptyBB
	}
	for i := range p.pieceAt {
		p.pieceAt[i] = NoPiece
	}
	p.sideBB = [2]Bitboard{}
	p.sideToMove = White
	p.castleRights = [2]CastleRight{CastleNone, CastleNone}
	p.epDestination = NoSquare
	p.epTarget = NoSquare
	p.halfMoveClock = 0
	p.fullMoveNumber = 1
	p.undoStack = p.undoStack[:0]
	p.recomputeHash()
	p.history = append(p.history[:0], p.hash)
}

// Context returns the castling-path data this position consults.
func (p *Position) Context() *GameContext { return p.ctx }

// SetContext installs custom castling-path data (e.g. for a variant).
func (p *Position) SetContext(ctx *GameContext) { p.ctx = ctx }

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	if sq < A1 || sq > H8 {
		return NoPiece
	}
	return p.pieceAt[sq]
}

// BBOf returns the bitboard of every square holding piece.
func (p *Position) BBOf(piece Piece) Bitboard {
	if piece == NoPiece {
		return EmptyBB
	}
	return p.pieceBB[piece]
}

// BBOfSide returns the combined bitboard of every piece the side owns.
func (p *Position) BBOfSide(side Color) Bitboard {
	return p.sideBB[sideOrdinal(side)]
}

// BBAll returns the bitboard of every occupied square.
func (p *Position) BBAll() Bitboard {
	return p.sideBB[0] | p.sideBB[1]
}

// SideToMove returns the side to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastleRightsFor returns the castling right the side currently holds.
func (p *Position) CastleRightsFor(side Color) CastleRight {
	return p.castleRights[sideOrdinal(side)]
}

// EPDestination returns the square a capturing pawn would land on, or
// NoSquare.
func (p *Position) EPDestination() Square { return p.epDestination }

// EPTarget returns the square of the pawn that just double-pushed, or
// NoSquare.
func (p *Position) EPTarget() Square { return p.epTarget }

// HalfMoveClock returns the half-move (ply) counter used for the fifty-move
// rule.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// FullMoveNumber returns the full-move counter.
func (p *Position) FullMoveNumber() int { return p.fullMoveNumber }

// Hash returns the incremental Zobrist-style hash.
func (p *Position) Hash() uint64 { return p.hash }

// History returns the append-only sequence of hashes reached so far,
// including the current position's hash as the last entry.
func (p *Position) History() []uint64 {
	out := make([]uint64, len(p.history))
	copy(out, p.history)
	return out
}

// KingSquare returns the square of side's king, or NoSquare if absent.
func (p *Position) KingSquare(side Color) Square {
	king := NewPiece(King, side)
	sq, ok := p.pieceBB[king].LSB()
	if !ok {
		return NoSquare
	}
	return sq
}

// SetPiece places piece on sq, toggling all derived bitboards and the
// incremental hash. It does not validate king count or legality; callers
// using raw placement own the correctness of the result. Placing NoPiece is
// an InvariantViolationError.
func (p *Position) SetPiece(sq Square, piece Piece) error {
	if sq < A1 || sq > H8 {
		return &InvariantViolationError{Reason: "SetPiece on invalid square"}
	}
	if piece == NoPiece {
		return &InvariantViolationError{Reason: "SetPiece called with NoPiece; use UnsetPiece"}
	}
	if piece.Color() == NoColor {
		return &InvariantViolationError{Reason: "SetPiece called with a piece of NoColor"}
	}
	if existing := p.pieceAt[sq]; existing != NoPiece {
		p.unsetPieceRaw(sq, existing)
	}
	p.setPieceRaw(sq, piece)
	return nil
}

// UnsetPiece removes whatever piece sits on sq, if any.
func (p *Position) UnsetPiece(sq Square) error {
	if sq < A1 || sq > H8 {
		return &InvariantViolationError{Reason: "UnsetPiece on invalid square"}
	}
	if existing := p.pieceAt[sq]; existing != NoPiece {
		p.unsetPieceRaw(sq, existing)
	}
	return nil
}

func (p *Position) setPieceRaw(sq Square, piece Piece) {
	p.pieceBB[piece] = p.pieceBB[piece].Set(sq)
	p.sideBB[sideOrdinal(piece.Color())] = p.sideBB[sideOrdinal(piece.Color())].Set(sq)
	p.pieceAt[sq] = piece
	p.hash ^= zobristPieceSquare(piece, sq)
}

func (p *Position) unsetPieceRaw(sq Square, piece Piece) {
	p.pieceBB[piece] = p.pieceBB[piece].Clear(sq)
	p.sideBB[sideOrdinal(piece.Color())] = p.sideBB[sideOrdinal(piece.Color())].Clear(sq)
	p.pieceAt[sq] = NoPiece
	p.hash ^= zobristPieceSquare(piece, sq)
}

// movePieceRaw relocates piece from from to to without touching any other
// state (captures must be unset by the caller first).
func (p *Position) movePieceRaw(from, to Square, piece Piece) {
	p.unsetPieceRaw(from, piece)
	p.setPieceRaw(to, piece)
}

// recomputeHash rebuilds the incremental hash from scratch: piece-squares,
// side to move, castling rights, and en-passant (only when advertised).
func (p *Position) recomputeHash() {
	var h uint64
	for sq := A1; sq <= H8; sq++ {
		if piece := p.pieceAt[sq]; piece != NoPiece {
			h ^= zobristPieceSquare(piece, sq)
		}
	}
	for _, side := range [2]Color{White, Black} {
		if r := p.CastleRightsFor(side); r != CastleNone {
			h ^= zobristCastleRight(side, r)
		}
	}
	if p.epTarget != NoSquare {
		h ^= zobristEPTarget(p.epTarget)
	}
	h ^= zobristSideToMove(p.sideToMove)
	p.hash = h
}

// VerifyHash reports whether the incremental hash matches a from-scratch
// recomputation, per spec section 8's testable property.
func (p *Position) VerifyHash() bool {
	saved := p.hash
	p.recomputeHash()
	ok := p.hash == saved
	p.hash = saved
	return ok
}

// Clone returns a deep copy of the position, independent of the original.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]uint64(nil), p.history...)
	c.undoStack = append([]UndoEntry(nil), p.undoStack...)
	c.observers = nil // observers are not copied; they belong to the original caller
	return &c
}

// Subscribe registers a callback invoked after DoMove, UndoMove, DoNullMove,
// or LoadFEN settle the position's state. There is no ordering guarantee
// among multiple subscribers.
func (p *Position) Subscribe(fn func(Event)) {
	p.observers = append(p.observers, fn)
}

func (p *Position) notify(ev Event) {
	for _, fn := range p.observers {
		fn(ev)
	}
}

// Draw renders the board as an 8x8 grid with Unicode piece glyphs, a1 at
// bottom-left, for debugging.
func (p *Position) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String())
		sb.WriteByte(' ')
		for f := FileA; f <= FileH; f++ {
			sq := NewSquare(f, r)
			piece := p.pieceAt[sq]
			if piece == NoPiece {
				if SquareColor(sq) == White {
					sb.WriteString(". ")
				} else {
					sb.WriteString("+ ")
				}
				continue
			}
			sb.WriteString(piece.String())
			sb.WriteByte(' ')
		}
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// String returns the position's piece-placement field alone, in FEN order.
func (p *Position) String() string {
	fen := p.FEN()
	if idx := strings.IndexByte(fen, ' '); idx >= 0 {
		return fen[:idx]
	}
	return fen
}
