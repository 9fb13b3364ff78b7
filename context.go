package chess

// CastleRight is the castling permission a side holds.
type CastleRight int8

const (
	CastleNone CastleRight = iota
	CastleKingSide
	CastleQueenSide
	CastleKingAndQueenSide
)

// Has reports whether r grants the given single side (KingSide or
// QueenSide).
func (r CastleRight) Has(side CastleRight) bool {
	switch side {
	case CastleKingSide:
		return r == CastleKingSide || r == CastleKingAndQueenSide
	case CastleQueenSide:
		return r == CastleQueenSide || r == CastleKingAndQueenSide
	default:
		return false
	}
}

// With returns r with the given single side granted.
func (r CastleRight) With(side CastleRight) CastleRight {
	hasK := r.Has(CastleKingSide) || side == CastleKingSide
	hasQ := r.Has(CastleQueenSide) || side == CastleQueenSide
	switch {
	case hasK && hasQ:
		return CastleKingAndQueenSide
	case hasK:
		return CastleKingSide
	case hasQ:
		return CastleQueenSide
	default:
		return CastleNone
	}
}

// Without returns r with the given single side revoked.
func (r CastleRight) Without(side CastleRight) CastleRight {
	hasK := r.Has(CastleKingSide) && side != CastleKingSide
	hasQ := r.Has(CastleQueenSide) && side != CastleQueenSide
	switch {
	case hasK && hasQ:
		return CastleKingAndQueenSide
	case hasK:
		return CastleKingSide
	case hasQ:
		return CastleQueenSide
	default:
		return CastleNone
	}
}

// CastlePath describes one castling move's geometry: where the king and
// rook start and end, which squares must be empty, and which squares must
// be unattacked for the castle to be legal.
type CastlePath struct {
	KingFrom, KingTo Square
	RookFrom, RookTo Square
	EmptySquares     Bitboard // squares that must hold no piece (excludes king/rook home squares)
	SafeSquares      Bitboard // squares the king traverses, including KingFrom and KingTo
}

// GameContext supplies the caller-defined castling geometry the Legality
// Filter and Move Generation consult. DefaultContext returns the orthodox
// chess layout; a caller implementing a variant (e.g. Chess960) builds its
// own.
type GameContext struct {
	KingSide  [2]CastlePath // indexed by sideOrdinal(color)
	QueenSide [2]CastlePath
}

// DefaultContext returns the orthodox castling geometry.
func DefaultContext() *GameContext {
	return &GameContext{
		KingSide: [2]CastlePath{
			0: { // White
				KingFrom: E1, KingTo: G1,
				RookFrom: H1, RookTo: F1,
				EmptySquares: F1.BB() | G1.BB(),
				SafeSquares:  E1.BB() | F1.BB() | G1.BB(),
			},
			1: { // Black
				KingFrom: E8, KingTo: G8,
				RookFrom: H8, RookTo: F8,
				EmptySquares: F8.BB() | G8.BB(),
				SafeSquares:  E8.BB() | F8.BB() | G8.BB(),
			},
		},
		QueenSide: [2]CastlePath{
			0: { // White
				KingFrom: E1, KingTo: C1,
				RookFrom: A1, RookTo: D1,
				EmptySquares: B1.BB() | C1.BB() | D1.BB(),
				SafeSquares:  E1.BB() | D1.BB() | C1.BB(),
			},
			1: { // Black
				KingFrom: E8, KingTo: C8,
				RookFrom: A8, RookTo: D8,
				EmptySquares: B8.BB() | C8.BB() | D8.BB(),
				SafeSquares:  E8.BB() | D8.BB() | C8.BB(),
			},
		},
	}
}
