package chess

// Move is the triple (from, to, promotion). Promotion is NoPieceType when the
// move is not a promotion. The distinguished null move is (NoSquare,
// NoSquare, NoPieceType).
type Move struct {
	from      Square
	to        Square
	promotion PieceType
	san       string // caller metadata, set by the SAN codec on encode/decode
}

// NewMove builds a Move from its three components.
func NewMove(from, to Square, promotion PieceType) Move {
	return Move{from: from, to: to, promotion: promotion}
}

// NullMove is the distinguished null move value.
var NullMove = Move{from: NoSquare, to: NoSquare, promotion: NoPieceType}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.from == NoSquare && m.to == NoSquare && m.promotion == NoPieceType
}

// From returns the origin square.
func (m Move) From() Square { return m.from }

// To returns the destination square.
func (m Move) To() Square { return m.to }

// Promotion returns the promotion piece type, or NoPieceType.
func (m Move) Promotion() PieceType { return m.promotion }

// SAN returns the SAN string associated with the move, if any was recorded
// by the codec that produced it.
func (m Move) SAN() string { return m.san }

// Equal reports whether two moves have identical from/to/promotion.
func (m Move) Equal(other Move) bool {
	return m.from == other.from && m.to == other.to && m.promotion == other.promotion
}

// String returns the long algebraic coordinate form: <file><rank><file><rank>
// with an optional trailing promotion letter. The letter's case matches the
// promoting side: promotion always lands on the back rank, so the
// destination rank alone identifies White (rank 8) versus Black (rank 1).
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.from.String() + m.to.String()
	if m.promotion != NoPieceType {
		letter := m.promotion.sanLetter()
		if m.to.Rank() != Rank8 {
			letter = toLower(letter)
		}
		s += letter
	}
	return s
}

// ParseCoordMove decodes a long algebraic coordinate move, e.g. "e2e4" or
// "e7e8q". It does not validate the move against any position.
func ParseCoordMove(s string) (Move, error) {
	if s == "0000" || s == "" {
		return NullMove, nil
	}
	if len(s) < 4 || len(s) > 5 {
		return Move{}, &ParseError{Kind: "move", Input: s, Reason: "coordinate move must be 4 or 5 characters"}
	}
	from := squareFromString(s[0:2])
	to := squareFromString(s[2:4])
	if from == NoSquare || to == NoSquare {
		return Move{}, &ParseError{Kind: "move", Input: s, Reason: "invalid square in coordinate move"}
	}
	promo := NoPieceType
	if len(s) == 5 {
		promo = pieceTypeFromLetter(upperByte(s[4]))
		if promo == NoPieceType {
			return Move{}, &ParseError{Kind: "move", Input: s, Reason: "invalid promotion letter"}
		}
	}
	return NewMove(from, to, promo), nil
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}
