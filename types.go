package chess

import "fmt"

// Color identifies a side to move or a piece's owner.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// PieceType is a chess piece kind, independent of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// sanLetter returns the SAN piece letter, empty for pawns.
func (pt PieceType) sanLetter() string {
	switch pt {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "NoPieceType"
	}
}

// pieceTypeFromLetter parses an uppercase SAN letter into a PieceType.
func pieceTypeFromLetter(l byte) PieceType {
	switch l {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return NoPieceType
	}
}

// Piece is the product of Color x PieceType. Ordinals 0..11 are used by the
// Zobrist indexing scheme in zobrist.go and must not be reordered.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// NewPiece builds a Piece from a PieceType and Color. Returns NoPiece for
// NoPieceType or NoColor.
func NewPiece(pt PieceType, c Color) Piece {
	if pt == NoPieceType || c == NoColor {
		return NoPiece
	}
	idx := int(pt) - 1
	if c == Black {
		idx += 6
	}
	return Piece(idx)
}

// Color returns the piece's owning side, or NoColor for NoPiece.
func (p Piece) Color() Color {
	switch {
	case p == NoPiece:
		return NoColor
	case p < BlackPawn:
		return White
	default:
		return Black
	}
}

// Type returns the piece's kind, or NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	switch p {
	case WhitePawn, BlackPawn:
		return Pawn
	case WhiteKnight, BlackKnight:
		return Knight
	case WhiteBishop, BlackBishop:
		return Bishop
	case WhiteRook, BlackRook:
		return Rook
	case WhiteQueen, BlackQueen:
		return Queen
	case WhiteKing, BlackKing:
		return King
	default:
		return NoPieceType
	}
}

// getFENChar returns the FEN letter for the piece (upper for white, lower for
// black), or "" for NoPiece.
func (p Piece) getFENChar() string {
	if p == NoPiece {
		return ""
	}
	l := p.Type().sanLetter()
	if l == "" {
		l = "P"
	}
	if p.Color() == Black {
		return toLower(l)
	}
	return l
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

var fanGlyphs = map[Piece]string{
	WhiteKing:   "♔",
	WhiteQueen:  "♕",
	WhiteRook:   "♖",
	WhiteBishop: "♗",
	WhiteKnight: "♘",
	WhitePawn:   "♙",
	BlackKing:   "♚",
	BlackQueen:  "♛",
	BlackRook:   "♜",
	BlackBishop: "♝",
	BlackKnight: "♞",
	BlackPawn:   "♟",
}

// fanGlyph returns the Unicode figurine glyph for the piece.
func (p Piece) fanGlyph() string {
	return fanGlyphs[p]
}

// String returns the Unicode figurine glyph, matching the teacher's
// Board.Draw() use of Piece.String() for board rendering.
func (p Piece) String() string {
	if g, ok := fanGlyphs[p]; ok {
		return g
	}
	return "."
}

// File is a board column, A..H, plus FileNone.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

func (f File) String() string {
	if f < FileA || f > FileH {
		return "-"
	}
	return string(rune('a' + int(f)))
}

// Rank is a board row, 1..8 (stored 0-indexed), plus RankNone.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

func (r Rank) String() string {
	if r < Rank1 || r > Rank8 {
		return "-"
	}
	return fmt.Sprintf("%d", int(r)+1)
}

// Square is a board square, A1=0 .. H8=63 in row-major order, plus NoSquare.
type Square int8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = -1
)

// NewSquare builds a Square from a File and Rank.
func NewSquare(f File, r Rank) Square {
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return NoSquare
	}
	return Square(int(r)*8 + int(f))
}

// File returns the square's file, or FileNone for NoSquare.
func (sq Square) File() File {
	if sq < A1 || sq > H8 {
		return FileNone
	}
	return File(int(sq) % 8)
}

// Rank returns the square's rank, or RankNone for NoSquare.
func (sq Square) Rank() Rank {
	if sq < A1 || sq > H8 {
		return RankNone
	}
	return Rank(int(sq) / 8)
}

// BB returns the single-bit bitboard for the square.
func (sq Square) BB() Bitboard {
	return SquareBB(sq)
}

func (sq Square) String() string {
	if sq < A1 || sq > H8 {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// squareFromString parses a lowercase or uppercase algebraic square name such
// as "e4". Returns NoSquare if the name is malformed.
func squareFromString(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	fc := s[0]
	rc := s[1]
	if fc >= 'A' && fc <= 'H' {
		fc = fc - 'A' + 'a'
	}
	if fc < 'a' || fc > 'h' || rc < '1' || rc > '8' {
		return NoSquare
	}
	f := File(fc - 'a')
	r := Rank(rc - '1')
	return NewSquare(f, r)
}
