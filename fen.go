package chess

import (
	"strconv"
	"strings"
)

// pieceFromFENChar maps a single FEN board character to a Piece.
func pieceFromFENChar(ch byte) Piece {
	up := upperByte(ch)
	pt := Pawn
	if up != 'P' {
		pt = pieceTypeFromLetter(up)
	}
	if pt == NoPieceType {
		return NoPiece
	}
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
	}
	return NewPiece(pt, color)
}

// LoadFEN returns a new Position built from a Forsyth-Edwards string.
func LoadFEN(fen string) (*Position, error) {
	p := NewPosition()
	if err := p.LoadFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFEN parses fen and replaces p's entire state. Trailing fields (halfmove
// clock, fullmove number) default to 0 and 1 respectively when absent, per
// spec section 4.9's tolerant parsing rule.
func (p *Position) LoadFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 1 {
		return &ParseError{Kind: "fen", Input: fen, Reason: "empty FEN"}
	}

	placement := fields[0]
	active := "w"
	if len(fields) > 1 {
		active = fields[1]
	}
	castling := "-"
	if len(fields) > 2 {
		castling = fields[2]
	}
	epField := "-"
	if len(fields) > 3 {
		epField = fields[3]
	}
	halfField := "0"
	if len(fields) > 4 {
		halfField = fields[4]
	}
	fullField := "1"
	if len(fields) > 5 {
		fullField = fields[5]
	}

	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return &ParseError{Kind: "fen", Input: fen, FEN: fen, Reason: "piece placement must have 8 ranks"}
	}

	p.Clear()
	for i, row := range rows {
		rank := Rank(7 - i)
		file := FileA
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += File(ch - '0')
				continue
			}
			if file > FileH {
				return &ParseError{Kind: "fen", Input: fen, FEN: fen, Reason: "rank overflows the board"}
			}
			piece := pieceFromFENChar(ch)
			if piece == NoPiece {
				return &ParseError{Kind: "fen", Input: fen, FEN: fen, Reason: "invalid piece character " + string(ch)}
			}
			p.setPieceRaw(NewSquare(file, rank), piece)
			file++
		}
		if file != FileH+1 {
			return &ParseError{Kind: "fen", Input: fen, FEN: fen, Reason: "rank does not cover all 8 files"}
		}
	}

	switch active {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return &ParseError{Kind: "fen", Input: active, FEN: fen, Reason: "active color must be 'w' or 'b'"}
	}

	p.castleRights = [2]CastleRight{CastleNone, CastleNone}
	if castling != "-" {
		for i := 0; i < len(castling); i++ {
			switch castling[i] {
			case 'K':
				p.castleRights[0] = p.castleRights[0].With(CastleKingSide)
			case 'Q':
				p.castleRights[0] = p.castleRights[0].With(CastleQueenSide)
			case 'k':
				p.castleRights[1] = p.castleRights[1].With(CastleKingSide)
			case 'q':
				p.castleRights[1] = p.castleRights[1].With(CastleQueenSide)
			default:
				return &ParseError{Kind: "fen", Input: castling, FEN: fen, Reason: "invalid castling character " + string(castling[i])}
			}
		}
	}

	p.epDestination, p.epTarget = NoSquare, NoSquare
	if epField != "-" {
		dest := squareFromString(epField)
		if dest == NoSquare {
			return &ParseError{Kind: "fen", Input: epField, FEN: fen, Reason: "invalid en-passant square"}
		}
		var pawnSq Square
		switch dest.Rank() {
		case Rank3:
			pawnSq = NewSquare(dest.File(), Rank4)
		case Rank6:
			pawnSq = NewSquare(dest.File(), Rank5)
		default:
			return &ParseError{Kind: "fen", Input: epField, FEN: fen, Reason: "en-passant square must be on rank 3 or 6"}
		}
		// Only set the ep pair if a pawn of the side to move actually sits
		// adjacent to pawnSq, mirroring the check DoMove performs when it
		// advertises en passant after a double push.
		capturer := p.sideToMove
		for _, df := range [2]int{-1, 1} {
			f := int(pawnSq.File()) + df
			if f < int(FileA) || f > int(FileH) {
				continue
			}
			adjSq := NewSquare(File(f), pawnSq.Rank())
			adj := p.pieceAt[adjSq]
			if adj != NoPiece && adj.Type() == Pawn && adj.Color() == capturer {
				p.epTarget = pawnSq
				p.epDestination = dest
				break
			}
		}
	}

	half, err := strconv.Atoi(halfField)
	if err != nil || half < 0 {
		return &ParseError{Kind: "fen", Input: halfField, FEN: fen, Reason: "halfmove clock must be a non-negative integer"}
	}
	p.halfMoveClock = half

	full, err := strconv.Atoi(fullField)
	if err != nil || full < 1 {
		return &ParseError{Kind: "fen", Input: fullField, FEN: fen, Reason: "fullmove number must be a positive integer"}
	}
	p.fullMoveNumber = full

	p.recomputeHash()
	p.history = append(p.history[:0], p.hash)
	p.undoStack = p.undoStack[:0]
	p.notify(Event{Kind: EventLoadFEN})
	return nil
}

// FEN serializes the position to Forsyth-Edwards notation, including the
// halfmove clock and fullmove number fields. The en-passant field is emitted
// only when epDestination is set, which Position guarantees happens only
// when a pawn is actually positioned to capture there: DoMove checks this at
// push time and LoadFEN checks it on parse, so no separate "capturable-only"
// mode is needed here.
func (p *Position) FEN() string {
	return p.fen(true)
}

// FENWithoutCounters serializes the position to Forsyth-Edwards notation,
// omitting the trailing halfmove clock and fullmove number fields, per spec
// section 4.9's counters-are-optional-output rule.
func (p *Position) FENWithoutCounters() string {
	return p.fen(false)
}

func (p *Position) fen(withCounters bool) string {
	var sb strings.Builder

	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			piece := p.pieceAt[NewSquare(f, r)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.getFENChar())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())

	sb.WriteByte(' ')
	rights := ""
	if p.castleRights[0].Has(CastleKingSide) {
		rights += "K"
	}
	if p.castleRights[0].Has(CastleQueenSide) {
		rights += "Q"
	}
	if p.castleRights[1].Has(CastleKingSide) {
		rights += "k"
	}
	if p.castleRights[1].Has(CastleQueenSide) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	if p.epDestination == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epDestination.String())
	}

	if withCounters {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.halfMoveClock))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	}

	return sb.String()
}
