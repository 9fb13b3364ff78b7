package chess

import "strings"

// encodeMoveNotation builds SAN or FAN for m, which must already be a legal
// move in p. It temporarily applies m to determine the check/mate suffix,
// then undoes it, leaving p unchanged.
func encodeMoveNotation(p *Position, m Move, figurine bool) (string, error) {
	moving := p.pieceAt[m.From()]
	if moving == NoPiece || moving.Color() != p.sideToMove {
		return "", &IllegalMoveError{Move: m, FEN: p.FEN()}
	}

	legal := p.LegalMoves()
	found := false
	for _, cand := range legal {
		if cand.Equal(m) {
			found = true
			break
		}
	}
	if !found {
		return "", &IllegalMoveError{Move: m, FEN: p.FEN()}
	}

	var sb strings.Builder

	isCastle, kingSide := false, false
	if moving.Type() == King {
		isCastle, kingSide = p.castleIntent(p.sideToMove, m.To())
	}

	switch {
	case isCastle:
		if kingSide {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	case moving.Type() == Pawn:
		isCapture := p.pieceAt[m.To()] != NoPiece || p.isEnPassantCapture(m)
		if isCapture {
			sb.WriteString(m.From().File().String())
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
		if m.Promotion() != NoPieceType {
			sb.WriteByte('=')
			if figurine {
				sb.WriteString(NewPiece(m.Promotion(), moving.Color()).fanGlyph())
			} else {
				sb.WriteString(m.Promotion().sanLetter())
			}
		}
	default:
		if figurine {
			sb.WriteString(moving.fanGlyph())
		} else {
			sb.WriteString(moving.Type().sanLetter())
		}

		sameFile, sameRank, other := false, false, false
		for _, cand := range legal {
			if cand.To() != m.To() || cand.From() == m.From() {
				continue
			}
			if p.pieceAt[cand.From()].Type() != moving.Type() {
				continue
			}
			other = true
			if cand.From().File() == m.From().File() {
				sameFile = true
			}
			if cand.From().Rank() == m.From().Rank() {
				sameRank = true
			}
		}
		if other {
			switch {
			case !sameFile:
				sb.WriteString(m.From().File().String())
			case !sameRank:
				sb.WriteString(m.From().Rank().String())
			default:
				sb.WriteString(m.From().String())
			}
		}
		if p.pieceAt[m.To()] != NoPiece {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
	}

	if p.DoMove(m, false) {
		if p.IsKingAttacked(p.sideToMove) {
			if len(p.LegalMoves()) == 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('+')
			}
		}
		p.UndoMove()
	}

	return sb.String(), nil
}

// EncodeSAN returns the Standard Algebraic Notation for m in the current
// position. m must be one of p.LegalMoves().
func EncodeSAN(p *Position, m Move) (string, error) {
	return encodeMoveNotation(p, m, false)
}

// EncodeFAN returns the Figurine Algebraic Notation for m in the current
// position: identical to SAN except piece letters are replaced by Unicode
// chess glyphs.
func EncodeFAN(p *Position, m Move) (string, error) {
	return encodeMoveNotation(p, m, true)
}

// stripAnnotations removes trailing check/mate markers and NAG-style
// punctuation SAN feeds sometimes carry.
func stripAnnotations(s string) string {
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if c == '+' || c == '#' || c == '!' || c == '?' {
			end--
			continue
		}
		break
	}
	return s[:end]
}

// DecodeSAN parses san against the current position's legal moves, matching
// destination square last: the piece letter (absent for pawns), an optional
// disambiguating file/rank/square, an optional capture marker, the
// destination square, and an optional promotion suffix. A plain pawn push
// with no disambiguation resolves uniquely because only pawns whose legal
// move actually reaches that square are considered candidates.
func DecodeSAN(p *Position, san string) (Move, error) {
	raw := san
	s := stripAnnotations(strings.TrimSpace(san))

	if strings.EqualFold(s, "Z0") {
		return NullMove, nil
	}

	if s == "O-O" || s == "0-0" {
		return resolveCastle(p, true, raw)
	}
	if s == "O-O-O" || s == "0-0-0" {
		return resolveCastle(p, false, raw)
	}

	promo := NoPieceType
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		if idx+1 >= len(s) {
			return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "missing promotion letter"}
		}
		promo = pieceTypeFromLetter(upperByte(s[idx+1]))
		if promo == NoPieceType {
			return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "invalid promotion letter"}
		}
		s = s[:idx]
	}

	pieceType := Pawn
	if len(s) > 0 {
		if pt := pieceTypeFromLetter(s[0]); pt != NoPieceType {
			pieceType = pt
			s = s[1:]
		}
	}

	s = strings.ReplaceAll(s, "x", "")
	s = strings.ReplaceAll(s, "X", "")

	if promo == NoPieceType && len(s) > 2 {
		last := upperByte(s[len(s)-1])
		if last != 'O' {
			if pt := pieceTypeFromLetter(last); pt != NoPieceType && pt != King {
				promo = pt
				s = s[:len(s)-1]
			}
		}
	}

	if len(s) < 2 {
		return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "missing destination square"}
	}
	destStr := s[len(s)-2:]
	disambig := s[:len(s)-2]

	to := squareFromString(destStr)
	if to == NoSquare {
		return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "invalid destination square"}
	}

	var wantFile File = FileNone
	var wantRank Rank = RankNone
	switch len(disambig) {
	case 0:
	case 1:
		if disambig[0] >= 'a' && disambig[0] <= 'h' {
			wantFile = File(disambig[0] - 'a')
		} else if disambig[0] >= '1' && disambig[0] <= '8' {
			wantRank = Rank(disambig[0] - '1')
		} else {
			return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "invalid disambiguation character"}
		}
	case 2:
		from := squareFromString(disambig)
		if from == NoSquare {
			return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "invalid disambiguation square"}
		}
		wantFile, wantRank = from.File(), from.Rank()
	default:
		return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "malformed move text"}
	}

	var match Move
	matches := 0
	for _, cand := range p.LegalMoves() {
		if cand.To() != to || cand.Promotion() != promo {
			continue
		}
		moving := p.pieceAt[cand.From()]
		if moving.Type() != pieceType {
			continue
		}
		if wantFile != FileNone && cand.From().File() != wantFile {
			continue
		}
		if wantRank != RankNone && cand.From().Rank() != wantRank {
			continue
		}
		match = cand
		matches++
	}
	switch matches {
	case 0:
		return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "no legal move matches"}
	case 1:
		match.san = raw
		return match, nil
	default:
		return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "ambiguous move text"}
	}
}

func resolveCastle(p *Position, kingSide bool, raw string) (Move, error) {
	us := p.sideToMove
	kingSq := p.KingSquare(us)
	if kingSq == NoSquare {
		return Move{}, &ParseError{Kind: "san", Input: raw, FEN: p.FEN(), Reason: "no king on the board"}
	}
	idx := sideOrdinal(us)
	var to Square
	if kingSide {
		to = p.ctx.KingSide[idx].KingTo
	} else {
		to = p.ctx.QueenSide[idx].KingTo
	}
	m := NewMove(kingSq, to, NoPieceType)
	for _, cand := range p.LegalMoves() {
		if cand.Equal(m) {
			m.san = raw
			return m, nil
		}
	}
	return Move{}, &IllegalMoveError{Move: m, FEN: p.FEN()}
}
