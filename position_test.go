package chess

import "testing"

func TestSetPieceRejectsNoPiece(t *testing.T) {
	p := NewPosition()
	if err := p.SetPiece(E4, NoPiece); err == nil {
		t.Fatalf("SetPiece(NoPiece) should return an InvariantViolationError")
	}
}

func TestSetPieceReplacesExistingOccupant(t *testing.T) {
	p := NewPosition()
	if err := p.SetPiece(E4, WhiteQueen); err != nil {
		t.Fatalf("SetPiece: %v", err)
	}
	if err := p.SetPiece(E4, BlackKnight); err != nil {
		t.Fatalf("SetPiece: %v", err)
	}
	if p.PieceAt(E4) != BlackKnight {
		t.Fatalf("SetPiece should replace the prior occupant, got %s", p.PieceAt(E4))
	}
	if p.BBOf(WhiteQueen).Occupied(E4) {
		t.Fatalf("the replaced queen's bitboard must no longer carry e4")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := mustLoadFEN(t, startingFEN)
	c := p.Clone()
	c.DoMove(NewMove(E2, E4, NoPieceType), true)
	if p.FEN() == c.FEN() {
		t.Fatalf("mutating a clone must not affect the original")
	}
}

func TestSubscribeIsNotifiedOnMove(t *testing.T) {
	p := mustLoadFEN(t, startingFEN)
	var kinds []EventKind
	p.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	p.DoMove(NewMove(E2, E4, NoPieceType), true)
	p.UndoMove()
	p.DoNullMove()

	want := []EventKind{EventMove, EventUndo, EventNullMove}
	if len(kinds) != len(want) {
		t.Fatalf("got %d events, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestKingSquare(t *testing.T) {
	p := mustLoadFEN(t, startingFEN)
	if p.KingSquare(White) != E1 {
		t.Fatalf("White king should start on e1, got %s", p.KingSquare(White))
	}
	if p.KingSquare(Black) != E8 {
		t.Fatalf("Black king should start on e8, got %s", p.KingSquare(Black))
	}
}
