package chess

import "testing"

func TestCastleRightHasAndWithout(t *testing.T) {
	full := CastleKingAndQueenSide
	if !full.Has(CastleKingSide) || !full.Has(CastleQueenSide) {
		t.Fatalf("CastleKingAndQueenSide must report both sides held")
	}
	kingOnly := full.Without(CastleQueenSide)
	if kingOnly != CastleKingSide {
		t.Fatalf("Without(QueenSide) on full rights should leave CastleKingSide, got %v", kingOnly)
	}
	if kingOnly.Without(CastleKingSide) != CastleNone {
		t.Fatalf("revoking the last held side should yield CastleNone")
	}
}

func TestCastleRightWith(t *testing.T) {
	r := CastleNone.With(CastleKingSide).With(CastleQueenSide)
	if r != CastleKingAndQueenSide {
		t.Fatalf("granting both sides individually should yield CastleKingAndQueenSide, got %v", r)
	}
}

func TestDefaultContextGeometry(t *testing.T) {
	ctx := DefaultContext()
	wk := ctx.KingSide[sideOrdinal(White)]
	if wk.KingFrom != E1 || wk.KingTo != G1 || wk.RookFrom != H1 || wk.RookTo != F1 {
		t.Fatalf("unexpected White kingside castle geometry: %+v", wk)
	}
	bq := ctx.QueenSide[sideOrdinal(Black)]
	if bq.KingFrom != E8 || bq.KingTo != C8 || bq.RookFrom != A8 || bq.RookTo != D8 {
		t.Fatalf("unexpected Black queenside castle geometry: %+v", bq)
	}
}
