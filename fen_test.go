package chess

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		startingFEN,
		"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		p := mustLoadFEN(t, fen)
		if got := p.FEN(); got != fen {
			t.Fatalf("FEN round trip: loaded %q, re-serialized as %q", fen, got)
		}
	}
}

func TestFENWithoutCountersRoundTrip(t *testing.T) {
	p := mustLoadFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 5 12")
	got := p.FENWithoutCounters()
	if got != "r3k2r/8/8/8/8/8/8/R3K2R w KQkq -" {
		t.Fatalf("FENWithoutCounters should omit halfmove/fullmove fields, got %q", got)
	}
	reloaded := mustLoadFEN(t, got)
	if reloaded.HalfMoveClock() != 0 || reloaded.FullMoveNumber() != 1 {
		t.Fatalf("reloading a counters-omitted FEN should fall back to tolerant defaults 0/1, got %d/%d",
			reloaded.HalfMoveClock(), reloaded.FullMoveNumber())
	}
}

func TestFENTolerantDefaults(t *testing.T) {
	p := mustLoadFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if p.HalfMoveClock() != 0 {
		t.Fatalf("missing halfmove clock should default to 0, got %d", p.HalfMoveClock())
	}
	if p.FullMoveNumber() != 1 {
		t.Fatalf("missing fullmove number should default to 1, got %d", p.FullMoveNumber())
	}
}

func TestFENInvalidPlacementRejected(t *testing.T) {
	_, err := LoadFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	if err == nil {
		t.Fatalf("expected an error for a FEN with only 7 ranks")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestFENCastlingRightsSubset(t *testing.T) {
	p := mustLoadFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	if !p.CastleRightsFor(White).Has(CastleKingSide) {
		t.Fatalf("White should hold kingside rights")
	}
	if p.CastleRightsFor(White).Has(CastleQueenSide) {
		t.Fatalf("White should not hold queenside rights")
	}
	if !p.CastleRightsFor(Black).Has(CastleQueenSide) {
		t.Fatalf("Black should hold queenside rights")
	}
	if p.CastleRightsFor(Black).Has(CastleKingSide) {
		t.Fatalf("Black should not hold kingside rights")
	}
}
