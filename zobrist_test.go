package chess

import "testing"

func TestZobristTableIsDeterministic(t *testing.T) {
	a := buildZobristTable(zobristSeed)
	b := buildZobristTable(zobristSeed)
	if a != b {
		t.Fatalf("buildZobristTable must be a pure function of its seed")
	}
}

func TestZobristPieceSquareIndicesDistinct(t *testing.T) {
	seen := make(map[uint64]bool)
	for p := WhitePawn; p <= BlackKing; p++ {
		for sq := A1; sq <= H8; sq++ {
			v := zobristPieceSquare(p, sq)
			if seen[v] {
				t.Fatalf("zobristPieceSquare collision at piece=%d square=%s", p, sq)
			}
			seen[v] = true
		}
	}
}

func TestThreefoldRepetition(t *testing.T) {
	p := mustLoadFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	shuffle := []Move{
		NewMove(E1, D1, NoPieceType),
		NewMove(E8, D8, NoPieceType),
		NewMove(D1, E1, NoPieceType),
		NewMove(D8, E8, NoPieceType),
	}
	for i := 0; i < 2; i++ {
		for _, m := range shuffle {
			if !p.DoMove(m, true) {
				t.Fatalf("shuffle move %s should be legal", m)
			}
		}
	}
	if !p.IsThreefoldRepetition() {
		t.Fatalf("returning to the same position three times must be detected")
	}
}

func TestVerifyHashAfterLoadFEN(t *testing.T) {
	p := mustLoadFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if !p.VerifyHash() {
		t.Fatalf("hash after LoadFEN must match a from-scratch recomputation")
	}
}
