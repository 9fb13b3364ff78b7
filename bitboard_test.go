package chess

import "testing"

func TestBitboardOccupied(t *testing.T) {
	bb := EmptyBB.Set(B3)

	if bb.Occupied(B3) != true {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, true, false)
	}

	if bb.Occupied(C4) != false {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, false, true)
	}
}

func TestBitboardHasOnlyOneBit(t *testing.T) {
	cases := []struct {
		bb   Bitboard
		want bool
	}{
		{EmptyBB, false},
		{SquareBB(A1), true},
		{SquareBB(A1) | SquareBB(H8), false},
		{FullBB, false},
	}
	for _, c := range cases {
		if got := c.bb.HasOnlyOneBit(); got != c.want {
			t.Fatalf("HasOnlyOneBit(%s) = %t, want %t", c.bb, got, c.want)
		}
	}
}

func TestBitboardPopLSB(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(H8)

	sq1, next1, ok1 := bb.PopLSB()
	if !ok1 || sq1 != A1 {
		t.Fatalf("PopLSB 1: expected (%s, true), got (%s, %t)", A1, sq1, ok1)
	}
	if next1 != SquareBB(H8) {
		t.Fatalf("PopLSB 1: expected remaining %s, got %s", SquareBB(H8), next1)
	}

	sq2, next2, ok2 := next1.PopLSB()
	if !ok2 || sq2 != H8 {
		t.Fatalf("PopLSB 2: expected (%s, true), got (%s, %t)", H8, sq2, ok2)
	}
	if next2 != EmptyBB {
		t.Fatalf("PopLSB 2: expected remaining %s, got %s", EmptyBB, next2)
	}

	if _, _, ok3 := next2.PopLSB(); ok3 {
		t.Fatalf("PopLSB 3: expected (NoSquare, false), got ok=true")
	}
}

func TestBitboardScan(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(B2) | SquareBB(H8)
	expected := []Square{A1, B2, H8}
	result := bb.Scan()

	if len(result) != len(expected) {
		t.Fatalf("Scan: expected %d squares, got %d", len(expected), len(result))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Fatalf("Scan: expected %v, got %v", expected, result)
		}
	}

	if len(EmptyBB.Scan()) != 0 {
		t.Fatalf("Scan (empty): expected 0 squares, got %d", len(EmptyBB.Scan()))
	}
}

func TestSquareColorAlternates(t *testing.T) {
	if SquareColor(A1) == SquareColor(B1) {
		t.Fatalf("adjacent squares A1 and B1 must differ in color")
	}
	if SquareColor(A1) != Black {
		t.Fatalf("A1 must be a dark square, got %s", SquareColor(A1))
	}
	if SquareColor(H8) != Black {
		t.Fatalf("H8 must be a dark square, got %s", SquareColor(H8))
	}
}

func TestGenerateRookAttacksBlocked(t *testing.T) {
	// Rook on d4 blocked by a piece on d6 and one on f4.
	blockers := SquareBB(D6) | SquareBB(F4)
	attacks := GenerateRookAttacks(D4, blockers)

	want := SquareBB(D5) | SquareBB(D6) | // blocked ray stops on the blocker
		SquareBB(D3) | SquareBB(D2) | SquareBB(D1) |
		SquareBB(E4) | SquareBB(F4) |
		SquareBB(C4) | SquareBB(B4) | SquareBB(A4)

	if attacks != want {
		t.Fatalf("GenerateRookAttacks(D4, blocked) = %s, want %s", attacks, want)
	}
}

func TestGenerateBishopAttacksBlocked(t *testing.T) {
	// Bishop on d4 blocked by a piece on f6.
	blockers := SquareBB(F6)
	attacks := GenerateBishopAttacks(D4, blockers)

	if attacks&SquareBB(G7) != 0 {
		t.Fatalf("GenerateBishopAttacks(D4, blocked) should not see past F6, got %s", attacks)
	}
	if attacks&SquareBB(F6) == 0 {
		t.Fatalf("GenerateBishopAttacks(D4, blocked) must include the blocker itself, got %s", attacks)
	}
	if attacks&SquareBB(A1) == 0 {
		t.Fatalf("GenerateBishopAttacks(D4, blocked) must still reach the unobstructed diagonal, got %s", attacks)
	}
}

func BenchmarkBitboardScan(b *testing.B) {
	bb := SquareBB(A1) | SquareBB(B2) | SquareBB(H8)
	for i := 0; i < b.N; i++ {
		bb.Scan()
	}
}
