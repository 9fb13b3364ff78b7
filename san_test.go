package chess

import "testing"

func TestSANEncodeDecodeRoundTrip(t *testing.T) {
	p := mustLoadFEN(t, startingFEN)
	sequence := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"}

	for _, want := range sequence {
		m, err := DecodeSAN(p, want)
		if err != nil {
			t.Fatalf("DecodeSAN(%q): %v", want, err)
		}
		got, err := EncodeSAN(p, m)
		if err != nil {
			t.Fatalf("EncodeSAN after decoding %q: %v", want, err)
		}
		if got != want {
			t.Fatalf("SAN round trip: decoded %q then re-encoded as %q", want, got)
		}
		if !p.DoMove(m, true) {
			t.Fatalf("move %q should apply", want)
		}
	}
}

func TestSANDisambiguationByFile(t *testing.T) {
	// Knights on b1 and f1 both attack d2; SAN must disambiguate by file.
	p := mustLoadFEN(t, "4k3/8/8/8/8/8/8/1N3N1K w - - 0 1")
	m, err := DecodeSAN(p, "Nbd2")
	if err != nil {
		t.Fatalf("DecodeSAN(Nbd2): %v", err)
	}
	if m.From() != B1 {
		t.Fatalf("Nbd2 should originate from b1, got %s", m.From())
	}
	san, err := EncodeSAN(p, m)
	if err != nil {
		t.Fatalf("EncodeSAN: %v", err)
	}
	if san != "Nbd2" {
		t.Fatalf("EncodeSAN(Nbd2) = %q, want Nbd2", san)
	}
}

func TestSANCastle(t *testing.T) {
	p := mustLoadFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	m, err := DecodeSAN(p, "O-O")
	if err != nil {
		t.Fatalf("DecodeSAN(O-O): %v", err)
	}
	if m.From() != E1 || m.To() != G1 {
		t.Fatalf("O-O should be e1g1, got %s%s", m.From(), m.To())
	}
	san, err := EncodeSAN(p, m)
	if err != nil {
		t.Fatalf("EncodeSAN(O-O): %v", err)
	}
	if san != "O-O" {
		t.Fatalf("EncodeSAN(O-O) = %q, want O-O", san)
	}
}

func TestSANCheckAndMateSuffix(t *testing.T) {
	// Fool's mate: 1. f3 e5 2. g4 Qh4#
	p := mustLoadFEN(t, startingFEN)
	var lastSAN string
	for _, coord := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := ParseCoordMove(coord)
		if err != nil {
			t.Fatalf("ParseCoordMove(%q): %v", coord, err)
		}
		if lastSAN, err = EncodeSAN(p, m); err != nil {
			t.Fatalf("EncodeSAN(%q): %v", coord, err)
		}
		if !p.DoMove(m, true) {
			t.Fatalf("move %q should apply", coord)
		}
	}
	if lastSAN != "Qh4#" {
		t.Fatalf("EncodeSAN(d8h4) = %q, want Qh4#", lastSAN)
	}
	if !p.IsMated() {
		t.Fatalf("fool's mate position should be checkmate")
	}
}

func TestSANPawnCapture(t *testing.T) {
	p := mustLoadFEN(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	m := NewMove(E4, D5, NoPieceType)
	san, err := EncodeSAN(p, m)
	if err != nil {
		t.Fatalf("EncodeSAN: %v", err)
	}
	if san != "exd5" {
		t.Fatalf("EncodeSAN(exd5) = %q, want exd5", san)
	}
}

func TestSANPromotion(t *testing.T) {
	p := mustLoadFEN(t, "8/4P2k/8/8/8/8/8/4K3 w - - 0 1")
	m := NewMove(E7, E8, Queen)
	san, err := EncodeSAN(p, m)
	if err != nil {
		t.Fatalf("EncodeSAN: %v", err)
	}
	if san != "e8=Q" {
		t.Fatalf("EncodeSAN(promotion) = %q, want e8=Q", san)
	}
	decoded, err := DecodeSAN(p, "e8=Q")
	if err != nil {
		t.Fatalf("DecodeSAN(e8=Q): %v", err)
	}
	if !decoded.Equal(m) {
		t.Fatalf("DecodeSAN(e8=Q) = %s, want %s", decoded, m)
	}
}
