package lexer

import "testing"

func TestNaturalOriginExtent(t *testing.T) {
	o := NaturalOrigin(seq([]rune("abc")))
	if o.IsSynthetic() {
		t.Fatalf("NaturalOrigin should not be synthetic")
	}
	if o.Extent().String() != "abc" {
		t.Fatalf("Extent() = %q, want %q", o.Extent().String(), "abc")
	}
}

func TestSyntheticOriginFields(t *testing.T) {
	o := SyntheticOrigin(seq([]rune("///doc")), seq([]rune("#")))
	if !o.IsSynthetic() {
		t.Fatalf("SyntheticOrigin should be synthetic")
	}
	if o.LoweredFrom().String() != "///doc" {
		t.Fatalf("LoweredFrom() = %q, want %q", o.LoweredFrom().String(), "///doc")
	}
	if o.Stringified().String() != "#" {
		t.Fatalf("Stringified() = %q, want %q", o.Stringified().String(), "#")
	}
}

func TestCombineOriginsTwoNatural(t *testing.T) {
	a := NaturalOrigin(seq([]rune("+")))
	b := NaturalOrigin(seq([]rune("=")))
	combined := CombineOrigins(a, b)
	if combined.IsSynthetic() {
		t.Fatalf("combining two natural origins should stay natural")
	}
	if combined.Extent().String() != "+=" {
		t.Fatalf("combined extent = %q, want %q", combined.Extent().String(), "+=")
	}
}

func TestCombineOriginsDegradesToSyntheticWhenEitherSideIs(t *testing.T) {
	synthetic := SyntheticOrigin(seq([]rune("///doc")), seq([]rune("#")))
	natural := NaturalOrigin(seq([]rune("!")))

	combined := CombineOrigins(synthetic, natural)
	if !combined.IsSynthetic() {
		t.Fatalf("combining a synthetic origin with a natural one should stay synthetic")
	}
	if combined.LoweredFrom().String() != "///doc" {
		t.Fatalf("combined LoweredFrom = %q, want the synthetic side's", combined.LoweredFrom().String())
	}

	combined = CombineOrigins(natural, synthetic)
	if !combined.IsSynthetic() || combined.LoweredFrom().String() != "///doc" {
		t.Fatalf("combining natural+synthetic should also degrade to the synthetic side's LoweredFrom")
	}
}
