package rng

import "testing"

// Vectors below are well-known java.util.Random outputs, used to pin our
// LCG to be bit-exact with the JVM implementation it mirrors.
func TestNext32MatchesJavaRandom(t *testing.T) {
	r := New(0)
	got := r.Next(32)
	want := int32(-1155484576)
	if got != want {
		t.Fatalf("Next(32) on seed 0 = %d, want %d", got, want)
	}
}

func TestNext31Sequence(t *testing.T) {
	r := New(42)
	want := []int32{1562431130, 117392763, 1467211248, 102948884, 662969970}
	for i, w := range want {
		if got := r.Next(31); got != w {
			t.Fatalf("draw %d: got %d want %d", i, got, w)
		}
	}
}

func TestNextIntNonPowerOfTwoSequence(t *testing.T) {
	r := New(42)
	want := []int32{0, 3, 8, 4, 0}
	for i, w := range want {
		if got := r.NextInt(10); got != w {
			t.Fatalf("draw %d: got %d want %d", i, got, w)
		}
	}
}

func TestNextIntPowerOfTwo(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		v := r.NextInt(4)
		if v < 0 || v >= 4 {
			t.Fatalf("NextInt(4) out of range: %d", v)
		}
	}
}

func TestNextIntZeroBoundReturnsZero(t *testing.T) {
	r := New(7)
	if got := r.NextInt(0); got != 0 {
		t.Fatalf("NextInt(0) = %d, want 0", got)
	}
}

func TestNextFloatRange(t *testing.T) {
	r := New(123)
	for i := 0; i < 1000; i++ {
		f := r.NextFloat()
		if f < 0 || f >= 1 {
			t.Fatalf("NextFloat out of [0,1): %v", f)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 50; i++ {
		if a.NextLong() != b.NextLong() {
			t.Fatalf("diverging streams from identical seed at draw %d", i)
		}
	}
}

func TestSetRegionSeedDeterministic(t *testing.T) {
	a := &Rand{}
	a.SetRegionSeed(12345, 3, -7, 165745295)
	b := &Rand{}
	b.SetRegionSeed(12345, 3, -7, 165745295)
	if a.NextInt(20) != b.NextInt(20) {
		t.Fatalf("SetRegionSeed not deterministic")
	}
}

func TestSetCarverSeedDeterministic(t *testing.T) {
	a := &Rand{}
	a.SetCarverSeed(555, 10, -3)
	b := &Rand{}
	b.SetCarverSeed(555, 10, -3)
	if a.NextLong() != b.NextLong() {
		t.Fatalf("SetCarverSeed not deterministic")
	}
}

func TestInvertStepRoundTrip(t *testing.T) {
	r := New(0xDEADBEEF)
	state0 := r.seed
	next := (state0*Mult + Add) & Mask48
	got := InvertStep(next)
	if got != state0 {
		t.Fatalf("InvertStep(step(s)) = %d, want %d", got, state0)
	}
}

func TestMultInvIsModularInverse(t *testing.T) {
	mult, multInv := Mult, MultInv
	if (mult*multInv)&Mask48 != 1 {
		t.Fatalf("MultInv is not the modular inverse of Mult mod 2^48")
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int32 }{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Fatalf("FloorDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloorMod(t *testing.T) {
	cases := []struct{ a, m, want int32 }{
		{7, 4, 3},
		{-7, 4, 1},
		{-1, 4, 3},
		{0, 4, 0},
	}
	for _, c := range cases {
		if got := FloorMod(c.a, c.m); got != c.want {
			t.Fatalf("FloorMod(%d,%d) = %d, want %d", c.a, c.m, got, c.want)
		}
	}
}

func TestToSigned48(t *testing.T) {
	if got := ToSigned48(0); got != 0 {
		t.Fatalf("ToSigned48(0) = %d", got)
	}
	full := uint64(1)<<48 - 1 // all 48 bits set -> -1
	if got := ToSigned48(full); got != -1 {
		t.Fatalf("ToSigned48(all-ones) = %d, want -1", got)
	}
}
