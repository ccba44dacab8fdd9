package wave

import (
	"math"
	"testing"
)

func TestSineSingleCycle(t *testing.T) {
	buf := make([]float32, 64)
	if err := Fill(buf, Sine, 1, 1.0); err != nil {
		t.Fatalf("fill: %v", err)
	}

	if buf[0] != 0 {
		t.Errorf("sine must start at zero, got %f", buf[0])
	}
	// quarter period peaks at +1
	if math.Abs(float64(buf[16])-1.0) > 1e-6 {
		t.Errorf("expected peak ~1 at sample 16, got %f", buf[16])
	}
	// three-quarter period bottoms at -1
	if math.Abs(float64(buf[48])+1.0) > 1e-6 {
		t.Errorf("expected trough ~-1 at sample 48, got %f", buf[48])
	}
}

func TestVolumeScales(t *testing.T) {
	loud := make([]float32, 64)
	quiet := make([]float32, 64)
	_ = Fill(loud, Sine, 1, 1.0)
	_ = Fill(quiet, Sine, 1, 0.25)

	for i := range loud {
		want := loud[i] * 0.25
		if math.Abs(float64(quiet[i]-want)) > 1e-6 {
			t.Fatalf("sample %d: got %f want %f", i, quiet[i], want)
		}
	}
}

func TestCyclesChangePeriod(t *testing.T) {
	one := make([]float32, 64)
	two := make([]float32, 64)
	_ = Fill(one, Sine, 1, 1.0)
	_ = Fill(two, Sine, 2, 1.0)

	// two cycles in the same table = first half of "two" equals "one"
	// compressed by two.
	for i := 0; i < 32; i++ {
		if math.Abs(float64(two[i]-one[2*i])) > 1e-5 {
			t.Fatalf("sample %d: got %f want %f", i, two[i], one[2*i])
		}
	}
}

func TestSquareIsTwoLevel(t *testing.T) {
	buf := make([]float32, 64)
	_ = Fill(buf, Square, 1, 0.5)
	for i, s := range buf {
		if s != 0.5 && s != -0.5 {
			t.Fatalf("sample %d: square produced %f", i, s)
		}
	}
	if buf[0] != 0.5 || buf[63] != -0.5 {
		t.Error("square should be high for the first half period, low for the second")
	}
}

func TestTriangleEndpoints(t *testing.T) {
	buf := make([]float32, 64)
	_ = Fill(buf, Triangle, 1, 1.0)
	if buf[0] != 0 {
		t.Errorf("triangle must start at zero, got %f", buf[0])
	}
	if math.Abs(float64(buf[16])-1.0) > 1e-6 {
		t.Errorf("expected apex ~1 at sample 16, got %f", buf[16])
	}
	if math.Abs(float64(buf[48])+1.0) > 1e-6 {
		t.Errorf("expected valley ~-1 at sample 48, got %f", buf[48])
	}
}

func TestFillValidation(t *testing.T) {
	buf := make([]float32, 64)

	if err := Fill(buf, Sine, 1, 1.5); err != ErrVolume {
		t.Errorf("volume 1.5: got %v want ErrVolume", err)
	}
	if err := Fill(buf, Sine, 1, -0.1); err != ErrVolume {
		t.Errorf("volume -0.1: got %v want ErrVolume", err)
	}
	if err := Fill(buf, Sine, 0, 1.0); err != ErrCycles {
		t.Errorf("cycles 0: got %v want ErrCycles", err)
	}
	if err := Fill(buf, Sine, 33, 1.0); err != ErrCycles {
		t.Errorf("cycles 33 over 64 frames: got %v want ErrCycles", err)
	}
}

func TestParseShapeRoundTrip(t *testing.T) {
	for _, s := range []Shape{Sine, Square, Saw, Triangle} {
		got, err := ParseShape(s.String())
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip %q: got %v", s, got)
		}
	}
	if _, err := ParseShape("noise"); err == nil {
		t.Error("expected error for unknown shape name")
	}
}
