package wave

import (
	"errors"
	"fmt"
	"math"
)

type Shape int

const (
	Sine Shape = iota
	Square
	Saw
	Triangle
)

func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Saw:
		return "saw"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// ParseShape maps a config/API string to a Shape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "saw":
		return Saw, nil
	case "triangle":
		return Triangle, nil
	default:
		return 0, fmt.Errorf("wave: unknown shape %q", name)
	}
}

var (
	ErrVolume = errors.New("wave: volume out of range [0,1]")
	ErrCycles = errors.New("wave: cycles must be >= 1 and <= frames/2")
)

// Fill synthesizes cycles full periods of the given shape across dst,
// scaled by volume. The table is meant to be looped by the playback side,
// so dst always holds a whole number of periods and the waveform is
// continuous across the wrap.
func Fill(dst []float32, shape Shape, cycles int, volume float32) error {
	if volume < 0 || volume > 1 {
		return ErrVolume
	}
	if cycles < 1 || cycles*2 > len(dst) {
		return ErrCycles
	}

	n := len(dst)
	switch shape {
	case Sine:
		k := float64(cycles) * 2 * math.Pi / float64(n)
		for i := 0; i < n; i++ {
			dst[i] = float32(math.Sin(k*float64(i))) * volume
		}
	case Square:
		for i := 0; i < n; i++ {
			if phase(i, n, cycles) < 0.5 {
				dst[i] = volume
			} else {
				dst[i] = -volume
			}
		}
	case Saw:
		for i := 0; i < n; i++ {
			dst[i] = float32(2*phase(i, n, cycles)-1) * volume
		}
	case Triangle:
		for i := 0; i < n; i++ {
			p := phase(i, n, cycles)
			switch {
			case p < 0.25:
				dst[i] = float32(4*p) * volume
			case p < 0.75:
				dst[i] = float32(2-4*p) * volume
			default:
				dst[i] = float32(4*p-4) * volume
			}
		}
	default:
		return fmt.Errorf("wave: unknown shape %d", shape)
	}
	return nil
}

// phase returns the position within the current period, in [0,1).
func phase(i, n, cycles int) float64 {
	p := float64(i*cycles) / float64(n)
	return p - math.Floor(p)
}
