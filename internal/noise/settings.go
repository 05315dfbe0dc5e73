package noise

import (
	"errors"
	"fmt"
)

// ErrSettingsRange reports settings outside their documented ranges.
var ErrSettingsRange = errors.New("noise settings out of range")

const (
	MinOctaves    = 1
	MaxOctaves    = 6
	MinLacunarity = 2
	MaxLacunarity = 4
)

// Settings are the numeric parameters of one fractal evaluation.
type Settings struct {
	Seed int32 `json:"seed" yaml:"seed"`
	// Frequency is the number of lattice cells per unit of input.
	Frequency int32 `json:"frequency" yaml:"frequency"`
	// Octaves is the number of layers summed by the fractal combiner.
	Octaves int32 `json:"octaves" yaml:"octaves"`
	// Lacunarity multiplies the frequency between octaves.
	Lacunarity int32 `json:"lacunarity" yaml:"lacunarity"`
	// Persistence multiplies the amplitude between octaves.
	Persistence float32 `json:"persistence" yaml:"persistence"`
}

// DefaultSettings returns a single octave at frequency 4.
func DefaultSettings() Settings {
	return Settings{
		Frequency:   4,
		Octaves:     1,
		Lacunarity:  2,
		Persistence: 0.5,
	}
}

// Validate checks every field against its range. The evaluators assume
// validated settings and never check them per sample.
func (s Settings) Validate() error {
	switch {
	case s.Frequency < 1:
		return fmt.Errorf("%w: frequency %d must be >= 1", ErrSettingsRange, s.Frequency)
	case s.Octaves < MinOctaves || s.Octaves > MaxOctaves:
		return fmt.Errorf("%w: octaves %d must be in [%d,%d]", ErrSettingsRange, s.Octaves, MinOctaves, MaxOctaves)
	case s.Lacunarity < MinLacunarity || s.Lacunarity > MaxLacunarity:
		return fmt.Errorf("%w: lacunarity %d must be in [%d,%d]", ErrSettingsRange, s.Lacunarity, MinLacunarity, MaxLacunarity)
	case !(s.Persistence >= 0 && s.Persistence <= 1):
		return fmt.Errorf("%w: persistence %g must be in [0,1]", ErrSettingsRange, s.Persistence)
	}
	return nil
}

// Clamp pulls every field into its range. NaN persistence becomes 0.
func (s Settings) Clamp() Settings {
	if s.Frequency < 1 {
		s.Frequency = 1
	}
	s.Octaves = clampInt32(s.Octaves, MinOctaves, MaxOctaves)
	s.Lacunarity = clampInt32(s.Lacunarity, MinLacunarity, MaxLacunarity)
	switch {
	case s.Persistence > 1:
		s.Persistence = 1
	case !(s.Persistence >= 0):
		s.Persistence = 0
	}
	return s
}

func clampInt32(v, min, max int32) int32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
