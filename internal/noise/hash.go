package noise

import "math/bits"

// xxHash32 primes. The mixing is a reduced xxHash32: one accumulator, one
// round per eaten value and the regular avalanche on read. Changing any of
// these values changes every generated field.
const (
	primeB uint32 = 0x85EBCA77
	primeC uint32 = 0xC2B2AE3D
	primeD uint32 = 0x27D4EB2F
	primeE uint32 = 0x165667B1
)

// Hash is a small xxHash accumulator. It is a value type: Eat and Offset
// return a new hash and never modify the receiver.
type Hash uint32

// SeedHash starts a hash from a seed.
func SeedHash(seed int32) Hash {
	return Hash(uint32(seed) + primeE)
}

// Eat mixes one integer coordinate into the hash.
func (h Hash) Eat(data int32) Hash {
	return Hash(bits.RotateLeft32(uint32(h)+uint32(data)*primeC, 17) * primeD)
}

// Offset adds n to the accumulator. SeedHash(s).Offset(n) equals SeedHash(s+n).
func (h Hash) Offset(n int32) Hash {
	return Hash(uint32(h) + uint32(n))
}

// Bits returns the avalanched 32-bit value of the hash.
func (h Hash) Bits() uint32 {
	avalanche := uint32(h)
	avalanche ^= avalanche >> 15
	avalanche *= primeB
	avalanche ^= avalanche >> 13
	avalanche *= primeC
	avalanche ^= avalanche >> 16
	return avalanche
}

// BitsAsFloat01 maps count bits starting at shift to [0, 1].
func (h Hash) BitsAsFloat01(count, shift uint) float64 {
	mask := uint32(1)<<count - 1
	return float64(h.Bits()>>shift&mask) / float64(mask)
}

// Floats01A returns the lowest byte of the hash as a value in [0, 1].
func (h Hash) Floats01A() float64 { return h.BitsAsFloat01(8, 0) }

// Floats01B returns the second byte of the hash as a value in [0, 1].
func (h Hash) Floats01B() float64 { return h.BitsAsFloat01(8, 8) }

// Floats01C returns the third byte of the hash as a value in [0, 1].
func (h Hash) Floats01C() float64 { return h.BitsAsFloat01(8, 16) }

// Floats01D returns the highest byte of the hash as a value in [0, 1].
func (h Hash) Floats01D() float64 { return h.BitsAsFloat01(8, 24) }

// Hash4 holds one independent hash per batch lane.
type Hash4 [4]Hash

// SeedHash4 seeds all four lanes with the same seed.
func SeedHash4(seed int32) Hash4 {
	h := SeedHash(seed)
	return Hash4{h, h, h, h}
}

// Eat mixes one coordinate per lane.
func (h Hash4) Eat(data [4]int32) Hash4 {
	for i := range h {
		h[i] = h[i].Eat(data[i])
	}
	return h
}

// Offset adds n to every lane.
func (h Hash4) Offset(n int32) Hash4 {
	for i := range h {
		h[i] = h[i].Offset(n)
	}
	return h
}

// Bits returns the avalanched value of every lane.
func (h Hash4) Bits() [4]uint32 {
	var out [4]uint32
	for i := range h {
		out[i] = h[i].Bits()
	}
	return out
}

// SelectHash4 picks b for lanes where mask is set and a elsewhere.
func SelectHash4(a, b Hash4, mask [4]bool) Hash4 {
	for i := range a {
		if mask[i] {
			a[i] = b[i]
		}
	}
	return a
}
