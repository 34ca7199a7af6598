package board

import "math/bits"

// DigitSet is a set of candidate digits 1..9, stored as a bitmask.
// Bit n (1-based) is set when digit n is still possible.
type DigitSet uint16

// FullSet returns the set containing every digit 1..9.
func FullSet() DigitSet { return DigitSet(0x3fe) }

func (s DigitSet) Has(d uint8) bool { return d >= 1 && d <= 9 && s&(1<<d) != 0 }

func (s DigitSet) Remove(d uint8) DigitSet { return s &^ (1 << d) }

// Count reports how many digits remain in the set.
func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single remaining digit, if exactly one remains.
func (s DigitSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// Digits lists the remaining digits in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for d := uint8(1); d <= 9; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
