// Package flip models accidental bit flips in stored HDBool words.
package flip

import (
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/spacemeshos/hdbool"
)

const wordBits = 8

// Bit returns h with the bit at pos inverted. pos must be in [0, 7].
func Bit(h hdbool.HDBool, pos uint) hdbool.HDBool {
	if pos >= wordBits {
		panic(fmt.Sprintf("flip: bit position out of range [0..7]: %d", pos))
	}
	return hdbool.HDBool(h.Uint8() ^ (1 << pos))
}

// Mask returns h with every bit set in mask inverted.
func Mask(h hdbool.HDBool, mask uint8) hdbool.HDBool {
	return hdbool.HDBool(h.Uint8() ^ mask)
}

// Masks returns all 8-bit masks with exactly k bits set, in ascending order.
func Masks(k int) []uint8 {
	if k < 0 || k > wordBits {
		return nil
	}

	masks := make([]uint8, 0, Binomial(wordBits, k))
	for m := 0; m < 1<<wordBits; m++ {
		if bits.OnesCount8(uint8(m)) == k {
			masks = append(masks, uint8(m))
		}
	}
	return masks
}

// Random returns h with k distinct bits inverted, chosen by rng.
// k is clamped to [0, 8].
func Random(h hdbool.HDBool, k int, rng *rand.Rand) hdbool.HDBool {
	if k <= 0 {
		return h
	}
	if k > wordBits {
		k = wordBits
	}

	var mask uint8
	for _, pos := range rng.Perm(wordBits)[:k] {
		mask |= 1 << pos
	}
	return Mask(h, mask)
}

// Binomial returns n choose k.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}
