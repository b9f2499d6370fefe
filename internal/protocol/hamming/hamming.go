// Package hamming implements the Hamming(7,4) block code protecting every
// message nibble on the grid.
package hamming

// Block is one 7-bit code word. Positions 1..7 live at indices 0..6,
// arranged [p1 p2 d1 p3 d2 d3 d4].
type Block [7]byte

// Outcome reports what Decode had to do to recover the nibble.
type Outcome int

const (
	OutcomeClean     Outcome = iota // parity held, no correction
	OutcomeCorrected                // one bit flipped back into place
)

func (o Outcome) String() string {
	if o == OutcomeCorrected {
		return "corrected"
	}
	return "clean"
}

// parityChecks[i] lists the 1-based block positions covered by parity bit
// p(i+1). A failing check contributes 1<<i to the syndrome, so the
// syndrome value is itself the 1-based position of a single flipped bit.
var parityChecks = [3][4]int{
	{1, 3, 5, 7},
	{2, 3, 6, 7},
	{4, 5, 6, 7},
}

// dataPositions are the block positions carrying d1..d4.
var dataPositions = [4]int{3, 5, 6, 7}

// Encode produces the code word for the low 4 bits of nib, d1 most
// significant.
func Encode(nib byte) Block {
	d1 := nib >> 3 & 1
	d2 := nib >> 2 & 1
	d3 := nib >> 1 & 1
	d4 := nib & 1

	var b Block
	b[2], b[4], b[5], b[6] = d1, d2, d3, d4
	b[0] = d1 ^ d2 ^ d4
	b[1] = d1 ^ d3 ^ d4
	b[3] = d2 ^ d3 ^ d4
	return b
}

// Decode recovers the nibble from a possibly corrupted block. A non-zero
// syndrome names the single flipped position, which is repaired before the
// data bits are extracted.
//
// Hamming(7,4) cannot tell a double-bit error apart from a different
// single-bit error: two flips decode without complaint into a wrong
// nibble. Callers that need to catch that case must layer an integrity
// check over the whole message; see internal/integrity.
func Decode(b Block) (byte, Outcome) {
	syndrome := 0
	for i, check := range parityChecks {
		parity := byte(0)
		for _, pos := range check {
			parity ^= b[pos-1] & 1
		}
		if parity != 0 {
			syndrome |= 1 << i
		}
	}

	outcome := OutcomeClean
	if syndrome != 0 {
		b[syndrome-1] ^= 1
		outcome = OutcomeCorrected
	}

	var nib byte
	for _, pos := range dataPositions {
		nib = nib<<1 | b[pos-1]&1
	}
	return nib, outcome
}
