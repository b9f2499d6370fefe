// Package integrity supplies the message-level check that covers for
// Hamming(7,4)'s silent miscorrection of double-bit errors.
package integrity

import "github.com/zeebo/blake3"

// Check returns the check byte for msg: the first byte of its BLAKE3-256
// digest. One byte keeps the grid overhead at a single Hamming block pair
// while still catching the overwhelming majority of miscorrected frames.
func Check(msg []byte) byte {
	sum := blake3.Sum256(msg)
	return sum[0]
}

// Verify reports whether the received check byte matches msg.
func Verify(msg []byte, check byte) bool {
	return Check(msg) == check
}
