// Package id generates compact, lexicographically sortable identifiers
// for request correlation and visitor tracking.
package id

import (
	"crypto/rand"
	"time"
)

// Crockford Base32 alphabet. Drops I, L, O and U so identifiers survive
// being read aloud or retyped from a log line.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// encodeUint fills dst with the lowest len(dst)*5 bits of v,
// most significant group first.
func encodeUint(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = alphabet[v&0x1F]
		v >>= 5
	}
}

// encodeBytes streams src into dst five bits at a time. A trailing
// partial group is left-aligned and zero-padded.
func encodeBytes(dst, src []byte) {
	var acc uint16
	var bits uint
	n := 0
	for _, b := range src {
		acc = acc<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			dst[n] = alphabet[(acc>>bits)&0x1F]
			n++
		}
	}
	if bits > 0 {
		dst[n] = alphabet[(acc<<(5-bits))&0x1F]
	}
}

// NewULID returns a 26-character ULID: 48 bits of millisecond timestamp
// followed by 80 random bits, Crockford Base32 encoded. Plain string
// comparison orders ULIDs by creation time.
func NewULID() string {
	var out [26]byte
	encodeUint(out[:10], uint64(time.Now().UnixMilli()))

	var entropy [10]byte
	rand.Read(entropy[:]) // cannot fail since go1.24

	encodeBytes(out[10:], entropy[:])
	return string(out[:])
}
