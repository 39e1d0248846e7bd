package secret64

import (
	"hash/crc32"
	"sort"
)

// stdAlphabet is the canonical Base64 symbol ordering that every derived
// alphabet is a permutation of.
const stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// deriveAlphabet permutes the standard alphabet by the key. Each symbol is
// weighted by its own CRC32 reduced modulo the CRC32 of the key (even
// positions) or of the reversed key (odd positions), then the symbols are
// stable-sorted by descending weight. The same key always yields the same
// permutation, and both hashes cover every key byte.
func deriveAlphabet(key []byte) [64]byte {
	rev := make([]byte, len(key))
	for i, b := range key {
		rev[len(key)-1-i] = b
	}

	h := crc32.ChecksumIEEE(key)
	rh := crc32.ChecksumIEEE(rev)

	// A zero checksum would make the modulus undefined.
	if h == 0 {
		h = ^uint32(0)
	}

	if rh == 0 {
		rh = ^uint32(0)
	}

	type weighted struct {
		sym byte
		w   uint32
	}

	ws := make([]weighted, len(stdAlphabet))

	for i := 0; i < len(stdAlphabet); i++ {
		w := crc32.ChecksumIEEE([]byte{stdAlphabet[i]})
		if i%2 == 0 {
			w %= h
		} else {
			w %= rh
		}

		ws[i] = weighted{sym: stdAlphabet[i], w: w}
	}

	sort.SliceStable(ws, func(i, j int) bool { return ws[i].w > ws[j].w })

	var alphabet [64]byte
	for i, e := range ws {
		alphabet[i] = e.sym
	}

	return alphabet
}
