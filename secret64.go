// Package secret64 implements Base64 encoding with a key-permuted alphabet.
//
// The 64 symbols of the standard Base64 alphabet are reordered
// deterministically from a secret key, so encoded output cannot be read
// without knowing the key. Identical keys always produce identical alphabets,
// which makes output stable across processes and implementations.
//
// The padding symbol is always '=' and is never permuted by the key, so the
// padding grammar of an encoded string is recognizable independently of the
// key. Two implementations sharing a key must both pin this policy to
// interoperate.
//
// This is an obfuscation scheme, not a cipher. It offers no resistance to
// cryptanalysis and must not be used to protect sensitive data.
package secret64

import (
	"errors"

	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"
)

var (
	// ErrInvalidKey is returned by New when the key is empty. A zero-length
	// key cannot seed a permutation.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidLength is returned by Decode when the input length is not a
	// positive multiple of four symbols.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidSymbol is returned by Decode when the input contains a
	// character outside the codec's alphabet, including text encoded under a
	// different key whose symbol placement is detectably foreign.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidPadding is returned by Decode when padding symbols appear
	// anywhere except as a trailing run of at most two characters.
	ErrInvalidPadding = errors.New("invalid padding")
)

// padSymbol terminates encoded output; it is fixed and never key-permuted.
const padSymbol = '='

// A Codec encodes and decodes Base64 text using a key-permuted alphabet.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	alphabet [64]byte
	reverse  [256]int8
}

// New returns a Codec whose alphabet is permuted by the given key, or
// ErrInvalidKey if the key is empty.
func New(key []byte) (*Codec, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}

	c := &Codec{alphabet: deriveAlphabet(key)}

	for i := range c.reverse {
		c.reverse[i] = -1
	}

	for i, s := range c.alphabet {
		c.reverse[s] = int8(i)
	}

	return c, nil
}

// Encode returns data encoded with the codec's alphabet. The output length is
// 4*ceil(n/3) for n input bytes; empty input encodes to an empty string.
func (c *Codec) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	out := make([]byte, 0, (len(data)+2)/3*4)

	var i int

	for ; i+3 <= len(data); i += 3 {
		n := uint32(data[i])<<16 | uint32(data[i+1])<<8 | uint32(data[i+2])
		out = append(out,
			c.alphabet[n>>18&63], c.alphabet[n>>12&63], c.alphabet[n>>6&63], c.alphabet[n&63])
	}

	switch len(data) - i {
	case 1:
		n := uint32(data[i]) << 16
		out = append(out, c.alphabet[n>>18&63], c.alphabet[n>>12&63], padSymbol, padSymbol)
	case 2:
		n := uint32(data[i])<<16 | uint32(data[i+1])<<8
		out = append(out, c.alphabet[n>>18&63], c.alphabet[n>>12&63], c.alphabet[n>>6&63], padSymbol)
	}

	return string(out)
}

// Decode returns the bytes encoded in text, the exact inverse of Encode for
// the same key. It returns ErrInvalidLength, ErrInvalidPadding, or
// ErrInvalidSymbol for malformed input; text encoded under a different key
// either fails or decodes to bytes unrelated to the original.
func (c *Codec) Decode(text string) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}

	if len(text)%4 != 0 {
		return nil, ErrInvalidLength
	}

	// Padding may only occupy the final one or two positions.
	var pad int

	for i := 0; i < len(text); i++ {
		if text[i] != padSymbol {
			continue
		}

		if i < len(text)-2 {
			return nil, ErrInvalidPadding
		}

		for j := i; j < len(text); j++ {
			if text[j] != padSymbol {
				return nil, ErrInvalidPadding
			}
		}

		pad = len(text) - i

		break
	}

	out := make([]byte, 0, len(text)/4*3)

	var n, bits uint32

	for i := 0; i < len(text)-pad; i++ {
		v := c.reverse[text[i]]
		if v < 0 {
			return nil, ErrInvalidSymbol
		}

		n = n<<6 | uint32(v)
		bits += 6

		if bits >= 8 {
			bits -= 8
			out = append(out, byte(n>>bits))
		}
	}

	return out, nil
}

// Fingerprint returns a short base58 tag of the codec's derived alphabet.
// Peers sharing a key can compare fingerprints to confirm their codecs agree
// on the permutation without revealing the key itself.
func (c *Codec) Fingerprint() string {
	sum := blake3.Sum256(c.alphabet[:])

	return base58.Encode(sum[:16])
}
