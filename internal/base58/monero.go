// Package base58 implements the Base58-Monero block codec from spec.md
// §4.G/§9: a fixed 8-byte-block ↔ 11-char-block encoding, distinct from
// standard (libbtc-style) Base58 used elsewhere in this module for
// Bitcoin/XRPL addresses. No example repo in the corpus implements this
// codec; it is built directly from the spec's block-size/partial-tail
// description and cross-checked against Monero's own reference scheme.
package base58

import (
	"github.com/sopage/blockchain-utils-go/internal/errs"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	fullBlockSize     = 8
	fullEncodedSize   = 11
	checksumBlockSize = 8
)

// encodedBlockSizes[n] is the encoded character count for an n-byte
// partial tail block, n in [1,8]; index 0 is unused.
var encodedBlockSizes = [9]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

var alphabetIndex [256]int8

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i, c := range alphabet {
		alphabetIndex[byte(c)] = int8(i)
	}
}

// Encode renders data as Base58-Monero, processing data in 8-byte
// blocks (11 chars each) with a shorter final block per
// encodedBlockSizes when len(data) is not a multiple of 8.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	out := make([]byte, 0, (len(data)/fullBlockSize+1)*fullEncodedSize)
	for len(data) >= fullBlockSize {
		out = append(out, encodeBlock(data[:fullBlockSize], fullEncodedSize)...)
		data = data[fullBlockSize:]
	}
	if len(data) > 0 {
		out = append(out, encodeBlock(data, encodedBlockSizes[len(data)])...)
	}
	return string(out)
}

func encodeBlock(block []byte, encodedSize int) []byte {
	buf := make([]byte, len(block))
	copy(buf, block)

	// Treat buf as a big-endian big integer and repeatedly divide by 58,
	// collecting remainders least-significant-digit-first.
	digits := make([]byte, encodedSize)
	for i := encodedSize - 1; i >= 0; i-- {
		rem := divmod58(buf)
		digits[i] = alphabet[rem]
	}
	return digits
}

// divmod58 divides the big-endian big integer held in buf by 58
// in place and returns the remainder.
func divmod58(buf []byte) byte {
	var rem uint64
	for i, b := range buf {
		cur := rem*256 + uint64(b)
		buf[i] = byte(cur / 58)
		rem = cur % 58
	}
	return byte(rem)
}

// Decode parses a Base58-Monero string back into bytes, the inverse of
// Encode's 8-byte/11-char block scheme.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}
	full := len(s) / fullEncodedSize
	lastLen := len(s) % fullEncodedSize
	lastRawLen := 0
	if lastLen > 0 {
		var ok bool
		lastRawLen, ok = rawSizeForEncoded(lastLen)
		if !ok {
			return nil, errs.Wrapf(errs.ErrInvalidLength, "invalid base58-monero tail length %d", lastLen)
		}
	}

	out := make([]byte, 0, full*fullBlockSize+lastRawLen)
	for i := 0; i < full; i++ {
		block, err := decodeBlock(s[i*fullEncodedSize:(i+1)*fullEncodedSize], fullBlockSize)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	if lastLen > 0 {
		block, err := decodeBlock(s[full*fullEncodedSize:], lastRawLen)
		if err != nil {
			return nil, err
		}
		out = append(out, block...)
	}
	return out, nil
}

func rawSizeForEncoded(encoded int) (int, bool) {
	for raw, enc := range encodedBlockSizes {
		if raw == 0 {
			continue
		}
		if enc == encoded {
			return raw, true
		}
	}
	return 0, false
}

func decodeBlock(chars string, rawSize int) ([]byte, error) {
	acc := make([]byte, rawSize)
	for _, ch := range []byte(chars) {
		idx := alphabetIndex[ch]
		if idx < 0 {
			return nil, errs.Wrapf(errs.ErrInvalidArgument, "invalid base58-monero character %q", ch)
		}
		carry := uint64(idx)
		for i := rawSize - 1; i >= 0; i-- {
			cur := uint64(acc[i])*58 + carry
			acc[i] = byte(cur & 0xff)
			carry = cur >> 8
		}
		if carry != 0 {
			return nil, errs.Wrap(errs.ErrInvalidArgument, "base58-monero block overflow")
		}
	}
	return acc, nil
}
