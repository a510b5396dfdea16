// Package hashutil collects the hash and MAC primitives the rest of the
// core builds on: SHA-256/512 for checksums, HMAC-SHA-512 for BIP-32
// derivation, Keccak-256 for EVM-style addressing and personal-message
// signing, and RIPEMD-160/Hash160 for Bitcoin-family pubkey hashing.
package hashutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for BIP32 hash160
	"golang.org/x/crypto/sha3"
)

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// DoubleSHA256 returns SHA-256(SHA-256(data)), used by Base58Check checksums.
func DoubleSHA256(data []byte) []byte {
	return SHA256(SHA256(data))
}

// Checksum4 returns the first 4 bytes of DoubleSHA256(data), the Base58Check checksum.
func Checksum4(data []byte) [4]byte {
	d := DoubleSHA256(data)
	var out [4]byte
	copy(out[:], d[:4])
	return out
}

// SHA512 returns the SHA-512 digest of data.
func SHA512(data []byte) []byte {
	h := sha512.Sum512(data)
	return h[:]
}

// HMACSHA512 computes I = HMAC-SHA512(key, data), the primitive underlying
// every BIP-32/SLIP-0010 master-key and child-key derivation step.
func HMACSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Keccak256 returns the Keccak-256 digest used by EVM-style address
// derivation and Monero checksums.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// RIPEMD160 returns the RIPEMD-160 digest of data.
func RIPEMD160(data []byte) []byte {
	h := ripemd160.New()
	h.Write(data)
	return h.Sum(nil)
}

// Hash160 returns RIPEMD160(SHA256(data)), used for Bitcoin-family pubkey
// hashes and BIP-32 parent fingerprints.
func Hash160(data []byte) []byte {
	return RIPEMD160(SHA256(data))
}

// Fingerprint4 returns the first 4 bytes of Hash160(compressedPubKey), the
// BIP-32 parent fingerprint for a Weierstrass public key.
func Fingerprint4(compressedPubKey []byte) [4]byte {
	h := Hash160(compressedPubKey)
	var out [4]byte
	copy(out[:], h[:4])
	return out
}

// PBKDF2SHA512 derives dkLen bytes from password/salt using PBKDF2-HMAC-SHA512,
// the function BIP-39 uses to stretch a mnemonic into a seed (2048 iterations,
// 64-byte output). Exposed here so callers can reproduce a BIP-39 seed without
// depending on the mnemonic wordlist machinery itself.
func PBKDF2SHA512(password, salt []byte, iterations, dkLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, dkLen, sha512.New)
}
