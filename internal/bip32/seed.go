package bip32

import (
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/tyler-smith/go-bip39"
)

// SeedFromMnemonic turns a BIP-39 mnemonic and optional passphrase into
// the 64-byte seed FromSeed expects (SPEC_FULL.md §10's supplemented
// BIP-39 helper; spec.md §6 notes "BIP-39 seeds are 64 bytes" as the
// expected master-key input shape).
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errs.Wrap(errs.ErrInvalidArgument, "invalid BIP-39 mnemonic")
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}
