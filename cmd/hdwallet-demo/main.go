// Command hdwallet-demo is a flag-driven demonstrator over the core
// library: seed (or BIP-39 mnemonic) → master key → path derivation →
// extended-key serialization → optional chain address encoding. It is
// a trimmed-down replacement for the teacher's main.go: no vault-file
// recovery, no ZIP handling, no browser UI — only this module's
// address/key/derivation surface, in the teacher's flag-then-banner
// CLI shape.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/sopage/blockchain-utils-go/internal/address"
	"github.com/sopage/blockchain-utils-go/internal/bip32"
	"github.com/sopage/blockchain-utils-go/internal/config"
	"github.com/sopage/blockchain-utils-go/internal/log"
)

func main() {
	mnemonic := flag.String("mnemonic", "", "BIP-39 mnemonic to derive the seed from.")
	passphrase := flag.String("passphrase", "", "(Optional) BIP-39 passphrase.")
	seedHex := flag.String("seed-hex", "", "Hex-encoded seed, alternative to -mnemonic.")
	path := flag.String("path", "m/44'/0'/0'/0/0", "BIP-32 derivation path.")
	variant := flag.String("variant", "secp256k1", "Curve variant: secp256k1, nist256p1, ed25519, ed25519-kholaw.")
	coin := flag.String("coin", "bitcoin", "Chain config name for address encoding (see internal/config).")
	flag.Parse()

	logger := log.Default()

	seed, err := resolveSeed(*mnemonic, *passphrase, *seedHex)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	v, err := parseVariant(*variant)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	master, err := bip32.FromSeed(v, seed)
	if err != nil {
		logger.Errorf("master key generation failed: %v", err)
		os.Exit(1)
	}

	indices, err := bip32.ParsePath(*path)
	if err != nil {
		logger.Errorf("invalid path %q: %v", *path, err)
		os.Exit(1)
	}

	child, err := bip32.Derive(master, indices)
	if err != nil {
		logger.Errorf("derivation failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("path:       %s\n", *path)
	fmt.Printf("public key: %s\n", hex.EncodeToString(child.Public))
	if child.Private != nil {
		fmt.Printf("private key: %s\n", hex.EncodeToString(child.Private))
	}

	coinParams, ok := config.DefaultRegistry.Lookup(*coin)
	versions := bip32.BitcoinMainnet
	if ok {
		versions = coinParams.Versions
	}
	xkey, err := bip32.String(child, versions)
	if err != nil {
		logger.Errorf("extended key serialization failed: %v", err)
		os.Exit(1)
	}
	fmt.Printf("extended key: %s\n", xkey)

	if !ok {
		logger.Infof("no address config for %q; skipping address encoding", *coin)
		return
	}
	addr, err := (address.Base58CheckCodec{}).Encode(child.Public, coinParams.Address)
	if err != nil {
		logger.Errorf("address encoding failed: %v", err)
		os.Exit(1)
	}
	fmt.Printf("address:    %s\n", addr)
}

func resolveSeed(mnemonic, passphrase, seedHex string) ([]byte, error) {
	if seedHex != "" {
		return hex.DecodeString(seedHex)
	}
	return bip32.SeedFromMnemonic(mnemonic, passphrase)
}

func parseVariant(s string) (bip32.Variant, error) {
	switch s {
	case "secp256k1":
		return bip32.VariantSecp256k1, nil
	case "nist256p1":
		return bip32.VariantNIST256p1, nil
	case "ed25519":
		return bip32.VariantEd25519SLIP10, nil
	case "ed25519-kholaw":
		return bip32.VariantEd25519Kholaw, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}
