// Package config provides the typed per-chain configuration records the
// bip32 and address packages take as explicit parameters (spec.md §9's
// "explicit config records, not globals" design note), replacing the
// teacher's package-level AppConfig singleton with a value type callers
// construct and pass down instead of mutating through a shared global.
package config

import (
	"github.com/sopage/blockchain-utils-go/internal/address"
	"github.com/sopage/blockchain-utils-go/internal/bip32"
)

// CoinParams bundles the network versions and address parameters a
// single chain needs: BIP-32 extended-key prefixes plus the address
// codec's Params. Not every field applies to every chain — a chain with
// no address codec leaves Address zeroed.
type CoinParams struct {
	Name     string
	Variant  bip32.Variant
	Versions bip32.NetVersions
	Address  address.Params
}

// Bitcoin is the BIP-32/P2PKH configuration for Bitcoin mainnet.
var Bitcoin = CoinParams{
	Name:     "bitcoin",
	Variant:  bip32.VariantSecp256k1,
	Versions: bip32.BitcoinMainnet,
	Address:  address.BitcoinMainnetP2PKH,
}

// BitcoinTestnet mirrors Bitcoin for the testnet network versions.
var BitcoinTestnet = CoinParams{
	Name:     "bitcoin-testnet",
	Variant:  bip32.VariantSecp256k1,
	Versions: bip32.BitcoinTestnet,
	Address:  address.BitcoinTestnetP2PKH,
}

// Registry looks up a CoinParams by name.
type Registry map[string]CoinParams

// DefaultRegistry is the built-in set of chain configurations this
// module ships with; callers may build their own Registry instead.
var DefaultRegistry = Registry{
	Bitcoin.Name:        Bitcoin,
	BitcoinTestnet.Name: BitcoinTestnet,
}

// Lookup returns the named CoinParams and whether it was found.
func (r Registry) Lookup(name string) (CoinParams, bool) {
	c, ok := r[name]
	return c, ok
}
