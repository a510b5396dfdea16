package address

// Chain configs exercising Base58CheckCodec against two real networks,
// widening spec.md §4.G's single worked "Bitcoin-family" example into
// concrete, reusable Params presets.

// BitcoinMainnetP2PKH carries the 0x00 version byte Bitcoin mainnet
// uses for pay-to-pubkey-hash addresses.
var BitcoinMainnetP2PKH = Params{NetVersion: []byte{0x00}}

// BitcoinTestnetP2PKH carries the 0x6f version byte Bitcoin testnet
// uses for pay-to-pubkey-hash addresses.
var BitcoinTestnetP2PKH = Params{NetVersion: []byte{0x6f}}

// XRPLAccountID is the AccountID prefix the teacher's
// internal/xrpl/xrpl.go hardcodes as AccountIDPrefix; XRPL addresses
// additionally prepend a literal "r", applied by EncodeXRPL below
// rather than folded into Base58CheckCodec's generic pipeline.
var XRPLAccountID = Params{NetVersion: []byte{0x00}}

// EncodeXRPL reproduces the teacher's DeriveXRPLAddress on top of the
// generic codec: Base58CheckCodec produces the Bitcoin-style body, and
// XRPL's convention of prefixing the literal rune 'r' is layered on
// top here, outside the generic pipeline.
func EncodeXRPL(pubKeyBytes []byte) (string, error) {
	body, err := (Base58CheckCodec{}).Encode(pubKeyBytes, XRPLAccountID)
	if err != nil {
		return "", err
	}
	return "r" + body, nil
}
