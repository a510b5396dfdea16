// Package address implements the pluggable address codec framework from
// spec.md §4.G: an Encoder/Decoder capability pair over a typed Params
// record (replacing the source's dynamic kwargs bag per spec.md §9), a
// generic Base58Check pipeline grounded on the teacher's internal/xrpl/
// xrpl.go, and the Monero standard/integrated pipeline in the monero
// subpackage as the representative complex case.
package address

import "github.com/sopage/blockchain-utils-go/internal/errs"

// Params is the explicit, typed configuration record spec.md §6 calls
// the address codec's "recognized" vocabulary: net_ver, pub_vkey,
// payment_id, hrp.
type Params struct {
	NetVersion  []byte
	PubSpendKey []byte
	PubViewKey  []byte
	PaymentID   []byte
	HRP         string
}

// Encoder turns key material into a chain-specific address string.
type Encoder interface {
	Encode(pubKeyBytes []byte, params Params) (string, error)
}

// Decoder turns a chain-specific address string back into key material.
type Decoder interface {
	Decode(addr string, params Params) ([]byte, error)
}

func requireNetVersion(p Params) error {
	if len(p.NetVersion) == 0 {
		return errs.Wrap(errs.ErrInvalidArgument, "net_ver is required")
	}
	return nil
}
