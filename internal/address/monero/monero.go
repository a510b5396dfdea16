// Package monero implements the standard/integrated Monero address
// pipeline named in spec.md §4.G as the representative complex address
// codec: net_ver‖spend_pub‖view_pub[‖payment_id]‖Keccak256-checksum,
// Base58-Monero text encoding, and length-probing decode.
package monero

import (
	"github.com/sopage/blockchain-utils-go/internal/base58"
	"github.com/sopage/blockchain-utils-go/internal/curve"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/hashutil"
)

const (
	pubKeySize    = 32
	paymentIDSize = 8
	checksumSize  = 4
)

// Params configures a Monero codec instance: the 1-byte network version
// (standard vs. integrated addresses normally use distinct versions)
// and, for integrated addresses, the 8-byte payment ID.
type Params struct {
	NetVersion byte
	PaymentID  []byte // nil/empty for a standard address
}

// Codec is the Monero address codec. Its Encode/Decode take this
// package's Params rather than address.Params, so it does not satisfy the
// address.Encoder and address.Decoder interfaces.
type Codec struct{}

// Encode builds a Monero address from a 32-byte compressed spend
// public key and a 32-byte compressed view public key (concatenated as
// spendPub‖viewPub, per spec.md §6's {spend_pub‖view_pub} layout).
func (Codec) Encode(spendViewPub []byte, params Params) (string, error) {
	if len(spendViewPub) != 2*pubKeySize {
		return "", errs.Wrapf(errs.ErrInvalidLength, "expected %d bytes of spend+view pubkeys, got %d", 2*pubKeySize, len(spendViewPub))
	}
	spendPub := spendViewPub[:pubKeySize]
	viewPub := spendViewPub[pubKeySize:]
	if err := validatePubKey(spendPub); err != nil {
		return "", err
	}
	if err := validatePubKey(viewPub); err != nil {
		return "", err
	}

	payload := make([]byte, 0, 1+2*pubKeySize+paymentIDSize)
	payload = append(payload, params.NetVersion)
	payload = append(payload, spendPub...)
	payload = append(payload, viewPub...)
	if len(params.PaymentID) > 0 {
		if len(params.PaymentID) != paymentIDSize {
			return "", errs.Wrapf(errs.ErrInvalidPaymentID, "payment id must be %d bytes, got %d", paymentIDSize, len(params.PaymentID))
		}
		payload = append(payload, params.PaymentID...)
	}

	checksum := hashutil.Keccak256(payload)[:checksumSize]
	return base58.Encode(append(payload, checksum...)), nil
}

// Decode length-probes addr: it first tries the standard payload size
// (1+2*32), then the integrated size (1+2*32+8); on the integrated
// path it requires params.PaymentID to match the embedded payment ID
// exactly. Returns the 64-byte spendPub‖viewPub.
func (Codec) Decode(addr string, params Params) ([]byte, error) {
	raw, err := base58.Decode(addr)
	if err != nil {
		return nil, err
	}

	standardLen := 1 + 2*pubKeySize + checksumSize
	integratedLen := standardLen + paymentIDSize

	var body, checksum []byte
	var embeddedPaymentID []byte
	switch len(raw) {
	case standardLen:
		body, checksum = raw[:standardLen-checksumSize], raw[standardLen-checksumSize:]
	case integratedLen:
		body, checksum = raw[:integratedLen-checksumSize], raw[integratedLen-checksumSize:]
		embeddedPaymentID = body[1+2*pubKeySize:]
	default:
		return nil, errs.Wrapf(errs.ErrInvalidLength, "decoded monero address has unexpected length %d", len(raw))
	}

	want := hashutil.Keccak256(body)[:checksumSize]
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, errs.Wrap(errs.ErrChecksumMismatch, "monero address checksum mismatch")
		}
	}

	if body[0] != params.NetVersion {
		return nil, errs.Wrapf(errs.ErrInvalidPrefix, "unexpected network version 0x%02x", body[0])
	}

	if embeddedPaymentID != nil {
		if len(params.PaymentID) != paymentIDSize {
			return nil, errs.Wrap(errs.ErrInvalidPaymentID, "integrated address decode requires a payment id to compare against")
		}
		for i := range embeddedPaymentID {
			if embeddedPaymentID[i] != params.PaymentID[i] {
				return nil, errs.Wrap(errs.ErrInvalidPaymentID, "embedded payment id does not match supplied payment id")
			}
		}
	}

	spendPub := body[1 : 1+pubKeySize]
	viewPub := body[1+pubKeySize : 1+2*pubKeySize]
	if err := validatePubKey(spendPub); err != nil {
		return nil, err
	}
	if err := validatePubKey(viewPub); err != nil {
		return nil, err
	}

	out := make([]byte, 0, 2*pubKeySize)
	out = append(out, spendPub...)
	out = append(out, viewPub...)
	return out, nil
}

// validatePubKey requires the bytes to decode to a valid, non-identity
// point on Edwards25519 — spec.md §9 resolves the "should Monero
// pubkey bytes be validated" Open Question in favor of validating.
func validatePubKey(b []byte) error {
	c, err := curve.ByID(curve.Ed25519)
	if err != nil {
		return err
	}
	if !c.IsOnCurve(b) {
		return errs.Wrap(errs.ErrInvalidKey, "monero public key is not a valid curve point")
	}
	return nil
}
