package address

import (
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/sopage/blockchain-utils-go/internal/errs"
	"github.com/sopage/blockchain-utils-go/internal/hashutil"
)

// Base58CheckCodec implements the Bitcoin-family pipeline from spec.md
// §4.G: payload = net_ver‖key_hash; addr = Base58(payload‖first4(SHA256(
// SHA256(payload)))). Generalized from the teacher's
// internal/xrpl/xrpl.go:DeriveXRPLAddress (sha256→ripemd160→prefix→
// double-sha256 checksum→base58), parameterizing the fixed 0x00 XRPL
// AccountID prefix into Params.NetVersion.
type Base58CheckCodec struct{}

func (Base58CheckCodec) Encode(pubKeyBytes []byte, params Params) (string, error) {
	if err := requireNetVersion(params); err != nil {
		return "", err
	}
	if len(pubKeyBytes) == 0 {
		return "", errs.Wrap(errs.ErrInvalidKey, "public key bytes required")
	}
	keyHash := hashutil.Hash160(pubKeyBytes)
	payload := append(append([]byte{}, params.NetVersion...), keyHash...)
	checksum := hashutil.Checksum4(payload)
	return base58.Encode(append(payload, checksum[:]...)), nil
}

func (Base58CheckCodec) Decode(addr string, params Params) ([]byte, error) {
	if err := requireNetVersion(params); err != nil {
		return nil, err
	}
	decoded := base58.Decode(addr)
	if len(decoded) < len(params.NetVersion)+4 {
		return nil, errs.Wrap(errs.ErrInvalidLength, "decoded address too short")
	}
	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	want := hashutil.Checksum4(payload)
	for i := range checksum {
		if checksum[i] != want[i] {
			return nil, errs.Wrap(errs.ErrChecksumMismatch, "address checksum mismatch")
		}
	}
	if len(payload) < len(params.NetVersion) {
		return nil, errs.Wrap(errs.ErrInvalidPayload, "payload shorter than net_ver")
	}
	prefix := payload[:len(params.NetVersion)]
	for i := range prefix {
		if prefix[i] != params.NetVersion[i] {
			return nil, errs.Wrap(errs.ErrInvalidPrefix, "network version mismatch")
		}
	}
	return payload[len(params.NetVersion):], nil
}
