// Package errs defines the structured failure taxonomy shared by the curve,
// key, signer, bip32 and address packages. Every exported sentinel here is
// meant to be matched with errors.Is by callers; wrapping preserves the
// sentinel while attaching operation-specific context via pkg/errors.
package errs

import "github.com/pkg/errors"

// Sentinel error kinds. Operations wrap one of these with context via Wrap/Wrapf
// so callers can still errors.Is() against the kind while humans get a message.
var (
	ErrInvalidArgument            = errors.New("invalid argument")
	ErrInvalidKey                 = errors.New("invalid key")
	ErrInvalidDigest              = errors.New("invalid digest")
	ErrInvalidSignature           = errors.New("invalid signature")
	ErrSignatureVerificationFailed = errors.New("signature verification failed after signing")
	ErrChecksumMismatch           = errors.New("checksum mismatch")
	ErrInvalidPrefix              = errors.New("invalid network version prefix")
	ErrInvalidPayload             = errors.New("invalid payload structure")
	ErrInvalidLength              = errors.New("invalid length")
	ErrInvalidPaymentID           = errors.New("payment id mismatch")
	ErrDerivationError            = errors.New("derivation error")
	ErrInvalidExtendedKey         = errors.New("invalid extended key")
	ErrInvalidPath                = errors.New("invalid derivation path")
	ErrUnsupportedCurve           = errors.New("unsupported curve")
)

// Wrap attaches msg as context to err while keeping err matchable via errors.Is.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf is Wrap with fmt.Sprintf-style formatting.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
