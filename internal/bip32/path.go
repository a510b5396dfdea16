package bip32

import (
	"strconv"
	"strings"

	"github.com/sopage/blockchain-utils-go/internal/errs"
)

// ParsePath parses a BIP-32 path string ("m/44'/0'/0'/0/0") into a
// sequence of Index values. '\'' or 'h' marks a segment hardened
// (spec.md §4.F "Path parsing"). Unlike the teacher's
// ParseDerivationPath, hardened notation is accepted, not rejected —
// spec.md requires it; see DESIGN.md.
func ParsePath(path string) ([]Index, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errs.Wrap(errs.ErrInvalidPath, "path must not be empty")
	}
	if !strings.HasPrefix(path, "m") && !strings.HasPrefix(path, "M") {
		return nil, errs.Wrapf(errs.ErrInvalidPath, "path must start with 'm', got %q", path)
	}
	rest := path[1:]
	if rest == "" {
		return []Index{}, nil
	}
	if !strings.HasPrefix(rest, "/") {
		return nil, errs.Wrapf(errs.ErrInvalidPath, "expected '/' after 'm', got %q", path)
	}
	rest = strings.TrimPrefix(rest, "/")
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return []Index{}, nil
	}

	segments := strings.Split(rest, "/")
	indices := make([]Index, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return nil, errs.Wrap(errs.ErrInvalidPath, "empty path segment")
		}
		hardened := false
		if strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") || strings.HasSuffix(seg, "H") {
			hardened = true
			seg = seg[:len(seg)-1]
		}
		if seg == "" {
			return nil, errs.Wrap(errs.ErrInvalidPath, "missing index before hardened marker")
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, errs.Wrapf(errs.ErrInvalidPath, "invalid index %q", seg)
		}
		if n >= uint64(HardenedOffset) {
			return nil, errs.Wrapf(errs.ErrInvalidPath, "index %d overflows the non-hardened range", n)
		}
		idx := Index(uint32(n))
		if hardened {
			idx = Hardened(uint32(n))
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// Derive walks indices from master using CKDPriv (for hardened segments)
// or either CKDPriv/CKDPub depending on master's Kind, stepwise — deriving
// along m/a/b/c equals stepwise derivation along m/a, then /b, then /c
// (spec.md property 10).
func Derive(master ExtendedKey, indices []Index) (ExtendedKey, error) {
	current := master
	for _, idx := range indices {
		var err error
		if current.Kind == KindPrivate {
			current, err = CKDPriv(current, idx)
		} else {
			current, err = CKDPub(current, idx)
		}
		if err != nil {
			return ExtendedKey{}, err
		}
	}
	return current, nil
}
