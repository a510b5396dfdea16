package bip32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathTable(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    []Index
	}{
		{name: "root", input: "m", expected: []Index{}},
		{name: "root with slash", input: "m/", expected: []Index{}},
		{name: "simple", input: "m/44/0/0", expected: []Index{44, 0, 0}},
		{name: "hardened apostrophe", input: "m/44'/0'/0'", expected: []Index{Hardened(44), Hardened(0), Hardened(0)}},
		{name: "hardened h suffix", input: "m/44h/0h", expected: []Index{Hardened(44), Hardened(0)}},
		{name: "mixed hardened and soft", input: "m/44'/0'/0'/0/0", expected: []Index{Hardened(44), Hardened(0), Hardened(0), 0, 0}},
		{name: "missing m prefix", input: "44/0", expectError: true},
		{name: "missing slash after m", input: "m44", expectError: true},
		{name: "empty segment", input: "m/44//0", expectError: true},
		{name: "overflow index", input: "m/4294967296", expectError: true},
		{name: "non numeric", input: "m/abc", expectError: true},
		{name: "empty string rejected", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
