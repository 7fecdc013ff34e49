package domain_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWallet(t *testing.T) {
	t.Parallel()

	// Checksummed addresses from EIP-55.
	checksummed := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, addr := range checksummed {
		require.Equal(t, strings.ToLower(addr), domain.NormalizeWallet(addr), addr)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
		{"uppercase", "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
		{"surrounding space", "  0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed \n", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"},
		{"bad checksum", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD", ""},
		{"not an address", "hello", ""},
		{"blank", "   ", ""},
		{"short", "0xabc", ""},
		{"long", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed00", ""},
		{"missing prefix", "005aaeb6053f3e94c9b9a09f33669435e7ef1beaed", ""},
		{"non hex", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaeg", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.NormalizeWallet(tt.in))
		})
	}
}
