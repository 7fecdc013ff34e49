package domain

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

const walletHexLen = 40

// NormalizeWallet trims addr and returns its lowercase form, or "" when addr
// is not 0x followed by 40 hex digits. Mixed-case input must carry a valid
// EIP-55 checksum; all-lowercase and all-uppercase input is taken as is.
func NormalizeWallet(addr string) string {
	addr = strings.TrimSpace(addr)
	if len(addr) != 2+walletHexLen || !strings.HasPrefix(addr, "0x") {
		return ""
	}

	digits := addr[2:]
	if _, err := hex.DecodeString(digits); err != nil {
		return ""
	}

	lower := strings.ToLower(digits)
	if digits != lower && digits != strings.ToUpper(digits) && checksum(lower) != digits {
		return ""
	}
	return "0x" + lower
}

// checksum applies EIP-55 casing to a lowercase hex address without its
// prefix: a letter is upper-cased when the matching nibble of
// keccak256(address) is 8 or more.
func checksum(lower string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}
