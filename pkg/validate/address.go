package validate

import "strings"

const (
	bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	base58Charset = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

type addressFormat struct {
	prefix  string
	charset string
	minLen  int
	maxLen  int
}

// Length bounds include the prefix. Unified addresses grow with the number of receivers.
var addressFormats = []addressFormat{
	{prefix: "zs1", charset: bech32Charset, minLen: 78, maxLen: 78},
	{prefix: "ztestsapling1", charset: bech32Charset, minLen: 88, maxLen: 88},
	{prefix: "u1", charset: bech32Charset, minLen: 106, maxLen: 256},
	{prefix: "utest1", charset: bech32Charset, minLen: 110, maxLen: 256},
	{prefix: "t1", charset: base58Charset, minLen: 35, maxLen: 35},
	{prefix: "t3", charset: base58Charset, minLen: 35, maxLen: 35},
	{prefix: "tm", charset: base58Charset, minLen: 35, maxLen: 35},
	{prefix: "t2", charset: base58Charset, minLen: 35, maxLen: 35},
}

// IsPayoutAddress reports whether s looks like a shielded, unified or transparent address.
// Checksums are left to the payment gateway.
func IsPayoutAddress(s string) bool {
	for _, f := range addressFormats {
		if !strings.HasPrefix(s, f.prefix) {
			continue
		}
		if len(s) < f.minLen || len(s) > f.maxLen {
			return false
		}
		return onlyFrom(s[len(f.prefix):], f.charset)
	}
	return false
}

func onlyFrom(s, charset string) bool {
	for _, r := range s {
		if !strings.ContainsRune(charset, r) {
			return false
		}
	}
	return true
}
