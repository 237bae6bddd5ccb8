package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bech32Body(n int) string {
	return strings.Repeat(bech32Charset, n/len(bech32Charset)+1)[:n]
}

func TestIsPayoutAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected bool
	}{
		{name: "Sapling", address: "zs1" + bech32Body(75), expected: true},
		{name: "Sapling testnet", address: "ztestsapling1" + bech32Body(75), expected: true},
		{name: "Unified", address: "u1" + bech32Body(140), expected: true},
		{name: "Transparent", address: "t1" + strings.Repeat("Z", 33), expected: true},
		{name: "Sapling too short", address: "zs1" + bech32Body(40), expected: false},
		{name: "Sapling with uppercase", address: "zs1" + strings.ToUpper(bech32Body(75)), expected: false},
		{name: "Transparent with zero", address: "t1" + strings.Repeat("0", 33), expected: false},
		{name: "Bitcoin", address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", expected: false},
		{name: "Empty", address: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPayoutAddress(tt.address))
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://github.com/acme/pull/1"))
	assert.True(t, IsURL("http://localhost:8080/x"))
	assert.False(t, IsURL("ftp://files.example.com"))
	assert.False(t, IsURL("not a url"))
	assert.False(t, IsURL("https://"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("alice@example.com"))
	assert.False(t, IsEmail("Alice <alice@example.com>"))
	assert.False(t, IsEmail("alice"))
}
