package entity

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWei(t *testing.T) {
	assert.Equal(t, "0", ParseWei("").String())
	assert.Equal(t, "0", ParseWei("not-a-number").String())
	assert.Equal(t, "0", ParseWei("-5").String())
	assert.Equal(t, "123456789012345678901234567890", ParseWei("123456789012345678901234567890").String())
}

func TestWeiToEth(t *testing.T) {
	assert.Equal(t, "0.000000", WeiToEth("0"))
	assert.Equal(t, "1.000000", WeiToEth("1000000000000000000"))
	assert.Equal(t, "1.500000", WeiToEth("1500000000000000000"))
	assert.Equal(t, "0.000021", WeiToEth("21000000000000"))
	// Truncated, never rounded up.
	assert.Equal(t, "0.999999", WeiToEth("999999999999999999"))
	assert.Equal(t, "0.000000", WeiToEth("999999999999"))
}

// The integer-ETH part of the conversion must round-trip losslessly: for any
// wei amount, the part before the decimal point is exactly wei / 10^18.
func TestWeiToEthIntegerPartLossless(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"999999999999999999",
		"1000000000000000000",
		"1000000000000000001",
		"42000000000000000000",
		"123456789012345678901234567890",
	}
	for _, wei := range cases {
		ethStr := WeiToEth(wei)
		intPart := strings.SplitN(ethStr, ".", 2)[0]

		expected := new(big.Int).Quo(ParseWei(wei), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
		assert.Equal(t, expected.String(), intPart, "wei=%s", wei)
	}
}

func TestShortAddress(t *testing.T) {
	assert.Equal(t, "0x4752...ad24", ShortAddress("0x4752ba5dbc23f44d87826276bf6fd6b1c372ad24"))
	assert.Equal(t, "0xabc", ShortAddress("0xabc"))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t, "0xabcdef", NormalizeAddress("  0xABCdef "))
}
