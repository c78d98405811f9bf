package entity

import (
	"fmt"
	"math/big"
)

var (
	weiPerEth   = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	weiPerMicro = new(big.Int).Exp(big.NewInt(10), big.NewInt(12), nil)
)

// ParseWei parses a base-10 wei string into a big.Int. Invalid or negative
// input yields zero so that malformed upstream data degrades instead of
// corrupting a running sum.
func ParseWei(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return new(big.Int)
	}
	return v
}

// WeiToEth converts a base-10 wei string into a decimal ETH string with six
// fractional digits. The fractional part is truncated, never rounded, so the
// integer part of the result always equals wei / 10^18 exactly.
func WeiToEth(wei string) string {
	v := ParseWei(wei)
	intPart, rem := new(big.Int).QuoRem(v, weiPerEth, new(big.Int))
	frac := new(big.Int).Quo(rem, weiPerMicro)
	return fmt.Sprintf("%s.%06d", intPart.String(), frac.Int64())
}
