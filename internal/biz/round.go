package biz

import (
	"math"
	"math/big"
)

const roundPrec = 256

// RoundHalfUp rounds the exact binary value of x to scale fractional digits,
// resolving ties away from zero.
func RoundHalfUp(x float64, scale int) float64 {
	return roundScale(x, scale, true)
}

// RoundHalfDown rounds the exact binary value of x to scale fractional digits,
// resolving ties toward zero.
func RoundHalfDown(x float64, scale int) float64 {
	return roundScale(x, scale, false)
}

func roundScale(x float64, scale int, tieAway bool) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return x
	}
	pow := new(big.Float).SetPrec(roundPrec).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil))

	v := new(big.Float).SetPrec(roundPrec).SetFloat64(math.Abs(x))
	v.Mul(v, pow)

	n, _ := v.Int(nil)
	frac := new(big.Float).SetPrec(roundPrec).Sub(v, new(big.Float).SetPrec(roundPrec).SetInt(n))
	switch c := frac.Cmp(big.NewFloat(0.5)); {
	case c > 0, c == 0 && tieAway:
		n.Add(n, big.NewInt(1))
	}

	r, _ := new(big.Float).SetPrec(roundPrec).Quo(new(big.Float).SetPrec(roundPrec).SetInt(n), pow).Float64()
	if x < 0 {
		return -r
	}
	return r
}
