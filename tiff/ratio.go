package tiff

import (
	"fmt"
	"math/big"
)

// Ratio is an exact rational value as stored by the Ratio and Signed Ratio
// field types. The zero denominator is legal and is kept as read.
type Ratio struct {
	Num int64
	Den int64
}

// Gcd returns the greatest common divisor of the magnitudes of a and b.
// Gcd(a, 1) and Gcd(1, b) are 1, Gcd(a, 0) is |a| and Gcd(0, b) is |b|.
func Gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for {
		switch {
		case a == 1 || b == 1:
			return 1
		case b == 0:
			return a
		}
		a, b = b, a%b
	}
}

// Reduce returns r divided through by the gcd of its terms. Ratios whose
// gcd is not greater than 1 are returned unchanged.
func (r Ratio) Reduce() Ratio {
	if div := Gcd(r.Num, r.Den); div > 1 {
		return Ratio{Num: r.Num / div, Den: r.Den / div}
	}
	return r
}

// String renders the reduced ratio as "num/den", or "num" when the reduced
// denominator is 1.
func (r Ratio) String() string {
	r = r.Reduce()
	if r.Den == 1 {
		return fmt.Sprint(r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Rat converts r to a big.Rat. It returns nil when the denominator is zero.
func (r Ratio) Rat() *big.Rat {
	if r.Den == 0 {
		return nil
	}
	return big.NewRat(r.Num, r.Den)
}
