// Package rational provides exact fraction arithmetic.
//
// Probabilities computed by the oracle are ratios of leaf counts, so they are
// represented as reduced fractions rather than floats. All operations stay in
// integer arithmetic; nothing here ever rounds.
package rational

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator is returned by New when the denominator is zero.
var ErrZeroDenominator = errors.New("rational: denominator must not be zero")

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("rational: division by zero")

// Rational is an exact fraction in lowest terms. The denominator is always
// positive; the sign lives on the numerator. The canonical zero is 0/1.
type Rational struct {
	num int64
	den int64
}

// New creates a reduced Rational from a numerator and denominator.
// Returns ErrZeroDenominator when den is zero.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return reduce(num, den), nil
}

// MustNew is New for values known to be valid. It panics on a zero
// denominator, so it is meant for literals and tests.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("rational: MustNew(%d, %d): %v", num, den, err))
	}
	return r
}

// reduce normalizes sign onto the numerator and divides out the gcd.
// Callers guarantee den != 0.
func reduce(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return Rational{num: num / g, den: den / g}
}

// Zero returns 0/1.
func Zero() Rational {
	return Rational{num: 0, den: 1}
}

// One returns 1/1.
func One() Rational {
	return Rational{num: 1, den: 1}
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Num returns the signed numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the positive denominator.
func (r Rational) Den() int64 {
	if r.den == 0 {
		// zero value of the struct, treated as canonical zero
		return 1
	}
	return r.den
}

// Add returns r + o, reduced.
func (r Rational) Add(o Rational) Rational {
	return reduce(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

// Sub returns r - o, reduced.
func (r Rational) Sub(o Rational) Rational {
	return r.Add(o.Neg())
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.Den()}
}

// Mul returns r * o, reduced.
func (r Rational) Mul(o Rational) Rational {
	return reduce(r.num*o.num, r.Den()*o.Den())
}

// Div returns r / o. Returns ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, ErrDivisionByZero
	}
	return reduce(r.num*o.Den(), r.Den()*o.num), nil
}

// Cmp compares r and o by cross multiplication, avoiding any float
// conversion. It returns -1 if r < o, 0 if r == o and +1 if r > o.
func (r Rational) Cmp(o Rational) int {
	left := r.num * o.Den()
	right := o.num * r.Den()
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r and o represent the same rational number.
func (r Rational) Equal(o Rational) bool {
	return r.Cmp(o) == 0
}

// Float64 converts to a float for display purposes only.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders "n/d", or just "n" for whole numbers.
func (r Rational) String() string {
	if r.Den() == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func gcd(a, b int64) int64 {
	for b > 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
