// Package decimal wraps github.com/shopspring/decimal with the fixed
// precision and epsilon conventions the cargo engine relies on. Every
// geometric comparison, weight accumulation, and axle-load computation in
// internal/geom, internal/packer, internal/axle, and internal/palletizer
// goes through here; float64 appears at the model result boundary and in
// the ranking scores (packer candidate score, axle compliance score).
package decimal

import (
	"math"

	shopspring "github.com/shopspring/decimal"
)

// D is the engine's decimal type. Add, Sub and Mul are exact; Div rounds
// to 20 decimal places (DivisionPrecision, set via init below).
type D = shopspring.Decimal

// Eps is the tolerance used for all containment, overlap, and support
// comparisons in the decimal domain.
var Eps = shopspring.NewFromFloat(1e-9)

func init() {
	shopspring.DivisionPrecision = 20
}

// Zero, One are convenience constants.
var (
	Zero = shopspring.Zero
	One  = shopspring.NewFromInt(1)
)

// PosInf stands in for "no limit" on optional constraints (max_stack_height,
// max_stack_layers worth, max_stack_load) per spec.md §7's local-recovery
// rule: "missing optional constraints use ∞".
var PosInf = shopspring.NewFromFloat(math.MaxFloat64)

// FromFloat64 and ToFloat64 are the only points where float64 crosses into
// or out of the decimal domain (model result structs and JSON I/O).
func FromFloat64(f float64) D { return shopspring.NewFromFloat(f) }
func ToFloat64(d D) float64   { return d.InexactFloat64() }

func FromInt(i int) D { return shopspring.NewFromInt(int64(i)) }

// Add, Sub, Mul, Div, Sqrt are thin forwarders kept here so callers never
// import shopspring/decimal directly — this package is the only seam.
func Add(a, b D) D { return a.Add(b) }
func Sub(a, b D) D { return a.Sub(b) }
func Mul(a, b D) D { return a.Mul(b) }
func Div(a, b D) D { return a.DivRound(b, int32(shopspring.DivisionPrecision)) }

// Sqrt computes the square root by Newton-Raphson iteration in the decimal
// domain (shopspring/decimal has no native Sqrt). Converges quadratically;
// 30 iterations is far more than enough for 20 decimal places starting
// from a float64 seed.
func Sqrt(a D) D {
	if a.Sign() <= 0 {
		return Zero
	}
	x := shopspring.NewFromFloat(math.Sqrt(a.InexactFloat64()))
	if x.Sign() <= 0 {
		x = One
	}
	two := shopspring.NewFromInt(2)
	for i := 0; i < 30; i++ {
		x = x.Add(Div(a, x)).Div(two)
	}
	return x
}

// Cmp returns -1, 0, 1 per a.Cmp(b).
func Cmp(a, b D) int { return a.Cmp(b) }

// RoundHalfEven rounds to the given number of decimal places using
// round-half-to-even (banker's rounding).
func RoundHalfEven(d D, places int32) D { return d.RoundBank(places) }

// Truncate rounds toward zero.
func Truncate(d D, places int32) D { return d.Truncate(places) }

// Ceil rounds toward positive infinity.
func Ceil(d D) D { return d.Ceil() }

// Floor rounds toward negative infinity.
func Floor(d D) D { return d.Floor() }

// Max and Min are the decimal-domain equivalents of math.Max/Min.
func Max(a, b D) D {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func Min(a, b D) D {
	if a.LessThan(b) {
		return a
	}
	return b
}

// EpsEqual reports whether a and b are equal within Eps.
func EpsEqual(a, b D) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Eps)
}

// EpsLTE reports whether a <= b within Eps (a.LessThanOrEqual(b.Add(Eps))).
func EpsLTE(a, b D) bool {
	return a.LessThanOrEqual(b.Add(Eps))
}

// EpsGTE reports whether a >= b within Eps.
func EpsGTE(a, b D) bool {
	return a.GreaterThanOrEqual(b.Sub(Eps))
}

// IsPosInf reports whether d represents the "no limit" sentinel.
func IsPosInf(d D) bool {
	return d.GreaterThanOrEqual(PosInf)
}
