// Package i128 implements 128-bit signed integers with saturating
// arithmetic. Values are stored as the two's complement interpretation of
// an unsigned 128-bit value.
package i128

import (
	"lukechampine.com/uint128"
)

// Int128 is a 128-bit signed integer.
type Int128 struct {
	u uint128.Uint128
}

var (
	Zero = Int128{}
	One  = From64(1)
	// Min is -2^127, the smallest representable value.
	Min = Int128{uint128.New(0, 1 << 63)}
	// Max is 2^127 - 1, the largest representable value.
	Max = Int128{uint128.New(^uint64(0), 1<<63-1)}
)

// signBit masks the sign bit of the two's complement representation.
var signBit = uint128.New(0, 1<<63)

// From64 converts a signed 64-bit integer, sign-extending into the upper limb.
func From64(v int64) Int128 {
	var hi uint64
	if v < 0 {
		hi = ^uint64(0)
	}
	return Int128{uint128.New(uint64(v), hi)}
}

// FromUint64 converts an unsigned 64-bit integer.
func FromUint64(v uint64) Int128 {
	return Int128{uint128.From64(v)}
}

// FromUint128 converts an unsigned 128-bit magnitude. Magnitudes beyond the
// signed range clamp to Max, reported through the second return value.
func FromUint128(u uint128.Uint128) (Int128, bool) {
	if u.Cmp(Max.u) > 0 {
		return Max, false
	}
	return Int128{u}, true
}

// Uint128 returns the raw two's complement representation.
func (i Int128) Uint128() uint128.Uint128 {
	return i.u
}

// IsZero reports whether i is zero.
func (i Int128) IsZero() bool {
	return i.u.IsZero()
}

// IsNeg reports whether i is strictly negative.
func (i Int128) IsNeg() bool {
	return i.u.Hi&(1<<63) != 0
}

// Sign returns -1, 0 or 1 for negative, zero and positive values.
func (i Int128) Sign() int {
	switch {
	case i.IsNeg():
		return -1
	case i.u.IsZero():
		return 0
	}
	return 1
}

// Cmp returns -1, 0 or 1 depending on whether i is smaller than, equal to,
// or greater than j. Comparison is signed.
func (i Int128) Cmp(j Int128) int {
	return i.u.Xor(signBit).Cmp(j.u.Xor(signBit))
}

func (i Int128) Eq(j Int128) bool  { return i == j }
func (i Int128) Lt(j Int128) bool  { return i.Cmp(j) < 0 }
func (i Int128) Leq(j Int128) bool { return i.Cmp(j) <= 0 }
func (i Int128) Gt(j Int128) bool  { return i.Cmp(j) > 0 }
func (i Int128) Geq(j Int128) bool { return i.Cmp(j) >= 0 }

// Min returns the smaller of i and j.
func (i Int128) Min(j Int128) Int128 {
	if i.Lt(j) {
		return i
	}
	return j
}

// Max returns the larger of i and j.
func (i Int128) Max(j Int128) Int128 {
	if i.Gt(j) {
		return i
	}
	return j
}

// abs returns the magnitude of i as an unsigned value. The magnitude of Min,
// 2^127, is representable.
func (i Int128) abs() uint128.Uint128 {
	if i.IsNeg() {
		return uint128.From64(0).SubWrap(i.u)
	}
	return i.u
}

// Neg returns -i with wraparound: the negation of Min is Min itself.
func (i Int128) Neg() Int128 {
	return Int128{uint128.From64(0).SubWrap(i.u)}
}

// SatNeg returns -i, saturating to Max when negating Min.
func (i Int128) SatNeg() Int128 {
	if i == Min {
		return Max
	}
	return i.Neg()
}

// SatAdd returns i + j, clamping to Min or Max on overflow.
func (i Int128) SatAdd(j Int128) Int128 {
	r := Int128{i.u.AddWrap(j.u)}
	if i.IsNeg() == j.IsNeg() && r.IsNeg() != i.IsNeg() {
		if i.IsNeg() {
			return Min
		}
		return Max
	}
	return r
}

// SatSub returns i - j, clamping to Min or Max on overflow.
func (i Int128) SatSub(j Int128) Int128 {
	r := Int128{i.u.SubWrap(j.u)}
	if i.IsNeg() != j.IsNeg() && r.IsNeg() != i.IsNeg() {
		if i.IsNeg() {
			return Min
		}
		return Max
	}
	return r
}

// SatMul returns i * j, clamping to Min or Max on overflow.
func (i Int128) SatMul(j Int128) Int128 {
	if i.IsZero() || j.IsZero() {
		return Zero
	}
	neg := i.IsNeg() != j.IsNeg()
	a, b := i.abs(), j.abs()
	// The admissible magnitude depends on the sign of the result.
	limit := Max.u
	if neg {
		limit = Min.u
	}
	if a.Cmp(limit.Div(b)) > 0 {
		if neg {
			return Min
		}
		return Max
	}
	p := a.MulWrap(b)
	if neg {
		return Int128{uint128.From64(0).SubWrap(p)}
	}
	return Int128{p}
}

// Div returns i / j, truncated towards zero. Min / -1 saturates to Max.
// Division by zero panics.
func (i Int128) Div(j Int128) Int128 {
	if j.IsZero() {
		panic("i128: division by zero")
	}
	q := i.abs().Div(j.abs())
	if i.IsNeg() != j.IsNeg() {
		return Int128{uint128.From64(0).SubWrap(q)}
	}
	if q.Cmp(Max.u) > 0 {
		return Max
	}
	return Int128{q}
}

// Rem returns i % j with the sign of the dividend, matching truncated
// division. Division by zero panics.
func (i Int128) Rem(j Int128) Int128 {
	if j.IsZero() {
		panic("i128: division by zero")
	}
	_, r := i.abs().QuoRem(j.abs())
	if i.IsNeg() {
		return Int128{uint128.From64(0).SubWrap(r)}
	}
	return Int128{r}
}

// Int64 unpacks i as a signed 64-bit integer, if it fits.
func (i Int128) Int64() (int64, bool) {
	if i.IsNeg() {
		if i.u.Hi == ^uint64(0) && i.u.Lo >= 1<<63 {
			return int64(i.u.Lo), true
		}
		return 0, false
	}
	if i.u.Hi == 0 && i.u.Lo < 1<<63 {
		return int64(i.u.Lo), true
	}
	return 0, false
}

func (i Int128) String() string {
	if i.IsNeg() {
		return "-" + i.abs().String()
	}
	return i.u.String()
}
