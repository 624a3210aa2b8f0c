// Package defs contains definitions shared across the analysis: the closed
// enumeration of numeric kinds an abstract value may range over, and the
// bridge from the host type system into that enumeration.
package defs

import (
	"go/types"
	"math"
	"math/bits"

	"github.com/numalyze/numal/utils/i128"
)

// NumericKind identifies a fixed-width or platform-width integer kind.
// It is the only type information the interval domain consumes: kinds
// determine full-range intervals and answer containment queries.
type NumericKind int

const (
	// NonNumeric is the catch-all for types that do not denote integers.
	NonNumeric NumericKind = iota
	Int8
	Int16
	Int32
	Int64
	Int128
	Uint8
	Uint16
	Uint32
	Uint64
	Uint128
	// Int and Uint take the width of the platform word.
	Int
	Uint
)

// Numeric reports whether the kind denotes an integer type.
func (k NumericKind) Numeric() bool {
	return k != NonNumeric
}

// Signed reports whether the kind denotes a signed integer type.
func (k NumericKind) Signed() bool {
	switch k {
	case Int8, Int16, Int32, Int64, Int128, Int:
		return true
	}
	return false
}

// Bits returns the width of the kind in bits. Platform kinds report the
// width of the platform word. NonNumeric has no width and yields 0.
func (k NumericKind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	case Int128, Uint128:
		return 128
	case Int, Uint:
		return bits.UintSize
	}
	return 0
}

// Min returns the smallest representable value of the kind. The lower end
// of Int128 coincides with the sentinel extreme of the 128-bit universe.
func (k NumericKind) Min() i128.Int128 {
	switch k {
	case Int8:
		return i128.From64(math.MinInt8)
	case Int16:
		return i128.From64(math.MinInt16)
	case Int32:
		return i128.From64(math.MinInt32)
	case Int64:
		return i128.From64(math.MinInt64)
	case Int128:
		return i128.Min
	case Int:
		return i128.From64(int64(math.MinInt))
	}
	return i128.Zero
}

// Max returns the largest representable value of the kind. The upper ends
// of Int128 and Uint128 coincide with the sentinel extreme of the 128-bit
// universe.
func (k NumericKind) Max() i128.Int128 {
	switch k {
	case Int8:
		return i128.From64(math.MaxInt8)
	case Int16:
		return i128.From64(math.MaxInt16)
	case Int32:
		return i128.From64(math.MaxInt32)
	case Int64:
		return i128.From64(math.MaxInt64)
	case Int128, Uint128:
		return i128.Max
	case Uint8:
		return i128.From64(math.MaxUint8)
	case Uint16:
		return i128.From64(math.MaxUint16)
	case Uint32:
		return i128.From64(math.MaxUint32)
	case Uint64:
		return i128.FromUint64(math.MaxUint64)
	case Int:
		return i128.From64(int64(math.MaxInt))
	case Uint:
		return i128.FromUint64(uint64(^uint(0)))
	}
	return i128.Zero
}

func (k NumericKind) String() string {
	switch k {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int128:
		return "int128"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint128:
		return "uint128"
	case Int:
		return "int"
	case Uint:
		return "uint"
	}
	return "non-numeric"
}

// NumericKindOf maps a host type to its numeric kind. Types that do not
// denote integers, including floating point and untyped non-integer
// constants, map to NonNumeric.
func NumericKindOf(t types.Type) NumericKind {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return NonNumeric
	}
	switch basic.Kind() {
	case types.Int8:
		return Int8
	case types.Int16:
		return Int16
	case types.Int32:
		return Int32
	case types.Int64:
		return Int64
	case types.Uint8:
		return Uint8
	case types.Uint16:
		return Uint16
	case types.Uint32:
		return Uint32
	case types.Uint64:
		return Uint64
	case types.Int, types.UntypedInt:
		return Int
	case types.Uint, types.Uintptr:
		return Uint
	}
	return NonNumeric
}
