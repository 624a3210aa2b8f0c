package lattice

import (
	"fmt"
	"math"

	"github.com/numalyze/numal/analysis/defs"
	"github.com/numalyze/numal/utils/i128"

	"lukechampine.com/uint128"
)

// Interval is a member of the interval lattice: a closed range of 128-bit
// signed integers denoted by a lower and an upper bound. The extremes of
// the universe are reserved as sentinels: a lower bound of i128.Min means
// that no lower bound is known, and an upper bound of i128.Max means that
// no upper bound is known. An interval whose upper bound lies below its
// lower bound is the empty interval ⊥; the algebra itself always emits the
// canonical representative [1, 0].
type Interval struct {
	element
	low  i128.Int128
	high i128.Int128
}

// Interval creates an interval with the given bounds, taken verbatim.
func (elementFactory) Interval(low, high i128.Int128) Interval {
	return Interval{low: low, high: high}
}

// IntervalFinite creates an interval with small finite bounds.
func (elementFactory) IntervalFinite(low, high int) Interval {
	return Interval{
		low:  i128.From64(int64(low)),
		high: i128.From64(int64(high)),
	}
}

// IntervalConst creates the singleton interval [v, v].
func (elementFactory) IntervalConst(v i128.Int128) Interval {
	return Interval{low: v, high: v}
}

// IntervalFromUnsigned creates the singleton interval of an unsigned
// 128-bit magnitude. A magnitude beyond the signed universe clamps to
// [Max, Max]: treated as "as large as can be expressed", never as
// wraparound.
func (elementFactory) IntervalFromUnsigned(u uint128.Uint128) Interval {
	v, _ := i128.FromUint128(u)
	return Interval{low: v, high: v}
}

// IntervalForKind yields the full native range of a numeric kind. A
// non-numeric kind carries no information and yields ⊥.
func (elementFactory) IntervalForKind(k defs.NumericKind) Interval {
	if !k.Numeric() {
		return intervalLattice.Bot().Interval()
	}
	return Interval{low: k.Min(), high: k.Max()}
}

// Lattice retrieves the interval lattice for any interval.
func (Interval) Lattice() Lattice {
	return intervalLattice
}

func boundString(b i128.Int128) string {
	switch b {
	case i128.Min:
		return colorize.Element("-∞")
	case i128.Max:
		return colorize.Element("∞")
	}
	return colorize.Element(b.String())
}

func (e Interval) String() string {
	if e.IsBot() {
		return "⊥"
	}
	return "[" + boundString(e.low) + ", " + boundString(e.high) + "]"
}

// Height returns the height of the interval in the interval lattice,
// computed as the difference between the high and low bounds if both are
// finite, and -1 otherwise.
func (e Interval) Height() int {
	// Compromise: unknown intervals are represented as height -1
	if e.low == i128.Min || e.high == i128.Max {
		return -1
	}
	d := e.high.SatSub(e.low)
	if d.IsNeg() {
		return 0
	}
	if n, ok := d.Int64(); ok && n <= math.MaxInt {
		return int(n)
	}
	return math.MaxInt
}

// Interval safely converts an interval.
func (e Interval) Interval() Interval {
	return e
}

// IsBot checks whether the interval is empty. Any interval with an upper
// bound below its lower bound is ⊥, not just the canonical [1, 0].
func (e Interval) IsBot() bool {
	return e.high.Lt(e.low)
}

// IsTop checks that the interval is exactly [-∞, ∞].
func (e Interval) IsTop() bool {
	return e.low == i128.Min && e.high == i128.Max
}

// Eq computes i1 = i2. Performs lattice dynamic type checking.
func (e1 Interval) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes i1 = i2.
func (e1 Interval) eq(e2 Element) bool {
	return e1.leq(e2) && e1.geq(e2)
}

// Leq computes i1 ⊑ i2. Performs lattice dynamic type checking.
func (e1 Interval) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes i1 ⊑ i2.
func (e1 Interval) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Interval:
		if e1.IsBot() {
			return true
		}
		if e2.IsBot() {
			return false
		}
		return e1.low.Geq(e2.low) && e1.high.Leq(e2.high)
	}
	panic(errPatternMatch(e2))
}

// Geq computes i1 ⊒ i2. Performs lattice dynamic type checking.
func (e1 Interval) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes i1 ⊒ i2.
func (e1 Interval) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Interval:
		return e2.leq(e1)
	}
	panic(errPatternMatch(e2))
}

// Join computes i1 ⊔ i2. Performs lattice dynamic type checking.
func (e1 Interval) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes i1 ⊔ i2.
func (e1 Interval) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case Interval:
		return e1.MonoJoin(e2)
	}
	panic(errPatternMatch(e2))
}

// MonoJoin is a monomorphic variant of i1 ⊔ i2. The resulting interval
// takes the lowest of the lower bounds and the highest of the upper bounds;
// ⊥ is the identity.
func (e1 Interval) MonoJoin(e2 Interval) Interval {
	if e1.IsBot() {
		return e2
	}
	if e2.IsBot() {
		return e1
	}
	return Interval{
		low:  e1.low.Min(e2.low),
		high: e1.high.Max(e2.high),
	}
}

// Meet computes i1 ⊓ i2. Performs lattice dynamic type checking.
func (e1 Interval) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes i1 ⊓ i2.
func (e1 Interval) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case Interval:
		return e1.MonoMeet(e2)
	}
	panic(errPatternMatch(e2))
}

// MonoMeet is a monomorphic variant of i1 ⊓ i2, intersecting the two
// ranges: [x, y] ⊓ [a, b] = [max(x, a), min(y, b)]. Intersecting disjoint
// ranges yields an empty interval; callers detect this through IsBot, the
// result is not canonicalized.
func (e1 Interval) MonoMeet(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e1.IsTop() {
		return e2
	}
	if e2.IsTop() {
		return e1
	}
	return Interval{
		low:  e1.low.Max(e2.low),
		high: e1.high.Min(e2.high),
	}
}

// Widen computes [x, y] ∇ [a, b] = [min(x, a), max(y, b)]. The fixpoint
// driver calls this on each loop-iteration step to force monotone growth
// towards ⊤. Termination follows from the finiteness of the 128-bit bound
// space, not from a growth threshold.
func (e1 Interval) Widen(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e1.IsTop() || e2.IsTop() {
		return intervalLattice.Top().Interval()
	}
	return Interval{
		low:  e1.low.Min(e2.low),
		high: e1.high.Max(e2.high),
	}
}

// Add computes [x, y] + [a, b] = [x+a, y+b]. Bound arithmetic saturates at
// the extremes of the universe, so the true sum always lies within the
// result.
func (e1 Interval) Add(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e1.IsTop() || e2.IsTop() {
		return intervalLattice.Top().Interval()
	}
	return Interval{
		low:  e1.low.SatAdd(e2.low),
		high: e1.high.SatAdd(e2.high),
	}
}

// Sub computes [x, y] - [a, b] = [x-b, y-a] with saturating bound
// arithmetic.
func (e1 Interval) Sub(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e1.IsTop() || e2.IsTop() {
		return intervalLattice.Top().Interval()
	}
	return Interval{
		low:  e1.low.SatSub(e2.high),
		high: e1.high.SatSub(e2.low),
	}
}

// Mul computes [x, y] * [a, b] as the envelope of the four pairwise
// products of the endpoints, which is correct regardless of operand signs.
func (e1 Interval) Mul(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e1.IsTop() || e2.IsTop() {
		return intervalLattice.Top().Interval()
	}
	xa := e1.low.SatMul(e2.low)
	xb := e1.low.SatMul(e2.high)
	ya := e1.high.SatMul(e2.low)
	yb := e1.high.SatMul(e2.high)
	return Interval{
		low:  xa.Min(xb).Min(ya).Min(yb),
		high: xa.Max(xb).Max(ya).Max(yb),
	}
}

// Neg computes -[x, y] = [-y, -x], saturating to Max when a bound cannot
// be negated.
func (e Interval) Neg() Interval {
	if e.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e.IsTop() {
		return intervalLattice.Top().Interval()
	}
	return Interval{
		low:  e.high.SatNeg(),
		high: e.low.SatNeg(),
	}
}

// Div computes [x, y] / [a, b] = [x/b, y/a], defined only when the divisor
// is known to be strictly positive. A divisor that may be zero, negative
// or unbounded below is not soundly narrowable with this rule, so the
// result degrades to ⊤ rather than risking an unsound range.
func (e1 Interval) Div(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e1.IsTop() || e2.IsTop() {
		return intervalLattice.Top().Interval()
	}
	if e2.low.Gt(i128.Zero) {
		return Interval{
			low:  e1.low.Div(e2.high),
			high: e1.high.Div(e2.low),
		}
	}
	return intervalLattice.Top().Interval()
}

// Rem computes [x, y] % [a, b] = [0, min(y, b-1)], defined only when the
// dividend is non-negative and the divisor is at least one. Otherwise the
// result degrades to ⊤.
func (e1 Interval) Rem(e2 Interval) Interval {
	if e1.IsBot() || e2.IsBot() {
		return intervalLattice.Bot().Interval()
	}
	if e1.IsTop() || e2.IsTop() {
		return intervalLattice.Top().Interval()
	}
	if e1.low.Geq(i128.Zero) && e2.low.Geq(i128.One) {
		return Interval{
			low:  i128.Zero,
			high: e1.high.Min(e2.high.SatSub(i128.One)),
		}
	}
	return intervalLattice.Top().Interval()
}

// LessThan determines whether every element of e1 is strictly below every
// element of e2. A ⊥ or ⊤ operand never supports a decided outcome.
func (e1 Interval) LessThan(e2 Interval) TruthValue {
	if e1.IsBot() || e1.IsTop() || e2.IsBot() || e2.IsTop() {
		return TruthUnknown
	}
	switch {
	case e1.high.Lt(e2.low):
		return TruthTrue
	case e2.high.Leq(e1.low):
		return TruthFalse
	}
	return TruthUnknown
}

// LessEqual determines whether every element of e1 is below every element
// of e2.
func (e1 Interval) LessEqual(e2 Interval) TruthValue {
	if e1.IsBot() || e1.IsTop() || e2.IsBot() || e2.IsTop() {
		return TruthUnknown
	}
	switch {
	case e1.high.Leq(e2.low):
		return TruthTrue
	case e2.high.Lt(e1.low):
		return TruthFalse
	}
	return TruthUnknown
}

// GreaterThan determines whether every element of e1 is strictly above
// every element of e2.
func (e1 Interval) GreaterThan(e2 Interval) TruthValue {
	if e1.IsBot() || e1.IsTop() || e2.IsBot() || e2.IsTop() {
		return TruthUnknown
	}
	switch {
	case e1.low.Gt(e2.high):
		return TruthTrue
	case e2.low.Geq(e1.high):
		return TruthFalse
	}
	return TruthUnknown
}

// GreaterEqual determines whether every element of e1 is above every
// element of e2.
func (e1 Interval) GreaterEqual(e2 Interval) TruthValue {
	if e1.IsBot() || e1.IsTop() || e2.IsBot() || e2.IsTop() {
		return TruthUnknown
	}
	switch {
	case e1.low.Geq(e2.high):
		return TruthTrue
	case e2.low.Gt(e1.high):
		return TruthFalse
	}
	return TruthUnknown
}

// IsContainedIn checks whether the interval is known to lie within the
// representable range of the given kind. A false result means "not known",
// never "known not to". The 128-bit kinds exclude the sentinel extremes,
// which denote missing bounds rather than representable magnitudes.
func (e Interval) IsContainedIn(k defs.NumericKind) bool {
	if e.IsBot() || e.IsTop() {
		return false
	}
	switch k {
	case defs.NonNumeric:
		return false
	case defs.Int128:
		return e.low.Gt(i128.Min) && e.high.Lt(i128.Max)
	case defs.Uint128:
		return e.low.Geq(i128.Zero) && e.high.Lt(i128.Max)
	}
	return e.low.Geq(k.Min()) && e.high.Leq(k.Max())
}

// IsContainedInWidthOf checks whether the interval is known to lie within
// [0, bit width of the kind), e.g. to validate a shift amount. A false
// result means "not known", never "known not to".
func (e Interval) IsContainedInWidthOf(k defs.NumericKind) bool {
	if e.IsBot() || e.IsTop() || !k.Numeric() {
		return false
	}
	return e.low.Geq(i128.Zero) && e.high.Lt(i128.From64(int64(k.Bits())))
}

// LowerBound returns the finite lower bound. The second return value is
// false when no lower bound is known.
func (e Interval) LowerBound() (i128.Int128, bool) {
	if e.low == i128.Min {
		return i128.Zero, false
	}
	return e.low, true
}

// UpperBound returns the finite upper bound. The second return value is
// false when no upper bound is known.
func (e Interval) UpperBound() (i128.Int128, bool) {
	if e.high == i128.Max {
		return i128.Zero, false
	}
	return e.high, true
}

// Low returns the lower bound, if finite, and panics otherwise.
func (e Interval) Low() i128.Int128 {
	if e.low == i128.Min {
		panic(fmt.Sprintf("Interval %s does not have finite lower bound", e))
	}
	return e.low
}

// High returns the upper bound, if finite, and panics otherwise.
func (e Interval) High() i128.Int128 {
	if e.high == i128.Max {
		panic(fmt.Sprintf("Interval %s does not have finite upper bound", e))
	}
	return e.high
}

// GetFiniteBounds unpacks the interval bounds, if finite, and panics otherwise.
func (e Interval) GetFiniteBounds() (i128.Int128, i128.Int128) {
	return e.Low(), e.High()
}

// RemoveLowerBound forgets the lower bound, leaving the upper bound
// unchanged.
func (e Interval) RemoveLowerBound() Interval {
	return Interval{low: i128.Min, high: e.high}
}

// RemoveUpperBound forgets the upper bound, leaving the lower bound
// unchanged.
func (e Interval) RemoveUpperBound() Interval {
	return Interval{low: e.low, high: i128.Max}
}

// ReplaceUpperBound substitutes the upper bound verbatim. A new bound below
// the lower bound makes the result ⊥ by the generic upper < lower rule;
// this is intentional, not an error path.
func (e Interval) ReplaceUpperBound(v i128.Int128) Interval {
	return Interval{low: e.low, high: v}
}
