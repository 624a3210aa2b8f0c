package lattice

import (
	"github.com/numalyze/numal/utils/i128"
)

// IntervalLattice represents the interval lattice.
type IntervalLattice struct {
	lattice
}

// intervalLattice is a singleton instantiation of the interval lattice.
var intervalLattice = &IntervalLattice{}

// Interval yields the interval lattice.
func (latticeFactory) Interval() *IntervalLattice {
	return intervalLattice
}

// Top yields [-∞, ∞], the fully unconstrained interval.
func (*IntervalLattice) Top() Element {
	return Interval{
		low:  i128.Min,
		high: i128.Max,
	}
}

// Bot yields [1, 0], the canonical representative of the empty interval.
func (*IntervalLattice) Bot() Element {
	return Interval{
		low:  i128.One,
		high: i128.Zero,
	}
}

func (*IntervalLattice) String() string {
	return "[" + colorize.Lattice("ℤ") +
		", " + colorize.Lattice("ℤ") + "]"
}

// Eq checks for equality with another lattice.
func (l1 *IntervalLattice) Eq(l2 Lattice) bool {
	switch l2.(type) {
	case *IntervalLattice:
		return true
	default:
		return false
	}
}

// Interval safely converts the interval lattice to IntervalLattice.
func (l1 *IntervalLattice) Interval() *IntervalLattice {
	return l1
}
