package lattice

import (
	"log"
)

type Lattice interface {
	Top() Element
	Bot() Element

	String() string
	Eq(Lattice) bool

	// These methods allow for quick type conversions.
	// Suitable, if you know what lattice type to expect.
	Interval() *IntervalLattice
	Environment() *EnvironmentLattice
}

type lattice struct{}

func (*lattice) Interval() *IntervalLattice {
	panic(errUnsupportedTypeConversion)
}

func (*lattice) Environment() *EnvironmentLattice {
	panic(errUnsupportedTypeConversion)
}

// Allows us to delay expensive stringification calls
func checkLatticeMatchThunked(l1, l2 Lattice, thunk func() string) {
	if !l1.Eq(l2) {
		log.Fatal(
			"Lattice error - Invalid", thunk(),
			"\nOperand 1 ∈\n",
			l1.String(),
			"\nOperand 2 ∈\n",
			l2.String(),
		)
	}
}

func checkLatticeMatch(l1, l2 Lattice, binop string) {
	if !l1.Eq(l2) {
		log.Fatal(
			"Lattice error - Invalid", binop,
			"\nOperand 1 ∈\n",
			l1.String(),
			"\nOperand 2 ∈\n",
			l2.String(),
		)
	}
}
