package lattice

// EnvironmentLattice represents the lattice of abstract stores: maps from
// variable names to intervals.
type EnvironmentLattice struct {
	lattice
}

// environmentLattice is a singleton instantiation of the environment lattice.
var environmentLattice = &EnvironmentLattice{}

// Environment yields the environment lattice.
func (latticeFactory) Environment() *EnvironmentLattice {
	return environmentLattice
}

// Bot yields the empty environment, where every variable is unbound.
func (*EnvironmentLattice) Bot() Element {
	return elFact.Environment()
}

// Top is undefined for the environment lattice, as the variable domain is
// unbounded.
func (*EnvironmentLattice) Top() Element {
	panic(errUnsupportedOperation)
}

func (*EnvironmentLattice) String() string {
	return colorize.Lattice("Var") + " → " + intervalLattice.String()
}

// Eq checks for equality with another lattice.
func (l1 *EnvironmentLattice) Eq(l2 Lattice) bool {
	switch l2.(type) {
	case *EnvironmentLattice:
		return true
	default:
		return false
	}
}

// Environment safely converts the environment lattice to EnvironmentLattice.
func (l1 *EnvironmentLattice) Environment() *EnvironmentLattice {
	return l1
}
