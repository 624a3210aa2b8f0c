package lattice

import (
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Environment is a member of the environment lattice: a persistent map
// binding variable names to intervals. It is the abstract store shape that
// an external fixpoint driver iterates on. Unbound variables carry no
// information and read as ⊥.
type Environment struct {
	element
	mp *immutable.Map[string, Interval]
}

// Environment creates an empty environment.
func (elementFactory) Environment() Environment {
	return Environment{mp: immutable.NewMap[string, Interval](nil)}
}

// Lattice retrieves the environment lattice for any environment.
func (Environment) Lattice() Lattice {
	return environmentLattice
}

// Environment safely converts an environment.
func (e Environment) Environment() Environment {
	return e
}

func (e Environment) String() string {
	strs := []string{}
	itr := e.mp.Iterator()
	for !itr.Done() {
		x, itv, _ := itr.Next()
		strs = append(strs, colorize.Key(x)+" ↦ "+itv.String())
	}
	if len(strs) == 0 {
		return "[]"
	}
	sort.Strings(strs)
	return "[" + strings.Join(strs, ", ") + "]"
}

// Size returns the number of bound variables.
func (e Environment) Size() int {
	return e.mp.Len()
}

// Get retrieves the interval bound to the given variable. Unbound
// variables yield ⊥.
func (e Environment) Get(x string) Interval {
	if itv, ok := e.mp.Get(x); ok {
		return itv
	}
	return intervalLattice.Bot().Interval()
}

// Update returns an environment with an updated binding for the given
// variable.
func (e Environment) Update(x string, itv Interval) Environment {
	return Environment{mp: e.mp.Set(x, itv)}
}

// Eq computes m1 = m2. Performs lattice dynamic type checking.
func (e1 Environment) Eq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes m1 = m2.
func (e1 Environment) eq(e2 Element) bool {
	return e1.leq(e2) && e1.geq(e2)
}

// Leq computes m1 ⊑ m2. Performs lattice dynamic type checking.
func (e1 Environment) Leq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes m1 ⊑ m2, pointwise over the bound variables.
func (e1 Environment) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Environment:
		itr := e1.mp.Iterator()
		for !itr.Done() {
			x, itv, _ := itr.Next()
			if !itv.leq(e2.Get(x)) {
				return false
			}
		}
		return true
	}
	panic(errPatternMatch(e2))
}

// Geq computes m1 ⊒ m2. Performs lattice dynamic type checking.
func (e1 Environment) Geq(e2 Element) bool {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes m1 ⊒ m2.
func (e1 Environment) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Environment:
		return e2.leq(e1)
	}
	panic(errPatternMatch(e2))
}

// Join computes m1 ⊔ m2. Performs lattice dynamic type checking.
func (e1 Environment) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes m1 ⊔ m2.
func (e1 Environment) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case Environment:
		return e1.MonoJoin(e2)
	}
	panic(errPatternMatch(e2))
}

// MonoJoin is a monomorphic variant of m1 ⊔ m2: the pointwise join over
// the union of the bound variables.
func (e1 Environment) MonoJoin(e2 Environment) Environment {
	mp := e1.mp
	itr := e2.mp.Iterator()
	for !itr.Done() {
		x, itv, _ := itr.Next()
		if cur, ok := mp.Get(x); ok {
			itv = cur.MonoJoin(itv)
		}
		mp = mp.Set(x, itv)
	}
	return Environment{mp: mp}
}

// Meet computes m1 ⊓ m2. Performs lattice dynamic type checking.
func (e1 Environment) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes m1 ⊓ m2.
func (e1 Environment) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case Environment:
		return e1.MonoMeet(e2)
	}
	panic(errPatternMatch(e2))
}

// MonoMeet is a monomorphic variant of m1 ⊓ m2: the pointwise
// intersection over the variables bound on both sides. Variables bound on
// only one side meet with ⊥ and are dropped.
func (e1 Environment) MonoMeet(e2 Environment) Environment {
	res := elFact.Environment()
	itr := e1.mp.Iterator()
	for !itr.Done() {
		x, itv, _ := itr.Next()
		if other, ok := e2.mp.Get(x); ok {
			res = res.Update(x, itv.MonoMeet(other))
		}
	}
	return res
}

// MonoWiden widens m1 pointwise with m2. Variables bound on only one side
// are carried over unchanged; a freshly appearing binding starts from its
// own value rather than being widened against ⊥.
func (e1 Environment) MonoWiden(e2 Environment) Environment {
	mp := e1.mp
	itr := e2.mp.Iterator()
	for !itr.Done() {
		x, itv, _ := itr.Next()
		if cur, ok := mp.Get(x); ok {
			itv = cur.Widen(itv)
		}
		mp = mp.Set(x, itv)
	}
	return Environment{mp: mp}
}
