package lattice

// TruthValue is the outcome of an abstract comparison. A comparison between
// intervals either definitely holds, definitely fails, or cannot be decided
// from the bounds alone.
type TruthValue int8

const (
	TruthUnknown TruthValue = iota
	TruthTrue
	TruthFalse
)

// Known reports whether the outcome is decided.
func (t TruthValue) Known() bool {
	return t != TruthUnknown
}

// True reports whether the comparison definitely holds.
func (t TruthValue) True() bool {
	return t == TruthTrue
}

// False reports whether the comparison definitely fails.
func (t TruthValue) False() bool {
	return t == TruthFalse
}

func (t TruthValue) String() string {
	switch t {
	case TruthTrue:
		return "true"
	case TruthFalse:
		return "false"
	}
	return "unknown"
}
