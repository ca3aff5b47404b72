// Package fuelclass enumerates the fuel classes used throughout the fire
// behavior model. Class values are array indices: every per-class parameter
// and state array is indexed by Class, so the order is fixed and significant.
// Trunks are excluded from the aggregates that feed the spread equations.
package fuelclass

// Class identifies a single fuel class.
type Class int

// Fuel classes in array order.
const (
	Twigs Class = iota
	SmallBranches
	LargeBranches
	Trunks
	DeadLeaves
	LiveGrass
)

// NumClasses is the number of fuel classes.
const NumClasses = 6

// NumCWDClasses is the number of coarse woody debris classes
// (twigs, small branches, large branches, trunks).
const NumCWDClasses = NumClasses - 2

// String returns the class name for logs and tables.
func (c Class) String() string {
	switch c {
	case Twigs:
		return "twigs"
	case SmallBranches:
		return "small branches"
	case LargeBranches:
		return "large branches"
	case Trunks:
		return "trunks"
	case DeadLeaves:
		return "dead leaves"
	case LiveGrass:
		return "live grass"
	default:
		return "unknown"
	}
}

// NonTrunk reports whether the class participates in non-trunk aggregates.
func (c Class) NonTrunk() bool {
	return c != Trunks
}
