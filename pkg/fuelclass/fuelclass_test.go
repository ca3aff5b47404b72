package fuelclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "twigs", Twigs.String())
	assert.Equal(t, "trunks", Trunks.String())
	assert.Equal(t, "live grass", LiveGrass.String())
	assert.Equal(t, "unknown", Class(99).String())
}

func TestNonTrunk(t *testing.T) {
	for c := Class(0); c < NumClasses; c++ {
		assert.Equal(t, c != Trunks, c.NonTrunk(), "class %s", c)
	}
}

func TestClassOrder(t *testing.T) {
	// Array order is part of the contract: parameters and state arrays
	// are indexed by these values.
	assert.Equal(t, Class(0), Twigs)
	assert.Equal(t, Class(1), SmallBranches)
	assert.Equal(t, Class(2), LargeBranches)
	assert.Equal(t, Class(3), Trunks)
	assert.Equal(t, Class(4), DeadLeaves)
	assert.Equal(t, Class(5), LiveGrass)
	assert.Equal(t, 4, NumCWDClasses)
}
