package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOK(t *testing.T) {
	m := NewDOK(4, 4)
	nr, nc := m.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 4, nc)

	// AddAt accumulates at repeated indices, the property element
	// assembly relies on at shared and periodic dofs
	m.AddAt(1, 2, 0.5)
	m.AddAt(1, 2, 0.25)
	m.AddAt(3, 3, -1)
	assert.True(t, near(m.At(1, 2), 0.75))
	assert.True(t, near(m.At(3, 3), -1))
	assert.Equal(t, 2, m.NNZ())

	R := m.Dense()
	assert.True(t, near(R.At(1, 2), 0.75))
	assert.True(t, near(R.At(0, 0), 0))

	var visited int
	m.DoNonZero(func(i, j int, v float64) { visited++ })
	assert.Equal(t, 2, visited)

	// Zero keeps the pattern but drops the values, so the next
	// accumulation pass starts clean
	m.Zero()
	assert.Equal(t, 2, m.NNZ())
	assert.True(t, near(m.At(1, 2), 0))
	m.AddAt(1, 2, 0.125)
	assert.True(t, near(m.At(1, 2), 0.125))
}
