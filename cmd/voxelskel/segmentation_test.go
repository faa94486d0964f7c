package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxSizes_IsStrictlyIncreasing(t *testing.T) {
	sizes := boxSizes(16)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, sizes)
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i], sizes[i-1])
	}
}

func TestBoxSizes_NonPowerOfTwoEdge_StopsAtOrBelowEdge(t *testing.T) {
	sizes := boxSizes(10)
	assert.Equal(t, []int{1, 2, 4, 8}, sizes)
}

func TestBoxSizes_NonPositiveEdge_ReturnsEmpty(t *testing.T) {
	assert.Empty(t, boxSizes(0))
}
