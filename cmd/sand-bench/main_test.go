package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizes(t *testing.T) {
	got, err := parseSizes("0, 8,,16")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8, 16}, got)

	_, err = parseSizes("4,-1")
	assert.Error(t, err)
	_, err = parseSizes("big")
	assert.Error(t, err)
}
