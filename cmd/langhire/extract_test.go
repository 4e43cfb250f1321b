package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExtract_RequiresInput(t *testing.T) {
	extractInputFile = ""

	err := runExtract(extractCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--in")
}

func TestRunExtract_MissingFile(t *testing.T) {
	extractInputFile = "/nonexistent/input.txt"
	t.Cleanup(func() { extractInputFile = "" })

	err := runExtract(extractCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input file")
}
