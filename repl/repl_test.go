package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEvalArithmetic(t *testing.T) {
	s := NewSession()
	out, err := s.Eval("2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, "14", out)
}

func TestSessionEvalWithUnits(t *testing.T) {
	s := NewSession()
	out, err := s.Eval("5 m")
	require.NoError(t, err)
	assert.Equal(t, "5 m^1", out)
}

func TestSessionAssignmentShorthand(t *testing.T) {
	s := NewSession()
	out, err := s.Eval("x = 10")
	require.NoError(t, err)
	assert.Equal(t, "x = 10", out)

	out, err = s.Eval("x * 2")
	require.NoError(t, err)
	assert.Equal(t, "20", out)
}

func TestSessionConversionSuffix(t *testing.T) {
	s := NewSession()
	out, err := s.Eval("100 cm to m")
	require.NoError(t, err)
	assert.Equal(t, "1 m", out)
}

func TestSessionConversionMismatchedUnits(t *testing.T) {
	s := NewSession()
	_, err := s.Eval("100 cm to kg")
	assert.Error(t, err)
}

func TestSessionUnknownVariable(t *testing.T) {
	s := NewSession()
	_, err := s.Eval("undefined_var + 1")
	assert.Error(t, err)
}

func TestSessionVariablesTracksOnlyUserAssignments(t *testing.T) {
	s := NewSession()
	assert.Empty(t, s.Variables())

	_, err := s.Eval("x = 10")
	require.NoError(t, err)
	_, err = s.Eval("y = x * 2")
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, s.Variables())

	v, ok := s.Context().GetVariable("y")
	require.True(t, ok)
	assert.Equal(t, "20", v.String())
}

func TestSessionVariablesReassignmentDoesNotDuplicate(t *testing.T) {
	s := NewSession()
	_, err := s.Eval("x = 1")
	require.NoError(t, err)
	_, err = s.Eval("x = 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, s.Variables())
}
