package count

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxMCCommandLine(t *testing.T) {
	// echo stands in for the counter binary so the argument plumbing can
	// be observed without ApproxMC installed.
	a := ApproxMC{Path: "echo", Epsilon: 0.8, Delta: 0.2}
	out, err := a.Count("instance.cnf")
	require.NoError(t, err)
	assert.Contains(t, out, "--epsilon 0.8")
	assert.Contains(t, out, "--delta 0.2")
	assert.Contains(t, out, "instance.cnf")
}

func TestApproxMCMissingBinary(t *testing.T) {
	a := DefaultApproxMC()
	a.Path = "relnet-no-such-counter"
	_, err := a.Count("instance.cnf")
	assert.Error(t, err)
}

func TestDefaultApproxMC(t *testing.T) {
	a := DefaultApproxMC()
	assert.Equal(t, "approxmc", a.Path)
	assert.Equal(t, 0.8, a.Epsilon)
	assert.Equal(t, 0.2, a.Delta)
}
