package routing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFirst_ReturnsFirstNonEmpty(t *testing.T) {
	var ran []string
	out, err := scanFirst(
		func() ([]int, error) { ran = append(ran, "a"); return nil, nil },
		func() ([]int, error) { ran = append(ran, "b"); return []int{1, 2}, nil },
		func() ([]int, error) { ran = append(ran, "c"); return []int{3}, nil },
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)
	// Later stages are never run once a stage produced something.
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestScanFirst_AllEmpty(t *testing.T) {
	out, err := scanFirst(
		func() ([]int, error) { return nil, nil },
		func() ([]int, error) { return nil, nil },
	)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestScanFirst_ErrorAborts(t *testing.T) {
	boom := errors.New("stage failed")
	var reached bool
	out, err := scanFirst(
		func() ([]int, error) { return nil, boom },
		func() ([]int, error) { reached = true; return []int{1}, nil },
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
	assert.False(t, reached)
}
