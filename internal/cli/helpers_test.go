package cli

import (
	"testing"

	"github.com/aretw0/switchboard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateFlags(t *testing.T) {
	stack, err := ParseStateFlags([]string{"order", "order.payment:AskingCard"})
	require.NoError(t, err)
	assert.Equal(t, []domain.StateEntry{
		{Path: "order"},
		{Path: "order.payment", SubState: "AskingCard"},
	}, stack)
}

func TestParseStateFlags_Empty(t *testing.T) {
	stack, err := ParseStateFlags(nil)
	require.NoError(t, err)
	assert.Nil(t, stack)
}

func TestParseStateFlags_Invalid(t *testing.T) {
	_, err := ParseStateFlags([]string{":AskingCard"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --state")
}
