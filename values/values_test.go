package values

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumberStringFormatting(t *testing.T) {
	require.Equal(t, "7", Int(7).String())
	require.Equal(t, "3.5", Float(3.5).String())
}

func TestNumberTruthiness(t *testing.T) {
	require.True(t, Int(1).Truthy())
	require.False(t, Int(0).Truthy())
	require.False(t, Float(0).Truthy())
}

func TestListTruthiness(t *testing.T) {
	require.False(t, NewList(nil).Truthy())
	require.True(t, NewList([]Value{Int(1)}).Truthy())
}

func TestRangeTruthiness(t *testing.T) {
	require.True(t, Range{Start: 0, End: 5}.Truthy())
	require.True(t, Range{Start: 5, End: 5}.Truthy())
	require.False(t, Range{Start: 5, End: 0}.Truthy())
}

func TestNullIsFalsy(t *testing.T) {
	require.False(t, Null{}.Truthy())
}
