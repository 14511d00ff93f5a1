package scope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spylang/values"
)

func TestDeclareAndLookUp(t *testing.T) {
	s := New(nil)
	s.Declare("x", values.Int(1))
	v, ok := s.LookUp("x")
	require.True(t, ok)
	require.Equal(t, values.Int(1), v)
}

func TestLookUpWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.Declare("x", values.Int(1))
	child := New(parent)
	v, ok := child.LookUp("x")
	require.True(t, ok)
	require.Equal(t, values.Int(1), v)
}

func TestChildShadowsParent(t *testing.T) {
	parent := New(nil)
	parent.Declare("x", values.Int(1))
	child := New(parent)
	child.Declare("x", values.Int(2))

	childVal, _ := child.LookUp("x")
	parentVal, _ := parent.LookUp("x")
	require.Equal(t, values.Int(2), childVal)
	require.Equal(t, values.Int(1), parentVal)
}

func TestAssignMutatesDefiningScope(t *testing.T) {
	parent := New(nil)
	parent.Declare("x", values.Int(1))
	child := New(parent)

	ok := child.Assign("x", values.Int(9))
	require.True(t, ok)

	v, _ := parent.LookUp("x")
	require.Equal(t, values.Int(9), v)
}

func TestAssignToUndeclaredFails(t *testing.T) {
	s := New(nil)
	require.False(t, s.Assign("missing", values.Int(1)))
}

func TestClosureCapturesEnvironmentByReference(t *testing.T) {
	outer := New(nil)
	outer.Declare("count", values.Int(0))

	// Simulate a closure holding a direct reference to outer, the way
	// function.Function.Env does: mutating the binding after capture
	// must be visible through the captured reference.
	captured := outer
	outer.Assign("count", values.Int(5))

	v, ok := captured.LookUp("count")
	require.True(t, ok)
	require.Equal(t, values.Int(5), v)
}
