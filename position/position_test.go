package position

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	p := New("<test>", "ab\ncd")
	p = p.Advance('a')
	require.Equal(t, 1, p.Index)
	require.Equal(t, 1, p.Line)
	require.Equal(t, 2, p.Column)

	p = p.Advance('b')
	p = p.Advance('\n')
	require.Equal(t, 2, p.Line)
	require.Equal(t, 1, p.Column)
}
