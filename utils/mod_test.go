package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 2, FindIndex([]string{"a", "b", "c"}, "c"))
	require.Equal(t, -1, FindIndex([]string{"a", "b"}, "z"))
	require.Equal(t, -1, FindIndex(nil, 1))
}

func TestMoveToFront(t *testing.T) {
	t.Run("moving a middle item", func(t *testing.T) {
		s := []int{1, 2, 3, 4}
		require.True(t, MoveToFront(s, 3))
		require.Equal(t, []int{3, 1, 2, 4}, s, "Other items should keep their order")
	})

	t.Run("moving the first item", func(t *testing.T) {
		s := []int{1, 2, 3}
		require.True(t, MoveToFront(s, 1))
		require.Equal(t, []int{1, 2, 3}, s)
	})

	t.Run("missing item", func(t *testing.T) {
		s := []int{1, 2, 3}
		require.False(t, MoveToFront(s, 9))
		require.Equal(t, []int{1, 2, 3}, s, "Slice should be untouched")
	})
}
