package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 2, 2}, 2), "First match should win")
	require.Equal(t, -1, FindIndex([]int{4, 2}, 7))
	require.Equal(t, -1, FindIndex(nil, 0))
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	require.Nil(t, Map(nil, strconv.Itoa))
}
