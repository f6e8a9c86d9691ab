package Printer

import (
	"errors"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/stretchr/testify/require"
)

func TestSprint_Reference(t *testing.T) {
	tree := Trees.BuildBST([]int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324}, nil)
	want := "" +
		"│           ┌── 6345\n" +
		"│       ┌── 324\n" +
		"│   ┌── 67\n" +
		"│   │   │   ┌── 23\n" +
		"│   │   └── 9\n" +
		"└── 8\n" +
		"    │       ┌── 7\n" +
		"    │   ┌── 5\n" +
		"    └── 4\n" +
		"        │   ┌── 3\n" +
		"        └── 1\n"
	require.Equal(t, want, Sprint(tree.Root()))
}

func TestSprint_Small(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"b"}, "└── b\n"},
		{[]string{"a", "b"}, "└── b\n    └── a\n"},
		{[]string{"a", "b", "c"}, "│   ┌── c\n└── b\n    └── a\n"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Sprint(Trees.BuildBST(c.in, nil).Root()), c.in)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestFprint_WriteError(t *testing.T) {
	tree := Trees.BuildBST([]int{1, 2, 3}, nil)
	require.Error(t, Fprint(failWriter{}, tree.Root()))
	require.NoError(t, Fprint[int](failWriter{}, nil))
}
