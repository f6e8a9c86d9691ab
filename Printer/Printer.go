// Package Printer renders binary search trees as text, sideways: the right subtree is
// printed above a node and the left subtree below it, one node per line.
package Printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"golang.org/x/exp/constraints"
)

const (
	branchUp   = "┌── "
	branchDown = "└── "
	pipe       = "│   "
	blank      = "    "
)

// Sprint is just a wrapper for Fprint.
func Sprint[T constraints.Ordered](n *Trees.Node[T]) string {
	w := new(strings.Builder)
	Fprint(w, n)
	return w.String()
}

// Fprint writes the subtree rooting at n to w. Nothing is written if n is nil.
func Fprint[T constraints.Ordered](w io.Writer, n *Trees.Node[T]) error {
	if n == nil {
		return nil
	}
	return fprintRec(w, n, "", true)
}

// fprintRec, rec-descent the tree. isLeft tells whether n hangs below its parent's line,
// which is also true for the root.
func fprintRec[T constraints.Ordered](w io.Writer, n *Trees.Node[T], prefix string, isLeft bool) error {
	if r := n.Right(); r != nil {
		p := prefix + blank
		if isLeft {
			p = prefix + pipe
		}
		if err := fprintRec(w, r, p, false); err != nil {
			return err
		}
	}
	branch := branchUp
	if isLeft {
		branch = branchDown
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, branch, n.Value()); err != nil {
		return err
	}
	if l := n.Left(); l != nil {
		p := prefix + pipe
		if isLeft {
			p = prefix + blank
		}
		return fprintRec(w, l, p, true)
	}
	return nil
}
