package main

import (
	"slices"
	"testing"
)

func TestParseList(t *testing.T) {
	if r, err := parseList(""); err != nil || r != nil {
		t.Errorf("empty list gave %v %v", r, err)
	}
	if r, err := parseList("3, -1,20"); err != nil || !slices.Equal(r, []int{3, -1, 20}) {
		t.Errorf("got %v %v", r, err)
	}
	if _, err := parseList("3,x"); err == nil {
		t.Errorf("bad value accepted")
	}
}
