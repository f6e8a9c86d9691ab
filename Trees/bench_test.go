package Trees

import (
	"slices"
	"testing"
)

var (
	bAddN = 1000000
	bQryN = bAddN / 2
)

func BenchmarkBuild(b *testing.B) {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	b.ResetTimer()
	for range b.N {
		BuildBST(all, nil)
	}
}

func BenchmarkInsert(b *testing.B) {
	for range b.N {
		tree := NewBST[int]()
		for range bAddN {
			tree.Insert(rg.Int())
		}
	}
}

func create(b *testing.B) (*BST[int], []int) {
	b.Helper()
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	tree := BuildBST(all, nil)
	return tree, tree.InOrder(nil)
}

func BenchmarkDelete(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(len(all), func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		b.StartTimer()
		for _, v := range all {
			tree.Delete(v)
		}
	}
}

var sideEff *Node[int]

func BenchmarkFind(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree, all := create(b)
		rg.Shuffle(bQryN, func(i, j int) {
			all[i], all[j] = all[j], all[i]
		})
		m := slices.Max(all[bQryN:])
		b.StartTimer()
		for _, v := range all[:bQryN] {
			sideEff = tree.Find(v)
		}
		for range bAddN - bQryN {
			sideEff = tree.Find(rg.Intn(m))
		}
	}
}

func BenchmarkLevelOrder(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		tree.LevelOrder(func(n *Node[int]) { sideEff = n })
	}
}

func BenchmarkInOrder(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for range b.N {
		tree.InOrder(func(n *Node[int]) { sideEff = n })
	}
}
