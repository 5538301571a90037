package Trees

import (
	"testing"
)

var (
	bN    uint32 = 1000000
	bMove uint32 = bN / 2
)

var sideEff uint32

func BenchmarkInsertAt(b *testing.B) {
	for range b.N {
		tree := New(bN)
		for h := range bN {
			tree.InsertAt(h, uint32(rg.Intn(int(h)+1)))
		}
	}
}

func BenchmarkIdentity(b *testing.B) {
	for range b.N {
		sideEff = Identity(bN).Size()
	}
}

func BenchmarkRemoveAt(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := Identity(bN)
		b.StartTimer()
		for tree.Size() > 0 {
			sideEff = tree.RemoveAt(uint32(rg.Intn(int(tree.Size()))))
		}
	}
}

// BenchmarkMove relocates random handles the way a mixing round does.
func BenchmarkMove(b *testing.B) {
	tree := Identity(bN)
	b.ResetTimer()
	for range b.N {
		for range bMove {
			h := uint32(rg.Intn(int(bN)))
			tree.RemoveAt(tree.PositionOf(h))
			tree.InsertAt(h, uint32(rg.Intn(int(bN))))
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	tree := Identity(bN)
	b.ResetTimer()
	for range b.N {
		for range bMove {
			sideEff = tree.NodeAt(tree.PositionOf(uint32(rg.Intn(int(bN)))))
		}
	}
}
