package orderedlist_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/orderedlist"
)

// benchSizes are the list sizes to benchmark.
var benchSizes = []int{256, 1024, 4096}

// sinkB defeats dead-code elimination.
var sinkB bool

func BenchmarkInsertSorted(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				l := orderedlist.New(orderedlist.Natural[int]())
				for v := 0; v < n; v++ {
					l.Insert(v)
				}
			}
		})
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			vals := rng.Perm(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l := orderedlist.New(orderedlist.Natural[int]())
				for _, v := range vals {
					l.Insert(v)
				}
			}
		})
	}
}

func BenchmarkFind(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			l := orderedlist.New(orderedlist.Natural[int]())
			for v := 0; v < n; v++ {
				l.Insert(v)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = l.Find(i % n)
			}
		})
	}
}
