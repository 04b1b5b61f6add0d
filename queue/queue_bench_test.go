package queue_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/min1324/ringq/queue"
)

type bench struct {
	perG func(b *testing.B, q *queue.Queue)
}

func benchQueue(b *testing.B, bench bench) {
	for _, size := range [...]int{1 << 4, 1 << 10, 1 << 14} {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			q := queue.New()
			defer q.Free()

			r := rand.New(rand.NewSource(int64(size)))
			for i := 0; i < size; i++ {
				q.InsertTail(randString(r))
			}

			b.ResetTimer()
			bench.perG(b, q)
		})
	}
}

func BenchmarkInsertRemove(b *testing.B) {
	benchQueue(b, bench{
		perG: func(b *testing.B, q *queue.Queue) {
			sp := make([]byte, 16)
			for i := 0; i < b.N; i++ {
				q.InsertTail("bench")
				q.RemoveHead(sp).Release()
			}
		},
	})
}

func BenchmarkSize(b *testing.B) {
	benchQueue(b, bench{
		perG: func(b *testing.B, q *queue.Queue) {
			for i := 0; i < b.N; i++ {
				q.Size()
			}
		},
	})
}

func BenchmarkReverse(b *testing.B) {
	benchQueue(b, bench{
		perG: func(b *testing.B, q *queue.Queue) {
			for i := 0; i < b.N; i++ {
				q.Reverse()
			}
		},
	})
}

func BenchmarkSort(b *testing.B) {
	benchQueue(b, bench{
		perG: func(b *testing.B, q *queue.Queue) {
			for i := 0; i < b.N; i++ {
				// alternate so every round sorts descending input
				q.Sort()
				q.Reverse()
			}
		},
	})
}
