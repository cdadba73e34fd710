package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"limitbook/domain/orderbook"
	"limitbook/infra/memory"
	"limitbook/infra/sequence"
	entrywal "limitbook/infra/wal/entry"
	exitwal "limitbook/infra/wal/exit"
	"limitbook/snapshot"
)

func BenchmarkPlaceOrder_Core(b *testing.B) {
	book := orderbook.NewOrderBook()

	pool := memory.NewPool(func() *orderbook.Order {
		return &orderbook.Order{}
	})
	ring := memory.NewRetireRing(4096)

	seq := sequence.New(0)
	reader := snapshot.NewReader()

	entryWAL, _ := entrywal.Open(entrywal.Config{
		Dir:         b.TempDir(),
		SegmentSize: 64 << 20,
	})
	exitWAL, _ := exitwal.Open(b.TempDir())

	svc := NewOrderService(
		book,
		pool,
		ring,
		reader,
		seq,
		entryWAL,
		exitWAL,
	)

	var counter atomic.Uint64

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			id := orderbook.OrderID(fmt.Sprintf("bench-%d", counter.Add(1)))
			svc.PlaceOrder(
				id,
				orderbook.Bid,
				orderbook.GFD,
				100,
				1,
				1,
			)
		}
	})
}
