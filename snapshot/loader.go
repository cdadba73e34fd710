package snapshot

import (
	"encoding/gob"
	"os"

	"limitbook/domain/orderbook"
	"limitbook/infra/memory"
)

// Load restores a book from the snapshot at path, if one exists.
// Returns 0, nil if the file is absent -- a snapshot is always
// optional, replay-from-WAL remains the source of truth since the
// snapshot's own seq.
func Load(
	path string,
	book *orderbook.Book,
	pool *memory.Pool[orderbook.Order],
) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Orders {
		o := pool.Get()
		*o = orderbook.Order{
			ID:     orderbook.OrderID(e.ID),
			UserID: e.UserID,
			Side:   orderbook.Side(e.Side),
			Tif:    orderbook.Tif(e.Tif),
			Price:  e.Price,
			Qty:    e.Qty,
			Seq:    e.Seq,
		}
		book.Add(o)
	}

	return s.Seq, nil
}
