package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"limitbook/domain/orderbook"
)

// Writer persists full-book snapshots to a single file under Dir.
type Writer struct {
	Dir string
}

func (w *Writer) Write(seq uint64, book *orderbook.Book) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, 1024),
	}

	collect := func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			s.Orders = append(s.Orders, OrderEntry{
				ID:     string(o.ID),
				UserID: o.UserID,
				Side:   int(o.Side),
				Tif:    int(o.Tif),
				Price:  o.Price,
				Qty:    o.Qty,
				Seq:    o.Seq,
			})
		}
	}

	book.BidsWalk(collect)
	book.AsksWalk(collect)

	return gob.NewEncoder(f).Encode(&s)
}
