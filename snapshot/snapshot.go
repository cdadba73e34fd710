package snapshot

import "time"

// Snapshot is a full, point-in-time dump of every live order on the
// book, tagged with the sequence number as of which it was taken.
type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}

// OrderEntry is the gob-serializable projection of a live
// orderbook.Order.
type OrderEntry struct {
	ID     string
	UserID uint64
	Side   int
	Tif    int
	Price  int64
	Qty    int64
	Seq    uint64
}
