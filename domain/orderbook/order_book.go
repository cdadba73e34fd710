package orderbook

import "sync/atomic"

// Trade is one match produced by Book.Add/Modify. AggressorID is the
// order that arrived last (the incoming side of the match); RestingID
// is the order that was already on the book. PassivePrice is the
// resting level's price; AggressorPrice is the incoming order's own
// limit price at the time of the match -- they can differ, since a
// marketable buy always trades at the (lower-or-equal) resting ask
// price, not its own bid.
type Trade struct {
	Seq            uint64
	AggressorID    OrderID
	AggressorSide  Side
	AggressorPrice int64
	RestingID      OrderID
	PassivePrice   int64
	Qty            int64
}

// Book is single-writer and deterministic: every method must be called
// from one goroutine (or under external mutual exclusion) at a time.
// It owns both price ladders and the id index, and guarantees I1-I6:
// every live order appears in exactly one level's queue and in the
// index, levels never go stale in the ladder once empty, and the two
// ladders never end up crossed after any operation returns.
type Book struct {
	Bids *RBTree
	Asks *RBTree

	index map[OrderID]*Order

	LastSeq  atomic.Uint64
	tradeSeq atomic.Uint64
}

func NewOrderBook() *Book {
	return &Book{
		Bids:  NewRBTree(),
		Asks:  NewRBTree(),
		index: make(map[OrderID]*Order),
	}
}

func (b *Book) ladder(s Side) *RBTree {
	if s == Bid {
		return b.Bids
	}
	return b.Asks
}

func (b *Book) opposite(s Side) *RBTree {
	if s == Bid {
		return b.Asks
	}
	return b.Bids
}

// Get returns the live order with the given id, or nil.
func (b *Book) Get(id OrderID) *Order {
	return b.index[id]
}

// Add matches o against the resting book and, if any quantity remains
// and o.Qty > 0, rests it at the back of its price level. Returns the
// trades produced and any resting orders fully filled in the process
// (callers retire these). ok is false only when id is already live on
// the book, in which case the book is left untouched.
func (b *Book) Add(o *Order) (trades []Trade, filled []*Order, ok bool) {
	if _, exists := b.index[o.ID]; exists {
		return nil, nil, false
	}

	b.LastSeq.Store(o.Seq)

	trades, filled = b.match(o)

	if o.Qty > 0 {
		b.rest(o)
	}
	return trades, filled, true
}

// Cancel removes a live order from the book, returning it so the
// caller can retire it. Reports whether it was found.
func (b *Book) Cancel(id OrderID) (*Order, bool) {
	o, found := b.index[id]
	if !found {
		return nil, false
	}
	b.remove(o)
	return o, true
}

// Modify changes a live order's side, price and/or quantity. A modify
// whose side, price and quantity are all unchanged is a true no-op:
// the order keeps its place in the queue (law L3). A quantity-only
// change at the same side/price moves the order to the tail of its
// level, losing priority (law L4). A side or price change pulls the
// order off the book entirely and re-submits it as a brand-new
// arrival against the (possibly different) opposite ladder -- which
// can immediately cross and trade at the new price; since the order is
// off the book before it is re-matched, it cannot trade against its own
// pre-modify self. Reports whether id was found.
func (b *Book) Modify(id OrderID, newSide Side, newPrice, newQty int64) (trades []Trade, filled []*Order, ok bool) {
	o, found := b.index[id]
	if !found {
		return nil, nil, false
	}

	if newSide == o.Side && newPrice == o.Price {
		if newQty == o.Qty {
			return nil, nil, true
		}
		lvl := o.Level
		lvl.Remove(o)
		o.Qty = newQty
		lvl.Enqueue(o)
		return nil, nil, true
	}

	oldLvl := o.Level
	oldLvl.Remove(o)
	if oldLvl.Empty() {
		b.ladder(o.Side).Erase(oldLvl.Price)
	}
	delete(b.index, id)

	o.Side = newSide
	o.Price = newPrice
	o.Qty = newQty

	trades, filled = b.match(o)
	if o.Qty > 0 {
		b.rest(o)
	}
	return trades, filled, true
}

// Clear resets the book to empty, as if freshly created.
func (b *Book) Clear() {
	b.Bids = NewRBTree()
	b.Asks = NewRBTree()
	b.index = make(map[OrderID]*Order)
}

// ---- traversal helpers (snapshotting) ----

func (b *Book) BidsWalk(fn func(*PriceLevel)) {
	b.Bids.walkDesc(fn)
}

func (b *Book) AsksWalk(fn func(*PriceLevel)) {
	b.Asks.walkAsc(fn)
}

// ---- internals ----

func (b *Book) rest(o *Order) {
	lvl := b.ladder(o.Side).GetOrCreate(o.Price)
	lvl.Enqueue(o)
	b.index[o.ID] = o
}

func (b *Book) remove(o *Order) {
	lvl := o.Level
	lvl.Remove(o)
	if lvl.Empty() {
		b.ladder(o.Side).Erase(lvl.Price)
	}
	delete(b.index, o.ID)
}

// match crosses o against the opposite ladder until o is exhausted or
// no further resting order is eligible, skipping over (but never
// consuming) any resting order that shares o's id.
func (b *Book) match(o *Order) (trades []Trade, filled []*Order) {
	opp := b.opposite(o.Side)

	for o.Qty > 0 {
		lvl := bestFor(opp, o.Side)
		if lvl == nil || !crosses(o, lvl.Price) {
			break
		}

		cur := lvl.Head()
		for cur != nil && o.Qty > 0 {
			next := cur.next
			if cur.ID == o.ID {
				cur = next
				continue
			}

			qty := min64(o.Qty, cur.Qty)
			trades = append(trades, Trade{
				Seq:            b.tradeSeq.Add(1),
				AggressorID:    o.ID,
				AggressorSide:  o.Side,
				AggressorPrice: o.Price,
				RestingID:      cur.ID,
				PassivePrice:   lvl.Price,
				Qty:            qty,
			})

			o.Qty -= qty
			lvl.ModifyQty(cur, cur.Qty-qty)
			if cur.Qty == 0 {
				lvl.Remove(cur)
				delete(b.index, cur.ID)
				filled = append(filled, cur)
			}

			cur = next
		}

		if lvl.Empty() {
			opp.Erase(lvl.Price)
		} else if o.Qty > 0 {
			// Every remaining order at this price is self-matched
			// against o; nothing more can trade here.
			break
		}
	}

	return trades, filled
}

// bestFor returns the best-priced resting level an aggressor on side s
// would look at: the lowest ask for a buy, the highest bid for a sell.
func bestFor(ladder *RBTree, aggressor Side) *PriceLevel {
	if aggressor == Bid {
		return ladder.BestMin()
	}
	return ladder.BestMax()
}

// crosses reports whether a resting level at restingPrice is
// marketable against o.
func crosses(o *Order, restingPrice int64) bool {
	if o.Side == Bid {
		return restingPrice <= o.Price
	}
	return restingPrice >= o.Price
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
