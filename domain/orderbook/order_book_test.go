package orderbook

import "testing"

func newOrder(id OrderID, side Side, price, qty int64, seq uint64) *Order {
	return &Order{ID: id, Side: side, Price: price, Qty: qty, Seq: seq, Tif: GFD}
}

func TestAddNoCross(t *testing.T) {
	b := NewOrderBook()

	trades, filled, ok := b.Add(newOrder("b1", Bid, 100, 10, 1))
	if !ok || len(trades) != 0 || len(filled) != 0 {
		t.Fatalf("expected resting add, got trades=%v filled=%v ok=%v", trades, filled, ok)
	}

	if lvl := b.Bids.Find(100); lvl == nil || lvl.TotalQty != 10 {
		t.Fatalf("expected level at 100 with qty 10, got %+v", lvl)
	}
}

func TestAddCrossesFullFill(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("s1", Ask, 100, 10, 1))

	trades, filled, ok := b.Add(newOrder("b1", Bid, 100, 10, 2))
	if !ok {
		t.Fatalf("expected add ok")
	}
	if len(trades) != 1 || trades[0].Qty != 10 || trades[0].PassivePrice != 100 {
		t.Fatalf("unexpected trades: %+v", trades)
	}
	if len(filled) != 1 || filled[0].ID != "s1" {
		t.Fatalf("expected resting order s1 fully filled, got %+v", filled)
	}
	if b.Asks.Find(100) != nil {
		t.Fatalf("expected empty ask level to be erased")
	}
}

func TestAddPartialFillRests(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("s1", Ask, 100, 4, 1))

	trades, filled, ok := b.Add(newOrder("b1", Bid, 100, 10, 2))
	if !ok || len(trades) != 1 || trades[0].Qty != 4 {
		t.Fatalf("unexpected trades: %+v ok=%v", trades, ok)
	}
	if len(filled) != 1 {
		t.Fatalf("expected resting ask fully filled")
	}
	if o := b.Get("b1"); o == nil || o.Qty != 6 {
		t.Fatalf("expected aggressor to rest with 6 remaining, got %+v", o)
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("o1", Bid, 100, 10, 1))

	_, _, ok := b.Add(newOrder("o1", Bid, 101, 5, 2))
	if ok {
		t.Fatalf("expected duplicate id to be rejected")
	}
	if o := b.Get("o1"); o == nil || o.Price != 100 || o.Qty != 10 {
		t.Fatalf("book must be untouched by rejected duplicate, got %+v", o)
	}
}

func TestSelfMatchSkipped(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("x", Ask, 100, 10, 1))

	trades, _, ok := b.Add(newOrder("x", Bid, 100, 10, 2))
	if !ok {
		t.Fatalf("expected add ok")
	}
	if len(trades) != 0 {
		t.Fatalf("expected no trade against a same-id resting order, got %+v", trades)
	}
	if lvl := b.Asks.Find(100); lvl == nil || lvl.TotalQty != 10 {
		t.Fatalf("resting self-order must be left untouched, got %+v", lvl)
	}
}

func TestCancelRemovesOrderAndEmptyLevel(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("o1", Bid, 100, 10, 1))

	o, ok := b.Cancel("o1")
	if !ok || o.ID != "o1" {
		t.Fatalf("expected cancel to find o1, got %+v ok=%v", o, ok)
	}
	if b.Get("o1") != nil {
		t.Fatalf("cancelled order must not be live")
	}
	if b.Bids.Find(100) != nil {
		t.Fatalf("expected emptied level to be erased from the ladder")
	}

	if _, ok := b.Cancel("o1"); ok {
		t.Fatalf("expected second cancel of the same id to fail")
	}
}

func TestModifySamePriceSameQtyIsNoop(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("o1", Bid, 100, 10, 1))
	b.Add(newOrder("o2", Bid, 100, 5, 2))

	trades, filled, ok := b.Modify("o1", Bid, 100, 10)
	if !ok || len(trades) != 0 || len(filled) != 0 {
		t.Fatalf("expected true no-op, got trades=%v filled=%v", trades, filled)
	}

	lvl := b.Bids.Find(100)
	if lvl.Head().ID != "o1" {
		t.Fatalf("expected o1 to keep head priority, level head is %s", lvl.Head().ID)
	}
}

func TestModifyQtyChangeLosesPriority(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("o1", Bid, 100, 10, 1))
	b.Add(newOrder("o2", Bid, 100, 5, 2))

	if _, _, ok := b.Modify("o1", Bid, 100, 3); !ok {
		t.Fatalf("expected modify to succeed")
	}

	lvl := b.Bids.Find(100)
	if lvl.Head().ID != "o2" {
		t.Fatalf("expected o1 to lose priority to o2, head is %s", lvl.Head().ID)
	}
	if o := b.Get("o1"); o.Qty != 3 {
		t.Fatalf("expected o1 qty updated to 3, got %d", o.Qty)
	}
}

func TestModifyPriceChangeCanTrade(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("s1", Ask, 101, 10, 1))
	b.Add(newOrder("b1", Bid, 100, 10, 2))

	trades, filled, ok := b.Modify("b1", Bid, 101, 10)
	if !ok {
		t.Fatalf("expected modify to succeed")
	}
	if len(trades) != 1 || trades[0].PassivePrice != 101 || trades[0].Qty != 10 {
		t.Fatalf("expected a trade at the new price, got %+v", trades)
	}
	if len(filled) != 1 || filled[0].ID != "s1" {
		t.Fatalf("expected resting ask to be fully filled, got %+v", filled)
	}
	if b.Get("b1") != nil {
		t.Fatalf("expected b1 to be fully filled by the modify")
	}
}

func TestClearEmptiesBook(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("o1", Bid, 100, 10, 1))
	b.Add(newOrder("o2", Ask, 105, 10, 2))

	b.Clear()

	if b.Bids.BestMax() != nil || b.Asks.BestMin() != nil {
		t.Fatalf("expected both ladders empty after clear")
	}
	if b.Get("o1") != nil || b.Get("o2") != nil {
		t.Fatalf("expected index empty after clear")
	}
}

func TestFIFOPriorityWithinLevel(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("o1", Bid, 100, 5, 1))
	b.Add(newOrder("o2", Bid, 100, 5, 2))
	b.Add(newOrder("o3", Bid, 100, 5, 3))

	trades, filled, _ := b.Add(newOrder("s1", Ask, 100, 7, 4))
	if len(trades) != 2 {
		t.Fatalf("expected two trades (o1 fully, o2 partially), got %+v", trades)
	}
	if trades[0].RestingID != "o1" || trades[1].RestingID != "o2" {
		t.Fatalf("expected FIFO order o1 then o2, got %+v", trades)
	}
	if len(filled) != 1 || filled[0].ID != "o1" {
		t.Fatalf("expected only o1 fully filled, got %+v", filled)
	}
	if o := b.Get("o2"); o == nil || o.Qty != 3 {
		t.Fatalf("expected o2 partially filled to qty 3, got %+v", o)
	}
}

func TestBookNeverEndsCrossed(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("b1", Bid, 100, 10, 1))
	b.Add(newOrder("s1", Ask, 105, 10, 2))
	b.Add(newOrder("b2", Bid, 106, 3, 3))

	bestBid := b.Bids.BestMax()
	bestAsk := b.Asks.BestMin()
	if bestBid != nil && bestAsk != nil && bestBid.Price >= bestAsk.Price {
		t.Fatalf("book ended crossed: bid=%d ask=%d", bestBid.Price, bestAsk.Price)
	}
}

// TestModifySideFlipSelfMatchPrevention mirrors spec scenario 5: an
// order modified to the opposite side at the same price must trade
// against the other resting order, never against its own pre-modify
// self (Book.Modify takes the order off the book before re-matching it,
// so no pre-modify copy is left to trade against).
func TestModifySideFlipSelfMatchPrevention(t *testing.T) {
	b := NewOrderBook()
	b.Add(newOrder("o1", Bid, 1000, 10, 1))
	b.Add(newOrder("o2", Bid, 1000, 10, 2))

	trades, filled, ok := b.Modify("o1", Ask, 1000, 10)
	if !ok {
		t.Fatalf("expected modify to succeed")
	}
	if len(trades) != 1 || trades[0].RestingID != "o2" || trades[0].AggressorID != "o1" || trades[0].Qty != 10 {
		t.Fatalf("expected o1 to trade against o2, got %+v", trades)
	}
	if len(filled) != 1 || filled[0].ID != "o2" {
		t.Fatalf("expected o2 fully filled, got %+v", filled)
	}
	if b.Get("o1") != nil || b.Get("o2") != nil {
		t.Fatalf("expected both orders fully consumed")
	}
	if b.Bids.BestMax() != nil || b.Asks.BestMin() != nil {
		t.Fatalf("expected both ladders empty after the cross")
	}
}
