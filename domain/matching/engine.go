// Package matching orchestrates time-in-force policy on top of a pure
// orderbook.Book. Book itself only knows how to cross and rest orders;
// Engine decides what happens to whatever is left over once Book is
// done with an order, and collects every order the book let go of so
// the caller can retire them (pool/epoch reclamation).
package matching

import "limitbook/domain/orderbook"

// Engine wraps a Book and applies each order's Tif after the book has
// matched it.
type Engine struct {
	Book *orderbook.Book
}

func New(book *orderbook.Book) *Engine {
	return &Engine{Book: book}
}

// Submit adds o to the book and, if o is IOC and still carries
// quantity after matching, immediately cancels the remainder instead
// of letting it rest. Returns the trades produced and every order
// (resting fills, plus o itself if it never rests) that is no longer
// live on the book and safe to retire.
func (e *Engine) Submit(o *orderbook.Order) (trades []orderbook.Trade, done []*orderbook.Order, ok bool) {
	trades, done, ok = e.Book.Add(o)
	if !ok {
		return trades, done, ok
	}
	if cancelled := e.applyTif(o); cancelled || o.Qty == 0 {
		done = append(done, o)
	}
	return trades, done, ok
}

// Cancel removes a live order from the book, returning it for
// retirement.
func (e *Engine) Cancel(id orderbook.OrderID) (*orderbook.Order, bool) {
	return e.Book.Cancel(id)
}

// Modify changes a live order's side/price/quantity, matching the
// result against the book exactly as a fresh arrival would, then
// applies the order's Tif to whatever remains. done holds the resting
// orders it filled, plus the modified order itself if it was fully
// filled or its IOC remainder was cancelled.
func (e *Engine) Modify(id orderbook.OrderID, newSide orderbook.Side, newPrice, newQty int64) (trades []orderbook.Trade, done []*orderbook.Order, ok bool) {
	o := e.Book.Get(id)
	trades, done, ok = e.Book.Modify(id, newSide, newPrice, newQty)
	if !ok {
		return trades, done, ok
	}
	if e.Book.Get(id) == nil {
		done = append(done, o)
	} else if cancelled := e.applyTif(o); cancelled {
		done = append(done, o)
	}
	return trades, done, ok
}

// Clear empties the book.
func (e *Engine) Clear() {
	e.Book.Clear()
}

func (e *Engine) applyTif(o *orderbook.Order) (cancelled bool) {
	if o.Tif == orderbook.IOC && o.Qty > 0 {
		_, ok := e.Book.Cancel(o.ID)
		return ok
	}
	return false
}
