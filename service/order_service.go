package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"limitbook/domain/matching"
	"limitbook/domain/orderbook"
	kafkainfra "limitbook/infra/kafka"
	"limitbook/infra/memory"
	"limitbook/infra/sequence"
	entrywal "limitbook/infra/wal/entry"
	exitwal "limitbook/infra/wal/exit"
	"limitbook/snapshot"
)

// OrderService is the single write entry point into the system. All
// coordination between the domain (matching.Engine/orderbook.Book),
// infra (memory, sequencing, WAL) and snapshotting happens here; no
// other package is allowed to mutate the book directly.
type OrderService struct {
	book   *orderbook.Book
	engine *matching.Engine

	pool   *memory.Pool[orderbook.Order]
	ring   *memory.RetireRing
	reader *snapshot.Reader

	seqGen   *sequence.Sequencer
	entryWAL *entrywal.WAL
	exitWAL  *exitwal.ExitWAL

	kafka *kafkainfra.Producer

	subMu sync.Mutex
	subs  map[chan orderbook.Trade]struct{}
}

// NewOrderService wires all dependencies. No globals, no magic.
func NewOrderService(
	book *orderbook.Book,
	pool *memory.Pool[orderbook.Order],
	ring *memory.RetireRing,
	reader *snapshot.Reader,
	seqGen *sequence.Sequencer,
	entryWAL *entrywal.WAL,
	exitWAL *exitwal.ExitWAL,
) *OrderService {
	return &OrderService{
		book:     book,
		engine:   matching.New(book),
		pool:     pool,
		ring:     ring,
		reader:   reader,
		seqGen:   seqGen,
		entryWAL: entryWAL,
		exitWAL:  exitWAL,
		subs:     make(map[chan orderbook.Trade]struct{}),
	}
}

// AttachKafka wires a best-effort tick publisher onto the hot path.
// Optional: a nil producer means trades are simply never published
// there (the exit WAL / broadcaster path is unaffected).
func (s *OrderService) AttachKafka(p *kafkainfra.Producer) {
	s.kafka = p
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// PlaceOrder submits a new order into the engine. ok is false if id is
// already live on the book (duplicate add, silently rejected).
func (s *OrderService) PlaceOrder(
	id orderbook.OrderID,
	side orderbook.Side,
	tif orderbook.Tif,
	price int64,
	qty int64,
	userID uint64,
) (trades []orderbook.Trade, ok bool) {
	seq := s.seqGen.Next()

	o := s.pool.Get()
	*o = orderbook.Order{
		ID:     id,
		UserID: userID,
		Side:   side,
		Tif:    tif,
		Price:  price,
		Qty:    qty,
		Seq:    seq,
	}

	s.appendEntry(entrywal.RecordPlace, seq, []byte(fmt.Sprintf(
		"%s|%d|%d|%d|%d|%d", id, userID, side, tif, price, qty,
	)))

	trades, done, ok := s.engine.Submit(o)
	if !ok {
		s.pool.Put(o)
		return nil, false
	}

	s.onTrades(trades)
	for _, d := range done {
		s.retire(d)
	}
	return trades, true
}

// CancelOrder removes a live order. Reports whether it was found.
func (s *OrderService) CancelOrder(id orderbook.OrderID) bool {
	s.appendEntry(entrywal.RecordCancel, s.seqGen.Next(), []byte(id))

	o, ok := s.engine.Cancel(id)
	if ok {
		s.retire(o)
	}
	return ok
}

// ModifyOrder changes a live order's side/price/quantity. May itself
// produce trades (a price-improving modify can immediately cross).
func (s *OrderService) ModifyOrder(
	id orderbook.OrderID,
	side orderbook.Side,
	price int64,
	qty int64,
) (trades []orderbook.Trade, ok bool) {
	seq := s.seqGen.Next()
	s.appendEntry(entrywal.RecordModify, seq, []byte(fmt.Sprintf(
		"%s|%d|%d|%d", id, side, price, qty,
	)))

	var done []*orderbook.Order
	trades, done, ok = s.engine.Modify(id, side, price, qty)
	if ok {
		s.onTrades(trades)
		for _, d := range done {
			s.retire(d)
		}
	}
	return trades, ok
}

// Clear drops the book wholesale; used for test setup, not part of
// any exchange protocol.
func (s *OrderService) Clear() {
	s.appendEntry(entrywal.RecordClear, s.seqGen.Next(), nil)
	s.engine.Clear()
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Snapshot returns a consistent view of every live order.
// Caller must treat returned orders as read-only.
func (s *OrderService) Snapshot() []*orderbook.Order {
	s.reader.Begin()
	defer s.reader.End()

	out := make([]*orderbook.Order, 0, 1024)

	s.book.BidsWalk(func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			out = append(out, o)
		}
	})
	s.book.AsksWalk(func(lvl *orderbook.PriceLevel) {
		for o := lvl.Head(); o != nil; o = o.Next() {
			out = append(out, o)
		}
	})

	return out
}

//
// ──────────────────────────────────────────────────────────
// Trade fan-out (used by the gRPC streaming surface)
// ──────────────────────────────────────────────────────────
//

// Subscribe registers a new trade listener. The returned channel is
// buffered and best-effort: a slow subscriber drops trades rather
// than blocking the matching path.
func (s *OrderService) Subscribe() chan orderbook.Trade {
	ch := make(chan orderbook.Trade, 64)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	return ch
}

// Unsubscribe removes and closes a previously Subscribed channel.
func (s *OrderService) Unsubscribe(ch chan orderbook.Trade) {
	s.subMu.Lock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
	s.subMu.Unlock()
}

func (s *OrderService) publish(tr orderbook.Trade) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- tr:
		default:
		}
	}
}

//
// ──────────────────────────────────────────────────────────
// Reclamation
// ──────────────────────────────────────────────────────────
//

// AdvanceEpoch performs safe reclamation of retired orders. Intended
// to be called periodically by a background job.
func (s *OrderService) AdvanceEpoch() {
	memory.AdvanceEpochAndReclaim(
		s.ring,
		s.pool,
		s.reader.Epoch(),
	)
}

func (s *OrderService) retire(o *orderbook.Order) {
	_ = s.ring.Enqueue(o)
}

//
// ──────────────────────────────────────────────────────────
// internals
// ──────────────────────────────────────────────────────────
//

func (s *OrderService) appendEntry(t entrywal.RecordType, seq uint64, payload []byte) {
	_ = s.entryWAL.Append(entrywal.NewRecord(t, seq, payload))
}

// onTrades records every trade in the durable outbox, fires a
// best-effort low-latency tick, and fans out to live subscribers.
func (s *OrderService) onTrades(trades []orderbook.Trade) {
	for _, tr := range trades {
		payload := []byte(fmt.Sprintf(
			"%d|%s|%d|%s|%d|%d", tr.Seq, tr.RestingID, tr.PassivePrice, tr.AggressorID, tr.AggressorPrice, tr.Qty,
		))
		_ = s.exitWAL.PutNew(tr.Seq, payload)

		if s.kafka != nil {
			go func(payload []byte) {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = s.kafka.Send(ctx, []byte(tr.RestingID), payload)
			}(payload)
		}

		s.publish(tr)
	}
}
