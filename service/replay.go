package service

import (
	"fmt"
	"strconv"
	"strings"

	"limitbook/domain/matching"
	"limitbook/domain/orderbook"
	"limitbook/infra/memory"
	"limitbook/infra/sequence"
	entrywal "limitbook/infra/wal/entry"
)

// ReplayFromWAL rebuilds in-memory book state from the entry WAL. This
// must run before accepting any traffic. The exit WAL is never
// replayed -- it only tracks delivery of already-committed trades.
//
// Replay goes through a throwaway matching.Engine, not the book
// directly, so that IOC remainders are cancelled exactly as they were
// the first time an order was submitted -- replaying straight against
// Book.Add would leave an IOC order's unfilled remainder resting
// forever instead of reproducing the original cancel.
//
// Records at or below seqGen's starting value (the seq of a snapshot
// already loaded into book) are skipped, since the book reflects them.
func ReplayFromWAL(
	walDir string,
	book *orderbook.Book,
	pool *memory.Pool[orderbook.Order],
	seqGen *sequence.Sequencer,
) error {
	engine := matching.New(book)
	snapSeq := seqGen.Current()

	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= snapSeq {
			return nil
		}
		switch rec.Type {
		case entrywal.RecordPlace:
			return replayPlace(engine, pool, rec)
		case entrywal.RecordCancel:
			engine.Cancel(orderbook.OrderID(rec.Data))
			return nil
		case entrywal.RecordModify:
			return replayModify(engine, rec)
		case entrywal.RecordClear:
			engine.Clear()
			return nil
		default:
			return fmt.Errorf("unknown WAL record type %d", rec.Type)
		}
	})
	if err != nil {
		return err
	}

	if lastSeq > snapSeq {
		seqGen.Reset(lastSeq)
	}
	fmt.Printf("WAL replay completed successfully (last seq = %d)\n", lastSeq)
	return nil
}

// replayPlace reconstructs a place intent. Payload:
// id|userID|side|tif|price|qty
func replayPlace(engine *matching.Engine, pool *memory.Pool[orderbook.Order], rec *entrywal.Record) error {
	parts := strings.Split(string(rec.Data), "|")
	if len(parts) != 6 {
		return fmt.Errorf("invalid place payload: %s", rec.Data)
	}

	userID, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return err
	}
	side, err := strconv.Atoi(parts[2])
	if err != nil {
		return err
	}
	tif, err := strconv.Atoi(parts[3])
	if err != nil {
		return err
	}
	price, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return err
	}
	qty, err := strconv.ParseInt(parts[5], 10, 64)
	if err != nil {
		return err
	}

	o := pool.Get()
	*o = orderbook.Order{
		ID:     orderbook.OrderID(parts[0]),
		UserID: userID,
		Side:   orderbook.Side(side),
		Tif:    orderbook.Tif(tif),
		Price:  price,
		Qty:    qty,
		Seq:    rec.Seq,
	}
	engine.Submit(o)
	return nil
}

// replayModify reconstructs a modify intent. Payload:
// id|side|price|qty
func replayModify(engine *matching.Engine, rec *entrywal.Record) error {
	parts := strings.Split(string(rec.Data), "|")
	if len(parts) != 4 {
		return fmt.Errorf("invalid modify payload: %s", rec.Data)
	}

	side, err := strconv.Atoi(parts[1])
	if err != nil {
		return err
	}
	price, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return err
	}
	qty, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return err
	}

	engine.Modify(orderbook.OrderID(parts[0]), orderbook.Side(side), price, qty)
	return nil
}
