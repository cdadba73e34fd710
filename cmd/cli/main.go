// Command cli runs the matching engine directly against stdin/stdout
// using the textual command grammar, with no persistence and no
// network surface. It exists to give a direct, scriptable target for
// conformance against the exchange's line protocol.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"limitbook/domain/matching"
	"limitbook/domain/orderbook"
	"limitbook/internal/ingest"
	"limitbook/internal/protocol"
)

func main() {
	book := orderbook.NewOrderBook()
	engine := matching.New(book)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	q := ingest.NewQueue(1024)

	handle := func(line string) (ingest.Task, bool) {
		cmd, ok := protocol.Parse(line)
		if !ok {
			return nil, false
		}
		return func() { apply(engine, cmd, out) }, true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go q.Run(ctx)

	if err := ingest.Produce(os.Stdin, q, handle); err != nil {
		fmt.Fprintln(os.Stderr, "input error:", err)
	}
	q.Wait()
}

func apply(e *matching.Engine, cmd protocol.Command, out *bufio.Writer) {
	switch cmd.Kind {
	case protocol.Buy, protocol.Sell:
		trades, _, _ := e.Submit(&orderbook.Order{
			ID:    cmd.ID,
			Side:  cmd.Side,
			Tif:   cmd.Tif,
			Price: cmd.Price,
			Qty:   cmd.Qty,
		})
		writeTrades(out, trades)

	case protocol.Cancel:
		e.Cancel(cmd.ID)

	case protocol.Modify:
		trades, _, _ := e.Modify(cmd.ID, cmd.Side, cmd.Price, cmd.Qty)
		writeTrades(out, trades)

	case protocol.Clear:
		e.Clear()

	case protocol.Print:
		fmt.Fprint(out, protocol.FormatPrint(e.Book))
	}

	out.Flush()
}

func writeTrades(out *bufio.Writer, trades []orderbook.Trade) {
	for _, t := range trades {
		fmt.Fprintln(out, protocol.FormatTrade(t))
	}
}
