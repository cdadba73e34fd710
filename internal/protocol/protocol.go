// Package protocol implements the textual command grammar and trade/
// print output rendering. It is a thin translation layer: it never
// touches the book directly, it only converts between wire-shaped
// strings and the typed commands/results the engine understands.
package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"limitbook/domain/orderbook"
)

// Kind identifies which command a parsed line carries.
type Kind int

const (
	Buy Kind = iota
	Sell
	Cancel
	Modify
	Print
	Clear
)

// Command is a single parsed line. Only the fields relevant to Kind
// are meaningful.
type Command struct {
	Kind  Kind
	ID    orderbook.OrderID
	Side  orderbook.Side
	Tif   orderbook.Tif
	Price int64
	Qty   int64
}

// Parse converts one line of input into a Command. ok is false for
// any malformed line or one that fails a boundary check (zero price,
// zero qty, empty id, invalid tif/side) -- per spec such lines are
// silently discarded, never reported as an error.
func Parse(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}

	switch strings.ToUpper(fields[0]) {
	case "BUY", "SELL":
		return parseAdd(fields)
	case "CANCEL":
		return parseCancel(fields)
	case "MODIFY":
		return parseModify(fields)
	case "PRINT":
		if len(fields) != 1 {
			return Command{}, false
		}
		return Command{Kind: Print}, true
	case "CLEAR":
		if len(fields) != 1 {
			return Command{}, false
		}
		return Command{Kind: Clear}, true
	default:
		return Command{}, false
	}
}

// parseAdd handles: BUY|SELL <tif> <price> <qty> <order_id>
func parseAdd(fields []string) (Command, bool) {
	if len(fields) != 5 {
		return Command{}, false
	}

	tif, ok := parseTif(fields[1])
	if !ok {
		return Command{}, false
	}
	price, ok := parseUint(fields[2])
	if !ok {
		return Command{}, false
	}
	qty, ok := parseUint(fields[3])
	if !ok {
		return Command{}, false
	}
	id := orderbook.OrderID(fields[4])
	if id == "" {
		return Command{}, false
	}

	side := orderbook.Bid
	if strings.EqualFold(fields[0], "SELL") {
		side = orderbook.Ask
	}
	kind := Buy
	if side == orderbook.Ask {
		kind = Sell
	}

	return Command{Kind: kind, ID: id, Side: side, Tif: tif, Price: price, Qty: qty}, true
}

// parseCancel handles: CANCEL <order_id>
func parseCancel(fields []string) (Command, bool) {
	if len(fields) != 2 {
		return Command{}, false
	}
	id := orderbook.OrderID(fields[1])
	if id == "" {
		return Command{}, false
	}
	return Command{Kind: Cancel, ID: id}, true
}

// parseModify handles: MODIFY <order_id> <side> <price> <qty>
func parseModify(fields []string) (Command, bool) {
	if len(fields) != 5 {
		return Command{}, false
	}
	id := orderbook.OrderID(fields[1])
	if id == "" {
		return Command{}, false
	}
	side, ok := parseSide(fields[2])
	if !ok {
		return Command{}, false
	}
	price, ok := parseUint(fields[3])
	if !ok {
		return Command{}, false
	}
	qty, ok := parseUint(fields[4])
	if !ok {
		return Command{}, false
	}
	return Command{Kind: Modify, ID: id, Side: side, Price: price, Qty: qty}, true
}

func parseTif(s string) (orderbook.Tif, bool) {
	switch strings.ToUpper(s) {
	case "GFD":
		return orderbook.GFD, true
	case "IOC":
		return orderbook.IOC, true
	default:
		return 0, false
	}
}

func parseSide(s string) (orderbook.Side, bool) {
	switch strings.ToUpper(s) {
	case "BUY":
		return orderbook.Bid, true
	case "SELL":
		return orderbook.Ask, true
	default:
		return 0, false
	}
}

// parseUint parses a non-negative, non-zero integer token. Price and
// Qty are zero-invalid per spec, so zero itself is rejected here.
func parseUint(s string) (int64, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return int64(v), true
}

// FormatTrade renders one trade in wire form:
// TRADE <passive_id> <passive_price> <matched_qty> <aggressive_id> <aggressive_price> <matched_qty>
func FormatTrade(t orderbook.Trade) string {
	return fmt.Sprintf("TRADE %s %d %d %s %d %d",
		t.RestingID, t.PassivePrice, t.Qty,
		t.AggressorID, t.AggressorPrice, t.Qty,
	)
}

// FormatPrint renders the full book: a SELL section then a BUY
// section, each listing levels from highest price to lowest.
func FormatPrint(book *orderbook.Book) string {
	var sb strings.Builder

	sb.WriteString("SELL:\n")
	var asks []*orderbook.PriceLevel
	book.AsksWalk(func(lvl *orderbook.PriceLevel) { asks = append(asks, lvl) })
	for i := len(asks) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%d %d\n", asks[i].Price, asks[i].TotalQty)
	}

	sb.WriteString("BUY:\n")
	book.BidsWalk(func(lvl *orderbook.PriceLevel) {
		fmt.Fprintf(&sb, "%d %d\n", lvl.Price, lvl.TotalQty)
	})

	return sb.String()
}
