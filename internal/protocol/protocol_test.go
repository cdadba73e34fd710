package protocol

import (
	"strings"
	"testing"

	"limitbook/domain/matching"
	"limitbook/domain/orderbook"
)

func TestParseAddRejectsBadLines(t *testing.T) {
	cases := []string{
		"",
		"BUY GFD 1000 10",        // missing id
		"BUY BOGUS 1000 10 o1",   // bad tif
		"BUY GFD 0 10 o1",        // zero price
		"BUY GFD 1000 0 o1",      // zero qty
		"BUY GFD 1000 10 ",       // empty id after trim
		"FROB GFD 1000 10 o1",    // unknown verb
	}
	for _, line := range cases {
		if _, ok := Parse(line); ok {
			t.Fatalf("expected %q to be rejected", line)
		}
	}
}

func TestParseAdd(t *testing.T) {
	cmd, ok := Parse("BUY GFD 1000 10 o1")
	if !ok {
		t.Fatalf("expected valid parse")
	}
	if cmd.Kind != Buy || cmd.Side != orderbook.Bid || cmd.Tif != orderbook.GFD ||
		cmd.Price != 1000 || cmd.Qty != 10 || cmd.ID != "o1" {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	cmd, ok = Parse("SELL IOC 1000 10 o2")
	if !ok || cmd.Kind != Sell || cmd.Side != orderbook.Ask || cmd.Tif != orderbook.IOC {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseModifyAndCancel(t *testing.T) {
	cmd, ok := Parse("MODIFY o1 SELL 1000 10")
	if !ok || cmd.Kind != Modify || cmd.ID != "o1" || cmd.Side != orderbook.Ask ||
		cmd.Price != 1000 || cmd.Qty != 10 {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	cmd, ok = Parse("CANCEL o1")
	if !ok || cmd.Kind != Cancel || cmd.ID != "o1" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func submit(t *testing.T, e *matching.Engine, line string) []orderbook.Trade {
	t.Helper()
	cmd, ok := Parse(line)
	if !ok {
		t.Fatalf("expected %q to parse", line)
	}
	switch cmd.Kind {
	case Buy, Sell:
		// A submit can be legitimately rejected (duplicate id); that is
		// a silent no-op per spec, not a test failure.
		trades, _, _ := e.Submit(&orderbook.Order{
			ID: cmd.ID, Side: cmd.Side, Tif: cmd.Tif, Price: cmd.Price, Qty: cmd.Qty,
		})
		return trades
	case Modify:
		trades, _, _ := e.Modify(cmd.ID, cmd.Side, cmd.Price, cmd.Qty)
		return trades
	case Cancel:
		e.Cancel(cmd.ID)
	case Clear:
		e.Clear()
	}
	return nil
}

// TestScenario1Aggregation mirrors spec §8 scenario 1.
func TestScenario1Aggregation(t *testing.T) {
	e := matching.New(orderbook.NewOrderBook())
	submit(t, e, "BUY GFD 1000 10 o1")
	submit(t, e, "BUY GFD 1000 20 o2")

	got := FormatPrint(e.Book)
	want := "SELL:\nBUY:\n1000 30\n"
	if got != want {
		t.Fatalf("PRINT mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// TestScenario2TwoLevelFill mirrors spec §8 scenario 2.
func TestScenario2TwoLevelFill(t *testing.T) {
	e := matching.New(orderbook.NewOrderBook())
	submit(t, e, "BUY GFD 1000 10 o1")
	submit(t, e, "BUY GFD 1010 10 o2")
	trades := submit(t, e, "SELL GFD 1000 15 o3")

	var lines []string
	for _, tr := range trades {
		lines = append(lines, FormatTrade(tr))
	}
	got := strings.Join(lines, "\n") + "\n"
	want := "TRADE o2 1010 10 o3 1000 10\nTRADE o1 1000 5 o3 1000 5\n"
	if got != want {
		t.Fatalf("trade output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// TestScenario5SideFlipSelfMatch mirrors spec §8 scenario 5.
func TestScenario5SideFlipSelfMatch(t *testing.T) {
	e := matching.New(orderbook.NewOrderBook())
	submit(t, e, "BUY GFD 1000 10 o1")
	submit(t, e, "BUY GFD 1000 10 o2")
	trades := submit(t, e, "MODIFY o1 SELL 1000 10")

	if len(trades) != 1 {
		t.Fatalf("expected exactly one trade, got %+v", trades)
	}
	if got, want := FormatTrade(trades[0]), "TRADE o2 1000 10 o1 1000 10"; got != want {
		t.Fatalf("trade output mismatch: got %q want %q", got, want)
	}

	got := FormatPrint(e.Book)
	want := "SELL:\nBUY:\n"
	if got != want {
		t.Fatalf("PRINT mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

// TestScenario6DuplicateIDRejected mirrors spec §8 scenario 6.
func TestScenario6DuplicateIDRejected(t *testing.T) {
	e := matching.New(orderbook.NewOrderBook())
	submit(t, e, "BUY GFD 900 5 o1")
	submit(t, e, "BUY GFD 900 5 o1")

	got := FormatPrint(e.Book)
	want := "SELL:\nBUY:\n900 5\n"
	if got != want {
		t.Fatalf("PRINT mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}
