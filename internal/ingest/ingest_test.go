package ingest

import (
	"context"
	"strings"
	"sync"
	"testing"
)

func TestProduceConsumeOrdering(t *testing.T) {
	q := NewQueue(4)

	var mu sync.Mutex
	var order []string

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go q.Run(ctx)

	input := "a\nb\nc\n"
	err := Produce(strings.NewReader(input), q, func(line string) (Task, bool) {
		if line == "" {
			return nil, false
		}
		return func() {
			mu.Lock()
			order = append(order, line)
			mu.Unlock()
		}, true
	})
	if err != nil {
		t.Fatalf("unexpected produce error: %v", err)
	}

	q.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("expected serialized a,b,c order, got %v", order)
	}
}

func TestProduceSkipsRejectedLines(t *testing.T) {
	q := NewQueue(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var count int
	go q.Run(ctx)

	input := "keep\nskip\nkeep\n"
	err := Produce(strings.NewReader(input), q, func(line string) (Task, bool) {
		if line == "skip" {
			return nil, false
		}
		return func() { count++ }, true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q.Wait()

	if count != 2 {
		t.Fatalf("expected 2 tasks run, got %d", count)
	}
}
