package store

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/shoplist/pkg/category"
	"tableflip.dev/shoplist/pkg/item"
)

func TestPersistenceWatchEmitsRecordChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base}, zerolog.Nop())
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	other, err := Load(StaticConfig{Path: base}, zerolog.Nop())
	if err != nil {
		t.Fatalf("load second persistence: %v", err)
	}
	if err := other.SaveShoppingList([]item.ShoppingListItem{{ID: 1, Name: "Ovos", Category: category.Frigorifico}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Record != RecordShoppingList {
				t.Fatalf("expected record %q, got %q", RecordShoppingList, evt.Record)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for record change event")
		}
	}
}

func TestThrottleCoalescesBursts(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Record: RecordInventory}, send)
	}
	th.Enqueue(Event{Record: RecordCollapsed}, send)

	var events []Event
	timeout := time.After(time.Second)
	for len(events) < 2 {
		select {
		case ev := <-got:
			events = append(events, ev)
		case <-timeout:
			t.Fatalf("expected 2 coalesced events, got %v", events)
		}
	}
	if events[0].Record != RecordInventory || events[1].Record != RecordCollapsed {
		t.Fatalf("unexpected order %v", events)
	}
	select {
	case ev := <-got:
		t.Fatalf("unexpected extra event %v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}
