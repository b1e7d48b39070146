package api

import (
	"testing"
	"time"
)

func TestBroadcasterDeliversMatchingEvents(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe("sess-1", []EventType{EventTypeResult})
	defer b.Unsubscribe(sub)

	b.BroadcastResult("sess-1", "1+2", "3")
	b.BroadcastResult("sess-2", "4+5", "9") // different session, should be filtered out
	b.BroadcastDivisionStep("sess-1", 3, true, "7") // different type, should be filtered out

	select {
	case ev := <-sub.Channel:
		if ev.Data["result"] != "3" {
			t.Errorf("got result %v, want 3", ev.Data["result"])
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast event")
	}

	select {
	case ev := <-sub.Channel:
		t.Fatalf("unexpected second event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroadcasterUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	sub := b.Subscribe("", nil)
	if b.SubscriptionCount() != 1 {
		t.Fatalf("SubscriptionCount = %d, want 1", b.SubscriptionCount())
	}

	b.Unsubscribe(sub)
	time.Sleep(50 * time.Millisecond)
	if b.SubscriptionCount() != 0 {
		t.Fatalf("SubscriptionCount after unsubscribe = %d, want 0", b.SubscriptionCount())
	}

	if _, ok := <-sub.Channel; ok {
		t.Error("expected subscription channel to be closed")
	}
}
