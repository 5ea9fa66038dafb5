package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestSendStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	full := make(chan Event) // unbuffered and never drained
	if send(ctx, full, TickFrame{}) {
		t.Error("send succeeded against a cancelled context")
	}
}

func TestFrameClockTicksAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan Event, 16)

	StartFrameClock(ctx, ch, 60)

	select {
	case ev := <-ch:
		if _, ok := ev.(TickFrame); !ok {
			t.Fatalf("got %T, want TickFrame", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no frame tick arrived")
	}

	cancel()
	// Drain anything already queued, then expect silence.
	deadline := time.After(200 * time.Millisecond)
drain:
	for {
		select {
		case <-ch:
		case <-deadline:
			break drain
		}
	}
	select {
	case <-ch:
		t.Error("frame clock still ticking after cancel")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestScheduleRetryFiresOnce(t *testing.T) {
	ctx := context.Background()
	ch := make(chan Event, 4)

	ScheduleRetry(ctx, ch, 0) // floored to one second

	select {
	case ev := <-ch:
		if _, ok := ev.(TickRefresh); !ok {
			t.Fatalf("got %T, want TickRefresh", ev)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("retry never fired")
	}
	select {
	case ev := <-ch:
		t.Fatalf("retry fired twice: %T", ev)
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestScheduleRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan Event, 4)

	ScheduleRetry(ctx, ch, time.Minute)
	cancel()

	select {
	case ev := <-ch:
		t.Fatalf("cancelled retry delivered %T", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRefreshClockHonorsIntervalFloor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := make(chan Event, 4)

	var secs atomic.Int64
	secs.Store(0) // below the floor; clamped to 10s, so nothing fires quickly

	StartRefreshClock(ctx, ch, &secs)

	select {
	case ev := <-ch:
		t.Fatalf("refresh fired early: %T", ev)
	case <-time.After(500 * time.Millisecond):
	}
}
