package controller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestBadgeRefreshKeepsCountOnFailure(t *testing.T) {
	var fail atomic.Bool
	b := NewBadge(func(ctx context.Context) (int, error) {
		if fail.Load() {
			return 0, errors.New("backend down")
		}
		return 7, nil
	}, time.Minute)

	b.refresh(context.Background())
	if got := b.Count(); got != 7 {
		t.Fatalf("count = %d, want 7", got)
	}

	fail.Store(true)
	b.refresh(context.Background())
	if got := b.Count(); got != 7 {
		t.Fatalf("count = %d after failed refresh, want previous 7", got)
	}
}

func TestBadgeStartStop(t *testing.T) {
	var calls atomic.Int32
	b := NewBadge(func(ctx context.Context) (int, error) {
		calls.Add(1)
		return int(calls.Load()), nil
	}, 10*time.Millisecond)

	b.Start(context.Background())
	b.Start(context.Background()) // second start is a no-op

	deadline := time.Now().Add(2 * time.Second)
	for b.Count() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("badge never refreshed after Start")
		}
		time.Sleep(time.Millisecond)
	}

	b.Stop()
	after := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != after {
		t.Fatal("badge kept fetching after Stop")
	}
}
