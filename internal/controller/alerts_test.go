package controller

import (
	"testing"
	"time"
)

func TestAlertsExpireAfterTTL(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	a := NewAlertCenter()
	a.now = func() time.Time { return now }

	a.Push(LevelSuccess, "saved")
	a.Push(LevelInfo, "heads up")

	if got := len(a.Active()); got != 2 {
		t.Fatalf("active = %d, want 2", got)
	}

	now = base.Add(4 * time.Second)
	if got := len(a.Active()); got != 2 {
		t.Fatalf("active = %d before TTL, want 2", got)
	}

	now = base.Add(5*time.Second + time.Millisecond)
	if got := len(a.Active()); got != 0 {
		t.Fatalf("active = %d after TTL, want 0", got)
	}
}

func TestAlertDismiss(t *testing.T) {
	a := NewAlertCenter()
	id := a.Push(LevelDanger, "bad")
	keep := a.Push(LevelSuccess, "good")

	a.Dismiss(id)

	active := a.Active()
	if len(active) != 1 || active[0].ID != keep {
		t.Fatalf("dismiss removed the wrong alert: %+v", active)
	}
}
