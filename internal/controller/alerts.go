package controller

import (
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
	LevelInfo    Level = "info"
)

// Alert is a dismissible notification that expires on its own.
type Alert struct {
	ID      int64
	Level   Level
	Message string
	Expires time.Time
}

// AlertCenter collects alerts raised by controllers and row actions. Alerts
// auto-expire after the TTL (5s) but can be dismissed earlier.
type AlertCenter struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	nextID int64
	alerts []Alert
}

func NewAlertCenter() *AlertCenter {
	return &AlertCenter{
		ttl: 5 * time.Second,
		now: time.Now,
	}
}

func (a *AlertCenter) Push(level Level, message string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	a.alerts = append(a.alerts, Alert{
		ID:      a.nextID,
		Level:   level,
		Message: message,
		Expires: a.now().Add(a.ttl),
	})
	return a.nextID
}

func (a *AlertCenter) Dismiss(id int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.alerts[:0]
	for _, al := range a.alerts {
		if al.ID != id {
			kept = append(kept, al)
		}
	}
	a.alerts = kept
}

// Active returns alerts that have not expired, pruning the rest.
func (a *AlertCenter) Active() []Alert {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.now()
	kept := a.alerts[:0]
	for _, al := range a.alerts {
		if al.Expires.After(now) {
			kept = append(kept, al)
		}
	}
	a.alerts = kept
	out := make([]Alert, len(kept))
	copy(out, kept)
	return out
}
