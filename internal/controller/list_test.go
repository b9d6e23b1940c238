package controller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"backoffice/internal/domain"
)

type row struct {
	ID    int64
	Label string
}

func (r row) EntityID() int64 { return r.ID }

func fixedResult(label string, total, totalPages int, ids ...int64) domain.ListResult[row] {
	items := make([]row, 0, len(ids))
	for _, id := range ids {
		items = append(items, row{ID: id, Label: label})
	}
	return domain.ListResult[row]{Items: items, Total: total, TotalPages: totalPages}
}

func TestLoadPopulatesSnapshot(t *testing.T) {
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		return fixedResult("a", 45, 3, 1, 2, 3), nil
	}
	l := NewList(fetch, NewAlertCenter(), 20)

	if v := l.Snapshot(); !v.FirstLoad || v.Phase != PhaseIdle {
		t.Fatalf("expected idle first-load snapshot, got phase=%v firstLoad=%t", v.Phase, v.FirstLoad)
	}

	l.Load(context.Background())
	l.Settle()

	v := l.Snapshot()
	if v.Phase != PhaseLoaded {
		t.Fatalf("phase = %v, want Loaded", v.Phase)
	}
	if v.FirstLoad {
		t.Fatal("FirstLoad still set after a successful load")
	}
	if len(v.Items) != 3 || v.Total != 45 || v.TotalPages != 3 {
		t.Fatalf("unexpected view: items=%d total=%d pages=%d", len(v.Items), v.Total, v.TotalPages)
	}
}

func TestFilterSearchAndSizeResetPage(t *testing.T) {
	ctx := context.Background()
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		return fixedResult("a", 100, 5, 1), nil
	}
	l := NewList(fetch, NewAlertCenter(), 20)
	l.Load(ctx)
	l.Settle()

	steps := []struct {
		name string
		run  func()
	}{
		{"filter", func() { l.SetFilter(ctx, "status", "paid") }},
		{"search", func() { l.SetSearch(ctx, "tendai") }},
		{"size", func() { l.SetPageSize(ctx, 50) }},
		{"range", func() {
			if err := l.SetDateRange(ctx, domain.DateRange{Start: "2026-01-01", End: "2026-01-31"}); err != nil {
				t.Fatalf("SetDateRange: %v", err)
			}
		}},
	}
	for _, step := range steps {
		l.SetPage(ctx, 3)
		l.Settle()
		step.run()
		l.Settle()
		if got := l.Snapshot().Query.Page; got != 1 {
			t.Fatalf("%s: page = %d, want 1", step.name, got)
		}
	}
}

func TestSetPageClampsToKnownBounds(t *testing.T) {
	ctx := context.Background()
	var calls int32
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		atomic.AddInt32(&calls, 1)
		return fixedResult("a", 60, 3, 1), nil
	}
	l := NewList(fetch, NewAlertCenter(), 20)
	l.Load(ctx)
	l.Settle()

	l.SetPage(ctx, 99)
	l.Settle()
	if got := l.Snapshot().Query.Page; got != 3 {
		t.Fatalf("page = %d, want clamp to 3", got)
	}

	before := atomic.LoadInt32(&calls)
	l.SetPage(ctx, 3)
	l.Settle()
	if atomic.LoadInt32(&calls) != before {
		t.Fatal("setting the current page re-fetched")
	}

	l.SetPage(ctx, -4)
	l.Settle()
	if got := l.Snapshot().Query.Page; got != 1 {
		t.Fatalf("page = %d, want floor of 1", got)
	}
}

func TestInvalidPageSizeIgnored(t *testing.T) {
	ctx := context.Background()
	var calls int32
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		atomic.AddInt32(&calls, 1)
		return fixedResult("a", 1, 1, 1), nil
	}
	l := NewList(fetch, NewAlertCenter(), 20)

	l.SetPageSize(ctx, 7)
	l.Settle()
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("invalid page size triggered a fetch")
	}
	if got := l.Snapshot().Query.PageSize; got != 20 {
		t.Fatalf("page size = %d, want 20", got)
	}
}

func TestInvalidDateRangeRejectedBeforeFetch(t *testing.T) {
	ctx := context.Background()
	var calls int32
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		atomic.AddInt32(&calls, 1)
		return fixedResult("a", 1, 1, 1), nil
	}
	l := NewList(fetch, NewAlertCenter(), 20)

	if err := l.SetDateRange(ctx, domain.DateRange{Start: "2026-02-01", End: "2026-01-01"}); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if err := l.SetDateRange(ctx, domain.DateRange{Start: "01/01/2026", End: "2026-01-31"}); err == nil {
		t.Fatal("expected error for malformed date")
	}
	l.Settle()
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("invalid range triggered a fetch")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		if q.Search == "" {
			<-release
			return fixedResult("stale", 1, 1, 1), nil
		}
		return fixedResult("fresh", 1, 1, 2), nil
	}
	l := NewList(fetch, NewAlertCenter(), 20)

	l.Load(ctx)
	l.SetSearch(ctx, "x")
	close(release)
	l.Settle()

	v := l.Snapshot()
	if v.Phase != PhaseLoaded {
		t.Fatalf("phase = %v, want Loaded", v.Phase)
	}
	if len(v.Items) != 1 || v.Items[0].Label != "fresh" {
		t.Fatalf("stale response overwrote the newer one: %+v", v.Items)
	}
}

func TestFailedRefreshKeepsItemsAndAlerts(t *testing.T) {
	ctx := context.Background()
	var fail atomic.Bool
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		if fail.Load() {
			return domain.ListResult[row]{}, domain.NetworkError{Err: errors.New("dial tcp: refused")}
		}
		return fixedResult("a", 2, 1, 1, 2), nil
	}
	alerts := NewAlertCenter()
	l := NewList(fetch, alerts, 20)
	l.Load(ctx)
	l.Settle()

	fail.Store(true)
	l.Refresh(ctx)
	l.Settle()

	v := l.Snapshot()
	if v.Phase != PhaseFailed {
		t.Fatalf("phase = %v, want Failed", v.Phase)
	}
	if len(v.Items) != 2 {
		t.Fatalf("failed refresh dropped items: %d left", len(v.Items))
	}
	if v.ErrorMessage != "connection error, please try again" {
		t.Fatalf("error message = %q", v.ErrorMessage)
	}

	active := alerts.Active()
	if len(active) != 1 || active[0].Level != LevelDanger {
		t.Fatalf("expected one danger alert, got %+v", active)
	}
}

func TestResultShrinkClampsPage(t *testing.T) {
	ctx := context.Background()
	var pages atomic.Int32
	pages.Store(5)
	fetch := func(ctx context.Context, q domain.ListQuery) (domain.ListResult[row], error) {
		p := int(pages.Load())
		return fixedResult("a", p*20, p, 1), nil
	}
	l := NewList(fetch, NewAlertCenter(), 20)
	l.Load(ctx)
	l.Settle()

	l.SetPage(ctx, 5)
	l.Settle()

	pages.Store(2)
	l.Refresh(ctx)
	l.Settle()
	if got := l.Snapshot().Query.Page; got != 2 {
		t.Fatalf("page = %d, want clamp to shrunken bound 2", got)
	}

	pages.Store(0)
	l.Refresh(ctx)
	l.Settle()
	if got := l.Snapshot().Query.Page; got != 1 {
		t.Fatalf("page = %d, want 1 when the collection empties", got)
	}
}
