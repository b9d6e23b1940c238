// Package controller implements the per-resource list orchestration: filter
// and pagination state, fetch dispatch with last-write-wins application, and
// row-level mutation guards.
package controller

import (
	"context"
	"sync"

	"backoffice/internal/domain"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// Fetcher retrieves one page of a resource collection.
type Fetcher[T domain.Entity] func(ctx context.Context, q domain.ListQuery) (domain.ListResult[T], error)

// List drives one resource table. All state transitions happen under the
// mutex; fetches run on goroutines and apply their result only if no newer
// fetch has been issued since (tracked by a sequence number).
type List[T domain.Entity] struct {
	mu     sync.Mutex
	fetch  Fetcher[T]
	alerts *AlertCenter

	query      domain.ListQuery
	phase      Phase
	result     domain.ListResult[T]
	errMsg     string
	loadedOnce bool
	seq        uint64

	inflight map[int64]bool

	wg sync.WaitGroup
}

// View is an immutable snapshot for rendering. During Loading the previous
// result's items stay visible, except before the very first Loaded state
// where FirstLoad directs the UI to a placeholder.
type View[T domain.Entity] struct {
	Query        domain.ListQuery
	Phase        Phase
	Items        []T
	Total        int
	TotalPages   int
	FirstLoad    bool
	ErrorMessage string
}

func NewList[T domain.Entity](fetch Fetcher[T], alerts *AlertCenter, pageSize int) *List[T] {
	return &List[T]{
		fetch:    fetch,
		alerts:   alerts,
		query:    domain.DefaultQuery(pageSize),
		phase:    PhaseIdle,
		inflight: make(map[int64]bool),
	}
}

func (l *List[T]) Snapshot() View[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.result.Items))
	copy(items, l.result.Items)
	return View[T]{
		Query:        l.query.Clone(),
		Phase:        l.phase,
		Items:        items,
		Total:        l.result.Total,
		TotalPages:   l.result.TotalPages,
		FirstLoad:    !l.loadedOnce,
		ErrorMessage: l.errMsg,
	}
}

// Load issues the initial fetch. Safe to call again; it behaves as Refresh.
func (l *List[T]) Load(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dispatchLocked(ctx)
}

// Refresh re-issues the fetch for the current query unchanged.
func (l *List[T]) Refresh(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dispatchLocked(ctx)
}

// SetPage navigates within the known page bounds.
func (l *List[T]) SetPage(ctx context.Context, page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if l.loadedOnce && l.result.TotalPages >= 1 && page > l.result.TotalPages {
		page = l.result.TotalPages
	}
	if page == l.query.Page {
		return
	}
	l.query.Page = page
	l.dispatchLocked(ctx)
}

// SetPageSize switches the page size and resets to the first page.
func (l *List[T]) SetPageSize(ctx context.Context, size int) {
	if !domain.ValidPageSize(size) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if size == l.query.PageSize {
		return
	}
	l.query.PageSize = size
	l.query.Page = 1
	l.dispatchLocked(ctx)
}

// SetFilter sets (or clears, with an empty value) a named filter and resets
// to the first page.
func (l *List[T]) SetFilter(ctx context.Context, key, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.query.Filters == nil {
		l.query.Filters = make(map[string]string)
	}
	if l.query.Filters[key] == value {
		return
	}
	if value == "" {
		delete(l.query.Filters, key)
	} else {
		l.query.Filters[key] = value
	}
	l.query.Page = 1
	l.dispatchLocked(ctx)
}

// SetSearch applies a submitted search term and resets to the first page.
func (l *List[T]) SetSearch(ctx context.Context, term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query.Search = term
	l.query.Page = 1
	l.dispatchLocked(ctx)
}

func (l *List[T]) ClearSearch(ctx context.Context) {
	l.SetSearch(ctx, "")
}

// SetDateRange applies an inclusive date filter. Invalid ranges are rejected
// before any fetch.
func (l *List[T]) SetDateRange(ctx context.Context, dr domain.DateRange) error {
	if err := dr.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query.DateRange = &dr
	l.query.Page = 1
	l.dispatchLocked(ctx)
	return nil
}

func (l *List[T]) ClearDateRange(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.query.DateRange == nil {
		return
	}
	l.query.DateRange = nil
	l.query.Page = 1
	l.dispatchLocked(ctx)
}

// dispatchLocked issues a fetch for the current query. Caller holds the
// mutex. A newer dispatch supersedes any in-flight one: the older response
// is discarded on arrival rather than cancelled.
func (l *List[T]) dispatchLocked(ctx context.Context) {
	l.phase = PhaseLoading
	l.seq++
	seq := l.seq
	q := l.query.Clone()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		res, err := l.fetch(ctx, q)
		l.apply(seq, res, err)
	}()
}

func (l *List[T]) apply(seq uint64, res domain.ListResult[T], err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		// Superseded while in flight; a newer request owns the state now.
		return
	}
	if err != nil {
		l.phase = PhaseFailed
		l.errMsg = domain.ErrorMessage(err)
		if l.alerts != nil {
			l.alerts.Push(LevelDanger, l.errMsg)
		}
		return
	}
	l.phase = PhaseLoaded
	l.result = res
	l.errMsg = ""
	l.loadedOnce = true
	if res.TotalPages >= 1 {
		l.query.Page = domain.ClampPage(l.query.Page, res.TotalPages)
	} else {
		l.query.Page = 1
	}
}

// Settle blocks until every dispatched fetch and row action has finished.
// Synchronous front ends and tests use it before reading a snapshot.
func (l *List[T]) Settle() {
	l.wg.Wait()
}
