package controller

import (
	"context"

	"backoffice/internal/domain"
)

// RunAction executes a row-level mutation for one entity. At most one action
// per entity id may be in flight; a second trigger while the first is
// outstanding is refused (the UI disables the control). Actions on different
// ids proceed concurrently.
//
// On success the returned entity replaces the matching item in place; the
// page is not re-fetched. On failure a danger alert is raised and the list
// is left untouched.
func (l *List[T]) RunAction(ctx context.Context, id int64, successMsg string, fn func(context.Context) (T, error)) bool {
	if !l.beginAction(id) {
		return false
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		item, err := fn(ctx)
		l.endAction(id)
		if err != nil {
			if l.alerts != nil {
				l.alerts.Push(LevelDanger, domain.ErrorMessage(err))
			}
			return
		}
		l.patch(id, item)
		if l.alerts != nil && successMsg != "" {
			l.alerts.Push(LevelSuccess, successMsg)
		}
	}()
	return true
}

// RunDelete executes a row deletion. Deletions change the total and page
// count, so success forces a full re-fetch of the current query.
func (l *List[T]) RunDelete(ctx context.Context, id int64, successMsg string, fn func(context.Context) error) bool {
	if !l.beginAction(id) {
		return false
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		err := fn(ctx)
		l.endAction(id)
		if err != nil {
			if l.alerts != nil {
				l.alerts.Push(LevelDanger, domain.ErrorMessage(err))
			}
			return
		}
		if l.alerts != nil && successMsg != "" {
			l.alerts.Push(LevelSuccess, successMsg)
		}
		l.Refresh(ctx)
	}()
	return true
}

// ActionPending reports whether an action for this id is outstanding, so
// the UI can disable its trigger.
func (l *List[T]) ActionPending(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight[id]
}

// Patch replaces the item with the given id in the current result, if
// present. Used by detail forms reporting a successful mutation back.
func (l *List[T]) Patch(id int64, item T) {
	l.patch(id, item)
}

func (l *List[T]) beginAction(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inflight[id] {
		return false
	}
	l.inflight[id] = true
	return true
}

func (l *List[T]) endAction(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inflight, id)
}

func (l *List[T]) patch(id int64, item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.result.Items {
		if l.result.Items[i].EntityID() == id {
			l.result.Items[i] = item
			return
		}
	}
}
