package calendarsync

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var errFakeUnavailable = errors.New("fake calendar unavailable")

// FakeProvider is an in-memory calendar. Creates with a RequestID that was
// already stored return the stored event id.
type FakeProvider struct {
	mu          sync.Mutex
	events      map[string]Event
	byRequest   map[string]string
	failCreates int
	failDeletes int
	createCalls int
	deleteCalls int
	next        int
}

func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		events:    make(map[string]Event),
		byRequest: make(map[string]string),
	}
}

var _ Provider = (*FakeProvider)(nil)

// FailNextCreates makes the next n CreateEvent calls fail with a transient error.
func (f *FakeProvider) FailNextCreates(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreates = n
}

func (f *FakeProvider) FailNextDeletes(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failDeletes = n
}

func (f *FakeProvider) CreateEvent(ctx context.Context, ev Event) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.failCreates > 0 {
		f.failCreates--
		return "", errFakeUnavailable
	}
	if ev.RequestID != "" {
		if id, ok := f.byRequest[ev.RequestID]; ok {
			return id, nil
		}
	}

	f.next++
	id := fmt.Sprintf("fake-%d", f.next)
	f.events[id] = ev
	if ev.RequestID != "" {
		f.byRequest[ev.RequestID] = id
	}
	return id, nil
}

func (f *FakeProvider) DeleteEvent(ctx context.Context, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleteCalls++
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.failDeletes > 0 {
		f.failDeletes--
		return errFakeUnavailable
	}
	if ev, ok := f.events[eventID]; ok {
		delete(f.byRequest, ev.RequestID)
		delete(f.events, eventID)
	}
	return nil
}

func (f *FakeProvider) Event(id string) (Event, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[id]
	return ev, ok
}

func (f *FakeProvider) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func (f *FakeProvider) CreateCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

func (f *FakeProvider) DeleteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deleteCalls
}
