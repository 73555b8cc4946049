package syncer

import (
	"strings"
	"sync"
)

// Resources a persistence request can target. Requests for the same
// resource are ordered by Serialized; Unordered ignores the key.
const (
	ResourceLinks   = "links"
	ResourceTheme   = "theme"
	ResourceProfile = "profile"
)

// Dispatcher runs persistence requests without blocking the caller.
type Dispatcher interface {
	Dispatch(resource string, fn func())
	// Wait blocks until every dispatched request has finished.
	Wait()
}

// Mode names a dispatch policy.
type Mode string

const (
	ModeUnordered  Mode = "unordered"
	ModeSerialized Mode = "serialized"
)

func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeSerialized)) {
		return ModeSerialized
	}
	return ModeUnordered
}

// NewDispatcher returns the dispatcher for mode.
func NewDispatcher(mode Mode) Dispatcher {
	if mode == ModeSerialized {
		return NewSerialized()
	}
	return NewUnordered()
}

// Unordered starts every request immediately on its own goroutine. Two
// requests for the same resource may complete in either order, so the
// stored state is whichever write lands last.
type Unordered struct {
	wg sync.WaitGroup
}

func NewUnordered() *Unordered {
	return &Unordered{}
}

func (d *Unordered) Dispatch(_ string, fn func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		fn()
	}()
}

func (d *Unordered) Wait() {
	d.wg.Wait()
}

// Serialized keeps at most one request in flight per resource and runs the
// rest in submission order. Different resources proceed independently.
type Serialized struct {
	mu     sync.Mutex
	queues map[string][]func()
	wg     sync.WaitGroup
}

func NewSerialized() *Serialized {
	return &Serialized{queues: make(map[string][]func())}
}

func (d *Serialized) Dispatch(resource string, fn func()) {
	d.wg.Add(1)

	d.mu.Lock()
	q, running := d.queues[resource]
	d.queues[resource] = append(q, fn)
	d.mu.Unlock()

	if !running {
		go d.drain(resource)
	}
}

func (d *Serialized) drain(resource string) {
	for {
		d.mu.Lock()
		q := d.queues[resource]
		if len(q) == 0 {
			delete(d.queues, resource)
			d.mu.Unlock()
			return
		}
		fn := q[0]
		d.queues[resource] = q[1:]
		d.mu.Unlock()

		fn()
		d.wg.Done()
	}
}

func (d *Serialized) Wait() {
	d.wg.Wait()
}
