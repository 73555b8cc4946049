// Package collection holds a user's links as a contiguous, position-ordered
// sequence. Collections are values: every operation returns a new one and
// leaves the receiver untouched.
package collection

import (
	"sort"

	"github.com/wadjakorntonsri/go-linkpage/pkg/core/domain"
)

type Collection struct {
	links []domain.Link
}

// New orders links by position and renumbers them 0..n-1.
func New(links []domain.Link) Collection {
	out := clone(links)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return Collection{links: renumber(out)}
}

func (c Collection) Len() int {
	return len(c.links)
}

// Links returns a copy of the links in order.
func (c Collection) Links() []domain.Link {
	return clone(c.links)
}

// At returns the link at index i.
func (c Collection) At(i int) (domain.Link, error) {
	if i < 0 || i >= len(c.links) {
		return domain.Link{}, &domain.OutOfRangeError{Index: i, Len: len(c.links)}
	}
	return c.links[i], nil
}

// IndexOf returns the index of the link with the given id, or -1.
func (c Collection) IndexOf(id int64) int {
	for i, l := range c.links {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the link with the given id.
func (c Collection) Find(id int64) (domain.Link, bool) {
	if i := c.IndexOf(id); i >= 0 {
		return c.links[i], true
	}
	return domain.Link{}, false
}

// Add appends l at position Len().
func (c Collection) Add(l domain.Link) Collection {
	out := make([]domain.Link, 0, len(c.links)+1)
	out = append(out, c.links...)
	l.Position = len(c.links)
	return Collection{links: append(out, l)}
}

// Remove deletes the link with the given id and renumbers the survivors in
// their existing relative order. Unknown ids leave the collection unchanged.
func (c Collection) Remove(id int64) Collection {
	i := c.IndexOf(id)
	if i < 0 {
		return c
	}
	out := make([]domain.Link, 0, len(c.links)-1)
	out = append(out, c.links[:i]...)
	out = append(out, c.links[i+1:]...)
	return Collection{links: renumber(out)}
}

// Reorder moves the element at from to index to (remove then reinsert) and
// renumbers every position. Equal indices return the collection unchanged.
func (c Collection) Reorder(from, to int) (Collection, error) {
	n := len(c.links)
	if from < 0 || from >= n {
		return c, &domain.OutOfRangeError{Index: from, Len: n}
	}
	if to < 0 || to >= n {
		return c, &domain.OutOfRangeError{Index: to, Len: n}
	}
	if from == to {
		return c, nil
	}

	out := clone(c.links)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]domain.Link{moved}, out[to:]...)...)
	return Collection{links: renumber(out)}, nil
}

// Move is the drag-and-drop form of Reorder: the link activeID is dropped
// onto the slot currently held by overID.
func (c Collection) Move(activeID, overID int64) (Collection, error) {
	from, to := c.IndexOf(activeID), c.IndexOf(overID)
	if from < 0 {
		return c, domain.ErrNotFound
	}
	if to < 0 {
		return c, domain.ErrNotFound
	}
	return c.Reorder(from, to)
}

// Replace swaps in updated for the link with the same id, keeping the local
// position. It reports whether a link matched.
func (c Collection) Replace(updated domain.Link) (Collection, bool) {
	i := c.IndexOf(updated.ID)
	if i < 0 || updated.Pending() {
		return c, false
	}
	return c.replaceAt(i, updated), true
}

// ReconcileCreated replaces the pending link with the same title and url by
// the stored record. The first pending match in order wins.
func (c Collection) ReconcileCreated(created domain.Link) (Collection, bool) {
	for i, l := range c.links {
		if l.Pending() && l.Title == created.Title && l.URL == created.URL {
			return c.replaceAt(i, created), true
		}
	}
	return c, false
}

// ReconcileUpdated merges the stored record of an edited link by id.
func (c Collection) ReconcileUpdated(updated domain.Link) (Collection, bool) {
	return c.Replace(updated)
}

// PositionUpdates is the reorder payload for the stored links. Links not yet
// stored are omitted and the rest are numbered 0..k-1 in collection order, so
// the payload always covers exactly what the server holds.
func (c Collection) PositionUpdates() []domain.LinkPosition {
	out := make([]domain.LinkPosition, 0, len(c.links))
	for _, l := range c.links {
		if l.Pending() {
			continue
		}
		out = append(out, domain.LinkPosition{ID: l.ID, Position: len(out)})
	}
	return out
}

// Contiguous reports whether positions are exactly 0..n-1 in order.
func (c Collection) Contiguous() bool {
	for i, l := range c.links {
		if l.Position != i {
			return false
		}
	}
	return true
}

func (c Collection) replaceAt(i int, l domain.Link) Collection {
	out := clone(c.links)
	l.Position = i
	out[i] = l
	return Collection{links: out}
}

func renumber(links []domain.Link) []domain.Link {
	for i := range links {
		links[i].Position = i
	}
	return links
}

func clone(links []domain.Link) []domain.Link {
	return append([]domain.Link(nil), links...)
}
