package store

import "sync"

// Store is the authoritative state holder. All access goes through its
// methods; the snapshot pointer is swapped, never written through.
type Store struct {
	mu   sync.Mutex
	snap *Snapshot
}

// mutate runs one transition: it copies the snapshot struct, lets fn
// replace whichever collections it touches, and publishes the result.
// Collections fn does not touch are shared with prior snapshots, which is
// safe because published slices are never written to.
func (s *Store) mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.snap
	fn(&next)
	s.snap = &next
}

func appended[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}

func appendedAll[T any](in []T, vs []T) []T {
	out := make([]T, len(in), len(in)+len(vs))
	copy(out, in)
	return append(out, vs...)
}

func prepended[T any](in []T, v T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, v)
	return append(out, in...)
}

// updateOne copies the collection selected by get, applies mutate to the
// matching element, and stores the copy via set inside one transition.
func updateOne[T any](
	s *Store,
	id string,
	idOf func(T) string,
	get func(*Snapshot) []T,
	set func(*Snapshot, []T),
	mutate func(*T),
) bool {
	updated := false
	s.mutate(func(n *Snapshot) {
		in := get(n)
		for i := range in {
			if idOf(in[i]) != id {
				continue
			}
			out := make([]T, len(in))
			copy(out, in)
			mutate(&out[i])
			set(n, out)
			updated = true
			return
		}
	})
	return updated
}

func findByID[T any](in []T, id string, idOf func(T) string) (T, bool) {
	for _, v := range in {
		if idOf(v) == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}
