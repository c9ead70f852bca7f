package prefs

import (
	"fmt"
	"sort"
)

// Listener is notified after a preference value was committed.
type Listener interface {
	PreferenceChanged(key Key)
}

// ListenerFunc adapts a function to Listener. Only pointers to a
// ListenerFunc can be unsubscribed, since func values are not comparable.
type ListenerFunc func(key Key)

func (f *ListenerFunc) PreferenceChanged(key Key) { (*f)(key) }

// Store is the key-value preference store.
//
// A Store is not safe for concurrent use: it is driven from the TUI update
// loop or the CLI main goroutine, and listeners run synchronously inside Set.
type Store struct {
	path      string
	values    map[Key]Value
	listeners []Listener
}

// NewMemoryStore returns a store that is never written to disk.
func NewMemoryStore() *Store {
	return &Store{values: make(map[Key]Value)}
}

// Path is the backing file, or "" for a memory store.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(key Key) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Text returns the string form of key, "" when unset.
func (s *Store) Text(key Key) string {
	return s.values[key].Text()
}

// Members returns the set members of key, nil when unset.
func (s *Store) Members(key Key) []string {
	return s.values[key].Members()
}

// Keys returns every stored key, sorted.
func (s *Store) Keys() []Key {
	out := make([]Key, 0, len(s.values))
	for k := range s.values {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Set commits v under key. A file-backed store is saved before listeners are
// notified; when saving fails the previous value is restored and nobody is
// notified. Writing an identical value is a no-op.
func (s *Store) Set(key Key, v Value) error {
	prev, had := s.values[key]
	if had && prev.Equal(v) {
		return nil
	}
	s.values[key] = v
	if err := s.flush(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return fmt.Errorf("save %s: %w", key, err)
	}
	s.notify(key)
	return nil
}

// SetDefaults stores the default of every schema entry that has no value yet
// and returns how many were added. Listeners are not notified.
func (s *Store) SetDefaults(schema Schema) (int, error) {
	added := 0
	for _, d := range schema {
		if _, ok := s.values[d.Key]; ok {
			continue
		}
		s.values[d.Key] = d.Default
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := s.flush(); err != nil {
		return added, fmt.Errorf("save defaults: %w", err)
	}
	return added, nil
}

// Import replaces the given keys in one write, without notifications.
func (s *Store) Import(values map[Key]Value) error {
	for k, v := range values {
		s.values[k] = v
	}
	return s.flush()
}

// Subscribe registers l. Registering the same listener twice is a no-op.
func (s *Store) Subscribe(l Listener) {
	for _, cur := range s.listeners {
		if cur == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

func (s *Store) Unsubscribe(l Listener) {
	for i, cur := range s.listeners {
		if cur == l {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Store) notify(key Key) {
	// Listeners may unsubscribe from inside the callback.
	ls := append([]Listener(nil), s.listeners...)
	for _, l := range ls {
		l.PreferenceChanged(key)
	}
}

func (s *Store) flush() error {
	if s.path == "" {
		return nil
	}
	return save(s.path, s.values)
}
