package attr

import (
	"iter"
	"slices"
)

// Pair is a single attribute, used where attributes are passed in bulk.
type Pair struct {
	Key   string
	Value string
}

// P is a shortcut for creating a Pair.
func P(key, value string) Pair {
	return Pair{Key: key, Value: value}
}

// Map is a string map which remembers the insertion order of its keys.
// Overwriting an existing key keeps its position.
//
// The zero value is an empty map ready to use. A nil *Map reads as empty.
type Map struct {
	keys []string
	vals map[string]string
}

// NewMap creates a map holding pairs in order. Keys are stored as given.
func NewMap(pairs ...Pair) *Map {
	m := &Map{}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores value for key. It returns true if key was already present.
func (m *Map) Set(key, value string) bool {
	if m.vals == nil {
		m.vals = make(map[string]string)
	}
	_, exists := m.vals[key]
	if !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
	return exists
}

// Get returns the value for key.
func (m *Map) Get(key string) (string, bool) {
	if m == nil || m.vals == nil {
		return "", false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has is a predicate for the presence of key.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key. It returns false if key has not been present.
func (m *Map) Delete(key string) bool {
	if !m.Has(key) {
		return false
	}
	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Pairs returns the entries in insertion order.
func (m *Map) Pairs() []Pair {
	pairs := make([]Pair, 0, m.Len())
	for k, v := range m.All() {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	c := &Map{}
	if m == nil || len(m.keys) == 0 {
		return c
	}
	c.keys = slices.Clone(m.keys)
	c.vals = make(map[string]string, len(m.vals))
	for k, v := range m.vals {
		c.vals[k] = v
	}
	return c
}

// Equal compares keys, values and order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, k := range m.Keys() {
		if other.keys[i] != k || other.vals[k] != m.vals[k] {
			return false
		}
	}
	return true
}
