package dicts

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Equals compares two dictionaries for equality: equal size and, for every
// key, equal values. eq may be nil, in which case values are compared with
// `==`; pass StructEq (or a client predicate) for structural comparison of
// non-primitive values. Comparison short-circuits on the first mismatch.
func (d *Dict) Equals(other *Dict, eq EqFn) bool {
	if other == nil || len(d.store) != len(other.store) {
		return false
	}
	if eq == nil {
		eq = eqDefault
	}
	d.Compact() // guarantees a stale/duplicate-free key enumeration
	for _, k := range d.order {
		ov, ok := other.store[k]
		if !ok || !eq(d.store[k], ov) {
			return false
		}
	}
	return true
}

// Transpose creates a new dictionary with keys and values swapped: every
// value of d becomes a key (canonicalized), associated with its former
// key. If several keys of d hold the same value, their transposed keys
// collide and only one association survives. Which one is implementation
// dependent and may change between releases; clients must not rely on a
// specific tie-break.
func (d *Dict) Transpose() *Dict {
	d.Compact()
	t := New(WithKeyMapper(d.keymap))
	for _, k := range d.order {
		t.Set(d.store[k], k)
	}
	return t
}

// AsMap exports the live entries into a plain Go map. The map is a fresh
// copy; values are shared references.
func (d *Dict) AsMap() map[string]interface{} {
	m := make(map[string]interface{}, len(d.store))
	for k, v := range d.store {
		m[k] = v
	}
	return m
}

// AddAll imports all entries of a source into d, by calling Set for each
// pair. The source is either another *Dict, imported in its insertion
// order, or a plain map[string]interface{}, imported in unspecified order.
// Any other source type is ignored.
func (d *Dict) AddAll(src interface{}) *Dict {
	switch s := src.(type) {
	case *Dict:
		s.Compact()
		for _, k := range s.order {
			d.Set(k, s.store[k])
		}
	case map[string]interface{}:
		for k, v := range s {
			d.Set(k, v)
		}
	default:
		tracer().Errorf("cannot add entries from source of type %T", src)
	}
	return d
}

// Each calls fn for every live entry, in insertion order. Arguments to fn
// are value, key and the dictionary itself.
//
// Each walks a momentary compaction of the order ledger and does not guard
// against structural mutation from within fn; callbacks mutating d receive
// no fail-fast protection and own the consequences. Use a Cursor when
// detection is wanted.
func (d *Dict) Each(fn func(value interface{}, key string, dict *Dict)) {
	d.Compact()
	for _, k := range d.order {
		fn(d.store[k], k, d)
	}
}

// Clone creates an independent copy of a dictionary: fresh store and
// ledger, entries in d's insertion order. Values are shared references.
func (d *Dict) Clone() *Dict {
	return FromDict(d)
}

// SortedKeys returns the live keys in lexicographic order, as opposed to
// the insertion order of Keys().
func (d *Dict) SortedKeys() []string {
	set := treeset.NewWith(utils.StringComparator)
	for k := range d.store {
		set.Add(k)
	}
	keys := make([]string, 0, set.Size())
	for _, k := range set.Values() {
		keys = append(keys, k.(string))
	}
	return keys
}
