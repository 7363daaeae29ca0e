package dicts

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// ErrOddPairs flags construction from an odd number of key/value literals.
var ErrOddPairs = errors.New("odd number of key/value literals")

// An Entry is a single key/value pair of a Dict. Values are opaque to the
// dictionary and never interpreted.
type Entry struct {
	Key   string
	Value interface{}
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%v", e.Key, e.Value)
}

// A KeyMapper coerces client keys into their canonical string form.
// Canonicalization happens once, on entry of a key into a dictionary
// operation. Distinct keys mapping to the same canonical string are
// indistinguishable afterwards.
type KeyMapper func(key interface{}) string

// CanonicalKey is the default KeyMapper. Strings pass through unchanged,
// every other type is converted to its fmt string representation.
func CanonicalKey(key interface{}) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}

// === Dict ==================================================================

// Dict is an insertion-ordered dictionary (map-like semantics).
//
// A Dict tracks the order of key insertion in an order ledger, separate
// from the lookup map. The ledger is maintained lazily: deleted keys leave
// stale ledger entries behind, re-inserted keys leave duplicates. Stale
// entries are removed by compaction, which deletions trigger once the
// ledger has grown to twice the number of live keys, and which every
// order-sensitive operation forces. Cost of deletions therefore stays
// O(1) amortized.
//
// The zero value of Dict is not usable; create instances with New,
// NewFromPairs or FromMap.
type Dict struct {
	store  map[string]interface{} // key → value association
	order  []string               // order ledger; may contain stale/duplicate keys
	epoch  uint32                 // bumped on every count-changing mutation
	keymap KeyMapper
}

// Option configures a Dict at construction time.
type Option func(*Dict)

// WithKeyMapper overrides the canonicalization function of a dictionary.
// The mapper may not be nil.
func WithKeyMapper(m KeyMapper) Option {
	return func(d *Dict) {
		if m != nil {
			d.keymap = m
		}
	}
}

// New creates an empty dictionary.
func New(opts ...Option) *Dict {
	d := &Dict{
		store:  make(map[string]interface{}),
		keymap: CanonicalKey,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromPairs creates a dictionary from a flat alternating sequence of
// key, value, key, value literals:
//
//    d, err := dicts.NewFromPairs("x", 1, "y", 2)
//
// An odd number of literals is a construction error (ErrOddPairs).
func NewFromPairs(pairs ...interface{}) (*Dict, error) {
	if len(pairs)%2 != 0 {
		return nil, ErrOddPairs
	}
	d := New()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i], pairs[i+1])
	}
	return d, nil
}

// FromMap creates a dictionary from a plain Go map. Insertion order of the
// entries is unspecified, as Go maps do not carry one.
func FromMap(m map[string]interface{}) *Dict {
	d := New()
	for k, v := range m {
		d.Set(k, v)
	}
	return d
}

// FromDict creates a dictionary holding the entries of another dictionary,
// in the other dictionary's insertion order. Storage is independent of the
// source; values are shared references.
func FromDict(src *Dict) *Dict {
	d := New(WithKeyMapper(src.keymap))
	d.AddAll(src)
	return d
}

// Len returns the number of live entries.
func (d *Dict) Len() int {
	return len(d.store)
}

// Epoch returns the current mutation epoch of a dictionary. The epoch
// increases exactly once per count-changing mutation, i.e. insertion of a
// new key or successful deletion. Overwriting the value of a present key
// leaves the epoch unchanged.
func (d *Dict) Epoch() uint32 {
	return d.epoch
}

// Set associates a key with a value. An existing association for the same
// canonical key is overwritten silently, keeping the key's original
// position in insertion order.
func (d *Dict) Set(key, value interface{}) {
	k := d.keymap(key)
	if _, present := d.store[k]; !present {
		d.order = append(d.order, k)
		d.epoch++
	}
	d.store[k] = value
}

// Get returns the value associated with a key, together with a flag
// signalling whether the key is present. An absent key is not an error.
func (d *Dict) Get(key interface{}) (interface{}, bool) {
	v, ok := d.store[d.keymap(key)]
	return v, ok
}

// GetOrElse returns the value associated with a key, or a default value
// for an absent key.
func (d *Dict) GetOrElse(key, def interface{}) interface{} {
	if v, ok := d.store[d.keymap(key)]; ok {
		return v
	}
	return def
}

// Has checks for the presence of a key.
func (d *Dict) Has(key interface{}) bool {
	_, ok := d.store[d.keymap(key)]
	return ok
}

// ContainsValue scans the live entries for a value. eq may be nil, in
// which case values are compared with `==`; comparing values of a
// non-comparable dynamic type with a nil eq will panic, as it would in
// client code. For structural comparison pass StructEq.
func (d *Dict) ContainsValue(value interface{}, eq EqFn) bool {
	if eq == nil {
		eq = eqDefault
	}
	for _, v := range d.store {
		if eq(v, value) {
			return true
		}
	}
	return false
}

// Delete removes a key from a dictionary. It returns true if the key has
// been present, false otherwise. Deletion leaves the key's ledger entry
// behind as a stale entry; once stale entries outnumber live ones,
// Delete compacts the ledger.
func (d *Dict) Delete(key interface{}) bool {
	k := d.keymap(key)
	if _, present := d.store[k]; !present {
		return false
	}
	delete(d.store, k)
	d.epoch++
	if len(d.order) > 2*len(d.store) {
		tracer().Debugf("ledger staleness threshold hit, compacting")
		d.Compact()
	}
	return true
}

// Clear removes all entries. Ledger and mutation epoch are reset, i.e.
// a cleared dictionary is indistinguishable from a newly created one.
func (d *Dict) Clear() {
	d.store = make(map[string]interface{})
	d.order = d.order[:0]
	d.epoch = 0
}

// Keys returns the live keys in insertion order. The returned slice is a
// copy; mutating it does not affect the dictionary.
func (d *Dict) Keys() []string {
	d.Compact()
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	return keys
}

// Values returns the live values in insertion order of their keys.
func (d *Dict) Values() []interface{} {
	d.Compact()
	values := make([]interface{}, len(d.order))
	for i, k := range d.order {
		values[i] = d.store[k]
	}
	return values
}

// Prettyfied Stringer.
func (d *Dict) String() string {
	d.Compact()
	s := "Dict{"
	for i, k := range d.order {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", k, d.store[k])
	}
	return s + "}"
}

// === Ledger compaction =====================================================

// Compact removes stale and duplicate entries from the order ledger.
// Compaction is idempotent; after a call, the ledger holds each live key
// exactly once and its length equals Len(). Relative order of surviving
// keys is preserved, ties among duplicates resolve to the first
// occurrence.
//
// Clients normally need not call Compact: deletions trigger it past a
// staleness threshold and order-sensitive operations force it. It is
// exported for clients which want to control the point in time where the
// O(n) cleanup cost is paid.
func (d *Dict) Compact() {
	if len(d.order) == len(d.store) {
		return
	}
	// Filter pass: drop ledger keys without a live entry, in place.
	live := d.order[:0]
	for _, k := range d.order {
		if _, present := d.store[k]; present {
			live = append(live, k)
		}
	}
	d.order = live
	if len(d.order) == len(d.store) {
		return
	}
	// Dedup pass: survivors still outnumber live keys, so some key has
	// been deleted and re-inserted, leaving duplicates. Keep first
	// occurrences only. Runs rarely, paying for the witness set just here.
	witnessed := hashset.New()
	unique := d.order[:0]
	for _, k := range d.order {
		if !witnessed.Contains(k) {
			witnessed.Add(k)
			unique = append(unique, k)
		}
	}
	d.order = unique
}

// --- Default value equality ------------------------------------------------

// An EqFn compares two dictionary values for equality.
type EqFn func(a, b interface{}) bool

// eqDefault compares values by Go equality. Appropriate for primitive and
// pointer-like values; structural comparison needs a client predicate.
func eqDefault(a, b interface{}) bool {
	return a == b
}
