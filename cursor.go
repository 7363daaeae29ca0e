package dicts

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrConcurrentModification flags iteration over a dictionary which has
// been structurally modified while the iteration was in progress.
var ErrConcurrentModification = errors.New("dict modified during iteration")

// A Cursor is a lazy iterator over the entries of a Dict, yielding them in
// insertion order. Cursors are created by Dict.Iterator() and used like
// this:
//
//    for cursor.Next() {
//        k, v := cursor.Key(), cursor.Value()
//        // do something with the entry
//    }
//    if cursor.Err() != nil {
//        // dictionary has been modified mid-iteration
//    }
//
// A cursor captures the mutation epoch of its dictionary at creation time
// and re-checks it on every advance. Count-changing mutations (insertion
// of a new key, deletion) invalidate the cursor: the pending advance
// returns false and Err() reports ErrConcurrentModification. The cursor is
// unusable from then on; iteration is resumed by creating a fresh cursor.
//
// Overwriting the value of an existing key does not invalidate cursors.
// A live cursor will observe the new value when it reaches the key.
// Normal exhaustion leaves Err() nil.
type Cursor struct {
	dict  *Dict
	epoch uint32 // epoch snapshot, taken at cursor creation
	pos   int    // ledger index of the current entry, -1 before first advance
	err   error
}

// Iterator creates a cursor over the entries of a dictionary. The cursor
// is positioned before the first entry; Next() advances onto it. Creating
// a cursor compacts the order ledger.
func (d *Dict) Iterator() *Cursor {
	d.Compact()
	return &Cursor{dict: d, epoch: d.epoch, pos: -1}
}

// Next advances the cursor onto the next entry. It returns false when the
// entries are exhausted, or when the dictionary has been structurally
// modified since the cursor has been created. The two conditions are told
// apart by Err().
func (c *Cursor) Next() bool {
	if c.err != nil {
		return false
	}
	if c.epoch != c.dict.epoch {
		c.err = ErrConcurrentModification
		return false
	}
	if c.pos+1 >= len(c.dict.order) {
		return false // exhausted, not an error
	}
	c.pos++
	return true
}

// Err returns ErrConcurrentModification if the cursor has been invalidated
// by a structural mutation of the dictionary, nil otherwise. Exhaustion is
// not an error.
func (c *Cursor) Err() error {
	return c.err
}

// Key returns the key of the current entry. Only valid after a successful
// Next().
func (c *Cursor) Key() string {
	return c.dict.order[c.pos]
}

// Value returns the value of the current entry, looked up live: an
// overwrite of a pending key is observable. Only valid after a successful
// Next().
func (c *Cursor) Value() interface{} {
	return c.dict.store[c.dict.order[c.pos]]
}

// Entry returns the current entry as a pair. Only valid after a successful
// Next().
func (c *Cursor) Entry() Entry {
	return Entry{Key: c.Key(), Value: c.Value()}
}
