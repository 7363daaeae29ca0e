package seq

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/dicts"
)

/*
Note:
=====
The current implementation always pre-fetches the first value.
This could be optimized. It would be a problem with long-running ops in the
value-creation, in case the value is never fetched by an output call.
For now, we will leave it this way.
*/

// Seq is a lazy sequence over dictionary entries, keys or values.
// Sequence elements are untyped; clients of a key sequence will receive
// strings, clients of an entry sequence dicts.Entry pairs.
type Seq struct {
	value interface{}
	seq   Generator
	err   error
}

// Generator is a function type to produce the successor of a sequence.
type Generator func() Seq

// Keys wraps the keys of a dictionary into a sequence.
func Keys(d *dicts.Dict) Seq {
	cursor := d.Iterator()
	var S Generator
	S = func() Seq {
		if !cursor.Next() {
			return Seq{nil, nil, cursor.Err()}
		}
		return Seq{cursor.Key(), S, nil}
	}
	return S()
}

// Values wraps the values of a dictionary into a sequence.
func Values(d *dicts.Dict) Seq {
	cursor := d.Iterator()
	var S Generator
	S = func() Seq {
		if !cursor.Next() {
			return Seq{nil, nil, cursor.Err()}
		}
		return Seq{cursor.Value(), S, nil}
	}
	return S()
}

// Entries wraps the entries of a dictionary into a sequence of
// dicts.Entry. It is a composition of the key sequence with a value
// lookup per key.
func Entries(d *dicts.Dict) Seq {
	cursor := d.Iterator()
	var S Generator
	S = func() Seq {
		if !cursor.Next() {
			return Seq{nil, nil, cursor.Err()}
		}
		k := cursor.Key()
		v, _ := d.Get(k)
		return Seq{dicts.Entry{Key: k, Value: v}, S, nil}
	}
	return S()
}

// Break signals a sequence to stop iterating.
func (s *Seq) Break() {
	s.seq = nil
}

// Done returns true if a sequence stopped iterating.
func (s *Seq) Done() bool {
	return s.seq == nil
}

// Err returns ErrConcurrentModification of package dicts if the sequence
// has been stopped by a structural mutation of the underlying dictionary,
// nil otherwise.
func (s *Seq) Err() error {
	return s.err
}

// First returns the first element of a sequence, together with a sequence
// successor.
func (s Seq) First() (interface{}, Seq) {
	return s.value, s
}

// Next returns the next element of a sequence, or nil if the sequence is
// done.
func (s *Seq) Next() interface{} {
	if s.Done() {
		return nil
	}
	next := s.seq()
	s.value = next.value
	s.err = next.err
	if next.seq == nil {
		s.seq = nil
		if s.err != nil {
			tracer().Debugf("sequence stopped: %v", s.err)
		}
	} else {
		s.seq = next.seq
	}
	return s.value
}

// A Mapper represents an operation on a sequence element, resulting in a
// modified element.
type Mapper func(interface{}) interface{}

// Map creates new elements from the elements of a sequence.
func (s Seq) Map(mapper Mapper) Seq {
	if s.Done() {
		return s
	}
	var F Generator
	inner := s
	v := mapper(inner.value)
	F = func() Seq {
		value := inner.Next()
		if inner.Done() {
			return Seq{value, nil, inner.err}
		}
		return Seq{mapper(value), F, nil}
	}
	return Seq{v, F, s.err}
}

// A Predicate filters elements from a sequence.
type Predicate func(interface{}) bool

// Where applies a filter to a sequence, dropping all elements for which
// the predicate is false.
func (s Seq) Where(filter Predicate) Seq {
	if s.Done() {
		return s
	}
	var F Generator
	inner := s
	F = func() Seq {
		value := inner.Next()
		for !inner.Done() && !filter(value) {
			value = inner.Next()
		}
		if inner.Done() {
			return Seq{value, nil, inner.err}
		}
		return Seq{value, F, nil}
	}
	if !filter(s.value) {
		return F()
	}
	return Seq{s.value, F, s.err}
}

// List returns all the elements of a sequence as an instantiated list.
func (s Seq) List() *arraylist.List {
	list := arraylist.New()
	for value, S := s.First(); !S.Done(); value = S.Next() {
		list.Add(value)
	}
	return list
}

// Range produces the elements of a sequence over a channel. The channel is
// closed after the last element.
func (s Seq) Range() <-chan interface{} {
	channel := make(chan interface{})
	go func() {
		defer close(channel)
		for value, S := s.First(); !S.Done(); value = S.Next() {
			channel <- value
		}
	}()
	return channel
}
