/*
Package dicts implements an iteratable dictionary data structure.

Dict is an insertion-ordered key/value container. Lookup, insertion and
deletion are O(1) (amortized), while enumeration reproduces the order in
which keys have been inserted. Clients may hold lazy iterators (cursors)
onto a dictionary; cursors detect structural modification of the underlying
dictionary and fail fast, instead of silently producing corrupt results.

Keys are canonicalized to strings before use. Two distinct keys which
coerce to the same canonical string are indistinguishable to a Dict. This
is an accepted limitation of the canonicalization approach, documented
here rather than worked around.

Internally a Dict pairs a hash map with an order ledger, a sequence of
keys which is allowed to carry stale or duplicate entries between
compactions. Compaction runs lazily: deletions trigger it once staleness
exceeds a threshold, and order-sensitive operations force it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dicts

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dicts'.
func tracer() tracing.Trace {
	return tracing.Select("dicts")
}
