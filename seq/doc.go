/*
Package seq provides lazy sequences over iteratable dictionaries.

Sequences wrap the cursor protocol of package dicts into a functional
generator style: a sequence holds the current value together with a
generator function producing its successor. Sequences support mapping,
filtering and materialization.

A sequence stops either by exhaustion of the underlying dictionary, by an
explicit Break, or because the dictionary has been structurally modified
mid-iteration. The last case is reported by Err().

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dicts.seq'.
func tracer() tracing.Trace {
	return tracing.Select("dicts.seq")
}
