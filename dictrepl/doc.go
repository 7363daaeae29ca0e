/*
Package dictrepl/main provides an interactive command line tool for
iteratable dictionaries. It serves as a sandbox to experiment with
insertion-ordered dictionaries: set and delete entries, inspect insertion
order, transpose, and watch ledger compaction at work.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dicts.repl'
func tracer() tracing.Trace {
	return tracing.Select("dicts.repl")
}
