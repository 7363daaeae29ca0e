package dicts

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/cnf/structhash"

// StructEq is an EqFn comparing two values structurally, by hashing them
// with structhash. It is intended as an argument to Equals and
// ContainsValue whenever values are structs, maps or slices, for which the
// default `==` comparison is either inappropriate or illegal.
//
// Unexported struct fields do not contribute to the hash and therefore do
// not participate in the comparison.
func StructEq(a, b interface{}) bool {
	ha, erra := structhash.Hash(a, 1)
	hb, errb := structhash.Hash(b, 1)
	if erra != nil || errb != nil {
		tracer().Errorf("structural comparison failed to hash value")
		return false
	}
	return ha == hb
}
