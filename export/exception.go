package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import "fmt"

// exception mirrors rcs.exception: a catchable panic payload for the
// export-side fatal conditions (§4.F/§4.G/§4.H and SPEC_FULL.md's
// "export" and "coalesce" classes), recovered at the entry points of
// the exporters and the coalescer (Export, Coalesce) rather than
// threaded through every emission call as an error return.
type exception struct {
	class   string
	message string
}

func (e *exception) Error() string {
	return e.message
}

// throwExport signals a violation of the topological export invariant
// (§3, §4.F/H) — e.g. a single-file export pass that makes no progress
// on the remaining revisions, or a manifest that cannot be written.
func throwExport(format string, args ...interface{}) {
	panic(&exception{class: "export", message: fmt.Sprintf(format, args...)})
}

// throwCoalesce signals a fatal coalescing failure (§4.G, §7 kind 7): a
// symbol-set disagreement with symbol-check enabled. A text conflict on
// merge is not thrown: Tree.Union returns it as an error, and Coalesce
// logs it and leaves that candidate unmerged.
func throwCoalesce(format string, args ...interface{}) {
	panic(&exception{class: "coalesce", message: fmt.Sprintf(format, args...)})
}

// catch recovers a panic of the given class, returning it as an error.
// Panics of any other class (or non-exception panics) are re-raised.
func catch(accept string, x interface{}) error {
	if x == nil {
		return nil
	}
	if e, ok := x.(*exception); ok && e.class == accept {
		return e
	}
	panic(x)
}
