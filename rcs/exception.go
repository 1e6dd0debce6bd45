package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import "fmt"

// exception is a catchable error payload, mirroring reposurgeon's
// throw/catch idiom: a panic carrying a typed class lets the hot parsing
// and replay paths stay free of "if err != nil" plumbing on every token,
// while still letting a defer/recover boundary turn failures back into
// ordinary errors with filename/line context attached.
//
// Defined classes:
//
// rcs = malformed ,v grammar: bad literal, bad diff script, duplicate
// diff_base, complex branch structure. Fatal to the current file.
type exception struct {
	class   string
	message string
}

func (e *exception) Error() string {
	return e.message
}

func throwRcs(format string, args ...interface{}) {
	panic(&exception{class: "rcs", message: fmt.Sprintf(format, args...)})
}

// catch recovers a panic of the given class, returning it as an error.
// Panics of any other class (or non-exception panics) are re-raised, the
// same asymmetric behavior reposurgeon's catch() uses.
func catch(accept string, x interface{}) error {
	if x == nil {
		return nil
	}
	if e, ok := x.(*exception); ok && e.class == accept {
		return e
	}
	panic(x)
}
