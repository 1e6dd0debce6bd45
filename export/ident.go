package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

// Ident is the "Name <email>" pair attached to every commit's author
// and committer lines (§6). Grounded on the teacher's Attribution type
// (inner.go), trimmed to what the fast-import stream needs — the core
// never discovers an identity on its own, it only formats ones handed
// to it (§1: env/identity discovery is an external collaborator).
type Ident struct {
	Name  string
	Email string
}

func (i Ident) String() string {
	return i.Name + " <" + i.Email + ">"
}

func (i Ident) isEmpty() bool {
	return i.Name == "" && i.Email == ""
}

// IdentResolver maps an RCS username to a full identity. Callers inject
// an implementation (typically built from an authors-map file, itself
// out of scope per §1) rather than the core discovering identities
// itself, per the design note in §9 ("passed as a collaborator, not
// true global mutable state").
type IdentResolver interface {
	Resolve(username string) Ident
}

// StaticResolver is an IdentResolver backed by a fixed authors-map.
type StaticResolver map[string]Ident

// Resolve implements IdentResolver.
func (s StaticResolver) Resolve(username string) Ident {
	return s[username]
}

// FallbackResolver wraps another resolver and substitutes
// Ident{Name: username, Email: ""} when the wrapped resolver has no
// mapping for that username, the fallback behavior §6 mandates.
type FallbackResolver struct {
	Inner IdentResolver
}

// Resolve implements IdentResolver.
func (f FallbackResolver) Resolve(username string) Ident {
	if f.Inner != nil {
		if id := f.Inner.Resolve(username); !id.isEmpty() {
			return id
		}
	}
	return Ident{Name: username}
}
