package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import "strings"

// Revision is one historical version parsed from a ,v file (§3).
type Revision struct {
	ID     string
	Author string
	Date   Date
	State  string
	Log    string
	Text   []string // reconstructed line-by-line text, trailing newlines kept per line

	Branches *StringSet // ids of child branch-head revisions rooted here, plus branch names ResolveBranchesAndTags moves here
	Symbols  *StringSet // symbolic names attached to this revision

	Next        string // "next" clause: the older trunk revision, or the newer revision on a branch ("" at the oldest trunk revision and at a branch tip)
	DiffBase    string // revision whose text+delta yields this one ("" only for the trunk head)
	Branch      string // branch label, "" if this revision is on the trunk
	BranchPoint string // trunk revision this branch sprouted from, "" on trunk

	diffLines []string // raw "a"/"d" script lines, consumed by the delta replayer

	// placeholder marks a symbol-only pseudo-revision created solely
	// because an admin "symbols" entry referenced an id nothing else
	// mentions (§4.E). Such nodes have no Date/Author/Log until the
	// branch/tag resolver either turns them into real branch labels or
	// fails with "complex branch structure".
	placeholder bool
}

func newRevision(id string) *Revision {
	return &Revision{
		ID:       id,
		Branches: NewStringSet(),
		Symbols:  NewStringSet(),
	}
}

// IsTrunk reports whether this revision lies on the main line of descent
// (§3: "a revision's branch is empty iff it lies on the trunk").
func (r *Revision) IsTrunk() bool {
	return r.Branch == ""
}

// IsDead reports whether this revision records a file deletion, per the
// RCS convention of state "dead" (§3, manifest emission in §4.H).
func (r *Revision) IsDead() bool {
	return r.State == "dead"
}

// TextString returns the revision's reconstructed content as a single
// byte string, the form blobs are emitted in.
func (r *Revision) TextString() string {
	return strings.Join(r.Text, "")
}

// parent returns the id of the revision this one is emitted after in the
// single-file exporter's walk (§4.F): "next" on the trunk, "diff_base" on
// a branch — trunk revisions chain forward via next, branches chain back
// to their diff base.
func (r *Revision) parent() string {
	if r.IsTrunk() {
		return r.Next
	}
	return r.DiffBase
}

// RcsFile is one parsed ,v file (§3).
type RcsFile struct {
	Filename   string // logical exported name, independent of on-disk path
	Executable bool
	Head       string
	Branch     string // admin-section default branch, "" if unset
	Comment    string
	Expand     string // admin "expand" mode: kv, kvl, k, v, o, b
	Access     []string
	Locks      []string
	Desc       string

	Revisions map[string]*Revision
}

func newRcsFile(filename string) *RcsFile {
	return &RcsFile{
		Filename:  filename,
		Revisions: make(map[string]*Revision),
	}
}

// revision returns the named revision, creating a placeholder if it has
// never been seen (§4.C revision headers may forward-reference an id
// before its own header block arrives, e.g. via "branches" or "next").
func (f *RcsFile) revision(id string) *Revision {
	r, ok := f.Revisions[id]
	if !ok {
		r = newRevision(id)
		r.placeholder = true
		f.Revisions[id] = r
	}
	return r
}

// HeadRevision returns the trunk tip, the one revision stored verbatim.
func (f *RcsFile) HeadRevision() *Revision {
	return f.Revisions[f.Head]
}

// branchLabel derives a branch label from a revision id by dropping its
// last dotted component and appending ".x" (§3).
func branchLabel(id string) string {
	idx := strings.LastIndex(id, ".")
	if idx < 0 {
		return id + ".x"
	}
	return id[:idx] + ".x"
}
