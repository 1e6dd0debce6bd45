package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"fmt"
	"io"

	difflib "github.com/ianbruene/go-difflib/difflib"

	"github.com/Oblomov/rcs-fast-export/rcs"
)

// Tree is the file set of a (possibly coalesced) commit (§3): a mapping
// from RcsFile to the Revision chosen for it, in first-touched order so
// the manifest it produces is deterministic (§5).
type Tree struct {
	entries map[*rcs.RcsFile]*rcs.Revision
	order   []*rcs.RcsFile
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return &Tree{entries: make(map[*rcs.RcsFile]*rcs.Revision)}
}

// Set records file's chosen revision.
func (t *Tree) Set(file *rcs.RcsFile, rev *rcs.Revision) {
	if _, exists := t.entries[file]; !exists {
		t.order = append(t.order, file)
	}
	t.entries[file] = rev
}

// Get returns the revision chosen for file, if any.
func (t *Tree) Get(file *rcs.RcsFile) (*rcs.Revision, bool) {
	r, ok := t.entries[file]
	return r, ok
}

// Files returns the tree's files in first-touched order.
func (t *Tree) Files() []*rcs.RcsFile {
	return t.order
}

// Has reports whether file is already present in the tree, the check
// the coalescer uses to enforce per-file monotonicity (§4.G).
func (t *Tree) Has(file *rcs.RcsFile) bool {
	_, ok := t.entries[file]
	return ok
}

// Manifest writes this tree's M/D lines (§3, §4.H), allocating a blob
// mark for each live file. Dead (deleted) revisions emit a D line with
// no blob.
func (t *Tree) Manifest(w io.Writer, marks *Marks) error {
	for _, f := range t.order {
		rev := t.entries[f]
		if rev.IsDead() {
			if _, err := fmt.Fprintf(w, "D %s\n", f.Filename); err != nil {
				return err
			}
			continue
		}
		mode := "644"
		if f.Executable {
			mode = "755"
		}
		mark := marks.Blob(f.Filename, rev.ID)
		if _, err := fmt.Fprintf(w, "M %s :%d %s\n", mode, mark, f.Filename); err != nil {
			return err
		}
	}
	return nil
}

// Union merges other's entries into t (§4.G's merge step). A file
// appearing in both trees is allowed only when the two chosen revisions
// have byte-identical text (logged as a warning); otherwise the merge
// is fatal, and the returned error carries a unified diff of the two
// texts so the operator can see exactly what differed.
func (t *Tree) Union(other *Tree) error {
	for _, f := range other.Files() {
		rev := other.entries[f]
		if existing, ok := t.Get(f); ok {
			if existing.TextString() == rev.TextString() {
				warn("export: file %s present in both commits being merged with identical text", f.Filename)
				continue
			}
			diff := difflib.UnifiedDiff{
				A:        existing.Text,
				B:        rev.Text,
				FromFile: f.Filename + "@" + existing.ID,
				ToFile:   f.Filename + "@" + rev.ID,
				Context:  2,
			}
			text, _ := difflib.GetUnifiedDiffString(diff)
			return fmt.Errorf("coalesce conflict: file %s has differing text in commits being merged:\n%s", f.Filename, text)
		}
		t.Set(f, rev)
	}
	return nil
}
