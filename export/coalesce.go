package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"sort"

	"github.com/Oblomov/rcs-fast-export/rcs"

	orderedset "github.com/emirpasic/gods/sets/linkedhashset"
)

// Commit is a tentative or merged multi-file commit (§3): the unit the
// coalescer operates on. A freshly wrapped single-file revision starts
// with MinDate == Date == MaxDate and a Tree holding just that file.
type Commit struct {
	MinDate Date
	RepDate Date
	MaxDate Date
	Branch  string
	Author  string
	Log     string
	Symbols *rcs.StringSet
	Tree    *Tree

	merged bool // consumed into an earlier Commit by Coalesce
}

// Date is a thin alias so this package doesn't need to import rcs just
// to spell the coalescer's date arithmetic; rcs.Date already has every
// operation the merge loop needs.
type Date = rcs.Date

// WrapRevision builds the tentative single-file Commit for one
// (file, revision) pair (§4.G's input description).
func WrapRevision(file *rcs.RcsFile, rev *rcs.Revision) *Commit {
	tree := NewTree()
	tree.Set(file, rev)
	return &Commit{
		MinDate: rev.Date,
		RepDate: rev.Date,
		MaxDate: rev.Date,
		Branch:  rev.Branch,
		Author:  rev.Author,
		Log:     rev.Log,
		Symbols: rev.Symbols,
		Tree:    tree,
	}
}

// Coalesce groups single-file commits into multi-file commits under the
// fuzzy-time / same-metadata heuristic of §4.G. Revisions on non-empty
// branches must already have been filtered out by the caller (skip or
// abort per Options.SkipBranches, since multi-file branch reconstruction
// is a non-goal).
func Coalesce(commits []*Commit, opts Options) (result []*Commit, err error) {
	defer func() {
		if e := catch("coalesce", recover()); e != nil {
			err = e
		}
	}()

	sorted := make([]*Commit, len(commits))
	copy(sorted, commits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].MinDate.Before(sorted[j].MinDate) && !sorted[i].MinDate.After(sorted[j].MinDate) {
			return sorted[i].Symbols.Size() < sorted[j].Symbols.Size()
		}
		return sorted[i].MinDate.Before(sorted[j].MinDate)
	})

	fuzz := opts.CommitFuzz()

	for i := len(sorted) - 1; i >= 0; i-- {
		c := sorted[i]
		if c.merged {
			continue
		}
		ofiles := orderedset.New()
		var mergeable []*Commit

		for j := i + 1; j < len(sorted); j++ {
			cand := sorted[j]
			if cand.merged {
				continue
			}
			if cand.MinDate.Sub(c.MaxDate) > fuzz {
				break
			}
			if cand.Log != c.Log || cand.Author != c.Author || cand.Branch != c.Branch {
				addFilesTo(ofiles, cand.Tree)
				continue
			}
			if !cand.Symbols.Comparable(c.Symbols) {
				if opts.SymbolCheck {
					throwCoalesce("coalesce conflict: commit at %s and commit at %s have incomparable symbol sets %s / %s",
						c.RepDate, cand.RepDate, c.Symbols, cand.Symbols)
				}
				warn("export: symbol-set disagreement between commits at %s and %s (%s vs %s), merging anyway (symbol-check disabled)",
					c.RepDate, cand.RepDate, c.Symbols, cand.Symbols)
			}
			if intersectsTree(c.Tree, cand.Tree) {
				break
			}
			if intersectsFiles(ofiles, cand.Tree) {
				addFilesTo(ofiles, cand.Tree)
				continue
			}
			mergeable = append(mergeable, cand)
		}

		for _, cand := range mergeable {
			if err := c.Tree.Union(cand.Tree); err != nil {
				warn("export: %v (fuzz window %s); leaving %s unmerged", err, fuzz, cand.RepDate)
				continue
			}
			if cand.MinDate.Before(c.MinDate) {
				c.MinDate = cand.MinDate
			}
			if cand.MaxDate.After(c.MaxDate) {
				c.MaxDate = cand.MaxDate
			}
			c.Symbols = c.Symbols.Union(cand.Symbols)
			cand.merged = true
		}
	}

	for _, c := range sorted {
		if !c.merged {
			result = append(result, c)
		}
	}
	return result, nil
}

func addFilesTo(set *orderedset.Set, t *Tree) {
	for _, f := range t.Files() {
		set.Add(f)
	}
}

func intersectsFiles(set *orderedset.Set, t *Tree) bool {
	for _, f := range t.Files() {
		if set.Contains(f) {
			return true
		}
	}
	return false
}

func intersectsTree(a, b *Tree) bool {
	for _, f := range b.Files() {
		if a.Has(f) {
			return true
		}
	}
	return false
}

// warn writes a logit-style non-fatal diagnostic. Separate tiny wrapper
// so the export package doesn't need to reach into rcs's package-private
// logging internals; it shares the convention, not the code.
func warn(format string, args ...interface{}) {
	logit(format, args...)
}
