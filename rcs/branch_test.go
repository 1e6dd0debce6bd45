package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import "testing"

func TestResolvePlaceholderPromotesSymbolToBranch(t *testing.T) {
	file := newRcsFile("f.txt")
	file.Head = "1.2"

	r1 := newRevision("1.1")
	r1.placeholder = false
	r1.Author = "alice"

	r2 := newRevision("1.2")
	r2.placeholder = false
	r2.Author = "alice"

	// A symbols entry named "1.1.1" but no revision header or data ever
	// defined it directly: ParseFile would have created it as a
	// placeholder via file.revision("1.1.1") from the symbols clause.
	placeholder := newRevision("1.1.1")
	placeholder.placeholder = true
	placeholder.Symbols.Add("rel-1")

	dated := newRevision("1.1.1.1")
	dated.Author = "bob"

	file.Revisions["1.1"] = r1
	file.Revisions["1.2"] = r2
	file.Revisions["1.1.1"] = placeholder
	file.Revisions["1.1.1.1"] = dated

	if err := ResolveBranchesAndTags(file); err != nil {
		t.Fatalf("ResolveBranchesAndTags failed: %v", err)
	}
	if _, exists := file.Revisions["1.1.1"]; exists {
		t.Fatal("placeholder 1.1.1 should have been removed")
	}
	if !file.Revisions["1.1.1.1"].Branches.Contains("rel-1") {
		t.Fatalf("expected rel-1 promoted onto 1.1.1.1, got %v", file.Revisions["1.1.1.1"].Branches.Values())
	}
}

func TestResolvePlaceholderWithNoDescendantIsFatal(t *testing.T) {
	file := newRcsFile("f.txt")
	placeholder := newRevision("1.1.1")
	placeholder.placeholder = true
	placeholder.Symbols.Add("orphan-tag")
	file.Revisions["1.1.1"] = placeholder

	if err := ResolveBranchesAndTags(file); err == nil {
		t.Fatal("expected a complex-branch-structure error")
	}
}

func TestCompareDottedIDs(t *testing.T) {
	if compareDottedIDs("1.2", "1.10") >= 0 {
		t.Fatal("1.2 should sort before 1.10 numerically")
	}
	if compareDottedIDs("1.10", "1.2") <= 0 {
		t.Fatal("1.10 should sort after 1.2 numerically")
	}
	if compareDottedIDs("1.2", "1.2") != 0 {
		t.Fatal("equal ids should compare equal")
	}
}
