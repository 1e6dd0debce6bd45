package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"strings"
	"testing"
)

func TestParseSingleRevision(t *testing.T) {
	// §8 scenario 1.
	input := "head\t1.1;\naccess;\nsymbols;\nlocks; strict;\ncomment\t@# @;\n\n\n1.1\ndate\t2024.01.02.03.04.05;\tauthor alice;\tstate Exp;\nbranches;\nnext\t;\n\n\ndesc\n@@\n\n\n1.1\nlog\n@initial@\ntext\n@hello\n@\n"
	file, err := ParseFile(strings.NewReader(input), "hello.txt", ParseOptions{})
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if file.Head != "1.1" {
		t.Fatalf("head = %q, want 1.1", file.Head)
	}
	r := file.Revisions["1.1"]
	if r == nil {
		t.Fatal("revision 1.1 not found")
	}
	if r.Author != "alice" || r.State != "Exp" {
		t.Fatalf("unexpected revision fields: %+v", r)
	}
	if got := r.Date.Unix(); got != 1704164645 {
		t.Fatalf("date.Unix() = %d, want 1704164645", got)
	}
	assertLinesEqual(t, r.Text, []string{"hello\n"})
	assertEqual(t, r.Log, "initial")
	if !r.IsTrunk() {
		t.Fatal("1.1 should be on the trunk")
	}
}

func TestParseTwoLinearRevisions(t *testing.T) {
	// §8 scenario 2.
	input := "head\t1.2;\naccess;\nsymbols;\nlocks;\ncomment\t@# @;\n\n\n1.2\ndate\t2024.01.02.00.00.00;\tauthor alice;\tstate Exp;\nbranches;\nnext\t1.1;\n\n1.1\ndate\t2024.01.01.00.00.00;\tauthor alice;\tstate Exp;\nbranches;\nnext\t;\n\ndesc\n@@\n\n\n1.2\nlog\n@second@\ntext\n@a\nb\nc\n@\n\n1.1\nlog\n@first@\ntext\n@d2 1\n@\n"
	file, err := ParseFile(strings.NewReader(input), "f.txt", ParseOptions{})
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	r2 := file.Revisions["1.2"]
	r1 := file.Revisions["1.1"]
	if r2 == nil || r1 == nil {
		t.Fatal("missing revisions")
	}
	assertLinesEqual(t, r2.Text, []string{"a\n", "b\n", "c\n"})
	assertLinesEqual(t, r1.Text, []string{"a\n", "c\n"})
	if r2.Next != "1.1" {
		t.Fatalf("1.2.Next = %q, want 1.1", r2.Next)
	}
	if r1.DiffBase != "1.2" {
		t.Fatalf("1.1.DiffBase = %q, want 1.2", r1.DiffBase)
	}
}

func TestParseSymbolBecomesTag(t *testing.T) {
	// §8 scenario 3.
	input := "head\t1.1;\naccess;\nsymbols\tv1:1.1;\nlocks;\ncomment\t@# @;\n\n\n1.1\ndate\t2024.01.01.00.00.00;\tauthor alice;\tstate Exp;\nbranches;\nnext\t;\n\ndesc\n@@\n\n\n1.1\nlog\n@x@\ntext\n@hi\n@\n"
	file, err := ParseFile(strings.NewReader(input), "f.txt", ParseOptions{})
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	r := file.Revisions["1.1"]
	if !r.Symbols.Contains("v1") {
		t.Fatalf("expected symbol v1 on 1.1, got %v", r.Symbols.Values())
	}
}

func TestParseBranchesClause(t *testing.T) {
	input := "head\t1.1;\naccess;\nsymbols;\nlocks;\ncomment\t@# @;\n\n\n1.1\ndate\t2024.01.01.00.00.00;\tauthor alice;\tstate Exp;\nbranches\t1.1.1.1;\nnext\t;\n\n1.1.1.1\ndate\t2024.01.02.00.00.00;\tauthor bob;\tstate Exp;\nbranches;\nnext\t;\n\ndesc\n@@\n\n\n1.1\nlog\n@x@\ntext\n@trunk\n@\n\n1.1.1.1\nlog\n@branch@\ntext\n@d1 1\na0 1\nbranchtext\n@\n"
	file, err := ParseFile(strings.NewReader(input), "f.txt", ParseOptions{})
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	trunk := file.Revisions["1.1"]
	br := file.Revisions["1.1.1.1"]
	if !trunk.Branches.Contains("1.1.1.1") {
		t.Fatalf("expected 1.1 to list 1.1.1.1 as a branch head")
	}
	if br.Branch != "1.1.1.x" {
		t.Fatalf("branch label = %q, want 1.1.1.x", br.Branch)
	}
	if br.BranchPoint != "1.1" || br.DiffBase != "1.1" {
		t.Fatalf("unexpected branch point/diffbase: %+v", br)
	}
	assertLinesEqual(t, br.Text, []string{"branchtext\n"})
}

func TestParseDuplicateDiffBaseIsFatal(t *testing.T) {
	input := "head\t1.2;\naccess;\nsymbols;\nlocks;\ncomment\t@# @;\n\n\n1.2\ndate\t2024.01.02.00.00.00;\tauthor a;\tstate Exp;\nbranches;\nnext\t1.1;\n\n1.1\ndate\t2024.01.01.00.00.00;\tauthor a;\tstate Exp;\nbranches\t1.1;\nnext\t;\n\ndesc\n@@\n\n\n1.2\nlog\n@x@\ntext\n@a\n@\n\n1.1\nlog\n@y@\ntext\n@b\n@\n"
	_, err := ParseFile(strings.NewReader(input), "f.txt", ParseOptions{})
	if err == nil {
		t.Fatal("expected a duplicate diff_base error")
	}
}
