package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"strings"
	"testing"

	difflib "github.com/ianbruene/go-difflib/difflib"
)

func assertLinesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "") == strings.Join(want, "") {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        want,
		B:        got,
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	t.Fatalf("reconstructed text mismatch:\n%s", text)
}

func TestReplayDeleteOnly(t *testing.T) {
	// §8 scenario 2: head 1.2 is "a\nb\nc\n", 1.1 recovered by "d2 1".
	base := []string{"a\n", "b\n", "c\n"}
	got, err := replayDiff(base, "d2 1\n")
	if err != nil {
		t.Fatalf("replayDiff failed: %v", err)
	}
	assertLinesEqual(t, got, []string{"a\n", "c\n"})
}

func TestReplayAppendAtHead(t *testing.T) {
	base := []string{"b\n", "c\n"}
	got, err := replayDiff(base, "a0 1\nz\n")
	if err != nil {
		t.Fatalf("replayDiff failed: %v", err)
	}
	assertLinesEqual(t, got, []string{"z\n", "b\n", "c\n"})
}

func TestReplayAppendAfterLine(t *testing.T) {
	base := []string{"a\n", "b\n"}
	got, err := replayDiff(base, "a1 1\nX\n")
	if err != nil {
		t.Fatalf("replayDiff failed: %v", err)
	}
	assertLinesEqual(t, got, []string{"a\n", "X\n", "b\n"})
}

func TestReplayDeleteThenAppendSamePosition(t *testing.T) {
	// "a" targets reference the *original* base indexing even after a
	// "d" has blanked that slot, per §4.D's rationale for the slot model.
	base := []string{"a\n", "b\n", "c\n"}
	got, err := replayDiff(base, "d2 1\na2 1\nB2\n")
	if err != nil {
		t.Fatalf("replayDiff failed: %v", err)
	}
	assertLinesEqual(t, got, []string{"a\n", "B2\n", "c\n"})
}

func TestReplayMalformedCommand(t *testing.T) {
	_, err := replayDiff([]string{"a\n"}, "bogus 1 2\n")
	if err == nil {
		t.Fatal("expected an error for a malformed diff command")
	}
}

func TestReplayNegativeCount(t *testing.T) {
	_, err := replayDiff([]string{"a\n"}, "a0 -1\n")
	if err == nil {
		t.Fatal("expected an error for a negative count")
	}
}

func TestReplaySkipsEmptyFirstLine(t *testing.T) {
	base := []string{"a\n"}
	got, err := replayDiff(base, "\nd1 1\n")
	if err != nil {
		t.Fatalf("replayDiff failed: %v", err)
	}
	assertLinesEqual(t, got, []string{})
}
