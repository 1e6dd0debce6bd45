package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Oblomov/rcs-fast-export/rcs"
)

func assertEqual(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func testFile(name string) *rcs.RcsFile {
	data := "head\t1.1;\n1.1\ndate\t2024.01.02.03.04.05;\tauthor alice;\tstate Exp;\nnext\t;\ndesc\n@@\n1.1\ntext\t@hello\n@\n"
	f, err := rcs.ParseFile(strings.NewReader(data), name, rcs.ParseOptions{})
	if err != nil {
		panic(err)
	}
	return f
}

func TestTreeManifestEmitsBlobAndMode(t *testing.T) {
	f := testFile("foo.c")
	rev := f.HeadRevision()

	tree := NewTree()
	tree.Set(f, rev)

	var buf bytes.Buffer
	marks := NewMarks()
	if err := tree.Manifest(&buf, marks); err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	assertEqual(t, buf.String(), "M 644 :1 foo.c\n")
}

func TestTreeManifestDeadRevisionEmitsD(t *testing.T) {
	f := testFile("foo.c")
	rev := f.HeadRevision()
	rev.State = "dead"

	tree := NewTree()
	tree.Set(f, rev)

	var buf bytes.Buffer
	if err := tree.Manifest(&buf, NewMarks()); err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	assertEqual(t, buf.String(), "D foo.c\n")
}

func TestTreeUnionIdenticalTextMerges(t *testing.T) {
	f1 := testFile("a.c")
	f2 := testFile("b.c")

	t1 := NewTree()
	t1.Set(f1, f1.HeadRevision())
	t2 := NewTree()
	t2.Set(f2, f2.HeadRevision())
	t2.Set(f1, testFile("a.c").HeadRevision()) // a.c again, same text

	if err := t1.Union(t2); err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(t1.Files()) != 2 {
		t.Fatalf("want 2 files after union, got %d", len(t1.Files()))
	}
}

func TestTreeUnionConflictingTextIsFatal(t *testing.T) {
	f1 := testFile("a.c")
	rev1 := f1.HeadRevision()

	f2 := testFile("a.c")
	rev2 := f2.HeadRevision()
	rev2.Text = []string{"different\n"}

	t1 := NewTree()
	t1.Set(f1, rev1)
	t2 := NewTree()
	t2.Set(f1, rev2) // same RcsFile pointer, as the coalescer would see

	err := t1.Union(t2)
	if err == nil {
		t.Fatalf("expected a coalesce-conflict error")
	}
	if !strings.Contains(err.Error(), "coalesce conflict") {
		t.Errorf("error %q missing expected diagnostic", err.Error())
	}
}
