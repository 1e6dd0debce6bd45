package export

import (
	"bytes"
	"strings"
	"testing"
)

func TestMultiFileExporterEmitsManifestAndTags(t *testing.T) {
	f1, r1 := revAt(t, "a.txt", "2024.01.01.00.00.00", "alice", "fix\n", "v1")
	f2, r2 := revAt(t, "b.txt", "2024.01.01.00.02.00", "alice", "fix\n", "v2")

	opts := DefaultOptions()
	opts.SymbolCheck = false
	merged, err := Coalesce([]*Commit{WrapRevision(f1, r1), WrapRevision(f2, r2)}, opts)
	if err != nil {
		t.Fatalf("Coalesce: %v", err)
	}

	var out bytes.Buffer
	marks := NewMarks()
	exporter := NewMultiFileExporter(&out, marks, FallbackResolver{}, opts)
	if err := exporter.Export(merged); err != nil {
		t.Fatalf("Export: %v", err)
	}

	s := out.String()
	if !strings.Contains(s, "commit refs/heads/master\n") {
		t.Errorf("missing commit header:\n%s", s)
	}
	if !strings.Contains(s, "M 644 :") {
		t.Errorf("missing manifest line:\n%s", s)
	}
	if !strings.Contains(s, "reset refs/tags/v1\n") || !strings.Contains(s, "reset refs/tags/v2\n") {
		t.Errorf("missing tag resets for both symbols:\n%s", s)
	}
}
