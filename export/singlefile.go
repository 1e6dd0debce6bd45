package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"fmt"
	"io"
	"sort"

	"github.com/Oblomov/rcs-fast-export/rcs"
)

// SingleFileExporter emits one RcsFile's commits in parent-before-child
// order (§4.F). It owns no state across files; a fresh instance (or a
// shared Marks/IdentResolver pair) is cheap to construct per file.
type SingleFileExporter struct {
	Marks   *Marks
	Idents  IdentResolver
	Options Options
	Out     io.Writer
}

// NewSingleFileExporter builds an exporter writing to w.
func NewSingleFileExporter(w io.Writer, marks *Marks, idents IdentResolver, opts Options) *SingleFileExporter {
	return &SingleFileExporter{Marks: marks, Idents: idents, Options: opts, Out: w}
}

// Export walks file's revision graph and writes every commit, §4.F's
// "sort remaining ids, skip if parent unexported, retry" loop. Parent
// availability is what actually drives ordering; the sort only controls
// which of several simultaneously-eligible ids goes first, so ties are
// broken by dotted-id comparison (§9) rather than the naive string sort
// the distilled algorithm describes, since nothing in §4.F depends on
// the weaker ordering.
func (e *SingleFileExporter) Export(file *rcs.RcsFile) (err error) {
	defer func() {
		if er := catch("export", recover()); er != nil {
			err = er
		}
	}()

	if file.Desc != "" {
		fmt.Fprintf(e.Out, "#desc %s: %s\n", file.Filename, oneLine(file.Desc))
	}

	pending := make(map[string]*rcs.Revision, len(file.Revisions))
	for id, r := range file.Revisions {
		pending[id] = r
	}
	exported := make(map[string]bool, len(pending))

	for len(pending) > 0 {
		ids := make([]string, 0, len(pending))
		for id := range pending {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return rcs.CompareDottedIDs(ids[i], ids[j]) < 0 })

		progressed := false
		for _, id := range ids {
			r := pending[id]
			parent := parentOf(r)
			if parent != "" && !exported[parent] {
				if _, unresolved := pending[parent]; unresolved {
					continue
				}
			}
			e.emitCommit(file, r)
			exported[id] = true
			delete(pending, id)
			progressed = true
		}
		if !progressed {
			throwExport("%s: no progress exporting remaining revisions %v (cyclic or missing parent)", file.Filename, ids)
		}
	}
	return nil
}

func parentOf(r *rcs.Revision) string {
	if r.IsTrunk() {
		return r.Next
	}
	return r.DiffBase
}

func (e *SingleFileExporter) emitCommit(file *rcs.RcsFile, r *rcs.Revision) {
	branch := r.Branch
	if branch == "" {
		branch = "master"
	}
	mark := e.Marks.Commit(file.Filename + "\x00" + r.ID)

	fmt.Fprintf(e.Out, "commit refs/heads/%s\n", branch)
	fmt.Fprintf(e.Out, "mark :%d\n", mark)

	// The host's own identity (used as committer when AuthorIsCommitter
	// is false) is discovered by the CLI glue and folded into Idents
	// under a reserved key, per SPEC_FULL.md's Identity section; the
	// core only ever resolves usernames through the injected resolver.
	author := e.Idents.Resolve(r.Author)
	committer := author
	if !e.Options.AuthorIsCommitter {
		if host := e.Idents.Resolve(""); !host.isEmpty() {
			committer = host
		}
	}
	fmt.Fprintf(e.Out, "author %s %s\n", author, r.Date.FastImport())
	fmt.Fprintf(e.Out, "committer %s %s\n", committer, r.Date.FastImport())

	logText := r.Log
	if e.Options.LogFilename {
		logText = file.Filename + ": " + logText
	}
	fmt.Fprintf(e.Out, "data %d\n%s\n", len(logText), logText)

	parent := parentOf(r)
	if parent != "" {
		pmark := e.Marks.Commit(file.Filename + "\x00" + parent)
		fmt.Fprintf(e.Out, "from :%d\n", pmark)
	}

	if r.IsDead() {
		fmt.Fprintf(e.Out, "D %s\n", file.Filename)
	} else {
		mode := "644"
		if file.Executable {
			mode = "755"
		}
		blob := e.Marks.Blob(file.Filename, r.ID)
		fmt.Fprintf(e.Out, "M %s :%d %s\n", mode, blob, file.Filename)
	}
	fmt.Fprintln(e.Out)

	for _, name := range r.Branches.Values() {
		fmt.Fprintf(e.Out, "reset refs/heads/%s\nfrom :%d\n\n", name, mark)
	}
	for _, name := range r.Symbols.Values() {
		fmt.Fprintf(e.Out, "reset refs/tags/%s\nfrom :%d\n\n", name, mark)
	}
	if e.Options.TagEachRev {
		fmt.Fprintf(e.Out, "reset refs/tags/%s\nfrom :%d\n\n", r.ID, mark)
	}
}

// EmitBlob writes one revision's text as a blob record the instant it's
// known (§2, §4.F: blobs precede any commit referencing them). Intended
// as the rcs.ParseOptions.OnRevisionText hook.
func EmitBlob(w io.Writer, marks *Marks, filename string, rev *rcs.Revision) {
	if rev.IsDead() {
		return
	}
	mark := marks.Blob(filename, rev.ID)
	text := rev.TextString()
	fmt.Fprintf(w, "blob\nmark :%d\ndata %d\n%s\n", mark, len(text), text)
}

func oneLine(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, ' ')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
