package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"fmt"
	"io"
)

// MultiFileExporter emits coalesced Commits (§4.H). Unlike the
// single-file exporter it never writes a "from" line: multi-file branch
// reconstruction is a non-goal (§1), so every surviving Commit lands on
// refs/heads/master with no parent linkage beyond emission order.
type MultiFileExporter struct {
	Marks   *Marks
	Idents  IdentResolver
	Options Options
	Out     io.Writer
}

// NewMultiFileExporter builds an exporter writing to w.
func NewMultiFileExporter(w io.Writer, marks *Marks, idents IdentResolver, opts Options) *MultiFileExporter {
	return &MultiFileExporter{Marks: marks, Idents: idents, Options: opts, Out: w}
}

// Export writes one commit record per surviving coalesced Commit, keyed
// by representative date, followed by tag resets for its unioned
// symbols (§4.H).
func (e *MultiFileExporter) Export(commits []*Commit) (err error) {
	defer func() {
		if er := catch("export", recover()); er != nil {
			err = er
		}
	}()
	for _, c := range commits {
		e.emitCommit(c)
	}
	return nil
}

func (e *MultiFileExporter) emitCommit(c *Commit) {
	key := fmt.Sprintf("%s\x00%s\x00%d", c.Author, c.Log, c.RepDate.Unix())
	mark := e.Marks.Commit(key)

	fmt.Fprintln(e.Out, "commit refs/heads/master")
	fmt.Fprintf(e.Out, "mark :%d\n", mark)

	author := e.Idents.Resolve(c.Author)
	committer := author
	if !e.Options.AuthorIsCommitter {
		if host := e.Idents.Resolve(""); !host.isEmpty() {
			committer = host
		}
	}
	fmt.Fprintf(e.Out, "author %s %s\n", author, c.RepDate.FastImport())
	fmt.Fprintf(e.Out, "committer %s %s\n", committer, c.RepDate.FastImport())
	fmt.Fprintf(e.Out, "data %d\n%s\n", len(c.Log), c.Log)

	if err := c.Tree.Manifest(e.Out, e.Marks); err != nil {
		throwExport("%v", err)
	}
	fmt.Fprintln(e.Out)

	for _, name := range c.Symbols.Values() {
		fmt.Fprintf(e.Out, "reset refs/tags/%s\nfrom :%d\n\n", name, mark)
	}
}
