package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"fmt"
	"io"

	"github.com/Oblomov/rcs-fast-export/rcs"
)

// Driver selects the single-file or multi-file export path and owns the
// one mark registry shared across whichever path runs (§4.I). Callers
// are expected to have already run rcs.ParseFile and
// rcs.ResolveBranchesAndTags on every input file before calling Run —
// the driver's job is picking and running the export algorithm, not
// parsing.
type Driver struct {
	Marks   *Marks
	Idents  IdentResolver
	Options Options
	Out     io.Writer
}

// NewDriver builds a driver writing the fast-import stream to w.
func NewDriver(w io.Writer, idents IdentResolver, opts Options) *Driver {
	return &Driver{Marks: NewMarks(), Idents: idents, Options: opts, Out: w}
}

// Run exports files: one file takes the single-file path (§4.F) with
// full branch/tag/from fidelity; more than one takes the coalescing
// multi-file path (§4.G/§4.H), where branch reconstruction is a
// non-goal and branched revisions are either dropped (SkipBranches) or
// cause the run to abort.
func (d *Driver) Run(files []*rcs.RcsFile) error {
	if d.Options.StatsOnly {
		d.reportStats(files)
		return nil
	}
	if len(files) == 1 {
		return d.runSingleFile(files[0])
	}
	return d.runMultiFile(files)
}

func (d *Driver) runSingleFile(file *rcs.RcsFile) error {
	exporter := NewSingleFileExporter(d.Out, d.Marks, d.Idents, d.Options)
	return exporter.Export(file)
}

func (d *Driver) runMultiFile(files []*rcs.RcsFile) error {
	var commits []*Commit
	for _, file := range files {
		for _, rev := range file.Revisions {
			if !rev.IsTrunk() {
				if d.Options.SkipBranches {
					warn("export: %s: skipping branched revision %s (multi-file branch reconstruction unsupported)", file.Filename, rev.ID)
					continue
				}
				return fmt.Errorf("%s: revision %s is on branch %q: multi-file export cannot reconstruct branches (pass SkipBranches to drop them instead)", file.Filename, rev.ID, rev.Branch)
			}
			commits = append(commits, WrapRevision(file, rev))
		}
	}

	merged, err := Coalesce(commits, d.Options)
	if err != nil {
		return err
	}

	exporter := NewMultiFileExporter(d.Out, d.Marks, d.Idents, d.Options)
	return exporter.Export(merged)
}

// reportStats implements the dry-run supplement in SPEC_FULL.md: a
// read-only pass over the already-built revision graph, with no blob or
// commit output.
func (d *Driver) reportStats(files []*rcs.RcsFile) {
	var revisions, branches, symbols int
	for _, file := range files {
		revisions += len(file.Revisions)
		for _, rev := range file.Revisions {
			branches += rev.Branches.Size()
			symbols += rev.Symbols.Size()
		}
	}
	fmt.Fprintf(d.Out, "#stats files=%d revisions=%d branches=%d symbols=%d\n",
		len(files), revisions, branches, symbols)
}
