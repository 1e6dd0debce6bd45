// Command rcs-fast-export converts RCS ,v files into a git fast-import
// stream on standard output.
package main

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Oblomov/rcs-fast-export/export"
	"github.com/Oblomov/rcs-fast-export/rcs"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("rcs-fast-export", flag.ContinueOnError)
	var (
		authorsMap   = fs.String("authors", "", "authors-map file (username = Name <email>)")
		commitFuzz   = fs.Int("fuzz", 300, "commit-fuzz window in seconds")
		tagFuzz      = fs.Int("tag-fuzz", 0, "tag-fuzz window in seconds (defaults to -fuzz)")
		symbolCheck  = fs.Bool("symbol-check", true, "abort coalescing on incomparable symbol sets")
		tagEachRev   = fs.Bool("tag-each-rev", false, "emit a tag reset for every revision")
		logFilename  = fs.Bool("log-filename", false, "prefix commit messages with the filename")
		authorIsCo   = fs.Bool("author-is-committer", true, "use the revision author as committer")
		warnMissing  = fs.Bool("warn-missing-authors", false, "warn when a username has no authors-map entry")
		skipBranches = fs.Bool("skip-branches", false, "drop branched revisions instead of aborting multi-file export")
		expand       = fs.Bool("k", false, "expand RCS keywords via an external co, instead of replaying diffs")
		coTool       = fs.String("co-tool", "co", "external co executable for -k")
		encoding     = fs.String("encoding", "", "IANA charset name to transcode literals from")
		statsOnly    = fs.Bool("stats", false, "report revision/branch/symbol counts only, emit nothing")
		optionsFile  = fs.String("options", "", "YAML Options sidecar, overridden by any flag set explicitly")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	opts := export.DefaultOptions()
	if *optionsFile != "" {
		loaded, err := export.LoadOptionsFile(*optionsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rcs-fast-export: %v\n", err)
			return 1
		}
		opts = loaded
	}
	opts.CommitFuzzSeconds = *commitFuzz
	opts.TagFuzzSeconds = *tagFuzz
	opts.SymbolCheck = *symbolCheck
	opts.TagEachRev = *tagEachRev
	opts.LogFilename = *logFilename
	opts.AuthorIsCommitter = *authorIsCo
	opts.WarnMissingAuthors = *warnMissing
	opts.SkipBranches = *skipBranches
	opts.ExpandKeywords = *expand
	opts.CoTool = *coTool
	opts.InputEncoding = *encoding
	opts.StatsOnly = *statsOnly

	idents, err := resolveIdentities(*authorsMap, opts.WarnMissingAuthors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rcs-fast-export: %v\n", err)
		return 1
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	rcsPaths, err := collectRcsFiles(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rcs-fast-export: %v\n", err)
		return 1
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	marks := export.NewMarks()
	exitStatus := 0
	var files []*rcs.RcsFile
	for _, path := range rcsPaths {
		file, err := parseOne(path, marks, out, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rcs-fast-export: %s: %v\n", path, err)
			exitStatus |= 1
			continue
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		return exitStatus
	}

	driver := &export.Driver{Marks: marks, Idents: idents, Options: opts, Out: out}
	if err := driver.Run(files); err != nil {
		fmt.Fprintf(os.Stderr, "rcs-fast-export: %v\n", err)
		return 1
	}
	return exitStatus
}

func parseOne(path string, marks *export.Marks, out *bufio.Writer, opts export.Options) (*rcs.RcsFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logicalName := strings.TrimSuffix(filepath.Base(path), ",v")

	popts := rcs.ParseOptions{
		ExpandKeywords: opts.ExpandKeywords,
		CoTool:         opts.CoTool,
		SourcePath:     path,
		InputEncoding:  opts.InputEncoding,
		OnRevisionText: func(file *rcs.RcsFile, rev *rcs.Revision) {
			if !opts.StatsOnly {
				export.EmitBlob(out, marks, file.Filename, rev)
			}
		},
	}
	file, err := rcs.ParseFile(f, logicalName, popts)
	if err != nil {
		return nil, err
	}
	if checkoutPath := strings.TrimSuffix(path, ",v"); checkoutPath != path && export.Exists(checkoutPath) {
		file.Executable = export.IsExecutable(checkoutPath)
	}
	if err := rcs.ResolveBranchesAndTags(file); err != nil {
		return nil, err
	}
	return file, nil
}

// collectRcsFiles resolves the CLI's file/directory arguments into a
// flat list of ,v paths (§6's "filesystem traversal... out of scope"
// collaborator, kept here in the glue layer rather than the core).
func collectRcsFiles(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		if !export.Exists(p) {
			return nil, fmt.Errorf("%s: no such file or directory", p)
		}
		if !export.IsDir(p) {
			out = append(out, p)
			continue
		}
		walkErr := filepath.Walk(p, func(walked string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(walked, ",v") {
				out = append(out, walked)
			}
			return nil
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}
	return out, nil
}

// resolveIdentities builds the authors-map collaborator (§1, §6): a
// plain "username = Name <email>" text file, one entry per line. The
// reserved empty-string key holds the host's own identity (§4.F: used
// as committer when -author-is-committer=false), read from the same
// GIT_COMMITTER_NAME/GIT_COMMITTER_EMAIL environment variables git
// itself honors, falling back to USER/EMAIL.
func resolveIdentities(path string, warnMissing bool) (export.IdentResolver, error) {
	static := export.StaticResolver{}
	static[""] = hostIdent()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, line := range bytes.Split(data, []byte("\n")) {
			line = bytes.TrimSpace(line)
			if len(line) == 0 || line[0] == '#' {
				continue
			}
			parts := strings.SplitN(string(line), "=", 2)
			if len(parts) != 2 {
				continue
			}
			username := strings.TrimSpace(parts[0])
			ident := strings.TrimSpace(parts[1])
			name, email := ident, ""
			if lt := strings.IndexByte(ident, '<'); lt >= 0 && strings.HasSuffix(ident, ">") {
				name = strings.TrimSpace(ident[:lt])
				email = ident[lt+1 : len(ident)-1]
			}
			static[username] = export.Ident{Name: name, Email: email}
		}
	}
	resolver := export.IdentResolver(export.FallbackResolver{Inner: static})
	if warnMissing {
		resolver = warnOnMiss{inner: static}
	}
	return resolver, nil
}

// hostIdent reads the running user's identity from the environment, the
// bare env-var read spec.md §1 leaves as the CLI's job rather than the
// core's (git itself falls back the same way when GIT_COMMITTER_* is
// unset).
func hostIdent() export.Ident {
	name := os.Getenv("GIT_COMMITTER_NAME")
	if name == "" {
		name = os.Getenv("USER")
	}
	email := os.Getenv("GIT_COMMITTER_EMAIL")
	if email == "" {
		email = os.Getenv("EMAIL")
	}
	return export.Ident{Name: name, Email: email}
}

// warnOnMiss wraps StaticResolver, logging to stderr on a miss instead
// of silently falling back, for -warn-missing-authors.
type warnOnMiss struct {
	inner export.StaticResolver
}

func (w warnOnMiss) Resolve(username string) export.Ident {
	if id, ok := w.inner[username]; ok {
		return id
	}
	if username != "" {
		fmt.Fprintf(os.Stderr, "rcs-fast-export: no authors-map entry for %q, using bare username\n", username)
	}
	return export.Ident{Name: username}
}
