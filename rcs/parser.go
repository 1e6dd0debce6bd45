package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import "io"

// ParseOptions configures one ParseFile call (§4.C, §9's keyword
// expansion note, and the legacy-encoding supplement in SPEC_FULL.md).
type ParseOptions struct {
	// ExpandKeywords, when true, obtains revision text from an external
	// `co -q -p<rev>` invocation instead of replaying RCS diff scripts.
	ExpandKeywords bool
	// CoTool overrides the "co" executable name/path; defaults to "co".
	CoTool string
	// SourcePath is the on-disk path of the ,v file being parsed. Only
	// required when ExpandKeywords is set, since `co` needs a real path.
	SourcePath string
	// InputEncoding, if non-empty, is an IANA charset name the desc, log
	// and text literals are transcoded from before use. Author names and
	// the comment and expand literals are kept as read.
	InputEncoding string
	// OnRevisionText is invoked the instant a revision's text becomes
	// available, in file order, letting the exporter emit each blob
	// eagerly (§2, §4.F) ahead of any commit that references it.
	OnRevisionText func(file *RcsFile, rev *Revision)
}

// ParseFile parses one ,v file's grammar (§4.C) and reconstructs every
// revision's text (§4.D), returning the populated RcsFile. filename is
// the logical name attached to RcsFile.Filename; it need not match
// opts.SourcePath (which, if set, is the real on-disk path used only for
// external `co` invocations).
func ParseFile(r io.Reader, filename string, opts ParseOptions) (rf *RcsFile, err error) {
	defer func() {
		if e := catch("rcs", recover()); e != nil {
			err = e
		}
	}()

	lr := newLineReader(r)
	wl := newWordLexer(newByteStream(lr))
	file := newRcsFile(filename)

	parseAdmin(wl, file)

	seenDesc := false
	for {
		w, ok := wl.peek()
		if !ok {
			break
		}
		if w == "desc" {
			wl.next()
			lit, lerr := wl.readLiteral()
			if lerr != nil {
				throwRcs("%v", lerr)
			}
			file.Desc = mustTranscode(lit, opts.InputEncoding)
			seenDesc = true
			continue
		}
		if isRevisionID(w) {
			wl.next()
			if !seenDesc {
				parseRevisionHeader(wl, file, w)
			} else {
				parseRevisionData(wl, file, w, opts)
			}
			continue
		}
		wl.next()
		warn("rcs: %s: skipping unknown keyword %q at top level", filename, w)
		wl.skipToSemicolon()
	}

	rf = file
	return
}

func mustTranscode(s, encoding string) string {
	out, err := transcodeToUTF8(s, encoding)
	if err != nil {
		throwRcs("%v", err)
	}
	return out
}

func parseAdmin(wl *wordLexer, file *RcsFile) {
	for {
		w, ok := wl.peek()
		if !ok {
			return
		}
		if isRevisionID(w) || w == "desc" {
			return
		}
		wl.next()
		switch w {
		case "head":
			id, _ := wl.next()
			wl.expectSemicolon()
			file.Head = id
		case "branch":
			id, _ := wl.next()
			if id != ";" {
				file.Branch = id
				wl.expectSemicolon()
			}
		case "access":
			file.Access = wordsUntilSemicolon(wl)
		case "symbols":
			parseSymbols(wl, file)
		case "locks":
			file.Locks = wordsUntilSemicolon(wl)
			if nxt, ok := wl.peek(); ok && nxt == "strict" {
				wl.next()
				wl.expectSemicolon()
			}
		case "comment":
			lit, lerr := wl.readLiteral()
			if lerr != nil {
				throwRcs("%v", lerr)
			}
			wl.expectSemicolon()
			file.Comment = lit
		case "expand":
			lit, lerr := wl.readLiteral()
			if lerr != nil {
				throwRcs("%v", lerr)
			}
			wl.expectSemicolon()
			file.Expand = lit
		default:
			warn("rcs: %s: skipping unknown admin keyword %q", file.Filename, w)
			wl.skipToSemicolon()
		}
	}
}

func wordsUntilSemicolon(wl *wordLexer) []string {
	var out []string
	for {
		w, ok := wl.next()
		if !ok || w == ";" {
			return out
		}
		out = append(out, w)
	}
}

func parseSymbols(wl *wordLexer, file *RcsFile) {
	for {
		w, ok := wl.next()
		if !ok || w == ";" {
			return
		}
		name, rev, found := splitPair(w, ':')
		if !found {
			warn("rcs: %s: malformed symbol entry %q", file.Filename, w)
			continue
		}
		file.revision(rev).Symbols.Add(name)
	}
}

func splitPair(s string, sep byte) (first, second string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func parseRevisionHeader(wl *wordLexer, file *RcsFile, id string) {
	r := file.revision(id)
	r.placeholder = false
	for {
		w, ok := wl.peek()
		if !ok || isRevisionID(w) || w == "desc" {
			return
		}
		wl.next()
		switch w {
		case "date":
			val, _ := wl.next()
			wl.expectSemicolon()
			d, derr := parseRCSDate(val)
			if derr != nil {
				throwRcs("%s: revision %s: %v", file.Filename, id, derr)
			}
			r.Date = d
		case "author":
			val, _ := wl.next()
			wl.expectSemicolon()
			r.Author = val
		case "state":
			val, _ := wl.next()
			if val == ";" {
				r.State = ""
				continue
			}
			r.State = val
			wl.expectSemicolon()
		case "branches":
			parseBranchesClause(wl, file, r)
		case "next":
			val, _ := wl.next()
			if val == ";" {
				continue
			}
			wl.expectSemicolon()
			r.Next = val
			target := file.revision(val)
			if target.DiffBase != "" {
				throwRcs("%s: revision %s: duplicate diff_base (already set by %s)", file.Filename, val, target.DiffBase)
			}
			target.DiffBase = id
			target.Branch = r.Branch
		default:
			warn("rcs: %s: revision %s: skipping unknown clause %q", file.Filename, id, w)
			wl.skipToSemicolon()
		}
	}
}

func parseBranchesClause(wl *wordLexer, file *RcsFile, r *Revision) {
	for {
		w, ok := wl.next()
		if !ok || w == ";" {
			return
		}
		target := file.revision(w)
		if target.DiffBase != "" {
			throwRcs("%s: branch head %s: duplicate diff_base (already set by %s)", file.Filename, w, target.DiffBase)
		}
		target.DiffBase = r.ID
		target.Branch = branchLabel(w)
		target.BranchPoint = r.ID
		r.Branches.Add(w)
	}
}

func parseRevisionData(wl *wordLexer, file *RcsFile, id string, opts ParseOptions) {
	r, ok := file.Revisions[id]
	if !ok || r.placeholder {
		throwRcs("%s: revision %s has data but no header", file.Filename, id)
	}
	for {
		w, ok := wl.peek()
		if !ok || isRevisionID(w) {
			return
		}
		wl.next()
		switch w {
		case "log":
			lit, lerr := wl.readLiteral()
			if lerr != nil {
				throwRcs("%v", lerr)
			}
			r.Log = mustTranscode(lit, opts.InputEncoding)
		case "text":
			lit, lerr := wl.readLiteral()
			if lerr != nil {
				throwRcs("%v", lerr)
			}
			materializeText(file, r, lit, opts)
		default:
			warn("rcs: %s: revision %s: skipping unknown clause %q", file.Filename, id, w)
			wl.skipToSemicolon()
		}
	}
}

func materializeText(file *RcsFile, r *Revision, raw string, opts ParseOptions) {
	if opts.ExpandKeywords {
		coTool := opts.CoTool
		if coTool == "" {
			coTool = "co"
		}
		out, cerr := coExtract(coTool, opts.SourcePath, r.ID, file.Expand)
		if cerr != nil {
			throwRcs("%s: revision %s: %v", file.Filename, r.ID, cerr)
		}
		r.Text = splitKeepEnds(string(out))
	} else if r.ID == file.Head {
		r.Text = splitKeepEnds(mustTranscode(raw, opts.InputEncoding))
	} else {
		base, ok := file.Revisions[r.DiffBase]
		if !ok || base.Text == nil {
			throwRcs("%s: revision %s: missing diff base %q", file.Filename, r.ID, r.DiffBase)
		}
		text, derr := replayDiff(base.Text, mustTranscode(raw, opts.InputEncoding))
		if derr != nil {
			throwRcs("%s: revision %s: %v", file.Filename, r.ID, derr)
		}
		r.Text = text
	}
	if opts.OnRevisionText != nil {
		opts.OnRevisionText(file, r)
	}
}
