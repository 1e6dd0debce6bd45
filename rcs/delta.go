package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"regexp"
	"strconv"
	"strings"
)

// diffCommandRE matches one RCS diff-script command line: "a<line> <count>"
// or "d<line> <count>" (§4.D). The sign is captured so a negative index or
// count can be reported as a corrupt script rather than misparsed.
var diffCommandRE = regexp.MustCompile(`^([ad])(-?[0-9]+)\s+(-?[0-9]+)\s*$`)

// splitKeepEnds splits text into lines, keeping each line's terminator
// attached (the last line keeps none if the text didn't end in one).
// Blobs and diff-script payloads alike need their original line
// terminators preserved verbatim for a byte-faithful export (§5).
func splitKeepEnds(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// replayDiff reconstructs a revision's text by applying an RCS edit
// script to its diff base (§4.D). base is the base revision's
// reconstructed lines; script is the raw decoded diff-script text.
//
// The base is materialized into one slot per line, 1-indexed; 'd'
// commands blank a slot rather than removing it, and 'a<line>' commands
// prepend their payload into the slot at index line+1 — the slot
// holding whatever currently sits just after the target line, so the
// payload lands after it rather than before. This lets both command
// kinds share one coordinate system — the base's original line
// numbering — in a single pass, because 'a' targets always refer to
// positions in the *original* base even after earlier 'd' commands have
// logically removed lines from it. Slot len(base)+1 exists solely to
// hold appends targeting the last line.
func replayDiff(base []string, script string) ([]string, error) {
	slots := make([][]string, len(base)+2) // index 0 unused by "a"; len(base)+1 holds appends after the last line
	for i := 1; i <= len(base); i++ {
		slots[i] = []string{base[i-1]}
	}

	lines := splitKeepEnds(script)
	idx := 0
	for idx < len(lines) {
		cmdLine := strings.TrimRight(lines[idx], "\r\n")
		idx++
		if cmdLine == "" {
			warn("rcs: skipping empty diff command line")
			continue
		}
		m := diffCommandRE.FindStringSubmatch(cmdLine)
		if m == nil {
			return nil, &exception{class: "rcs", message: "malformed diff command " + strconv.Quote(cmdLine)}
		}
		kind := m[1]
		line, _ := strconv.Atoi(m[2])
		count, _ := strconv.Atoi(m[3])
		if line < 0 || count < 0 {
			return nil, &exception{class: "rcs", message: "corrupt diff script: negative index or count in " + strconv.Quote(cmdLine)}
		}
		switch kind {
		case "a":
			if line > len(base) {
				return nil, &exception{class: "rcs", message: "corrupt diff script: append target out of range in " + strconv.Quote(cmdLine)}
			}
			payload := make([]string, 0, count)
			for k := 0; k < count; k++ {
				if idx >= len(lines) {
					return nil, &exception{class: "rcs", message: "corrupt diff script: truncated append payload after " + strconv.Quote(cmdLine)}
				}
				payload = append(payload, lines[idx])
				idx++
			}
			slots[line+1] = append(payload, slots[line+1]...)
		case "d":
			if line < 1 || line+count-1 > len(base) {
				return nil, &exception{class: "rcs", message: "corrupt diff script: delete range out of bounds in " + strconv.Quote(cmdLine)}
			}
			for k := 0; k < count; k++ {
				slots[line+k] = nil
			}
		}
	}

	var out []string
	for i := 0; i <= len(base)+1; i++ {
		out = append(out, slots[i]...)
	}
	return out, nil
}
