package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"bytes"
	"fmt"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"
)

// coExtract obtains a revision's text by delegating to the RCS `co`
// tool instead of replaying the delta chain (§4.C's expand_keywords
// path, §9's "keep it behind an opt-in flag" note). This is the core's
// only external-process dependency: re-implementing RCS keyword
// substitution is error-prone and rarely exercised by importers, so
// when a caller wants expanded keywords we hand the whole job to the
// tool that already gets it right.
//
// coTool is typically "co"; expand is the admin section's expand mode
// ("kv", "kvl", ...), empty for the tool's own default.
func coExtract(coTool, path, rev, expand string) ([]byte, error) {
	args := []string{"-q", "-p" + rev}
	if expand != "" {
		args = append(args, "-k"+expand)
	}
	args = append(args, path)
	if logEnabled(logPARSE) {
		logit(logPARSE, "extracting %s via: %s", rev, shellquote.Join(append([]string{coTool}, args...)...))
	}
	cmd := exec.Command(coTool, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("co -p%s %s: %v: %s", rev, path, err, stderr.String())
	}
	return stdout.Bytes(), nil
}
