package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Options carries every tunable named in §6's CLI surface. Flag parsing
// itself stays external glue (§1); this struct and LoadOptionsFile are
// the core's half of the ambient configuration layer (SPEC_FULL.md).
type Options struct {
	CommitFuzzSeconds  int    `yaml:"commit_fuzz_seconds"`
	TagFuzzSeconds     int    `yaml:"tag_fuzz_seconds"`
	SymbolCheck        bool   `yaml:"symbol_check"`
	TagEachRev         bool   `yaml:"tag_each_rev"`
	LogFilename        bool   `yaml:"log_filename"`
	AuthorIsCommitter  bool   `yaml:"author_is_committer"`
	WarnMissingAuthors bool   `yaml:"warn_missing_authors"`
	SkipBranches       bool   `yaml:"skip_branches"`
	ExpandKeywords     bool   `yaml:"expand_keywords"`
	StatsOnly          bool   `yaml:"stats_only"`
	InputEncoding      string `yaml:"input_encoding"`
	CoTool             string `yaml:"co_tool"`
}

// DefaultOptions returns the documented defaults (§6: commit-fuzz 300s,
// tag-fuzz defaults to commit-fuzz, symbol-check on).
func DefaultOptions() Options {
	return Options{
		CommitFuzzSeconds: 300,
		SymbolCheck:       true,
	}
}

// CommitFuzz is the coalescer's commit fuzz window as a Duration.
func (o Options) CommitFuzz() time.Duration {
	return time.Duration(o.CommitFuzzSeconds) * time.Second
}

// TagFuzz is the tag-commit fuzz window, defaulting to CommitFuzz when
// unset.
func (o Options) TagFuzz() time.Duration {
	if o.TagFuzzSeconds == 0 {
		return o.CommitFuzz()
	}
	return time.Duration(o.TagFuzzSeconds) * time.Second
}

// LoadOptionsFile reads a YAML sidecar of Options, layered on top of
// DefaultOptions so an embedder only needs to name the fields they want
// to override.
func LoadOptionsFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
