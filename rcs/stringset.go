package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"sort"
	"strings"

	orderedset "github.com/emirpasic/gods/sets/linkedhashset"
)

// StringSet is an insertion-ordered set of strings, used for a
// revision's symbols and branch-head ids (the coalescer's obstruction
// set uses the same library directly). Insertion order matters because §5 requires the
// export stream to be byte-identical across runs on identical input.
type StringSet struct{ set *orderedset.Set }

// NewStringSet builds a StringSet, optionally seeded with members.
func NewStringSet(members ...string) *StringSet {
	s := orderedset.New()
	for _, m := range members {
		s.Add(m)
	}
	return &StringSet{s}
}

// Add inserts members, ignoring ones already present.
func (s *StringSet) Add(members ...string) {
	for _, m := range members {
		s.set.Add(m)
	}
}

// Contains reports set membership.
func (s *StringSet) Contains(m string) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(m)
}

// Size returns the number of members.
func (s *StringSet) Size() int {
	if s == nil {
		return 0
	}
	return s.set.Size()
}

// Values returns the members in insertion order.
func (s *StringSet) Values() []string {
	if s == nil {
		return nil
	}
	raw := s.set.Values()
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.(string)
	}
	return out
}

// Sorted returns the members sorted lexically, for deterministic iteration
// where insertion order isn't the invariant that matters.
func (s *StringSet) Sorted() []string {
	v := s.Values()
	sort.Strings(v)
	return v
}

// Union returns a new set containing members of both sets, with this
// set's members first in their original order.
func (s *StringSet) Union(other *StringSet) *StringSet {
	out := NewStringSet(s.Values()...)
	out.Add(other.Values()...)
	return out
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s *StringSet) IsSubsetOf(other *StringSet) bool {
	for _, m := range s.Values() {
		if !other.Contains(m) {
			return false
		}
	}
	return true
}

// Comparable reports whether one of s, other is a subset of the other,
// the admission rule the coalescer uses for symbol sets (§4.G).
func (s *StringSet) Comparable(other *StringSet) bool {
	return s.IsSubsetOf(other) || other.IsSubsetOf(s)
}

func (s *StringSet) String() string {
	return "{" + strings.Join(s.Values(), ", ") + "}"
}
