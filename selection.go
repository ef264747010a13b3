// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

import (
	"fmt"
	"sort"

	"github.com/woozymasta/pathrules"
)

// Selection decides which resources are visited and under what output name.
// NameSet and RenameMap are caller-owned mutable state: every successfully
// handled resource is removed, so whatever remains after a call is the
// caller's report of "not found or not successfully handled". A Selection is
// visited by one archive at a time, never concurrently.
type Selection interface {
	// Empty reports whether the selection can no longer match anything.
	// An empty selection skips directory scanning entirely.
	Empty() bool
	// Resolve reports whether the stored resource name is selected and
	// returns the output name passed downstream.
	Resolve(name string) (string, bool)
	// Ack records that the named resource was successfully handled.
	Ack(name string)
}

// All selects every resource under its stored name.
var All Selection = selectAll{}

type selectAll struct{}

// Empty always reports false; All never exhausts.
func (selectAll) Empty() bool { return false }

// Resolve selects every name unchanged.
func (selectAll) Resolve(name string) (string, bool) { return name, true }

// Ack is a no-op; All tracks nothing.
func (selectAll) Ack(string) {}

// NameSet selects resources by exact stored name. Handled names are removed.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from the given resource names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Empty reports whether no desired names remain.
func (s NameSet) Empty() bool { return len(s) == 0 }

// Resolve selects members under their stored name.
func (s NameSet) Resolve(name string) (string, bool) {
	_, ok := s[name]
	return name, ok
}

// Ack removes a handled name from the set.
func (s NameSet) Ack(name string) { delete(s, name) }

// Names returns the remaining names in sorted order.
func (s NameSet) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}

	sort.Strings(out)
	return out
}

// RenameMap selects resources whose stored name is a key and passes the
// mapped value downstream as the output name. Handled keys are removed.
type RenameMap map[string]string

// Empty reports whether no desired names remain.
func (m RenameMap) Empty() bool { return len(m) == 0 }

// Resolve selects keys and renames them to the mapped value.
func (m RenameMap) Resolve(name string) (string, bool) {
	out, ok := m[name]
	return out, ok
}

// Ack removes a handled key from the mapping.
func (m RenameMap) Ack(name string) { delete(m, name) }

// Names returns the remaining keys in sorted order.
func (m RenameMap) Names() []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}

	sort.Strings(out)
	return out
}

// RuleSet selects resources by gitignore-like include/exclude patterns.
// Pattern selections carry no per-name bookkeeping: Ack is a no-op and the
// rule set never exhausts while it holds at least one rule.
type RuleSet struct {
	matcher *pathrules.Matcher
}

// NewRuleSet compiles selection rules into a RuleSet. Rules with empty
// patterns are dropped; an all-empty rule list yields a RuleSet that
// selects nothing.
func NewRuleSet(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*RuleSet, error) {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Pattern == "" {
			continue
		}

		normalized = append(normalized, rule)
	}

	if len(normalized) == 0 {
		return &RuleSet{}, nil
	}

	if opts == (pathrules.MatcherOptions{}) {
		opts.DefaultAction = pathrules.ActionExclude
	}

	matcher, err := pathrules.NewMatcher(normalized, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidSelectPattern, err)
	}

	return &RuleSet{matcher: matcher}, nil
}

// Empty reports whether the rule set can match nothing.
func (s *RuleSet) Empty() bool { return s == nil || s.matcher == nil }

// Resolve selects names included by the rules, unchanged.
func (s *RuleSet) Resolve(name string) (string, bool) {
	if s == nil || s.matcher == nil {
		return name, false
	}

	return name, s.matcher.Included(name, false)
}

// Ack is a no-op; rules are not consumed by matches.
func (s *RuleSet) Ack(string) {}
