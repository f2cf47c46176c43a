package domain

import (
	"regexp"
	"sync"

	"go.trai.ch/zerr"
)

// IgnoreRule suppresses keys from being reported as missing for files whose path matches Pattern.
type IgnoreRule struct {
	Pattern    string   `json:"pattern"    yaml:"pattern"`
	IgnoreKeys []string `json:"ignoreKeys" yaml:"ignoreKeys"`
}

// IsInert reports whether the rule can never suppress anything.
func (r IgnoreRule) IsInert() bool {
	return r.Pattern == "" || len(r.IgnoreKeys) == 0
}

type compiledRule struct {
	pattern *regexp.Regexp
	keys    []string
}

// IgnoreRuleSet is an ordered, immutable list of compiled ignore rules.
// The keys resolved for a file path are memoized on first lookup.
type IgnoreRuleSet struct {
	rules []compiledRule

	mu    sync.Mutex
	cache map[string]*ignoredKeys
}

// ignoredKeys is the memoized result of matching every rule against one path.
type ignoredKeys struct {
	ordered []string
	set     map[string]struct{}
}

// NewIgnoreRuleSet compiles the given rules. Inert rules are dropped.
// It returns ErrInvalidRulePattern if a pattern does not compile.
func NewIgnoreRuleSet(rules []IgnoreRule) (*IgnoreRuleSet, error) {
	set := &IgnoreRuleSet{
		rules: make([]compiledRule, 0, len(rules)),
		cache: make(map[string]*ignoredKeys),
	}

	for i, rule := range rules {
		if rule.IsInert() {
			continue
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrInvalidRulePattern, err.Error()),
				"pattern", rule.Pattern), "rule", i)
		}

		keys := make([]string, len(rule.IgnoreKeys))
		copy(keys, rule.IgnoreKeys)
		set.rules = append(set.rules, compiledRule{pattern: re, keys: keys})
	}

	return set, nil
}

// EmptyIgnoreRuleSet returns a set without rules.
func EmptyIgnoreRuleSet() *IgnoreRuleSet {
	return &IgnoreRuleSet{cache: make(map[string]*ignoredKeys)}
}

// Len returns the number of active rules.
func (s *IgnoreRuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Rules returns the active rules in declaration order.
func (s *IgnoreRuleSet) Rules() []IgnoreRule {
	if s == nil {
		return nil
	}
	out := make([]IgnoreRule, len(s.rules))
	for i, r := range s.rules {
		keys := make([]string, len(r.keys))
		copy(keys, r.keys)
		out[i] = IgnoreRule{Pattern: r.pattern.String(), IgnoreKeys: keys}
	}
	return out
}

// KeysFor returns the keys ignored for path, in rule order without duplicates.
// Patterns are searched within the path, they do not need to match it entirely.
// The result is computed once per path and memoized for the lifetime of the set.
func (s *IgnoreRuleSet) KeysFor(path string) []string {
	if s == nil {
		return nil
	}

	entry := s.resolve(path)
	keys := make([]string, len(entry.ordered))
	copy(keys, entry.ordered)
	return keys
}

// ShouldIgnore reports whether key is suppressed for path.
func (s *IgnoreRuleSet) ShouldIgnore(path, key string) bool {
	if s == nil || len(s.rules) == 0 {
		return false
	}

	_, ok := s.resolve(path).set[key]
	return ok
}

// CachedPaths returns how many file paths have a memoized key set.
func (s *IgnoreRuleSet) CachedPaths() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

func (s *IgnoreRuleSet) resolve(path string) *ignoredKeys {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.cache[path]; ok {
		return entry
	}

	entry := &ignoredKeys{set: make(map[string]struct{})}
	for _, rule := range s.rules {
		if !rule.pattern.MatchString(path) {
			continue
		}
		for _, key := range rule.keys {
			if _, dup := entry.set[key]; dup {
				continue
			}
			entry.set[key] = struct{}{}
			entry.ordered = append(entry.ordered, key)
		}
	}

	if s.cache == nil {
		s.cache = make(map[string]*ignoredKeys)
	}
	s.cache[path] = entry
	return entry
}
