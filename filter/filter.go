package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Options captures the domain filtering configuration.
type Options struct {
	IncludeDomain []string
	ExcludeDomain []string
}

// Filter holds compiled regex patterns matched against address domains.
type Filter struct {
	includeMode bool
	excludeMode bool
	include     []*regexp.Regexp
	exclude     []*regexp.Regexp
	hits        map[string]int
}

// Stats reports per-pattern hit counts accumulated by Allows.
type Stats struct {
	IncludePatterns []string
	ExcludePatterns []string
	Hits            map[string]int
}

// New creates a new Filter from the provided options.
func New(opts Options) (*Filter, error) {
	include, err := compilePatterns(opts.IncludeDomain)
	if err != nil {
		return nil, fmt.Errorf("compile include-domain pattern: %w", err)
	}
	exclude, err := compilePatterns(opts.ExcludeDomain)
	if err != nil {
		return nil, fmt.Errorf("compile exclude-domain pattern: %w", err)
	}

	if len(include) > 0 && len(exclude) > 0 {
		return nil, fmt.Errorf("include and exclude filters are mutually exclusive")
	}

	return &Filter{
		includeMode: len(include) > 0,
		excludeMode: len(exclude) > 0,
		include:     include,
		exclude:     exclude,
		hits:        make(map[string]int),
	}, nil
}

// Allows returns true if an address with the given domain passes the
// filter criteria. An empty domain (an unparsable address) always passes,
// so validation failures stay visible regardless of filtering.
func (f *Filter) Allows(domain string) bool {
	if domain == "" {
		return true
	}

	if f.includeMode {
		return f.matchAny(f.include, domain)
	}

	if f.excludeMode && f.matchAny(f.exclude, domain) {
		return false
	}

	return true
}

// GetStats returns the configured patterns and their hit counts.
func (f *Filter) GetStats() Stats {
	hits := make(map[string]int, len(f.hits))
	for k, v := range f.hits {
		hits[k] = v
	}
	return Stats{
		IncludePatterns: patternStrings(f.include),
		ExcludePatterns: patternStrings(f.exclude),
		Hits:            hits,
	}
}

func (f *Filter) matchAny(patterns []*regexp.Regexp, domain string) bool {
	for _, re := range patterns {
		if re.MatchString(domain) {
			f.hits[re.String()]++
			return true
		}
	}
	return false
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func patternStrings(patterns []*regexp.Regexp) []string {
	if len(patterns) == 0 {
		return nil
	}
	out := make([]string, 0, len(patterns))
	for _, re := range patterns {
		out = append(out, re.String())
	}
	return out
}
