package event

import (
	"github.com/danwakefield/fnmatch"
)

// Filter returns the events whose kind matches one of the glob patterns,
// like "Node*" or "*HealthReport". Matching is case-insensitive. No
// pattern matches all events.
func (t Events) Filter(patterns ...string) Events {
	if len(patterns) == 0 {
		return t
	}
	l := make(Events, 0)
	for _, e := range t {
		if MatchKind(e.Kind(), patterns...) {
			l = append(l, e)
		}
	}
	return l
}

// MatchKind returns true if kind matches one of the glob patterns.
func MatchKind(kind Kind, patterns ...string) bool {
	for _, p := range patterns {
		if fnmatch.Match(p, string(kind), fnmatch.FNM_CASEFOLD) {
			return true
		}
	}
	return false
}
