package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters selects tests by name. A test runs if it matches MustMatch (or MustMatch is empty)
// and does not match MustNotMatch.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyPrefixMatch(id)) &&
		!r.MustNotMatch.AnyFullMatch(id)
}

// RegexList is a set of test path patterns, usable as a flag.Value. As with "go test -run", a
// pattern is split on slashes, and each element is a regex that is matched against the test name
// at the same depth: "users/get" matches the "get" subtest of "users".
type RegexList struct {
	patterns []pathPattern
}

type pathPattern struct {
	source   string
	elements []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.source+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	p := pathPattern{source: value}
	for _, e := range strings.Split(value, "/") {
		rx, err := regexp.Compile(e)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
		p.elements = append(p.elements, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

// AnyPrefixMatch is true if some pattern matches as much of the test path as the two have in
// common. A parent of a selected test is selected, and so is every subtest of a selected test.
func (r RegexList) AnyPrefixMatch(id TestID) bool {
	for _, p := range r.patterns {
		if p.match(id.Path, false) {
			return true
		}
	}
	return false
}

// AnyFullMatch is true if some pattern has no more elements than the test path and matches all
// of them. Subtests of a matching test also match.
func (r RegexList) AnyFullMatch(id TestID) bool {
	for _, p := range r.patterns {
		if p.match(id.Path, true) {
			return true
		}
	}
	return false
}

func (p pathPattern) match(path []string, full bool) bool {
	if full && len(path) < len(p.elements) {
		return false
	}
	for i, name := range path {
		if i >= len(p.elements) {
			break
		}
		if !p.elements[i].MatchString(name) {
			return false
		}
	}
	return true
}

// PrintFilterDescription describes the active filters, if any, so the reason for skipped tests is
// visible at the start of a run.
func PrintFilterDescription(out io.Writer, filters RegexFilters) {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}
