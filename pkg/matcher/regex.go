//go:build !noregex

package matcher

import (
	"fmt"
	"regexp"
)

// regexHandle is the compiled pattern payload in regex-capable builds.
type regexHandle = *regexp.Regexp

// InvalidPatternError reports a pattern text the regex engine rejected when a
// regex matcher was being constructed.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Regex returns a matcher that matches subjects the compiled pattern is found
// within. Search semantics: the match is unanchored unless the pattern
// anchors itself.
func Regex(re *regexp.Regexp) Matcher {
	return Matcher{kind: KindRegex, re: re}
}

// CompileRegex compiles pattern and returns the resulting regex matcher. A
// pattern the engine rejects yields an *InvalidPatternError and no matcher;
// the failure surfaces here, never at first match.
func CompileRegex(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Matcher{}, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return Regex(re), nil
}

// MustCompileRegex is like CompileRegex but panics on a bad pattern, for
// matchers fixed at init time.
func MustCompileRegex(pattern string) Matcher {
	m, err := CompileRegex(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Matcher) matchRegexString(s string) bool {
	return m.re.MatchString(s)
}

func (m Matcher) matchRegexBytes(b []byte) bool {
	return m.re.Match(b)
}

// regexSource returns the pattern source text. The JSON form round-trips it;
// the diagnostic String form never prints it.
func (m Matcher) regexSource() string {
	if m.re == nil {
		return ""
	}
	return m.re.String()
}

// compileRegexMatcher backs the JSON form's regex arm in regex-capable
// builds.
func compileRegexMatcher(pattern string) (Matcher, error) {
	return CompileRegex(pattern)
}
