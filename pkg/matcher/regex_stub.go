//go:build noregex

package matcher

import (
	"github.com/osmkit/stringmatch/pkg/log"
)

// regexHandle is an empty placeholder in builds compiled with the noregex
// tag. No constructor can produce a regex matcher in these builds, so the
// dispatch arms below are implementation-error guards.
type regexHandle = struct{}

func (m Matcher) matchRegexString(s string) bool {
	log.Errorf("Matcher: MatchString: regex matcher present in a noregex build. This is a matcher implementation error and requires immediate patching.")
	return false
}

func (m Matcher) matchRegexBytes(b []byte) bool {
	log.Errorf("Matcher: Match: regex matcher present in a noregex build. This is a matcher implementation error and requires immediate patching.")
	return false
}

func (m Matcher) regexSource() string {
	return ""
}

// compileRegexMatcher backs the JSON form's regex arm; without regex support
// it refuses to construct anything.
func compileRegexMatcher(pattern string) (Matcher, error) {
	return Matcher{}, ErrNoRegex
}
