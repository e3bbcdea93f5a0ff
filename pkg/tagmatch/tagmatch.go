// Package tagmatch matches key/value pairs by composing two core matchers,
// one for the key and one for the value. It is the layer data filters build
// on when classifying tag-like map[string]string data.
package tagmatch

import (
	"fmt"

	"github.com/osmkit/stringmatch/pkg/matcher"
)

// Matcher pairs a key matcher with a value matcher. The zero value matches
// nothing. Like the core type it is immutable after construction and safe
// for concurrent readers.
type Matcher struct {
	key   matcher.Matcher
	value matcher.Matcher

	// keyOnly accepts any value as long as the key matches.
	keyOnly bool

	// invert flips the value test: the key must match and the value must NOT.
	invert bool
}

// New returns a matcher requiring both the key and the value of a pair to
// match.
func New(key, value matcher.Matcher) Matcher {
	return Matcher{key: key, value: value}
}

// KeyOnly returns a matcher that accepts any pair whose key matches,
// whatever its value.
func KeyOnly(key matcher.Matcher) Matcher {
	return Matcher{key: key, keyOnly: true}
}

// NotValue returns a matcher requiring the key to match and the value to not
// match.
func NotValue(key, value matcher.Matcher) Matcher {
	return Matcher{key: key, value: value, invert: true}
}

// MatchPair reports whether a single key/value pair matches.
func (tm Matcher) MatchPair(key, value string) bool {
	if !tm.key.MatchString(key) {
		return false
	}
	if tm.keyOnly {
		return true
	}
	return tm.value.MatchString(value) != tm.invert
}

// MatchAny reports whether any entry of tags matches.
func (tm Matcher) MatchAny(tags map[string]string) bool {
	for k, v := range tags {
		if tm.MatchPair(k, v) {
			return true
		}
	}
	return false
}

// String returns the diagnostic form: tag[<key>] for key-only matchers,
// tag[<key>=<value>] otherwise, with != marking an inverted value.
func (tm Matcher) String() string {
	if tm.keyOnly {
		return fmt.Sprintf("tag[%s]", tm.key)
	}
	op := "="
	if tm.invert {
		op = "!="
	}
	return fmt.Sprintf("tag[%s%s%s]", tm.key, op, tm.value)
}
