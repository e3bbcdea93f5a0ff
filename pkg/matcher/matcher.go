// Package matcher implements a polymorphic string matcher: one value type
// holding exactly one of a closed set of matching strategies (always false,
// always true, equality, prefix, substring, regex, list membership) behind
// uniform match and describe operations.
package matcher

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/osmkit/stringmatch/pkg/log"
)

// Matcher is a closed-variant value over the payload kinds listed in Kind.
// Exactly one payload is active at a time; Match and String dispatch on the
// kind tag.
//
// The zero value is the always_false matcher and matches nothing until
// reassigned. Matchers are immutable after construction (Add on a list
// matcher is the single documented exception), so a constructed Matcher may
// be copied and evaluated concurrently without locking.
type Matcher struct {
	kind Kind

	// value backs the equal, prefix, and substring payloads.
	value string

	// values backs the list payload.
	values []string

	// re backs the regex payload. Its type is selected per build; the
	// noregex tag compiles it down to an empty placeholder.
	re regexHandle
}

// AlwaysFalse returns a matcher that matches nothing.
func AlwaysFalse() Matcher {
	return Matcher{kind: KindAlwaysFalse}
}

// AlwaysTrue returns a matcher that matches everything.
func AlwaysTrue() Matcher {
	return Matcher{kind: KindAlwaysTrue}
}

// FromBool returns AlwaysTrue for true and AlwaysFalse for false, so a
// boolean feature flag can stand in anywhere a matcher is expected.
func FromBool(b bool) Matcher {
	if b {
		return AlwaysTrue()
	}
	return AlwaysFalse()
}

// Equal returns a matcher that matches subjects byte-for-byte identical to
// value.
func Equal(value string) Matcher {
	return Matcher{kind: KindEqual, value: value}
}

// Prefix returns a matcher that matches subjects beginning with prefix. The
// empty prefix matches everything.
func Prefix(prefix string) Matcher {
	return Matcher{kind: KindPrefix, value: prefix}
}

// Substring returns a matcher that matches subjects containing sub anywhere.
// The empty substring matches everything.
func Substring(sub string) Matcher {
	return Matcher{kind: KindSubstring, value: sub}
}

// List returns a matcher that matches subjects equal to any one of values.
// The values are copied; the matcher owns its storage. Order is preserved
// for diagnostics and duplicates are permitted.
func List(values ...string) Matcher {
	return Matcher{kind: KindList, values: slices.Clone(values)}
}

// Kind reports the active payload.
func (m Matcher) Kind() Kind {
	return m.kind
}

// MatchString is the canonical function for determining if a subject string
// matches the active payload's rules. It is pure: no side effects and total
// over all inputs.
func (m Matcher) MatchString(s string) bool {
	switch m.kind {
	case KindAlwaysFalse:
		return false

	case KindAlwaysTrue:
		return true

	case KindEqual:
		return s == m.value

	case KindPrefix:
		return strings.HasPrefix(s, m.value)

	case KindSubstring:
		return strings.Contains(s, m.value)

	case KindList:
		return slices.Contains(m.values, s)

	case KindRegex:
		return m.matchRegexString(s)

	default:
		log.Errorf("Matcher: MatchString: Unhandled matcher kind. This is a matcher implementation error and requires immediate patching. Kind: %s", m.kind)
		return false
	}
}

// Match reports whether the byte-slice form of a subject matches, with
// results identical to MatchString on the equivalent string. The regex
// payload searches the bytes natively; everything else goes through the
// string form.
func (m Matcher) Match(b []byte) bool {
	if m.kind == KindRegex {
		return m.matchRegexBytes(b)
	}
	return m.MatchString(string(b))
}

// String returns the diagnostic form of the matcher: always_false,
// always_true, equal[v], prefix[v], substring[v], regex, or list[[v1][v2]].
// It is stable for a given payload and meant for logging and debugging,
// never for equality or control flow. The regex form omits the pattern text.
func (m Matcher) String() string {
	switch m.kind {
	case KindAlwaysFalse:
		return "always_false"

	case KindAlwaysTrue:
		return "always_true"

	case KindEqual:
		return fmt.Sprintf("equal[%s]", m.value)

	case KindPrefix:
		return fmt.Sprintf("prefix[%s]", m.value)

	case KindSubstring:
		return fmt.Sprintf("substring[%s]", m.value)

	case KindList:
		var sb strings.Builder
		sb.WriteString("list[")
		for _, v := range m.values {
			sb.WriteByte('[')
			sb.WriteString(v)
			sb.WriteByte(']')
		}
		sb.WriteByte(']')
		return sb.String()

	case KindRegex:
		return "regex"

	default:
		log.Errorf("Matcher: String: Unhandled matcher kind. This is a matcher implementation error and requires immediate patching. Kind: %s", m.kind)
		return "unknown"
	}
}

// Add appends values to a list matcher and returns the receiver so calls can
// chain. The list storage is reallocated on every append, so value copies
// made earlier keep their own membership. It is the one mutating operation
// on the type and must not run concurrently with readers of the same
// matcher. On any other kind it logs an error and leaves the matcher
// unchanged.
func (m *Matcher) Add(values ...string) *Matcher {
	if m.kind != KindList {
		log.Errorf("Matcher: Add: cannot append values to a %s matcher", m.kind)
		return m
	}
	// Clip forces the append to reallocate rather than extend a backing
	// array that value copies of this matcher may share.
	m.values = append(slices.Clip(m.values), values...)
	return m
}

// Equal reports whether two matchers hold the same payload with the same
// data. Regex payloads compare by pattern source text.
func (m Matcher) Equal(o Matcher) bool {
	if m.kind != o.kind {
		return false
	}
	switch m.kind {
	case KindEqual, KindPrefix, KindSubstring:
		return m.value == o.value
	case KindList:
		return slices.Equal(m.values, o.values)
	case KindRegex:
		return m.regexSource() == o.regexSource()
	default:
		return true
	}
}
