package matcher

import (
	"errors"
	"fmt"

	"github.com/osmkit/stringmatch/pkg/util/json"
)

// ErrNoRegex is returned when a regex matcher is requested from a build
// compiled with the noregex tag.
var ErrNoRegex = errors.New("regex support is not available in this build")

// matcherJSON is the stable config representation of a Matcher. Unlike the
// diagnostic String form it carries the regex pattern text, because
// round-tripping requires it.
type matcherJSON struct {
	Kind    string   `json:"kind"`
	Value   string   `json:"value,omitempty"`
	Values  []string `json:"values,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

// MarshalJSON encodes the matcher in its config form, e.g.
// {"kind":"equal","value":"highway"} or {"kind":"list","values":["a","b"]}.
func (m Matcher) MarshalJSON() ([]byte, error) {
	doc := matcherJSON{Kind: m.kind.String()}

	switch m.kind {
	case KindAlwaysFalse, KindAlwaysTrue:

	case KindEqual, KindPrefix, KindSubstring:
		doc.Value = m.value

	case KindList:
		doc.Values = m.values

	case KindRegex:
		doc.Pattern = m.regexSource()

	default:
		return nil, fmt.Errorf("cannot marshal matcher kind %s", m.kind)
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes the config form. An unknown kind, an invalid regex
// pattern, or a regex kind in a noregex build is an error; no degraded
// matcher is produced and the receiver is left unchanged.
func (m *Matcher) UnmarshalJSON(b []byte) error {
	var doc matcherJSON
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	kind, ok := kindFromName(doc.Kind)
	if !ok {
		return fmt.Errorf("unknown matcher kind %q", doc.Kind)
	}

	switch kind {
	case KindAlwaysFalse:
		*m = AlwaysFalse()

	case KindAlwaysTrue:
		*m = AlwaysTrue()

	case KindEqual:
		*m = Equal(doc.Value)

	case KindPrefix:
		*m = Prefix(doc.Value)

	case KindSubstring:
		*m = Substring(doc.Value)

	case KindList:
		*m = List(doc.Values...)

	case KindRegex:
		rm, err := compileRegexMatcher(doc.Pattern)
		if err != nil {
			return err
		}
		*m = rm

	default:
		return fmt.Errorf("unknown matcher kind %q", doc.Kind)
	}

	return nil
}
