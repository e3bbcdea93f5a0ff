package matcher

import "fmt"

// Kind is an enum that represents the matching strategy a Matcher holds
// (equality, prefix, substring, etc.)
type Kind int

// If you add a Kind, MAKE SURE TO UPDATE ALL DISPATCH SITES! Go does not
// enforce exhaustive pattern matching on "enum" types.
const (
	// KindAlwaysFalse matches nothing. It is the zero value, so a zero
	// Matcher matches nothing until reassigned.
	KindAlwaysFalse Kind = iota

	// KindAlwaysTrue matches everything.
	KindAlwaysTrue

	// KindEqual matches subjects byte-for-byte identical to its value.
	//
	// equal[highway] matches "highway" = true
	// equal[highway] matches "Highway" = false
	KindEqual

	// KindPrefix matches subjects that start with its value.
	//
	// prefix[foot] matches "footway" = true
	// prefix[foot] matches "sidewalk" = false
	KindPrefix

	// KindSubstring matches subjects that contain its value anywhere.
	//
	// substring[way] matches "highway" = true
	KindSubstring

	// KindList matches subjects equal to any one of its values.
	//
	// list[[a][b]] matches "b" = true
	// list[[a][b]] matches "c" = false
	KindList

	// KindRegex matches subjects the compiled pattern is found within
	// (search semantics, unanchored unless the pattern anchors itself).
	// Builds with the noregex tag have no constructor for it.
	KindRegex
)

func (k Kind) String() string {
	switch k {
	case KindAlwaysFalse:
		return "always_false"
	case KindAlwaysTrue:
		return "always_true"
	case KindEqual:
		return "equal"
	case KindPrefix:
		return "prefix"
	case KindSubstring:
		return "substring"
	case KindList:
		return "list"
	case KindRegex:
		return "regex"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// kindFromName maps the stable names used by the JSON form back to kinds.
func kindFromName(name string) (Kind, bool) {
	switch name {
	case "always_false":
		return KindAlwaysFalse, true
	case "always_true":
		return KindAlwaysTrue, true
	case "equal":
		return KindEqual, true
	case "prefix":
		return KindPrefix, true
	case "substring":
		return KindSubstring, true
	case "list":
		return KindList, true
	case "regex":
		return KindRegex, true
	default:
		return KindAlwaysFalse, false
	}
}
