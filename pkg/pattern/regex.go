//go:build !noregex

package pattern

import (
	"github.com/osmkit/stringmatch/pkg/matcher"
)

// parseRegex backs the /re/ expression form in regex-capable builds.
func parseRegex(pat string) (matcher.Matcher, error) {
	return matcher.CompileRegex(pat)
}
