//go:build noregex

package pattern

import (
	"fmt"

	"github.com/osmkit/stringmatch/pkg/matcher"
)

// parseRegex rejects the /re/ expression form in builds compiled with the
// noregex tag.
func parseRegex(pat string) (matcher.Matcher, error) {
	return matcher.Matcher{}, fmt.Errorf("expression /%s/: %w", pat, matcher.ErrNoRegex)
}
