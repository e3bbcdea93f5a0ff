// Package pattern compiles a compact expression shorthand into matcher
// values, for config files and command lines where spelling out constructor
// calls is not an option.
package pattern

import (
	"fmt"
	"strings"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/osmkit/stringmatch/pkg/matcher"
)

// Parse compiles expr into a Matcher:
//
//	*         matches everything
//	/re/      regex search (regex-capable builds only)
//	a,b,c     any of the listed values, compared exactly
//	v*        prefix v
//	*v*       substring v
//	v         exactly v (embedded stars are literal)
//
// A leading star without a trailing star (`*v`) asks for suffix matching,
// which is not in the strategy set; it is rejected rather than silently
// matching something else. Values are taken verbatim: no whitespace
// trimming, no escape sequences.
func Parse(expr string) (matcher.Matcher, error) {
	// whole-expression forms first
	if expr == "*" {
		return matcher.AlwaysTrue(), nil
	}
	if len(expr) >= 2 && strings.HasPrefix(expr, "/") && strings.HasSuffix(expr, "/") {
		return parseRegex(expr[1 : len(expr)-1])
	}

	if strings.Contains(expr, ",") {
		return parseList(expr)
	}

	return parseSingle(expr)
}

// MustParse is like Parse but panics on a bad expression, for matchers fixed
// at init time.
func MustParse(expr string) matcher.Matcher {
	m, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseAll compiles every expression in order. Failures are aggregated, so a
// file of expressions reports all of its bad lines at once rather than only
// the first.
func ParseAll(exprs []string) ([]matcher.Matcher, error) {
	var errs *multierror.Error

	matchers := make([]matcher.Matcher, 0, len(exprs))
	for _, expr := range exprs {
		m, err := Parse(expr)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		matchers = append(matchers, m)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return matchers, nil
}

func parseSingle(expr string) (matcher.Matcher, error) {
	leading := strings.HasPrefix(expr, "*")
	trailing := strings.HasSuffix(expr, "*")

	switch {
	case leading && trailing:
		return matcher.Substring(expr[1 : len(expr)-1]), nil
	case trailing:
		return matcher.Prefix(expr[:len(expr)-1]), nil
	case leading:
		return matcher.Matcher{}, fmt.Errorf("expression %q: suffix matching is not supported", expr)
	default:
		return matcher.Equal(expr), nil
	}
}

func parseList(expr string) (matcher.Matcher, error) {
	var errs *multierror.Error

	parts := strings.Split(expr, ",")
	for i, p := range parts {
		switch {
		case p == "":
			errs = multierror.Append(errs, fmt.Errorf("expression %q: list element %d is empty", expr, i+1))
		case strings.HasPrefix(p, "*") || strings.HasSuffix(p, "*"):
			errs = multierror.Append(errs, fmt.Errorf("expression %q: list element %q: star forms are not allowed inside lists", expr, p))
		case len(p) >= 2 && strings.HasPrefix(p, "/") && strings.HasSuffix(p, "/"):
			errs = multierror.Append(errs, fmt.Errorf("expression %q: list element %q: regex forms are not allowed inside lists", expr, p))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return matcher.Matcher{}, err
	}
	return matcher.List(parts...), nil
}
