package tagmatch_test

import (
	"fmt"
	"testing"

	"github.com/osmkit/stringmatch/pkg/matcher"
	"github.com/osmkit/stringmatch/pkg/tagmatch"
)

type pair struct {
	key   string
	value string
}

func TestMatchPair(t *testing.T) {
	cases := []struct {
		tm             tagmatch.Matcher
		shouldMatch    []pair
		shouldNotMatch []pair
	}{
		{
			tm: tagmatch.New(matcher.Equal("highway"), matcher.List("primary", "secondary")),
			shouldMatch: []pair{
				{"highway", "primary"},
				{"highway", "secondary"},
			},
			shouldNotMatch: []pair{
				{"highway", "residential"},
				{"railway", "primary"},
				{"", ""},
			},
		},
		{
			tm: tagmatch.KeyOnly(matcher.Prefix("addr:")),
			shouldMatch: []pair{
				{"addr:street", "Main Street"},
				{"addr:housenumber", "42"},
				{"addr:", ""},
			},
			shouldNotMatch: []pair{
				{"highway", "primary"},
				{"address", "x"},
			},
		},
		{
			tm: tagmatch.NotValue(matcher.Equal("highway"), matcher.Equal("residential")),
			shouldMatch: []pair{
				{"highway", "primary"},
				{"highway", ""},
			},
			shouldNotMatch: []pair{
				{"highway", "residential"},
				{"railway", "rail"},
			},
		},
		{
			tm: tagmatch.New(matcher.AlwaysTrue(), matcher.Substring("way")),
			shouldMatch: []pair{
				{"anything", "highway"},
				{"", "wayside"},
			},
			shouldNotMatch: []pair{
				{"anything", "road"},
			},
		},
		{
			// the zero value matches nothing
			tm: tagmatch.Matcher{},
			shouldNotMatch: []pair{
				{"highway", "primary"},
				{"", ""},
			},
		},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Logf("Matcher: %s", c.tm)
			for _, p := range c.shouldMatch {
				if !c.tm.MatchPair(p.key, p.value) {
					t.Errorf("Failed to match %s=%s", p.key, p.value)
				}
			}
			for _, p := range c.shouldNotMatch {
				if c.tm.MatchPair(p.key, p.value) {
					t.Errorf("Incorrectly matched %s=%s", p.key, p.value)
				}
			}
		})
	}
}

func TestMatchAny(t *testing.T) {
	tags := map[string]string{
		"highway": "residential",
		"name":    "Main Street",
		"oneway":  "yes",
	}

	cases := []struct {
		tm   tagmatch.Matcher
		want bool
	}{
		{tagmatch.New(matcher.Equal("highway"), matcher.Equal("residential")), true},
		{tagmatch.New(matcher.Equal("highway"), matcher.Equal("primary")), false},
		{tagmatch.KeyOnly(matcher.Equal("oneway")), true},
		{tagmatch.KeyOnly(matcher.Equal("maxspeed")), false},
		{tagmatch.NotValue(matcher.Equal("highway"), matcher.Equal("primary")), true},
		{tagmatch.NotValue(matcher.Equal("highway"), matcher.Equal("residential")), false},
		{tagmatch.New(matcher.AlwaysTrue(), matcher.Substring("Street")), true},
		{tagmatch.Matcher{}, false},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			if got := c.tm.MatchAny(tags); got != c.want {
				t.Errorf("%s.MatchAny() = %v, want %v", c.tm, got, c.want)
			}
		})
	}

	if (tagmatch.KeyOnly(matcher.AlwaysTrue())).MatchAny(nil) {
		t.Error("MatchAny(nil) must not match")
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		tm   tagmatch.Matcher
		want string
	}{
		{
			tagmatch.New(matcher.Equal("highway"), matcher.List("primary", "secondary")),
			"tag[equal[highway]=list[[primary][secondary]]]",
		},
		{
			tagmatch.KeyOnly(matcher.Prefix("addr:")),
			"tag[prefix[addr:]]",
		},
		{
			tagmatch.NotValue(matcher.Equal("highway"), matcher.Equal("residential")),
			"tag[equal[highway]!=equal[residential]]",
		},
		{
			tagmatch.Matcher{},
			"tag[always_false=always_false]",
		},
	}

	for _, c := range cases {
		if got := c.tm.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
