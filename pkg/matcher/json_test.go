package matcher_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/osmkit/stringmatch/pkg/matcher"
	"github.com/osmkit/stringmatch/pkg/util/json"
)

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		m    matcher.Matcher
		want string
	}{
		{matcher.AlwaysFalse(), `{"kind":"always_false"}`},
		{matcher.AlwaysTrue(), `{"kind":"always_true"}`},
		{matcher.Matcher{}, `{"kind":"always_false"}`},
		{matcher.Equal("highway"), `{"kind":"equal","value":"highway"}`},
		{matcher.Equal(""), `{"kind":"equal"}`},
		{matcher.Prefix("foot"), `{"kind":"prefix","value":"foot"}`},
		{matcher.Substring("way"), `{"kind":"substring","value":"way"}`},
		{matcher.List("a", "b"), `{"kind":"list","values":["a","b"]}`},
		{matcher.List(), `{"kind":"list"}`},
	}

	for _, c := range cases {
		b, err := json.Marshal(c.m)
		if err != nil {
			t.Fatalf("Unexpected marshal error for %s: %s", c.m, err)
		}
		if string(b) != c.want {
			t.Errorf("Marshal(%s) = %s, want %s", c.m, b, c.want)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want matcher.Matcher
	}{
		{`{"kind":"always_false"}`, matcher.AlwaysFalse()},
		{`{"kind":"always_true"}`, matcher.AlwaysTrue()},
		{`{"kind":"equal","value":"highway"}`, matcher.Equal("highway")},
		{`{"kind":"equal"}`, matcher.Equal("")},
		{`{"kind":"prefix","value":"foot"}`, matcher.Prefix("foot")},
		{`{"kind":"substring","value":"way"}`, matcher.Substring("way")},
		{`{"kind":"list","values":["a","b"]}`, matcher.List("a", "b")},
		{`{"kind":"list","values":["b","a","b"]}`, matcher.List("b", "a", "b")},
		{`{"kind":"list"}`, matcher.List()},
	}

	for _, c := range cases {
		var m matcher.Matcher
		if err := json.Unmarshal([]byte(c.in), &m); err != nil {
			t.Fatalf("Unexpected unmarshal error for %s: %s", c.in, err)
		}
		if !cmp.Equal(m, c.want) {
			t.Errorf("Unmarshal(%s) mismatch; diff: %s", c.in, cmp.Diff(m, c.want))
		}
	}
}

func TestUnmarshalJSONUnknownKind(t *testing.T) {
	var m matcher.Matcher
	if err := json.Unmarshal([]byte(`{"kind":"glob","value":"x"}`), &m); err == nil {
		t.Error("Expected an error for an unknown matcher kind")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	matchers := []matcher.Matcher{
		matcher.AlwaysFalse(),
		matcher.AlwaysTrue(),
		matcher.Equal("highway"),
		matcher.Prefix("foot"),
		matcher.Substring("way"),
		matcher.List("primary", "secondary"),
	}

	for _, m := range matchers {
		b, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("Unexpected marshal error for %s: %s", m, err)
		}

		var got matcher.Matcher
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unexpected unmarshal error for %s: %s", b, err)
		}
		if !cmp.Equal(got, m) {
			t.Errorf("Round trip mismatch; diff: %s", cmp.Diff(got, m))
		}
	}
}
