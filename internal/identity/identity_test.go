package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, Token("s1@x.com"), Normalize("  S1@X.com "))
	assert.Equal(t, Token(""), Normalize("   "))
}

func TestNewSet(t *testing.T) {
	t.Run("discards absent values", func(t *testing.T) {
		set := NewSet("", "s1", "  ", "S1", "s1@x.com")
		assert.Len(t, set, 2)
		assert.True(t, set.Contains("S1"))
		assert.True(t, set.Contains("s1@X.COM"))
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		assert.True(t, NewSet().Empty())
		assert.True(t, NewSet("", " ").Empty())
	})
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want bool
	}{
		{"shared email with different case", []string{"s5", "S1@x.com"}, []string{"s1@X.com"}, true},
		{"shared id", []string{"s1"}, []string{"s1", "other"}, true},
		{"disjoint", []string{"s9", "s9@x.com"}, []string{"s1", "s1@x.com"}, false},
		{"empty never matches", nil, []string{"s1"}, false},
		{"both empty never match", []string{""}, []string{" "}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := NewSet(tc.a...), NewSet(tc.b...)
			assert.Equal(t, tc.want, Matches(a, b))
			assert.Equal(t, Matches(a, b), Matches(b, a), "matching must be commutative")
		})
	}
}

func TestSetUnion(t *testing.T) {
	u := NewSet("a").Union(NewSet("b", "A"))
	assert.Len(t, u, 2)
}

func TestPerson(t *testing.T) {
	staffer := Person{ID: "s1", Email: "S1@x.com", Name: "Sam One"}
	viewer := Person{Email: "s1@x.com"}
	stranger := Person{ID: "s9"}
	assert.True(t, staffer.Matches(viewer))
	assert.False(t, staffer.Matches(stranger))
	assert.False(t, Person{}.Matches(Person{}))
}

func TestSameEmail(t *testing.T) {
	assert.True(t, SameEmail("Exec@x.com ", "exec@x.com"))
	assert.False(t, SameEmail("", ""))
	assert.False(t, SameEmail("a@x.com", "b@x.com"))
}
