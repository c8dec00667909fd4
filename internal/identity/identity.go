// Package identity reconciles person references that arrive as ids, emails or
// display names with inconsistent casing and whitespace.
package identity

import "strings"

// Token is a normalized identifier.
type Token string

// Set is the canonical collection of tokens that denote one person.
type Set map[Token]struct{}

// Person is a reference to an individual by any combination of identifiers.
type Person struct {
	ID    string
	Email string
	Name  string
}

// Normalize lower-cases and trims a raw identifier.
func Normalize(value string) Token {
	return Token(strings.ToLower(strings.TrimSpace(value)))
}

// NewSet builds a token set, discarding empty values.
func NewSet(values ...string) Set {
	set := make(Set, len(values))
	for _, v := range values {
		set.Add(v)
	}
	return set
}

// Add inserts value unless it normalizes to the empty token.
func (s Set) Add(value string) {
	token := Normalize(value)
	if token == "" {
		return
	}
	s[token] = struct{}{}
}

// Union returns a new set holding the members of s and other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Contains reports whether value normalizes to a member of s.
func (s Set) Contains(value string) bool {
	token := Normalize(value)
	if token == "" {
		return false
	}
	_, ok := s[token]
	return ok
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Matches reports whether the sets intersect. Empty sets never match.
func Matches(a, b Set) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for t := range a {
		if _, ok := b[t]; ok {
			return true
		}
	}
	return false
}

// Tokens returns the token set for the person.
func (p Person) Tokens() Set {
	return NewSet(p.ID, p.Email, p.Name)
}

// Matches reports whether two person references denote the same individual.
func (p Person) Matches(other Person) bool {
	return Matches(p.Tokens(), other.Tokens())
}

// SameEmail compares two emails after normalization. Empty emails never match.
func SameEmail(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	return na != "" && na == nb
}
