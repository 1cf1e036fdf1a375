package player

import (
	"strconv"
	"strings"
)

// SearchTerms holds the raw state of the name and number search fields.
type SearchTerms struct {
	name   string
	number *int
}

func NewSearchTerms(name string, number *int) SearchTerms {
	return SearchTerms{}.WithName(name).withNumber(number)
}

func (s SearchTerms) WithName(raw string) SearchTerms {
	s.name = raw
	return s
}

// WithNumberInput applies text typed in the number field. Empty input clears the
// number; input that is not a number leaves the previous value in place.
func (s SearchTerms) WithNumberInput(raw string) SearchTerms {
	if strings.TrimSpace(raw) == "" {
		s.number = nil
		return s
	}
	n, ok := ParseNumber(raw)
	if !ok {
		return s
	}
	return s.withNumber(n)
}

func (s SearchTerms) withNumber(n *int) SearchTerms {
	if n == nil {
		s.number = nil
		return s
	}
	v := *n
	s.number = &v
	return s
}

func (s SearchTerms) Name() string {
	return s.name
}

func (s SearchTerms) Number() (int, bool) {
	if s.number == nil {
		return 0, false
	}
	return *s.number, true
}

func (s SearchTerms) Criteria() Criteria {
	c := Criteria{Name: s.name}
	if s.number != nil {
		v := *s.number
		c.Number = &v
	}
	return c
}

// ParseNumber parses a jersey number. Any integer is accepted, so a negative
// number is a real criterion that matches nobody. Non-numeric and out-of-range
// input is rejected.
func ParseNumber(raw string) (*int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, false
	}
	return &n, true
}
