package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive sequence of destination indexes. From > To
// iterates downwards; From == To yields a single index.
type Range struct {
	From int
	To   int
}

// ParseRange parses "10-100", "100-10", "5", "-10" or "10-". An omitted
// endpoint is 0.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return Range{}, &ParseError{What: "range", Kind: KindBlank}
	}
	if s == "-" {
		return Range{}, &ParseError{What: "range", Kind: KindMalformed, Input: s}
	}

	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return Range{}, &ParseError{What: "range", Kind: KindMalformed, Input: s}
	}

	from, err := parseIndex(parts[0])
	if err != nil {
		return Range{}, err
	}
	to := from
	if len(parts) == 2 {
		if to, err = parseIndex(parts[1]); err != nil {
			return Range{}, err
		}
	}

	return Range{From: from, To: to}, nil
}

func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, &ParseError{What: "range", Kind: KindNumberFormat, Input: s, Err: err}
	}
	return int(n), nil
}

// Len returns the number of indexes in the range.
func (r Range) Len() int {
	if r.From <= r.To {
		return r.To - r.From + 1
	}
	return r.From - r.To + 1
}

// Values returns the indexes in iteration order.
func (r Range) Values() []int {
	out := make([]int, 0, r.Len())
	r.Each(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Each calls fn for every index in iteration order until fn returns false.
func (r Range) Each(fn func(int) bool) {
	step := 1
	if r.From > r.To {
		step = -1
	}
	for i := r.From; ; i += step {
		if !fn(i) || i == r.To {
			return
		}
	}
}

func (r Range) String() string {
	if r.From == r.To {
		return strconv.Itoa(r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}
