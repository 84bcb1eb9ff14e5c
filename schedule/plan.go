package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Plan is a set of destinations shown under an optional line number,
// optionally restricted to time slots. A plan without slots is always
// active.
type Plan struct {
	Line         *int
	Destinations []Range
	Slots        []Slot
}

// ParsePlan parses the shorthand "[line:]range[@slot]", e.g.
// "1:0-10@2020-01-01T00:00:00/2020-01-01T08:00:00".
func ParsePlan(s string) (Plan, error) {
	return ParsePlanIn(s, time.Local)
}

// ParsePlanIn is like ParsePlan but interprets slot dates in loc.
func ParsePlanIn(s string, loc *time.Location) (Plan, error) {
	if s == "" {
		return Plan{}, &ParseError{What: "plan", Kind: KindBlank}
	}

	tokens := strings.Split(s, "@")
	if len(tokens) > 2 {
		return Plan{}, &ParseError{What: "plan", Kind: KindTooMuch, Input: s}
	}

	var plan Plan
	head := strings.Split(tokens[0], ":")
	rangeText := head[0]
	switch len(head) {
	case 1:
	case 2:
		n, err := strconv.ParseUint(head[0], 10, 16)
		if err != nil {
			return Plan{}, &ParseError{What: "plan", Kind: KindLine, Input: s, Err: err}
		}
		line := int(n)
		plan.Line = &line
		rangeText = head[1]
	default:
		return Plan{}, &ParseError{What: "plan", Kind: KindMalformed, Input: s}
	}

	r, err := ParseRange(rangeText)
	if err != nil {
		return Plan{}, &ParseError{What: "plan", Kind: KindRange, Input: s, Err: err}
	}
	plan.Destinations = []Range{r}

	if len(tokens) == 2 {
		slot, err := ParseSlotIn(tokens[1], loc)
		if err != nil {
			return Plan{}, &ParseError{What: "plan", Kind: KindSlot, Input: s, Err: err}
		}
		plan.Slots = []Slot{slot}
	}

	return plan, nil
}

// IsActive reports whether the plan should be shown at now. Plans without
// slots are always active; otherwise at least one slot must be active.
func (p Plan) IsActive(now time.Time, lookahead time.Duration) bool {
	if len(p.Slots) == 0 {
		return true
	}
	for _, slot := range p.Slots {
		if slot.Active(now, lookahead) {
			return true
		}
	}
	return false
}

// Indexes flattens the destination ranges in order.
func (p Plan) Indexes() []int {
	var out []int
	for _, r := range p.Destinations {
		out = append(out, r.Values()...)
	}
	return out
}

func (p Plan) String() string {
	var sb strings.Builder
	if p.Line != nil {
		sb.WriteString(strconv.Itoa(*p.Line))
		sb.WriteByte(':')
	}
	for i, r := range p.Destinations {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(r.String())
	}
	for _, slot := range p.Slots {
		sb.WriteByte('@')
		sb.WriteString(slot.String())
	}
	return sb.String()
}
