package schedule

import (
	"strings"
	"time"
)

// DateTimeLayout is the local date-time format of slot endpoints.
const DateTimeLayout = "2006-01-02T15:04:05"

// Slot is a window of local wall-clock time during which a plan is shown.
type Slot struct {
	Start time.Time
	End   time.Time
}

// ParseSlot parses "2020-01-01T06:00:00/2020-01-01T09:00:00" in the local
// time zone.
func ParseSlot(s string) (Slot, error) {
	return ParseSlotIn(s, time.Local)
}

// ParseSlotIn is like ParseSlot but interprets the dates in loc.
func ParseSlotIn(s string, loc *time.Location) (Slot, error) {
	if s == "" {
		return Slot{}, &ParseError{What: "slot", Kind: KindBlank}
	}

	parts := strings.Split(s, "/")
	switch {
	case len(parts) < 2:
		return Slot{}, &ParseError{What: "slot", Kind: KindIncomplete, Input: s}
	case len(parts) > 2:
		return Slot{}, &ParseError{What: "slot", Kind: KindTooMuch, Input: s}
	}

	start, err := time.ParseInLocation(DateTimeLayout, parts[0], loc)
	if err != nil {
		return Slot{}, &ParseError{What: "slot", Kind: KindDateFormat, Input: s, Err: err}
	}
	end, err := time.ParseInLocation(DateTimeLayout, parts[1], loc)
	if err != nil {
		return Slot{}, &ParseError{What: "slot", Kind: KindDateFormat, Input: s, Err: err}
	}

	if start.After(end) {
		return Slot{}, &ParseError{What: "slot", Kind: KindFromAfterTo, Input: s}
	}

	return Slot{Start: start, End: end}, nil
}

// Active reports whether the slot should be shown at now, starting
// lookahead before its start and ending with its end.
func (s Slot) Active(now time.Time, lookahead time.Duration) bool {
	return now.Before(s.End) && now.Add(lookahead).After(s.Start)
}

func (s Slot) String() string {
	return s.Start.Format(DateTimeLayout) + "/" + s.End.Format(DateTimeLayout)
}
