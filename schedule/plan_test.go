package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func intPtr(n int) *int { return &n }

func mustSlot(t *testing.T, s string) Slot {
	t.Helper()
	slot, err := ParseSlotIn(s, time.UTC)
	require.NoError(t, err)
	return slot
}

func TestParsePlan(t *testing.T) {
	const slotText = "2020-01-01T00:00:00/2020-01-01T00:00:00"

	tests := []struct {
		name  string
		input string
		want  Plan
	}{
		{
			name:  "line and slot",
			input: "1:0-10@" + slotText,
			want: Plan{
				Line:         intPtr(1),
				Destinations: []Range{{0, 10}},
				Slots:        []Slot{mustSlot(t, slotText)},
			},
		},
		{
			name:  "line only",
			input: "1:0",
			want:  Plan{Line: intPtr(1), Destinations: []Range{{0, 0}}},
		},
		{
			name:  "slot only",
			input: "0-10@" + slotText,
			want: Plan{
				Destinations: []Range{{0, 10}},
				Slots:        []Slot{mustSlot(t, slotText)},
			},
		},
		{
			name:  "range only",
			input: "0",
			want:  Plan{Destinations: []Range{{0, 0}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlanIn(tt.input, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlanErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind ErrorKind
		wantErr  error
	}{
		{"blank", "", KindBlank, ErrBlank},
		{
			"two slots",
			"0@2020-01-01T00:00:00/2020-01-01T00:00:00@2020-01-01T00:00:00/2020-01-01T00:00:00",
			KindTooMuch, ErrTooMuch,
		},
		{"malformed range", "0--9@2020-01-01T00:00:00/2020-01-01T00:00:00", KindRange, ErrMalformed},
		{"malformed slot", "0-10@2020-01-01T00:00:00//2020-01-01T00:00:00", KindSlot, ErrTooMuch},
		{"bad line", "x:0-10", KindLine, ErrLine},
		{"negative line", "-1:0", KindLine, ErrLine},
		{"two colons", "1:2:3", KindMalformed, ErrMalformed},
		{"missing range", "1:", KindRange, ErrBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlanIn(tt.input, time.UTC)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantKind, perr.Kind)
			assert.Equal(t, "plan", perr.What)
		})
	}
}

func TestPlanIsActive(t *testing.T) {
	start := time.Date(2021, 9, 9, 8, 0, 0, 0, time.UTC)
	lookahead := 5 * time.Minute
	withSlot := Plan{
		Destinations: []Range{{0, 1}},
		Slots:        []Slot{{Start: start, End: start.Add(time.Hour)}},
	}
	always := Plan{Destinations: []Range{{0, 1}}}

	assert.True(t, always.IsActive(time.Time{}, 0))
	assert.True(t, always.IsActive(start.Add(100*time.Hour), lookahead))

	assert.True(t, withSlot.IsActive(start.Add(-lookahead+time.Second), lookahead))
	assert.False(t, withSlot.IsActive(start.Add(time.Hour+time.Second), lookahead))
	assert.False(t, withSlot.IsActive(start.Add(-time.Hour), lookahead))
}

func TestPlanIsActiveAnySlot(t *testing.T) {
	morning := time.Date(2021, 9, 9, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2021, 9, 9, 18, 0, 0, 0, time.UTC)
	p := Plan{
		Destinations: []Range{{1, 1}},
		Slots: []Slot{
			{Start: morning, End: morning.Add(2 * time.Hour)},
			{Start: evening, End: evening.Add(2 * time.Hour)},
		},
	}

	assert.True(t, p.IsActive(morning.Add(time.Hour), 0))
	assert.False(t, p.IsActive(morning.Add(5*time.Hour), 0))
	assert.True(t, p.IsActive(evening.Add(time.Hour), 0))
}

func TestPlanIndexes(t *testing.T) {
	p := Plan{Destinations: []Range{{0, 1}, {0, 0}, {3, 2}}}
	assert.Equal(t, []int{0, 1, 0, 3, 2}, p.Indexes())
}

func TestPlanString(t *testing.T) {
	p, err := ParsePlanIn("7:3-1@2020-01-01T00:00:00/2020-01-02T00:00:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "7:3-1@2020-01-01T00:00:00/2020-01-02T00:00:00", p.String())
}

func TestPlanUnmarshalYAML(t *testing.T) {
	input := `
- "1:0-10"
- line: 2
  destinations: ["20-25", 30]
  slots: ["2020-01-01T06:00:00/2020-01-01T09:00:00"]
- destinations: ["5"]
`
	var plans []Plan
	require.NoError(t, yaml.Unmarshal([]byte(input), &plans))
	require.Len(t, plans, 3)

	assert.Equal(t, intPtr(1), plans[0].Line)
	assert.Equal(t, []Range{{0, 10}}, plans[0].Destinations)

	assert.Equal(t, intPtr(2), plans[1].Line)
	assert.Equal(t, []Range{{20, 25}, {30, 30}}, plans[1].Destinations)
	require.Len(t, plans[1].Slots, 1)
	assert.Equal(t, 6, plans[1].Slots[0].Start.Hour())

	assert.Nil(t, plans[2].Line)
	assert.Empty(t, plans[2].Slots)
}

func TestPlanUnmarshalYAMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"bad shorthand", `["0--1"]`, ErrMalformed},
		{"bad range in mapping", `[{destinations: ["a"]}]`, ErrNumberFormat},
		{"bad slot in mapping", `[{destinations: ["1"], slots: ["2020-01-02T00:00:00/2020-01-01T00:00:00"]}]`, ErrFromAfterTo},
		{"no destinations", `[{line: 1}]`, nil},
		{"sequence as plan", `[[1, 2]]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var plans []Plan
			err := yaml.Unmarshal([]byte(tt.input), &plans)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}
