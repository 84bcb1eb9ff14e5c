// Package schedule parses the plans that decide which destinations a sign
// shows and when.
//
// # Grammar
//
//	range = [from] "-" [to] | index
//	slot  = datetime "/" datetime          (2006-01-02T15:04:05, local time)
//	plan  = [line ":"] range ["@" slot]
//
// Omitted range endpoints are 0. A range iterates upwards when from < to
// and downwards when from > to; both ends are inclusive.
//
// # Activity
//
// A plan without slots is always active. Otherwise it is active while any
// slot satisfies
//
//	now < end && now+lookahead > start
//
// so a lookahead starts showing a plan ahead of its slot.
//
// All three types implement yaml.Unmarshaler for use in run files.
package schedule
