// Package ibis builds and parses IBIS telegrams, the ASCII protocol used by
// destination signs on public transport vehicles.
//
// # Telegram Format
//
// Every telegram is a short ASCII command followed by a carriage return and
// a parity byte:
//
//	[COMMAND...][CR][PARITY]
//
// The parity is an XOR fold over all bytes up to and including CR, seeded
// with 0x7F. The BS210 address selection command additionally carries the
// prefix 0D 72, which is sent first but not included in the parity.
//
// # Builders
//
//	t, err := ibis.Destination(523)  // "z523<CR><P:3C>"
//	t, err := ibis.Line(26)          // "l026<CR><P:..>"
//	t, err := ibis.DisplayStatus(1)  // "a1<CR><P:..>"
//
// Values outside the documented ranges are rejected with an *Error of kind
// KindOutOfRange, so no telegram ever reaches the wire with invalid digits.
//
// # Responses
//
// Parse validates a telegram received from a display and ParseStatusResponse
// decodes the answer to a status query:
//
//	status, err := ibis.ParseStatusResponse(buf)
//	if errors.Is(err, ibis.ErrParity) {
//	    // corrupted on the wire
//	}
package ibis
