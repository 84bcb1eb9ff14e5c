package ibis

import (
	"fmt"
	"strings"
)

// Telegram is a single IBIS message as sent over the wire:
//
//	[PREFIX...][BODY...][CR][PARITY]
//
// The optional prefix is transmitted but not covered by the parity byte.
// Telegrams are only constructed through the factory functions or Parse,
// so every value is wire-valid.
type Telegram struct {
	data      []byte
	prefixLen int
}

// Line builds the DS001 telegram selecting line n (1-999), e.g. "l026".
func Line(n int) (Telegram, error) {
	if n < MinLine || n > MaxLine {
		return Telegram{}, outOfRange("line", n, MinLine, MaxLine)
	}
	return newTelegram(nil, fmt.Sprintf("l%03d", n)), nil
}

// Destination builds the DS003 telegram selecting destination n (0-999), e.g. "z523".
func Destination(n int) (Telegram, error) {
	if n < MinDestination || n > MaxDestination {
		return Telegram{}, outOfRange("destination", n, MinDestination, MaxDestination)
	}
	return newTelegram(nil, fmt.Sprintf("z%03d", n)), nil
}

// DisplayStatus builds the DS020 status query for the display at address (0-15).
func DisplayStatus(address int) (Telegram, error) {
	if err := checkAddress(address); err != nil {
		return Telegram{}, err
	}
	return newTelegram(nil, "a"+string(addressDigit(address))), nil
}

// DisplayVersion builds the DS120 version query for the display at address (0-15).
func DisplayVersion(address int) (Telegram, error) {
	if err := checkAddress(address); err != nil {
		return Telegram{}, err
	}
	return newTelegram(nil, "aV"+string(addressDigit(address))), nil
}

// BSSelectAddress builds the command that selects the BS210 sign at
// address (0-15) before flashing. The two prefix bytes 0D 72 are sent
// first and excluded from the parity.
func BSSelectAddress(address int) (Telegram, error) {
	if err := checkAddress(address); err != nil {
		return Telegram{}, err
	}
	return newTelegram(selectPrefix, string([]byte{Escape, 'S', addressDigit(address)})), nil
}

// MustDestination is like Destination but panics on an out of range index.
func MustDestination(n int) Telegram {
	t, err := Destination(n)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse validates a received telegram. The buffer must end in CR followed
// by the parity of all preceding bytes.
func Parse(buf []byte) (Telegram, error) {
	if len(buf) < TrailerSize || buf[len(buf)-2] != CarriageReturn {
		return Telegram{}, &Error{Kind: KindMalformed, Len: len(buf)}
	}

	received := buf[len(buf)-1]
	expected := Parity(buf[:len(buf)-1])
	if received != expected {
		return Telegram{}, &Error{Kind: KindParity, Expected: expected, Received: received}
	}

	data := make([]byte, len(buf))
	copy(data, buf)
	return Telegram{data: data}, nil
}

func newTelegram(prefix []byte, body string) Telegram {
	data := make([]byte, 0, len(prefix)+len(body)+TrailerSize)
	data = append(data, prefix...)
	data = append(data, body...)
	data = append(data, CarriageReturn)
	data = append(data, Parity(data[len(prefix):]))
	return Telegram{data: data, prefixLen: len(prefix)}
}

func checkAddress(address int) error {
	if address < MinAddress || address > MaxAddress {
		return outOfRange("address", address, MinAddress, MaxAddress)
	}
	return nil
}

// addressDigit maps 0-15 onto '0'..'?'.
func addressDigit(address int) byte {
	return byte('0' + address)
}

// Bytes returns the complete wire representation, including any prefix.
func (t Telegram) Bytes() []byte {
	b := make([]byte, len(t.data))
	copy(b, t.data)
	return b
}

// Payload returns the checksummed message body without prefix, CR and parity.
func (t Telegram) Payload() []byte {
	if len(t.data) < t.prefixLen+TrailerSize {
		return nil
	}
	return t.data[t.prefixLen : len(t.data)-TrailerSize]
}

// ParityByte returns the trailing parity byte.
func (t Telegram) ParityByte() byte {
	if len(t.data) == 0 {
		return 0
	}
	return t.data[len(t.data)-1]
}

// String renders the telegram for debugging, e.g. "z523<CR><P:3C>".
func (t Telegram) String() string {
	if len(t.data) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, b := range t.data[:len(t.data)-1] {
		switch {
		case b == CarriageReturn:
			sb.WriteString("<CR>")
		case b == Escape:
			sb.WriteString("<ESC>")
		case b >= 0x20 && b < 0x7F:
			sb.WriteByte(b)
		default:
			fmt.Fprintf(&sb, "<0x%02X>", b)
		}
	}
	fmt.Fprintf(&sb, "<P:%02X>", t.ParityByte())
	return sb.String()
}
