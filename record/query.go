package record

// Fixed queries of the flashing sequence. Their meaning is not known; they
// are sent exactly as observed on the wire, lengths and checksums included.
var (
	prepareClear0 = []byte{0x06, 0x01, 0x21, 0x00, 0x00, 0x00, 0x00, 0xD8}
	prepareClear1 = []byte{0x04, 0x08, 0x00, 0x20, 0x01, 0xD3}
	clearQuery    = []byte{
		0x23, 0x03, 0x00, 0x00,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0xBA,
	}
	finishClear0 = []byte{0x05, 0x05, 0x00, 0x00, 0x00, 0x00, 0xF6}
	finishClear1 = []byte{0x02, 0x07, 0x00, 0xF7}
	finishFlash0 = []byte{0x02, 0x15, 0x55, 0x94}
	finishFlash1 = []byte{0x01, 0x0F, 0xF0, 0x01, 0x0F, 0xF0, 0x01, 0x0F, 0xF0, 0x01, 0x0F, 0xF0}
)

// PrepareClear0 is the first query after selecting the address.
// The sign answers with a plain ack.
func PrepareClear0() Record { return fixed(prepareClear0) }

// PrepareClear1 is the second query after selecting the address.
// The sign answers with the record 4F 01 57 A8.
func PrepareClear1() Record { return fixed(prepareClear1) }

// Clear is sent four times in a row; the sign answers each with 'E'.
func Clear() Record { return fixed(clearQuery) }

// FinishClear0 is the first query after clearing; answered with a plain ack.
func FinishClear0() Record { return fixed(finishClear0) }

// FinishClear1 is the second query after clearing; answered with a plain ack.
func FinishClear1() Record { return fixed(finishClear1) }

// FinishFlash0 is sent after the last database chunk; answered with a plain ack.
func FinishFlash0() Record { return fixed(finishFlash0) }

// FinishFlash1 holds four 0F messages and is sent four times at the very
// end. The sign does not answer it.
func FinishFlash1() Record { return fixed(finishFlash1) }

func fixed(b []byte) Record {
	data := make([]byte, len(b))
	copy(data, b)
	return Record{data: data}
}
