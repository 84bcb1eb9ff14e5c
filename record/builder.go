package record

import "encoding/binary"

// Builder assembles a record. The length byte of the current message is
// reserved up front and filled in when the message is finished.
//
// Errors are sticky: once a message overflows, every later call is a no-op
// and Build reports the error.
//
// Example:
//
//	rec, err := record.NewBuilder().
//	    Byte(0x05).
//	    Uint16(address).
//	    Append(content...).
//	    Build()
type Builder struct {
	data     []byte
	msgStart int
	err      error
}

// NewBuilder returns a builder holding an empty first message.
func NewBuilder() *Builder {
	return &Builder{data: []byte{0x00}}
}

// Byte appends a single byte to the current message.
func (b *Builder) Byte(v byte) *Builder {
	b.data = append(b.data, v)
	return b
}

// Uint16 appends v in little-endian byte order.
func (b *Builder) Uint16(v uint16) *Builder {
	b.data = binary.LittleEndian.AppendUint16(b.data, v)
	return b
}

// Append appends raw bytes to the current message.
func (b *Builder) Append(p ...byte) *Builder {
	b.data = append(b.data, p...)
	return b
}

// NextMessage finishes the current message and starts a new one in the
// same record.
func (b *Builder) NextMessage() *Builder {
	if !b.finishMessage() {
		return b
	}
	b.msgStart = len(b.data)
	b.data = append(b.data, 0x00)
	return b
}

// Build finishes the last message and returns the record. The builder is
// reset to a single empty message afterwards.
func (b *Builder) Build() (Record, error) {
	b.finishMessage()
	if err := b.err; err != nil {
		b.reset()
		return Record{}, err
	}

	rec := Record{data: b.data}
	b.reset()
	return rec, nil
}

// finishMessage writes the length byte and appends the checksum of the
// current message.
func (b *Builder) finishMessage() bool {
	if b.err != nil {
		return false
	}

	msg := b.data[b.msgStart:]
	payloadLen := len(msg) - 1
	if payloadLen > MaxPayloadSize {
		b.err = &Error{Kind: KindLengthOutOfBounds, Len: payloadLen}
		return false
	}

	msg[0] = byte(payloadLen)
	b.data = append(b.data, Checksum(msg))
	return true
}

func (b *Builder) reset() {
	b.data = []byte{0x00}
	b.msgStart = 0
	b.err = nil
}
