package record

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mini0Data is the content of the first record in the mini0 database.
var mini0Data = []byte{
	0x57, 0x00, 0x12, 0x00, 0x1B, 0x00, 0x12, 0x1C, 0x8B, 0x45, 0x06, 0xF9, 0x00, 0xE0,
	0x01, 0x00, 0x0A, 0xE0, 0x01, 0x05, 0x0A, 0x00, 0x80, 0x01, 0x60, 0x01, 0xA0, 0x00,
	0x4F, 0x00, 0x00, 0x30,
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want byte
	}{
		{"empty", nil, 0x00},
		{"single byte", []byte{0x01}, 0xFF},
		{"ack payload", []byte{0x01, 0x57}, 0xA8},
		{"wraps around", []byte{0xFF, 0x02}, 0xFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.data))
		})
	}
}

func TestChecksumMakesMessageSumToZero(t *testing.T) {
	msg := append([]byte{byte(len(mini0Data))}, mini0Data...)
	msg = append(msg, Checksum(msg))

	var sum byte
	for _, b := range msg {
		sum += b
	}
	assert.Zero(t, sum)
}

func TestBuilder(t *testing.T) {
	want := append([]byte{0x24, 0x05, 0x00, 0x00, 0x00}, mini0Data...)
	want = append(want, 0x7A)

	rec, err := NewBuilder().Append(want[1 : len(want)-1]...).Build()
	require.NoError(t, err)

	assert.Equal(t, want, rec.Bytes())
	assert.Equal(t, want[1:len(want)-1], rec.Payload())
	assert.Equal(t, byte(0x7A), rec.Checksum())
}

func TestBuilderEmptyPayload(t *testing.T) {
	rec, err := NewBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00}, rec.Bytes())
}

func TestBuilderUint16IsLittleEndian(t *testing.T) {
	rec, err := NewBuilder().Uint16(0x1234).Build()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x34, 0x12}, rec.Payload())
}

func TestBuilderMultiMessage(t *testing.T) {
	rec, err := NewBuilder().
		Byte(0x0F).NextMessage().
		Byte(0x0F).NextMessage().
		Byte(0x0F).NextMessage().
		Byte(0x0F).
		Build()
	require.NoError(t, err)

	assert.Equal(t,
		[]byte{0x01, 0x0F, 0xF0, 0x01, 0x0F, 0xF0, 0x01, 0x0F, 0xF0, 0x01, 0x0F, 0xF0},
		rec.Bytes())
	assert.Equal(t, []byte{0x0F}, rec.Payload())
}

func TestBuilderRejectsOversizedPayload(t *testing.T) {
	b := NewBuilder().Append(make([]byte, MaxPayloadSize+1)...)

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRecordLengthOutOfBounds))

	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, MaxPayloadSize+1, rerr.Len)

	// The builder is usable again after a failed build.
	rec, err := b.Byte(0x01).Build()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x01, 0xFE}, rec.Bytes())
}

func TestBuilderErrorIsSticky(t *testing.T) {
	_, err := NewBuilder().
		Append(make([]byte, MaxPayloadSize+1)...).
		NextMessage().
		Byte(0x01).
		Build()
	assert.True(t, errors.Is(err, ErrRecordLengthOutOfBounds))
}

func TestBuilderAcceptsMaximumPayload(t *testing.T) {
	rec, err := NewBuilder().Append(make([]byte, MaxPayloadSize)...).Build()
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), rec.Bytes()[0])
	assert.Equal(t, MaxPayloadSize+MinRecordSize, rec.Len())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "valid", input: []byte{0x01, 0x57, 0xA8}},
		{name: "empty payload", input: []byte{0x00, 0x00}},
		{name: "too short", input: []byte{0x00}, wantErr: ErrHeaderOrTrailerMissing},
		{name: "bad checksum", input: []byte{0x01, 0x57, 0xA9}, wantErr: ErrChecksumMismatch},
		{name: "length mismatch", input: []byte{0x02, 0x57, 0xA7}, wantErr: ErrPayloadLenMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.input)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, rec.Bytes())
		})
	}
}

func TestRoundTripThroughResponsePayload(t *testing.T) {
	payloads := [][]byte{
		{},
		{0x57},
		mini0Data,
		bytes.Repeat([]byte{0xAA}, MaxPayloadSize),
	}

	for _, payload := range payloads {
		rec, err := NewBuilder().Append(payload...).Build()
		require.NoError(t, err)

		got, err := ResponsePayload(append([]byte{Ack}, rec.Bytes()...))
		require.NoError(t, err)
		assert.Equal(t, payload, append([]byte{}, got...))
	}
}
