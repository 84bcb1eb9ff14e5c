package ihex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mini0 = ":20000000570012001B00121C8B4506F900E001000AE001050A0080016001A0004F00003083\n" +
	":20002000202122232425262728292A2B2C2D2E2F303132333435363738393A3B3C3D3E3FD0\n" +
	":10004000FFFFFFFFFFFFFFFF0000000000000000B8\n" +
	":00000001FF\n"

func TestParseReader(t *testing.T) {
	f, err := ParseReader(strings.NewReader(mini0))
	require.NoError(t, err)
	require.Len(t, f.Records, 4)

	first := f.Records[0]
	assert.Equal(t, Data, first.Type)
	assert.Equal(t, uint16(0x0000), first.Address)
	assert.Equal(t, []byte{0x57, 0x00, 0x12, 0x00}, first.Data[:4])
	assert.Len(t, first.Data, 32)
	assert.Equal(t, byte(0x83), first.Checksum)

	assert.Equal(t, uint16(0x0020), f.Records[1].Address)
	assert.Equal(t, uint16(0x0040), f.Records[2].Address)
	assert.Len(t, f.Records[2].Data, 16)

	eof := f.Records[3]
	assert.Equal(t, EndOfFile, eof.Type)
	assert.Empty(t, eof.Data)
}

func TestParseReaderAccepts(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantTypes []RecordType
	}{
		{
			name:      "empty input",
			input:     "",
			wantCount: 0,
		},
		{
			name:      "blank lines and CRLF",
			input:     "\r\n:00000001FF\r\n\r\n",
			wantCount: 1,
			wantTypes: []RecordType{EndOfFile},
		},
		{
			name:      "extended linear address",
			input:     ":020000040000FA\n:00000001FF\n",
			wantCount: 2,
			wantTypes: []RecordType{ExtendedLinearAddress, EndOfFile},
		},
		{
			name:      "records after end of file are kept",
			input:     ":00000001FF\n:0100000000FF\n",
			wantCount: 2,
			wantTypes: []RecordType{EndOfFile, Data},
		},
		{
			name:      "lowercase hex",
			input:     ":0100000000ff\n",
			wantCount: 1,
			wantTypes: []RecordType{Data},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseReader(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, f.Records, tt.wantCount)
			for i, want := range tt.wantTypes {
				assert.Equal(t, want, f.Records[i].Type)
			}
		})
	}
}

func TestParseReaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "missing start code",
			input:  "00000001FF\n",
			errMsg: "must start with ':'",
		},
		{
			name:   "invalid hex",
			input:  ":0000000GFF\n",
			errMsg: "invalid hex data",
		},
		{
			name:   "too short",
			input:  ":000001\n",
			errMsg: "record too short",
		},
		{
			name:   "count mismatch",
			input:  ":0200000000FE\n",
			errMsg: "data length mismatch",
		},
		{
			name:   "bad checksum",
			input:  ":00000001FE\n",
			errMsg: "checksum mismatch",
		},
		{
			name:   "unknown type",
			input:  ":00000006FA\n",
			errMsg: "unsupported record type 0x06",
		},
		{
			name:   "end of file with data",
			input:  ":0100000100FE\n",
			errMsg: "end of file record must hold 0 data bytes",
		},
		{
			name:   "reports line number",
			input:  ":00000001FF\n\n:00000001FE\n",
			errMsg: "line 3:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReader(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini0.hex")
	require.NoError(t, os.WriteFile(path, []byte(mini0), 0o644))

	f, err := Parse(path)
	require.NoError(t, err)
	assert.Len(t, f.Records, 4)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.hex"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestRecordTypeString(t *testing.T) {
	assert.Equal(t, "data", Data.String())
	assert.Equal(t, "end of file", EndOfFile.String())
	assert.Equal(t, "unknown (0x09)", RecordType(0x09).String())
}
