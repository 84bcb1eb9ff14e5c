package ibis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromCode(t *testing.T) {
	assert.Equal(t, Status{Kind: StatusOK, Code: '3'}, StatusFromCode('3'))
	assert.Equal(t, Status{Kind: StatusReadyForData, Code: '0'}, StatusFromCode('0'))
	assert.Equal(t, Status{Kind: StatusUncategorized, Code: '5'}, StatusFromCode('5'))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", StatusFromCode('3').String())
	assert.Equal(t, "ready for data", StatusFromCode('0').String())
	assert.Equal(t, "uncategorized (0x35)", StatusFromCode('5').String())
}

func TestParseStatusResponse(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    Status
		wantErr error
	}{
		{name: "ok", input: []byte{'a', '3', '\r', 0x20}, want: Status{Kind: StatusOK, Code: '3'}},
		{name: "ready for data", input: []byte{'a', '0', '\r', 0x23}, want: Status{Kind: StatusReadyForData, Code: '0'}},
		{name: "uncategorized", input: []byte{'a', '5', '\r', 0x26}, want: Status{Kind: StatusUncategorized, Code: '5'}},
		{name: "bad parity", input: []byte{'a', '3', '\r', 0x21}, wantErr: ErrParity},
		{name: "short", input: []byte{'a', '3', '\r'}, wantErr: ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatusResponse(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
