package ihex

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Constants for Intel HEX parsing.
const (
	// StartCode begins every record line
	StartCode = ':'

	// RecordHeaderSize is the size of count, address and type fields in bytes
	RecordHeaderSize = 4

	// RecordChecksumSize is the size of the trailing checksum in bytes
	RecordChecksumSize = 1

	// MinimumRecordBytes is the size of a record without data
	MinimumRecordBytes = RecordHeaderSize + RecordChecksumSize

	// DefaultRecordCapacity is the initial capacity of the records slice
	DefaultRecordCapacity = 256
)

// expectedDataLen lists the fixed data lengths of the non-data record types.
var expectedDataLen = map[RecordType]int{
	EndOfFile:              0,
	ExtendedSegmentAddress: 2,
	StartSegmentAddress:    4,
	ExtendedLinearAddress:  2,
	StartLinearAddress:     4,
}

// Parse parses an Intel HEX file from the given path.
//
// Example:
//
//	db, err := ihex.Parse("mini0.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d records\n", len(db.Records))
func Parse(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses Intel HEX records from any io.Reader. Empty lines are
// skipped; every other line must be a well-formed record with a valid
// checksum. Records are returned in file order without interpretation, so
// records after an end-of-file marker are preserved for the caller to judge.
func ParseReader(r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)
	file := &File{
		Records: make([]*Record, 0, DefaultRecordCapacity),
	}

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		file.Records = append(file.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return file, nil
}

// parseRecord parses a single record line.
//
// Record format (after the start code, hex encoded):
//
//	[Count(1)][Address(2, big-endian)][Type(1)][Data(Count)][Checksum(1)]
//
// Example: ":10004000FFFFFFFFFFFFFFFF0000000000000000B8"
func parseRecord(line string) (*Record, error) {
	if line[0] != StartCode {
		return nil, fmt.Errorf("record must start with '%c'", StartCode)
	}

	data, err := hex.DecodeString(line[1:])
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}

	if len(data) < MinimumRecordBytes {
		return nil, fmt.Errorf("record too short: got %d bytes, minimum is %d", len(data), MinimumRecordBytes)
	}

	count := int(data[0])
	expectedLen := MinimumRecordBytes + count
	if len(data) != expectedLen {
		return nil, fmt.Errorf("data length mismatch: got %d bytes, expected %d (header=%d + data=%d + checksum=%d)",
			len(data), expectedLen, RecordHeaderSize, count, RecordChecksumSize)
	}

	checksum := data[len(data)-1]
	calculated := calculateChecksum(data[:len(data)-1])
	if checksum != calculated {
		return nil, fmt.Errorf("checksum mismatch: got 0x%02X, expected 0x%02X", checksum, calculated)
	}

	recType := RecordType(data[3])
	if recType > StartLinearAddress {
		return nil, fmt.Errorf("unsupported record type 0x%02X", byte(recType))
	}
	if want, ok := expectedDataLen[recType]; ok && count != want {
		return nil, fmt.Errorf("%s record must hold %d data bytes, got %d", recType, want, count)
	}

	rec := &Record{
		Type:     recType,
		Address:  uint16(data[1])<<8 | uint16(data[2]),
		Data:     make([]byte, count),
		Checksum: checksum,
	}
	copy(rec.Data, data[RecordHeaderSize:RecordHeaderSize+count])

	return rec, nil
}

// calculateChecksum computes the 8-bit two's complement checksum of a record.
func calculateChecksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
