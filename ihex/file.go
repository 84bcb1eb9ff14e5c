package ihex

import "fmt"

// RecordType is the type field of an Intel HEX record.
type RecordType byte

// Record types defined by the Intel HEX format.
const (
	Data                   RecordType = 0x00
	EndOfFile              RecordType = 0x01
	ExtendedSegmentAddress RecordType = 0x02
	StartSegmentAddress    RecordType = 0x03
	ExtendedLinearAddress  RecordType = 0x04
	StartLinearAddress     RecordType = 0x05
)

func (t RecordType) String() string {
	switch t {
	case Data:
		return "data"
	case EndOfFile:
		return "end of file"
	case ExtendedSegmentAddress:
		return "extended segment address"
	case StartSegmentAddress:
		return "start segment address"
	case ExtendedLinearAddress:
		return "extended linear address"
	case StartLinearAddress:
		return "start linear address"
	default:
		return fmt.Sprintf("unknown (0x%02X)", byte(t))
	}
}

// File is a parsed Intel HEX file with its records in file order.
type File struct {
	Records []*Record
}

// Record is a single line of an Intel HEX file.
type Record struct {
	// Type is the record type
	Type RecordType

	// Address is the 16-bit load offset
	Address uint16

	// Data holds the record's data bytes
	Data []byte

	// Checksum is the checksum as read from the file
	Checksum byte
}
