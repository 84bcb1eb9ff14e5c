package record

// Wire-level constants of the BS210 record protocol.
const (
	// Ack is the magic number starting every response from the sign
	Ack = 0x4F

	// ClearAck is the single byte answering each clear query ('E')
	ClearAck = 0x45

	// MaxPayloadSize is the largest payload a single length byte can describe
	MaxPayloadSize = 0xFF

	// MinRecordSize is the size of a message with empty payload (length + checksum)
	MinRecordSize = 2

	// ChunkHeaderSize is the size of the database chunk header within the payload:
	// [0x05][ADDR_L][ADDR_H][0x00]
	ChunkHeaderSize = 4

	// chunkCommand opens the payload of every database chunk
	chunkCommand = 0x05

	// chunkDataType follows the address in every database chunk
	chunkDataType = 0x00
)
