package record

import "encoding/binary"

// DatabaseChunk is a record writing content at a byte offset of the sign
// database. Its payload is:
//
//	[0x05][ADDR_L][ADDR_H][0x00][CONTENT...]
type DatabaseChunk struct {
	Record
}

// NewDatabaseChunk builds the chunk writing content at address. Content
// longer than MaxPayloadSize bytes is rejected.
func NewDatabaseChunk(address uint16, content []byte) (DatabaseChunk, error) {
	if len(content) > MaxPayloadSize {
		return DatabaseChunk{}, &Error{Kind: KindLengthOutOfBounds, Len: len(content)}
	}

	rec, err := NewBuilder().
		Byte(chunkCommand).
		Uint16(address).
		Byte(chunkDataType).
		Append(content...).
		Build()
	if err != nil {
		return DatabaseChunk{}, err
	}

	return DatabaseChunk{Record: rec}, nil
}

// Address returns the database offset the chunk is written to.
func (c DatabaseChunk) Address() uint16 {
	p := c.Payload()
	if len(p) < ChunkHeaderSize {
		return 0
	}
	return binary.LittleEndian.Uint16(p[1:3])
}

// Content returns the database bytes carried by the chunk.
func (c DatabaseChunk) Content() []byte {
	p := c.Payload()
	if len(p) < ChunkHeaderSize {
		return nil
	}
	return p[ChunkHeaderSize:]
}
