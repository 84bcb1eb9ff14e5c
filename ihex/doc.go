// Package ihex parses Intel HEX files as exported by BS210 sign database
// editors.
//
// # File Format
//
// Every non-empty line is one record:
//
//	:[COUNT][ADDRESS][TYPE][DATA...][CHECKSUM]
//
// All fields are hex encoded; ADDRESS is big-endian and CHECKSUM is the
// two's complement of the sum of all preceding bytes.
//
// # Usage
//
//	db, err := ihex.Parse("mini0.hex")
//	if err != nil {
//	    return err
//	}
//	for _, rec := range db.Records {
//	    switch rec.Type {
//	    case ihex.Data:
//	        // write rec.Data
//	    case ihex.EndOfFile:
//	        // done
//	    }
//	}
//
// The parser validates syntax and checksums only. Deciding which record
// types are acceptable, and what to do with records after the end-of-file
// marker, is left to the caller.
package ihex
