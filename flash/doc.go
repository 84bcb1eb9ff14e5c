// Package flash replaces the glyph database of BS210 destination signs.
//
// The database is an Intel HEX file of 32 byte data records. Flashing is
// a strict exchange of BS210 records over the IBIS serial line:
//
//	select address   ESC S <addr>         no reply
//	check status     a<addr>              'a' <status> CR <parity>
//	prepare clear    two fixed queries    ack, then record 57
//	clear            fixed query, 4x      'E' each
//	finish clear     two fixed queries    ack each
//	flash chunks     one per data record  ack each
//	finish flash     fixed query          ack
//	                 fixed query, 4x      no reply
//
// Basic usage:
//
//	db, err := ihex.Parse("signdb.hex")
//	if err != nil {
//	    return err
//	}
//
//	port, err := transport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    return err
//	}
//	defer port.Close()
//
//	if err := flash.New(port).Flash(ctx, 1, db); err != nil {
//	    var ferr *flash.Error
//	    if errors.As(err, &ferr) {
//	        log.Printf("aborted at %s", ferr.Step)
//	    }
//	    return err
//	}
//
// A failed flash leaves the sign without a usable database. Run Flash
// again from the start; there is no way to resume.
package flash
