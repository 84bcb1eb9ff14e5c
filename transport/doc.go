// Package transport opens serial ports with the line settings IBIS
// displays expect: 1200 baud, 7 data bits, even parity, 2 stop bits and a
// 3 second read timeout.
//
// The protocol packages never depend on this package directly; they accept
// any io.ReadWriter, so tests substitute the scripted port from
// transport/transporttest.
//
//	port, err := transport.Open("/dev/ttyUSB0")
//	if err != nil {
//	    return err
//	}
//	defer port.Close()
//
// A read that receives nothing within the timeout fails with ErrTimeout;
// use IsTimeout to tell timeouts apart from other I/O failures.
package transport
